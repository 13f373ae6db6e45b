package wizardmock

import (
	"context"
	"sync"

	domain "simulador-backend/internal/domain/wizard"
)

var (
	_ domain.FlagStore    = (*Flags)(nil)
	_ domain.SessionStore = (*Sessions)(nil)
)

// Flags is an in-memory domain.FlagStore. Err, when set, fails every call.
type Flags struct {
	mu   sync.Mutex
	m    map[string]bool
	Err  error
	Sets int
}

func (f *Flags) Completed(_ context.Context, visitorID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return false, f.Err
	}
	return f.m[visitorID], nil
}

func (f *Flags) SetCompleted(_ context.Context, visitorID string, completed bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	if f.m == nil {
		f.m = map[string]bool{}
	}
	f.m[visitorID] = completed
	f.Sets++
	return nil
}

// Sessions is an in-memory domain.SessionStore holding copies.
type Sessions struct {
	mu      sync.Mutex
	m       map[string]domain.Session
	SaveErr error
}

func (s *Sessions) Save(_ context.Context, sess *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	if s.m == nil {
		s.m = map[string]domain.Session{}
	}
	s.m[sess.ID] = *sess
	return nil
}

func (s *Sessions) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.m[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &sess, nil
}
