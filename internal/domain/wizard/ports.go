package wizard

import (
	"context"
	"errors"
	"time"
)

var (
	ErrSessionNotFound = errors.New("simulation session not found")
	// ErrWrongStage is returned when an action is not accepted by the
	// session's current stage.
	ErrWrongStage = errors.New("action not allowed in current stage")
)

// Session is a persisted wizard run owned by one visitor.
type Session struct {
	ID        string    `json:"id"`
	VisitorID string    `json:"visitor_id"`
	State     State     `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FlagStore keeps the durable "lead form completed" flag per visitor.
type FlagStore interface {
	Completed(ctx context.Context, visitorID string) (bool, error)
	SetCompleted(ctx context.Context, visitorID string, completed bool) error
}

type SessionStore interface {
	Save(ctx context.Context, s *Session) error
	// Get returns ErrSessionNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (*Session, error)
}
