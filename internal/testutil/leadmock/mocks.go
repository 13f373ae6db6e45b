package leadmock

import (
	"context"
	"time"

	domain "simulador-backend/internal/domain/lead"
)

var (
	_ domain.Repository  = (*Repo)(nil)
	_ domain.RecentCache = (*Cache)(nil)
	_ domain.Notifier    = (*Notifier)(nil)
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn    func(ctx context.Context, l *domain.Lead) error
	ListSinceFn func(ctx context.Context, since time.Time) ([]domain.Lead, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Lead) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) ListSince(ctx context.Context, since time.Time) ([]domain.Lead, error) {
	if m.ListSinceFn != nil {
		return m.ListSinceFn(ctx, since)
	}
	return nil, nil
}

// Cache is a function-backed mock of domain.RecentCache.
type Cache struct {
	AddFn       func(ctx context.Context, visitorID string, e domain.RecentEntry) error
	HasRecentFn func(ctx context.Context, visitorID, propertyID string, now time.Time) (bool, error)
}

func (m *Cache) Add(ctx context.Context, visitorID string, e domain.RecentEntry) error {
	if m.AddFn != nil {
		return m.AddFn(ctx, visitorID, e)
	}
	return nil
}

func (m *Cache) HasRecent(ctx context.Context, visitorID, propertyID string, now time.Time) (bool, error) {
	if m.HasRecentFn != nil {
		return m.HasRecentFn(ctx, visitorID, propertyID, now)
	}
	return false, nil
}

// Notifier records every lead it is asked to announce.
type Notifier struct {
	NotifyLeadFn func(ctx context.Context, l *domain.Lead) error
	Sent         []*domain.Lead
}

func (m *Notifier) NotifyLead(ctx context.Context, l *domain.Lead) error {
	m.Sent = append(m.Sent, l)
	if m.NotifyLeadFn != nil {
		return m.NotifyLeadFn(ctx, l)
	}
	return nil
}
