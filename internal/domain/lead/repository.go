package lead

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, l *Lead) error
	// ListSince returns leads submitted at or after since, oldest first.
	ListSince(ctx context.Context, since time.Time) ([]Lead, error)
}

// RecentCache is the per-visitor de-duplication cache. Expired entries are
// dropped when read.
type RecentCache interface {
	Add(ctx context.Context, visitorID string, e RecentEntry) error
	HasRecent(ctx context.Context, visitorID, propertyID string, now time.Time) (bool, error)
}

// Notifier tells the sales team about a new lead.
type Notifier interface {
	NotifyLead(ctx context.Context, l *Lead) error
}
