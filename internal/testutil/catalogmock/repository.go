package catalogmock

import (
	"context"

	domain "simulador-backend/internal/domain/catalog"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	ListFn    func(ctx context.Context) ([]domain.Property, error)
	GetByIDFn func(ctx context.Context, id string) (*domain.Property, error)
}

func (m *Repo) List(ctx context.Context) ([]domain.Property, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
