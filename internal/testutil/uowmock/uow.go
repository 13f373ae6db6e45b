package uowmock

import (
	"context"
	"errors"

	"simulador-backend/internal/domain/catalog"
	"simulador-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinPropertyTxFn func(ctx context.Context, propertyID string, fn func(r uow.Repos, p *catalog.Property) error) error
}

// Passthrough runs the callback against repos without a transaction,
// looking the property up through repos.Properties.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinPropertyTxFn: func(ctx context.Context, propertyID string, fn func(uow.Repos, *catalog.Property) error) error {
			p, err := repos.Properties.GetByID(ctx, propertyID)
			if err != nil {
				return err
			}
			return fn(repos, p)
		},
	}
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinPropertyTx(fn func(context.Context, string, func(uow.Repos, *catalog.Property) error) error) *UoW {
	m.WithinPropertyTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinPropertyTx(ctx context.Context, propertyID string, fn func(r uow.Repos, p *catalog.Property) error) error {
	if m.WithinPropertyTxFn != nil {
		return m.WithinPropertyTxFn(ctx, propertyID, fn)
	}
	return errUnimplemented
}
