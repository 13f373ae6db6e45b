package uow

import (
	"context"

	"simulador-backend/internal/domain/catalog"
	"simulador-backend/internal/domain/lead"
)

// Repos are repositories bound to one transaction.
type Repos struct {
	Properties catalog.Repository
	Leads      lead.Repository
}

type UnitOfWork interface {
	// read the property inside the tx first, then pass it in
	WithinPropertyTx(ctx context.Context, propertyID string, fn func(r Repos, p *catalog.Property) error) error
}
