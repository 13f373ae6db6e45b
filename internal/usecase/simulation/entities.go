package simulation

import (
	"context"

	"simulador-backend/internal/domain/catalog"
	"simulador-backend/internal/domain/financing"
	"simulador-backend/internal/domain/lead"
	leaduc "simulador-backend/internal/usecase/lead"
)

// PropertyReader resolves the property picked by the visitor.
type PropertyReader interface {
	Get(ctx context.Context, id string) (*catalog.Property, error)
}

// LeadService stores captured leads and answers the de-dup question.
type LeadService interface {
	Submit(ctx context.Context, in leaduc.SubmitInput) (*lead.Lead, error)
	HasRecent(ctx context.Context, visitorID, propertyID string) bool
}

// InputsUpdate carries the financial-data fields being edited. Nil fields
// are left alone.
type InputsUpdate struct {
	MonthlyIncome *string
	DownPayment   *string
	System        *financing.System
	Indexer       *financing.Indexer
}
