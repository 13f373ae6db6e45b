package lead

import (
	"simulador-backend/internal/domain/financing"
	"simulador-backend/internal/domain/lead"
)

// SubmitInput is a contact plus the simulation it was captured on.
type SubmitInput struct {
	VisitorID     string
	Contact       lead.Contact
	PropertyID    string
	VariationID   string
	MonthlyIncome float64
	Result        financing.Result
}
