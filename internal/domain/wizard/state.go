package wizard

import (
	"simulador-backend/internal/domain/catalog"
	"simulador-backend/internal/domain/financing"
)

// State is everything the wizard carries between steps. Income and down
// payment are kept as the raw digit strings typed by the visitor (cents).
type State struct {
	Stage              Stage              `json:"stage"`
	SelectedPropertyID string             `json:"selected_property_id,omitempty"`
	PropertyName       string             `json:"property_name,omitempty"`
	SelectedVariation  *catalog.Variation `json:"selected_variation,omitempty"`
	MonthlyIncomeInput string             `json:"monthly_income_input"`
	DownPaymentInput   string             `json:"down_payment_input"`
	System             financing.System   `json:"system"`
	Indexer            financing.Indexer  `json:"indexer"`
	Error              string             `json:"error,omitempty"`
	Result             *financing.Result  `json:"result,omitempty"`
	// LeadFormCompleted survives Reset and is persisted per visitor.
	LeadFormCompleted bool `json:"lead_form_completed"`
}

// New is the initial state of a session.
func New(leadFormCompleted bool) State {
	return State{
		Stage:             StageSelectProperty,
		System:            financing.DefaultSystem,
		Indexer:           financing.DefaultIndexer,
		LeadFormCompleted: leadFormCompleted,
	}
}
