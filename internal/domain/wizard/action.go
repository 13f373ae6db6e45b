package wizard

import (
	"simulador-backend/internal/domain/catalog"
	"simulador-backend/internal/domain/financing"
)

// Action is a named transition request.
type Action interface {
	Name() string
}

type SelectProperty struct {
	PropertyID   string
	PropertyName string
	Variation    *catalog.Variation
}

type SetMonthlyIncome struct{ Raw string }

type SetDownPayment struct{ Raw string }

type SetSystem struct{ System financing.System }

type SetIndexer struct{ Indexer financing.Indexer }

// SubmitFinancialData asks for a calculation. LeadAlreadyCaptured is set by
// the caller when a recent lead exists for the selected property.
type SubmitFinancialData struct{ LeadAlreadyCaptured bool }

type LeadSubmitted struct{}

type Back struct{}

type Reset struct{}

func (SelectProperty) Name() string      { return "select_property" }
func (SetMonthlyIncome) Name() string    { return "set_monthly_income" }
func (SetDownPayment) Name() string      { return "set_down_payment" }
func (SetSystem) Name() string           { return "set_system" }
func (SetIndexer) Name() string          { return "set_indexer" }
func (SubmitFinancialData) Name() string { return "submit_financial_data" }
func (LeadSubmitted) Name() string       { return "lead_submitted" }
func (Back) Name() string                { return "back" }
func (Reset) Name() string               { return "reset" }

// Accepts reports whether a is allowed in the current stage. Reset is
// allowed everywhere.
func (s State) Accepts(a Action) bool {
	switch a.(type) {
	case SelectProperty:
		return s.Stage == StageSelectProperty
	case SetMonthlyIncome, SetDownPayment, SetSystem, SetIndexer, SubmitFinancialData:
		return s.Stage == StageFinancialData
	case LeadSubmitted:
		return s.Stage == StageLeadForm
	case Back:
		return s.Stage != StageSelectProperty
	case Reset:
		return true
	}
	return false
}
