package wizard

import (
	"errors"
	"math"

	"simulador-backend/internal/domain/financing"
	"simulador-backend/pkg/money"
)

// Calculator validates and calculates a simulation. Evaluate must be free
// of side effects.
type Calculator interface {
	Evaluate(p financing.Parameters) (*financing.Result, error)
}

// Reducer applies actions to a State. Reduce is total: an action the
// current stage does not accept returns the state unchanged.
type Reducer struct {
	calc Calculator
}

func NewReducer(calc Calculator) *Reducer { return &Reducer{calc: calc} }

func (r *Reducer) Reduce(s State, a Action) State {
	if !s.Accepts(a) {
		return s
	}

	switch act := a.(type) {
	case SelectProperty:
		s.SelectedPropertyID = act.PropertyID
		s.PropertyName = act.PropertyName
		s.SelectedVariation = act.Variation
		s.Result = nil
		s.Error = ""
		s.Stage = StageFinancialData

	case SetMonthlyIncome:
		s.MonthlyIncomeInput = money.Digits(act.Raw)

	case SetDownPayment:
		s.DownPaymentInput = money.Digits(act.Raw)

	case SetSystem:
		if act.System.Valid() {
			s.System = act.System
		}

	case SetIndexer:
		if act.Indexer.Valid() {
			s.Indexer = act.Indexer
		}

	case SubmitFinancialData:
		return r.submit(s, act.LeadAlreadyCaptured)

	case LeadSubmitted:
		s.LeadFormCompleted = true
		s.Stage = StageResult

	case Back:
		switch s.Stage {
		case StageFinancialData:
			s.Error = ""
			s.Stage = StageSelectProperty
		case StageLeadForm:
			s.Stage = StageFinancialData
		case StageResult:
			s.Result = nil
			s.Stage = StageFinancialData
		}

	case Reset:
		return New(s.LeadFormCompleted)
	}
	return s
}

func (r *Reducer) submit(s State, leadAlreadyCaptured bool) State {
	v := s.SelectedVariation
	if v == nil || !(v.Price > 0) || math.IsInf(v.Price, 0) {
		s.Error = financing.MsgCalculationFailed
		return s
	}

	res, err := r.calc.Evaluate(financing.Parameters{
		PropertyValue: v.Price,
		DownPayment:   money.FromCents(s.DownPaymentInput),
		MonthlyIncome: money.FromCents(s.MonthlyIncomeInput),
		System:        s.System,
		Indexer:       s.Indexer,
	})
	if err != nil {
		var ve *financing.ValidationError
		if errors.As(err, &ve) {
			s.Error = ve.Message
		} else {
			s.Error = financing.MsgCalculationFailed
		}
		return s
	}

	s.Result = res
	s.Error = ""
	s.Stage = StageLeadForm
	if s.LeadFormCompleted || leadAlreadyCaptured {
		s.Stage = StageResult
	}
	return s
}
