package wizard

import (
	"encoding/json"
	"errors"
	"testing"

	"simulador-backend/internal/domain/catalog"
	"simulador-backend/internal/domain/financing"
	financingUC "simulador-backend/internal/usecase/financing"
)

type calcFunc func(p financing.Parameters) (*financing.Result, error)

func (f calcFunc) Evaluate(p financing.Parameters) (*financing.Result, error) { return f(p) }

func realReducer() *Reducer {
	return NewReducer(financingUC.NewUsecase(financingUC.DefaultPolicy(), nil))
}

func selectX() SelectProperty {
	return SelectProperty{
		PropertyID:   "prop-x",
		PropertyName: "Residencial X",
		Variation:    &catalog.Variation{ID: "x-2q", Price: 500000, AreaSqm: 55, BedroomCount: 2},
	}
}

func TestReduce_ScenarioWizardFlow(t *testing.T) {
	r := realReducer()
	s := New(false)

	s = r.Reduce(s, selectX())
	if s.Stage != StageFinancialData || s.SelectedPropertyID != "prop-x" {
		t.Fatalf("after select: %+v", s)
	}

	s = r.Reduce(s, SetDownPayment{Raw: "25.000,00"})
	s = r.Reduce(s, SubmitFinancialData{})
	if s.Stage != StageFinancialData {
		t.Fatalf("zero income must keep FinancialData, got %s", s.Stage)
	}
	if s.Error != financing.MsgAllValuesRequired {
		t.Fatalf("error = %q", s.Error)
	}

	s = r.Reduce(s, SetMonthlyIncome{Raw: "R$ 10.000,00"})
	if s.MonthlyIncomeInput != "1000000" {
		t.Fatalf("income input = %q", s.MonthlyIncomeInput)
	}
	s = r.Reduce(s, SubmitFinancialData{})
	if s.Stage != StageLeadForm || s.Result == nil || s.Error != "" {
		t.Fatalf("after valid submit: stage=%s result=%v err=%q", s.Stage, s.Result, s.Error)
	}
	if s.Result.FinancedAmount != 475000 || s.Result.System != financing.SAC {
		t.Fatalf("unexpected result %+v", s.Result)
	}

	s = r.Reduce(s, LeadSubmitted{})
	if s.Stage != StageResult || !s.LeadFormCompleted {
		t.Fatalf("after lead: stage=%s flag=%v", s.Stage, s.LeadFormCompleted)
	}

	// restart keeps only the durable flag
	s = r.Reduce(s, Reset{})
	if s.Stage != StageSelectProperty || s.Result != nil || s.MonthlyIncomeInput != "" || !s.LeadFormCompleted {
		t.Fatalf("after reset: %+v", s)
	}

	s = r.Reduce(s, selectX())
	s = r.Reduce(s, SetMonthlyIncome{Raw: "1000000"})
	s = r.Reduce(s, SetDownPayment{Raw: "5000000"})
	s = r.Reduce(s, SubmitFinancialData{})
	if s.Stage != StageResult {
		t.Fatalf("completed flag should skip the lead form, got %s", s.Stage)
	}
}

func TestReduce_RecentLeadSkipsForm(t *testing.T) {
	r := realReducer()
	s := r.Reduce(New(false), selectX())
	s = r.Reduce(s, SetMonthlyIncome{Raw: "1000000"})
	s = r.Reduce(s, SetDownPayment{Raw: "5000000"})

	s = r.Reduce(s, SubmitFinancialData{LeadAlreadyCaptured: true})
	if s.Stage != StageResult {
		t.Fatalf("stage = %s, want result", s.Stage)
	}
	if s.LeadFormCompleted {
		t.Fatal("recent lead must not set the durable flag")
	}
}

func TestReduce_RejectsActionsOutsideStage(t *testing.T) {
	r := realReducer()
	s := New(false)

	cases := []Action{
		SetMonthlyIncome{Raw: "123"},
		SubmitFinancialData{},
		LeadSubmitted{},
		Back{},
	}
	for _, a := range cases {
		if got := r.Reduce(s, a); got != s {
			t.Fatalf("%s changed state in SelectProperty: %+v", a.Name(), got)
		}
		if s.Accepts(a) {
			t.Fatalf("%s should not be accepted in SelectProperty", a.Name())
		}
	}

	fd := r.Reduce(s, selectX())
	if got := r.Reduce(fd, selectX()); got.SelectedVariation != fd.SelectedVariation {
		t.Fatal("SelectProperty must be ignored outside SelectProperty")
	}
}

func TestReduce_Back(t *testing.T) {
	r := realReducer()
	s := r.Reduce(New(false), selectX())
	s = r.Reduce(s, SetMonthlyIncome{Raw: "1000000"})
	s = r.Reduce(s, SetDownPayment{Raw: "5000000"})
	s = r.Reduce(s, SubmitFinancialData{})

	lf := s
	s = r.Reduce(s, Back{})
	if s.Stage != StageFinancialData || s.Result == nil {
		t.Fatalf("back from lead form: %+v", s)
	}

	s = r.Reduce(lf, LeadSubmitted{})
	s = r.Reduce(s, Back{})
	if s.Stage != StageFinancialData || s.Result != nil {
		t.Fatalf("back from result must clear result: %+v", s)
	}
	if s.MonthlyIncomeInput != "1000000" {
		t.Fatal("inputs should survive back")
	}

	s = r.Reduce(s, Back{})
	if s.Stage != StageSelectProperty {
		t.Fatalf("back from financial data: %s", s.Stage)
	}
}

func TestReduce_SetSystemAndIndexer(t *testing.T) {
	r := realReducer()
	s := r.Reduce(New(false), selectX())

	s = r.Reduce(s, SetSystem{System: financing.PRICE})
	s = r.Reduce(s, SetIndexer{Indexer: financing.IPCA})
	if s.System != financing.PRICE || s.Indexer != financing.IPCA {
		t.Fatalf("system=%s indexer=%s", s.System, s.Indexer)
	}

	s = r.Reduce(s, SetSystem{System: "GERMAN"})
	s = r.Reduce(s, SetIndexer{Indexer: "SELIC"})
	if s.System != financing.PRICE || s.Indexer != financing.IPCA {
		t.Fatal("unknown values must be ignored")
	}
}

func TestReduce_InputsTruncated(t *testing.T) {
	r := realReducer()
	s := r.Reduce(New(false), selectX())
	s = r.Reduce(s, SetMonthlyIncome{Raw: "12345678901234567890"})
	if s.MonthlyIncomeInput != "123456789012345" {
		t.Fatalf("income input = %q", s.MonthlyIncomeInput)
	}
}

func TestReduce_CalculationFailures(t *testing.T) {
	boom := calcFunc(func(financing.Parameters) (*financing.Result, error) {
		return nil, &financing.CalculationError{Err: errors.New("boom")}
	})
	r := NewReducer(boom)

	s := r.Reduce(New(false), selectX())
	s = r.Reduce(s, SubmitFinancialData{})
	if s.Stage != StageFinancialData || s.Error != financing.MsgCalculationFailed {
		t.Fatalf("calc error: stage=%s err=%q", s.Stage, s.Error)
	}

	called := false
	r = NewReducer(calcFunc(func(financing.Parameters) (*financing.Result, error) {
		called = true
		return &financing.Result{}, nil
	}))
	broken := r.Reduce(New(false), SelectProperty{PropertyID: "p", Variation: &catalog.Variation{Price: 0}})
	broken = r.Reduce(broken, SubmitFinancialData{})
	if called || broken.Error != financing.MsgCalculationFailed {
		t.Fatalf("malformed variation: called=%v err=%q", called, broken.Error)
	}

	noVariation := r.Reduce(New(false), SelectProperty{PropertyID: "p"})
	noVariation = r.Reduce(noVariation, SubmitFinancialData{})
	if noVariation.Error != financing.MsgCalculationFailed {
		t.Fatalf("missing variation: err=%q", noVariation.Error)
	}
}

func TestReduce_PassesCentsToCalculator(t *testing.T) {
	var got financing.Parameters
	r := NewReducer(calcFunc(func(p financing.Parameters) (*financing.Result, error) {
		got = p
		return &financing.Result{}, nil
	}))
	s := r.Reduce(New(false), selectX())
	s = r.Reduce(s, SetMonthlyIncome{Raw: "850050"})
	s = r.Reduce(s, SetDownPayment{Raw: "12345"})
	r.Reduce(s, SubmitFinancialData{})

	if got.MonthlyIncome != 8500.5 || got.DownPayment != 123.45 || got.PropertyValue != 500000 {
		t.Fatalf("params = %+v", got)
	}
	if got.System != financing.SAC || got.Indexer != financing.TR {
		t.Fatalf("defaults not forwarded: %+v", got)
	}
}

func TestState_JSONRoundTrip(t *testing.T) {
	r := realReducer()
	s := r.Reduce(New(true), selectX())

	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back State
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Stage != StageFinancialData || back.SelectedVariation.ID != "x-2q" || !back.LeadFormCompleted {
		t.Fatalf("round trip: %+v", back)
	}
}

func TestStage_Text(t *testing.T) {
	var st Stage
	if err := st.UnmarshalText([]byte("lead_form")); err != nil || st != StageLeadForm {
		t.Fatalf("unmarshal: %v %v", st, err)
	}
	if err := st.UnmarshalText([]byte("checkout")); err == nil {
		t.Fatal("want error for unknown stage")
	}
	if Stage(9).String() != "stage(9)" {
		t.Fatalf("String = %s", Stage(9))
	}
}
