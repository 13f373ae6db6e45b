package financing

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-6

func TestStrategyFor(t *testing.T) {
	for _, s := range []System{SAC, PRICE} {
		if _, err := StrategyFor(s); err != nil {
			t.Fatalf("StrategyFor(%s) err: %v", s, err)
		}
	}
	if _, err := StrategyFor("GERMAN"); !errors.Is(err, ErrUnknownSystem) {
		t.Fatalf("want ErrUnknownSystem, got %v", err)
	}
}

func TestConstantPayment_FlatInstallments(t *testing.T) {
	cases := []struct {
		financed float64
		rate     float64
		term     int
	}{
		{350000, MonthlyRate(10.99), 420},
		{100000, MonthlyRate(4.0), 360},
		{1000, MonthlyRate(10.5), 1},
		{80000, 0.01, 12},
	}
	for _, c := range cases {
		got := ConstantPayment(c.financed, c.rate, c.term)
		if got.First != got.Last {
			t.Fatalf("first %v != last %v", got.First, got.Last)
		}
		if math.Abs(got.TotalPaid-(c.financed+got.TotalInterest)) > eps {
			t.Fatalf("accounting identity broken: %+v", got)
		}
		if got.TotalInterest <= 0 {
			t.Fatalf("interest should be positive: %+v", got)
		}
	}
}

func TestConstantPayment_KnownValue(t *testing.T) {
	// 100k at 1% a month over 12 months is the textbook 8884.88.
	got := ConstantPayment(100000, 0.01, 12)
	if math.Abs(got.First-8884.878867) > 1e-5 {
		t.Fatalf("payment = %.6f", got.First)
	}
}

func TestConstantPayment_ZeroRateIsNaN(t *testing.T) {
	got := ConstantPayment(1000, 0, 10)
	if !math.IsNaN(got.First) {
		t.Fatalf("zero rate should be degenerate, got %v", got.First)
	}
}

func TestConstantAmortization_Decreasing(t *testing.T) {
	got := ConstantAmortization(475000, MonthlyRate(11.49), 420)
	if !(got.First > got.Last) {
		t.Fatalf("SAC should decrease: first %v last %v", got.First, got.Last)
	}
	if math.Abs(got.TotalPaid-(475000+got.TotalInterest)) > eps {
		t.Fatalf("accounting identity broken: %+v", got)
	}
}

func TestConstantAmortization_MatchesScheduleSum(t *testing.T) {
	// closed form against an explicit month-by-month walk
	financed, rate, term := 120000.0, 0.008, 48
	got := ConstantAmortization(financed, rate, term)

	amort := financed / float64(term)
	balance := financed
	interest := 0.0
	for m := 0; m < term; m++ {
		interest += balance * rate
		balance -= amort
	}
	if math.Abs(got.TotalInterest-interest) > 1e-6 {
		t.Fatalf("closed form %v, walk %v", got.TotalInterest, interest)
	}
}

func TestConstantAmortization_SingleMonth(t *testing.T) {
	got := ConstantAmortization(1000, 0.01, 1)
	if got.First != got.Last || got.First != 1010 {
		t.Fatalf("single month: %+v", got)
	}
}
