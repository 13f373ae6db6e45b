package financing

import (
	"fmt"
	"math"
)

// Strategy computes installment figures for a financed amount, a monthly
// rate fraction and a term. Strategies are pure.
type Strategy func(financed, monthlyRate float64, termMonths int) Installments

var strategies = map[System]Strategy{
	SAC:   ConstantAmortization,
	PRICE: ConstantPayment,
}

// StrategyFor returns the strategy registered for s.
func StrategyFor(s System) (Strategy, error) {
	st, ok := strategies[s]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSystem, s)
	}
	return st, nil
}

// ConstantPayment is the PRICE (French) system:
//
//	payment = P * i * (1+i)^n / ((1+i)^n - 1)
//
// A zero monthly rate divides zero by zero and yields NaN; callers must
// reject it before getting here.
func ConstantPayment(financed, monthlyRate float64, termMonths int) Installments {
	factor := math.Pow(1+monthlyRate, float64(termMonths))
	payment := financed * (monthlyRate * factor) / (factor - 1)
	totalPaid := payment * float64(termMonths)
	return Installments{
		First:         payment,
		Last:          payment,
		TotalPaid:     totalPaid,
		TotalInterest: totalPaid - financed,
	}
}

// ConstantAmortization is the SAC system. Interest falls linearly from
// P*i to a*i, so its total is the arithmetic series sum.
func ConstantAmortization(financed, monthlyRate float64, termMonths int) Installments {
	n := float64(termMonths)
	amortization := financed / n
	firstInterest := financed * monthlyRate
	lastInterest := amortization * monthlyRate
	totalInterest := (firstInterest + lastInterest) * n / 2
	return Installments{
		First:         amortization + firstInterest,
		Last:          amortization + lastInterest,
		TotalPaid:     financed + totalInterest,
		TotalInterest: totalInterest,
	}
}
