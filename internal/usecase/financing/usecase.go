package financing

import (
	"context"
	"errors"
	"fmt"
	"math"

	domain "simulador-backend/internal/domain/financing"
	"simulador-backend/internal/metrics"
	"simulador-backend/pkg/money"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("simulador-backend/usecase/financing")

var errNonFinite = errors.New("non-finite installment")

type Usecase struct {
	policy Policy
	log    *zap.Logger
}

func NewUsecase(p Policy, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	if p.DefaultTermMonths == 0 {
		p.DefaultTermMonths = domain.DefaultTermMonths
	}
	if p.DefaultIndexer == "" {
		p.DefaultIndexer = domain.DefaultIndexer
	}
	return &Usecase{policy: p, log: log}
}

func (u *Usecase) Policy() Policy { return u.policy }

func (u *Usecase) withDefaults(p domain.Parameters) domain.Parameters {
	if p.TermMonths == 0 {
		p.TermMonths = u.policy.DefaultTermMonths
	}
	if p.Indexer == "" {
		p.Indexer = u.policy.DefaultIndexer
	}
	return p
}

// Validate checks the input rules in order; the first failure wins. It
// returns nil or a *domain.ValidationError.
func (u *Usecase) Validate(p domain.Parameters) error {
	if p.PropertyValue == 0 || p.DownPayment == 0 || p.MonthlyIncome == 0 ||
		!finite(p.PropertyValue, p.DownPayment, p.MonthlyIncome) {
		return &domain.ValidationError{Field: "_", Message: domain.MsgAllValuesRequired}
	}
	if p.PropertyValue < 0 || p.DownPayment < 0 || p.MonthlyIncome < 0 {
		return &domain.ValidationError{Field: "_", Message: domain.MsgNonPositiveValues}
	}

	// minimum in cents, rounded half away from zero
	minDown := decimal.NewFromFloat(p.PropertyValue).
		Mul(decimal.NewFromFloat(u.policy.MinDownPaymentPct)).
		Round(2)
	if decimal.NewFromFloat(p.DownPayment).LessThan(minDown) {
		return &domain.ValidationError{
			Field: "down_payment",
			Message: fmt.Sprintf("A entrada mínima deve ser de %g%% do valor do imóvel (%s)",
				u.policy.MinDownPaymentPct*100, money.FormatBRL(minDown.InexactFloat64())),
		}
	}
	if p.DownPayment >= p.PropertyValue {
		return &domain.ValidationError{Field: "down_payment", Message: domain.MsgDownPaymentTooLarge}
	}
	if p.MonthlyIncome < u.policy.MinIncome {
		return &domain.ValidationError{
			Field:   "monthly_income",
			Message: "A renda mensal mínima é de " + money.FormatBRL(u.policy.MinIncome),
		}
	}
	if p.TermMonths < 0 {
		return &domain.ValidationError{Field: "term_months", Message: domain.MsgInvalidTerm}
	}
	return nil
}

// Calculate produces the full result. It does not validate: invalid input
// may give NaN or negative figures. The only error is an unknown
// system/indexer.
func (u *Usecase) Calculate(p domain.Parameters) (*domain.Result, error) {
	p = u.withDefaults(p)

	annual, err := domain.AnnualRate(p.Indexer, p.System)
	if err != nil {
		return nil, &domain.CalculationError{Err: err}
	}
	strategy, err := domain.StrategyFor(p.System)
	if err != nil {
		return nil, &domain.CalculationError{Err: err}
	}

	monthly := domain.MonthlyRate(annual)
	financed := p.PropertyValue - p.DownPayment
	inst := strategy(financed, monthly, p.TermMonths)
	capacity := p.MonthlyIncome * u.policy.IncomeCommitmentPct

	return &domain.Result{
		PropertyValue:      p.PropertyValue,
		DownPayment:        p.DownPayment,
		FinancedAmount:     financed,
		DownPaymentPercent: p.DownPayment / p.PropertyValue * 100,
		FirstInstallment:   inst.First,
		LastInstallment:    inst.Last,
		TermMonths:         p.TermMonths,
		AnnualRate:         annual,
		MonthlyRate:        monthly,
		TotalInterest:      inst.TotalInterest,
		TotalPaid:          inst.TotalPaid,
		System:             p.System,
		Indexer:            p.Indexer,
		PaymentCapacity:    capacity,
		WithinCapacity:     inst.First <= capacity,
	}, nil
}

// Evaluate validates, calculates and applies the affordability pre-check
// when the policy asks for it. It has no side effects.
func (u *Usecase) Evaluate(p domain.Parameters) (*domain.Result, error) {
	if err := u.Validate(p); err != nil {
		return nil, err
	}
	res, err := u.Calculate(p)
	if err != nil {
		return nil, err
	}
	if !finite(res.FirstInstallment, res.LastInstallment, res.TotalPaid, res.TotalInterest) {
		return nil, &domain.CalculationError{Err: errNonFinite}
	}
	if u.policy.EnforceAffordability && !res.WithinCapacity {
		return nil, &domain.ValidationError{
			Field: "monthly_income",
			Message: fmt.Sprintf("A parcela estimada de %s ultrapassa %g%% da sua renda (%s)",
				money.FormatBRL(res.FirstInstallment), u.policy.IncomeCommitmentPct*100,
				money.FormatBRL(res.PaymentCapacity)),
		}
	}
	return res, nil
}

// Quote is Evaluate plus the calculation counter and error log.
func (u *Usecase) Quote(p domain.Parameters) (*domain.Result, error) {
	res, err := u.Evaluate(p)
	labels := u.withDefaults(p)
	metrics.Calculations.WithLabelValues(string(labels.System), string(labels.Indexer), Outcome(err)).Inc()

	var calc *domain.CalculationError
	if errors.As(err, &calc) {
		u.log.Error("financing calculation failed", zap.Error(err), zap.Any("params", p))
	}
	return res, err
}

// Outcome labels an Evaluate error for metrics: ok, invalid or error.
func Outcome(err error) string {
	var ve *domain.ValidationError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &ve):
		return "invalid"
	default:
		return "error"
	}
}

// QuoteContext is Quote wrapped in a span, for request paths.
func (u *Usecase) QuoteContext(ctx context.Context, in QuoteInput) (*domain.Result, error) {
	_, span := tracer.Start(ctx, "financing.Quote")
	defer span.End()
	span.SetAttributes(
		attribute.String("system", string(in.System)),
		attribute.String("indexer", string(in.Indexer)),
		attribute.Float64("property_value", in.PropertyValue),
	)
	res, err := u.Quote(in.Parameters())
	if err != nil {
		span.RecordError(err)
	}
	return res, err
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
