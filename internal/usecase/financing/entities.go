package financing

import domain "simulador-backend/internal/domain/financing"

// Policy holds the business rules that changed between product revisions.
// The 20% variant is MinDownPaymentPct=0.20 with EnforceAffordability on.
type Policy struct {
	MinDownPaymentPct    float64
	MinIncome            float64
	IncomeCommitmentPct  float64
	EnforceAffordability bool
	DefaultTermMonths    int
	DefaultIndexer       domain.Indexer
}

// DefaultPolicy is the canonical 5% policy.
func DefaultPolicy() Policy {
	return Policy{
		MinDownPaymentPct:   0.05,
		MinIncome:           1000,
		IncomeCommitmentPct: 0.30,
		DefaultTermMonths:   domain.DefaultTermMonths,
		DefaultIndexer:      domain.DefaultIndexer,
	}
}

type QuoteInput struct {
	PropertyValue float64        `json:"property_value"`
	DownPayment   float64        `json:"down_payment"`
	MonthlyIncome float64        `json:"monthly_income"`
	System        domain.System  `json:"system"`
	TermMonths    int            `json:"term_months"`
	Indexer       domain.Indexer `json:"indexer"`
}

func (in QuoteInput) Parameters() domain.Parameters {
	return domain.Parameters(in)
}
