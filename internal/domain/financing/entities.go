package financing

// System is the amortization system of a simulation.
type System string

const (
	// SAC amortizes the principal in equal parts; installments decrease.
	SAC System = "SAC"
	// PRICE keeps the installment constant for the whole term.
	PRICE System = "PRICE"
)

func (s System) Valid() bool { return s == SAC || s == PRICE }

// Indexer is the reference rate family that selects the annual rate.
type Indexer string

const (
	TR       Indexer = "TR"
	Poupanca Indexer = "POUPANCA"
	IPCA     Indexer = "IPCA"
	Fixed    Indexer = "FIXA"
)

func (i Indexer) Valid() bool {
	_, ok := rateTable[i]
	return ok
}

const (
	DefaultTermMonths = 420 // 35 years
	DefaultIndexer    = TR
	DefaultSystem     = SAC
)

// Parameters is the input of a single simulation. Zero TermMonths and empty
// Indexer fall back to the defaults.
type Parameters struct {
	PropertyValue float64 `json:"property_value"`
	DownPayment   float64 `json:"down_payment"`
	MonthlyIncome float64 `json:"monthly_income"`
	System        System  `json:"system"`
	TermMonths    int     `json:"term_months,omitempty"`
	Indexer       Indexer `json:"indexer,omitempty"`
}

// Installments is what a Strategy produces.
type Installments struct {
	First         float64
	Last          float64
	TotalPaid     float64
	TotalInterest float64
}

// Result is created once per successful calculation and never mutated.
type Result struct {
	PropertyValue      float64 `json:"property_value"`
	DownPayment        float64 `json:"down_payment"`
	FinancedAmount     float64 `json:"financed_amount"`
	DownPaymentPercent float64 `json:"down_payment_percent"`
	FirstInstallment   float64 `json:"first_installment"`
	LastInstallment    float64 `json:"last_installment"`
	TermMonths         int     `json:"term_months"`
	AnnualRate         float64 `json:"annual_rate"`
	MonthlyRate        float64 `json:"monthly_rate"`
	TotalInterest      float64 `json:"total_interest"`
	TotalPaid          float64 `json:"total_paid"`
	System             System  `json:"system"`
	Indexer            Indexer `json:"indexer"`
	PaymentCapacity    float64 `json:"payment_capacity"`
	WithinCapacity     bool    `json:"within_capacity"`
}
