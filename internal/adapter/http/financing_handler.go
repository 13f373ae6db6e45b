package http

import (
	"net/http"

	"simulador-backend/internal/domain/financing"
	financingUC "simulador-backend/internal/usecase/financing"

	"github.com/labstack/echo/v4"
)

type FinancingHandler struct{ uc *financingUC.Usecase }

func NewFinancingHandler(uc *financingUC.Usecase) *FinancingHandler {
	return &FinancingHandler{uc: uc}
}

type quoteReq struct {
	PropertyValue float64 `json:"property_value" validate:"dec2"`
	DownPayment   float64 `json:"down_payment"   validate:"dec2"`
	MonthlyIncome float64 `json:"monthly_income" validate:"dec2"`
	System        string  `json:"system"         validate:"required,system"`
	TermMonths    int     `json:"term_months"    validate:"gte=0,lte=600"`
	Indexer       string  `json:"indexer"        validate:"omitempty,indexer"`
}

// Quote validates and calculates without touching any session.
func (h *FinancingHandler) Quote(c echo.Context) error {
	var req quoteReq
	if code, resp := bindAndValidate(c, &req); resp != nil {
		return c.JSON(code, resp)
	}
	res, err := h.uc.QuoteContext(c.Request().Context(), financingUC.QuoteInput{
		PropertyValue: req.PropertyValue,
		DownPayment:   req.DownPayment,
		MonthlyIncome: req.MonthlyIncome,
		System:        financing.System(req.System),
		TermMonths:    req.TermMonths,
		Indexer:       financing.Indexer(req.Indexer),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

type rateRow struct {
	Indexer financing.Indexer            `json:"indexer"`
	Annual  map[financing.System]float64 `json:"annual_rate"`
}

type ratesResp struct {
	Rates             []rateRow `json:"rates"`
	DefaultTermMonths int       `json:"default_term_months"`
	MinDownPaymentPct float64   `json:"min_down_payment_pct"`
}

// Rates exposes the rate table and the active policy for the UI hints.
func (h *FinancingHandler) Rates(c echo.Context) error {
	p := h.uc.Policy()
	out := ratesResp{DefaultTermMonths: p.DefaultTermMonths, MinDownPaymentPct: p.MinDownPaymentPct}
	for _, ix := range financing.Indexers() {
		row := rateRow{Indexer: ix, Annual: map[financing.System]float64{}}
		for _, s := range []financing.System{financing.SAC, financing.PRICE} {
			r, err := financing.AnnualRate(ix, s)
			if err != nil {
				return writeError(c, err)
			}
			row.Annual[s] = r
		}
		out.Rates = append(out.Rates, row)
	}
	return c.JSON(http.StatusOK, out)
}
