package financing

import "errors"

var (
	ErrUnknownSystem  = errors.New("unknown amortization system")
	ErrUnknownIndexer = errors.New("unknown indexer")
)

// Messages shown to the visitor.
const (
	MsgAllValuesRequired   = "Todos os valores são obrigatórios"
	MsgNonPositiveValues   = "Os valores não podem ser negativos ou zero"
	MsgDownPaymentTooLarge = "A entrada não pode ser maior ou igual ao valor do imóvel"
	MsgInvalidTerm         = "O prazo deve ser de pelo menos 1 mês"
	MsgCalculationFailed   = "Erro ao calcular o financiamento. Por favor, verifique os valores."
)

// ValidationError is a business-rule violation on user input. It is never
// fatal: the wizard stores Message and stays where it is.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string { return e.Message }

// CalculationError wraps an unexpected arithmetic or data failure.
type CalculationError struct{ Err error }

func (e *CalculationError) Error() string { return "calculate financing: " + e.Err.Error() }
func (e *CalculationError) Unwrap() error { return e.Err }
