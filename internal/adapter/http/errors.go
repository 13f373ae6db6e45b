package http

import (
	"errors"
	"net/http"

	"simulador-backend/internal/domain/catalog"
	"simulador-backend/internal/domain/financing"
	"simulador-backend/internal/domain/lead"
	"simulador-backend/internal/domain/wizard"

	"github.com/labstack/echo/v4"
)

const (
	msgSessionNotFound  = "Simulação não encontrada"
	msgPropertyNotFound = "Imóvel não encontrado"
	msgCatalogDown      = "Catálogo de imóveis indisponível no momento"
	msgLeadNotSaved     = "Não foi possível enviar seus dados. Tente novamente."
	msgInternal         = "internal error"
)

// writeError maps domain errors to HTTP codes.
func writeError(c echo.Context, err error) error {
	var (
		ce   *lead.ContactError
		ve   *financing.ValidationError
		calc *financing.CalculationError
	)
	switch {
	case errors.As(err, &ce):
		details := make([]FieldError, 0, len(ce.Fields))
		for _, f := range ce.Fields {
			details = append(details, FieldError{Field: f.Field, Message: f.Message})
		}
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: details})
	case errors.As(err, &ve):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   ve.Message,
			Details: []FieldError{{Field: ve.Field, Message: ve.Message}},
		})
	case errors.As(err, &calc):
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: financing.MsgCalculationFailed})
	case errors.Is(err, wizard.ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: msgSessionNotFound})
	case errors.Is(err, wizard.ErrWrongStage):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, catalog.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: msgPropertyNotFound})
	case errors.Is(err, catalog.ErrUnavailable):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: msgCatalogDown})
	case errors.Is(err, lead.ErrStoreUnavailable):
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: msgLeadNotSaved})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternal})
	}
}

// bindAndValidate returns a non-nil response when the request must be
// rejected.
func bindAndValidate(c echo.Context, req any) (int, *ErrorResponse) {
	if err := c.Bind(req); err != nil {
		return http.StatusBadRequest, &ErrorResponse{Error: "invalid body"}
	}
	if err := c.Validate(req); err != nil {
		return http.StatusUnprocessableEntity, &ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		}
	}
	return 0, nil
}
