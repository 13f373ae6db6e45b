package http

import (
	"net/http"

	"simulador-backend/internal/adapter/middleware"
	"simulador-backend/internal/domain/financing"
	"simulador-backend/internal/domain/lead"
	"simulador-backend/internal/domain/wizard"
	"simulador-backend/internal/usecase/simulation"

	"github.com/labstack/echo/v4"
)

type SimulationHandler struct{ uc *simulation.Usecase }

func NewSimulationHandler(uc *simulation.Usecase) *SimulationHandler {
	return &SimulationHandler{uc: uc}
}

// SessionPath is the :id path parameter. Exported so echo binds it when
// embedded in request structs.
type SessionPath struct {
	ID string `param:"id" json:"-" validate:"hex32"`
}

type selectPropertyReq struct {
	SessionPath
	PropertyID  string `json:"property_id"  validate:"required,max=64"`
	VariationID string `json:"variation_id" validate:"max=64"`
}

type updateInputsReq struct {
	SessionPath
	MonthlyIncome *string `json:"monthly_income" validate:"omitempty,max=32"`
	DownPayment   *string `json:"down_payment"   validate:"omitempty,max=32"`
	System        *string `json:"system"         validate:"omitempty,system"`
	Indexer       *string `json:"indexer"        validate:"omitempty,indexer"`
}

type submitLeadReq struct {
	SessionPath
	Name    string `json:"name"    validate:"max=120"`
	Email   string `json:"email"   validate:"max=254"`
	Phone   string `json:"phone"   validate:"max=32"`
	Consent bool   `json:"consent"`
}

type submitLeadResp struct {
	Session *wizard.Session `json:"session"`
	LeadID  string          `json:"lead_id"`
}

// Start opens a session for the visitor in X-Visitor-Id.
func (h *SimulationHandler) Start(c echo.Context) error {
	s, err := h.uc.Start(c.Request().Context(), middleware.VisitorID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *SimulationHandler) Get(c echo.Context) error {
	var req SessionPath
	if code, resp := bindAndValidate(c, &req); resp != nil {
		return c.JSON(code, resp)
	}
	return h.respond(c)(h.uc.Get(c.Request().Context(), middleware.VisitorID(c), req.ID))
}

func (h *SimulationHandler) SelectProperty(c echo.Context) error {
	var req selectPropertyReq
	if code, resp := bindAndValidate(c, &req); resp != nil {
		return c.JSON(code, resp)
	}
	return h.respond(c)(h.uc.SelectProperty(c.Request().Context(), middleware.VisitorID(c), req.ID, req.PropertyID, req.VariationID))
}

func (h *SimulationHandler) UpdateInputs(c echo.Context) error {
	var req updateInputsReq
	if code, resp := bindAndValidate(c, &req); resp != nil {
		return c.JSON(code, resp)
	}
	in := simulation.InputsUpdate{MonthlyIncome: req.MonthlyIncome, DownPayment: req.DownPayment}
	if req.System != nil {
		s := financing.System(*req.System)
		in.System = &s
	}
	if req.Indexer != nil {
		ix := financing.Indexer(*req.Indexer)
		in.Indexer = &ix
	}
	return h.respond(c)(h.uc.UpdateInputs(c.Request().Context(), middleware.VisitorID(c), req.ID, in))
}

// Submit runs the calculation. Validation failures are not HTTP errors: the
// session comes back with its error message set.
func (h *SimulationHandler) Submit(c echo.Context) error {
	var req SessionPath
	if code, resp := bindAndValidate(c, &req); resp != nil {
		return c.JSON(code, resp)
	}
	return h.respond(c)(h.uc.Submit(c.Request().Context(), middleware.VisitorID(c), req.ID))
}

func (h *SimulationHandler) SubmitLead(c echo.Context) error {
	var req submitLeadReq
	if code, resp := bindAndValidate(c, &req); resp != nil {
		return c.JSON(code, resp)
	}
	s, l, err := h.uc.SubmitLead(c.Request().Context(), middleware.VisitorID(c), req.ID, lead.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Consent: req.Consent,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, submitLeadResp{Session: s, LeadID: l.LeadID})
}

func (h *SimulationHandler) Back(c echo.Context) error {
	var req SessionPath
	if code, resp := bindAndValidate(c, &req); resp != nil {
		return c.JSON(code, resp)
	}
	return h.respond(c)(h.uc.Back(c.Request().Context(), middleware.VisitorID(c), req.ID))
}

func (h *SimulationHandler) Reset(c echo.Context) error {
	var req SessionPath
	if code, resp := bindAndValidate(c, &req); resp != nil {
		return c.JSON(code, resp)
	}
	return h.respond(c)(h.uc.Reset(c.Request().Context(), middleware.VisitorID(c), req.ID))
}

func (h *SimulationHandler) respond(c echo.Context) func(*wizard.Session, error) error {
	return func(s *wizard.Session, err error) error {
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, s)
	}
}
