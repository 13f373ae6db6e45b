package http

import (
	"net/http"
	"time"

	leadUC "simulador-backend/internal/usecase/lead"

	"github.com/labstack/echo/v4"
)

const (
	mimeXLSX           = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	defaultExportRange = 30 * 24 * time.Hour
)

type LeadHandler struct {
	uc  *leadUC.Usecase
	now func() time.Time
}

func NewLeadHandler(uc *leadUC.Usecase) *LeadHandler { return &LeadHandler{uc: uc, now: time.Now} }

type exportReq struct {
	// Accept canonical date `YYYY-MM-DD`
	Since string `query:"since" json:"since" validate:"omitempty,datetime=2006-01-02"`
}

// Export streams the leads captured since ?since= (default: last 30 days)
// as an xlsx workbook.
func (h *LeadHandler) Export(c echo.Context) error {
	var req exportReq
	if code, resp := bindAndValidate(c, &req); resp != nil {
		return c.JSON(code, resp)
	}
	since := h.now().UTC().Add(-defaultExportRange)
	if req.Since != "" {
		since, _ = time.Parse(time.DateOnly, req.Since)
	}

	data, err := h.uc.Export(c.Request().Context(), since)
	if err != nil {
		return writeError(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="leads-`+since.Format("20060102")+`.xlsx"`)
	return c.Blob(http.StatusOK, mimeXLSX, data)
}
