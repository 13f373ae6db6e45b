package http

import (
	"net/http"

	"simulador-backend/internal/domain/catalog"
	catalogUC "simulador-backend/internal/usecase/catalog"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct{ uc *catalogUC.Usecase }

func NewCatalogHandler(uc *catalogUC.Usecase) *CatalogHandler { return &CatalogHandler{uc: uc} }

type listPropertiesResp struct {
	Properties []catalog.Property `json:"properties"`
	Fallback   bool               `json:"fallback"`
}

func (h *CatalogHandler) ListProperties(c echo.Context) error {
	listing, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, listPropertiesResp{Properties: listing.Properties, Fallback: listing.Fallback})
}

func (h *CatalogHandler) GetProperty(c echo.Context) error {
	p, err := h.uc.Get(c.Request().Context(), c.Param("property_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}
