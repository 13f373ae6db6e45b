package http

import (
	"simulador-backend/internal/adapter/middleware"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes binds handlers to paths. Nil middlewares are skipped so tests can
// mount the API without Redis.
type Routes struct {
	Health     *Handler
	Catalog    *CatalogHandler
	Financing  *FinancingHandler
	Simulation *SimulationHandler
	Leads      *LeadHandler

	Idempotency echo.MiddlewareFunc
	LeadLimiter echo.MiddlewareFunc
	AdminAuth   echo.MiddlewareFunc
}

func (r Routes) Register(e *echo.Echo) {
	e.GET("/health", r.Health.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.GET("/properties", r.Catalog.ListProperties)
	e.GET("/properties/:property_id", r.Catalog.GetProperty)

	e.GET("/financing/rates", r.Financing.Rates)
	e.POST("/financing/quote", r.Financing.Quote)

	// sessions belong to the visitor that started them
	sim := e.Group("/simulations", middleware.Visitor(true))
	sim.POST("", r.Simulation.Start)
	sim.GET("/:id", r.Simulation.Get)
	sim.PUT("/:id/property", r.Simulation.SelectProperty)
	sim.PATCH("/:id/inputs", r.Simulation.UpdateInputs)
	sim.POST("/:id/submit", r.Simulation.Submit)
	sim.POST("/:id/lead", r.Simulation.SubmitLead, present(r.LeadLimiter, r.Idempotency)...)
	sim.POST("/:id/back", r.Simulation.Back)
	sim.POST("/:id/reset", r.Simulation.Reset)

	admin := e.Group("/admin", present(r.AdminAuth)...)
	admin.GET("/leads/export", r.Leads.Export)
}

func present(mws ...echo.MiddlewareFunc) []echo.MiddlewareFunc {
	out := make([]echo.MiddlewareFunc, 0, len(mws))
	for _, m := range mws {
		if m != nil {
			out = append(out, m)
		}
	}
	return out
}
