package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Calculations counts quote attempts by system, indexer and outcome
	// (ok, invalid, error).
	Calculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "financing_calculations_total",
			Help: "Financing quotes by system, indexer and outcome",
		},
		[]string{"system", "indexer", "outcome"},
	)

	// WizardTransitions counts reducer actions by action and resulting stage.
	WizardTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wizard_transitions_total",
			Help: "Simulation wizard actions by action and resulting stage",
		},
		[]string{"action", "stage"},
	)

	// LeadSubmissions counts lead submissions by status.
	LeadSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_submissions_total",
			Help: "Lead submissions by status",
		},
		[]string{"status"},
	)

	// CatalogFetches counts catalog reads by source (store, fallback, error).
	CatalogFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_fetches_total",
			Help: "Catalog reads by source",
		},
		[]string{"source"},
	)
)
