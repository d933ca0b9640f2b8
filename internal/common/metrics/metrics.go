// Package metrics holds the Prometheus collectors of the league projector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EventsProcessed counts events the projector moved past, by payload kind and decision
	EventsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ewar_projector_events_processed_total",
		Help: "Number of decided events the projector moved the cursor past",
	}, []string{"kind", "decision"})

	// EventsAppended counts events written to the ledger, by payload kind
	EventsAppended = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ewar_ledger_events_appended_total",
		Help: "Number of events appended to the ledger",
	}, []string{"kind"})

	// AdvanceDuration observes how long one projector run holds the lock
	AdvanceDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ewar_projector_advance_duration_seconds",
		Help:    "Duration of projector runs",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
	}, []string{"mode"})

	// AdvanceErrors counts projector runs that stopped on an error
	AdvanceErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ewar_projector_advance_errors_total",
		Help: "Number of projector runs that stopped on an error",
	})

	// Cursor is the id of the first event not yet applied
	Cursor = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ewar_ledger_cursor",
		Help: "Id of the first event whose effect has not been applied",
	})

	// IntegrityIssues is the number of discrepancies found by the last integrity check
	IntegrityIssues = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ewar_integrity_issues",
		Help: "Discrepancies found by the last integrity check",
	})

	// DecayVictims counts players that received an inactivity decay
	DecayVictims = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ewar_decay_victims_total",
		Help: "Players that received an inactivity decay",
	})
)
