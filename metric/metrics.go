// Package metric provides Prometheus metrics for import runs.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Path label values for the two ingestion paths.
const (
	PathOntology  = "ontology"
	PathDataModel = "datamodel"
)

// Metrics contains the statement counters for import runs.
type Metrics struct {
	StatementsGenerated *prometheus.CounterVec
	StatementsSucceeded *prometheus.CounterVec
	StatementsFailed    *prometheus.CounterVec
	ImportRuns          *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates a Metrics instance with all counters registered on a
// fresh registry.
func New() *Metrics {
	m := &Metrics{
		StatementsGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ontograph",
				Subsystem: "import",
				Name:      "statements_generated_total",
				Help:      "Total number of mutation statements generated",
			},
			[]string{"path"},
		),
		StatementsSucceeded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ontograph",
				Subsystem: "import",
				Name:      "statements_succeeded_total",
				Help:      "Total number of mutation statements applied successfully",
			},
			[]string{"path"},
		),
		StatementsFailed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ontograph",
				Subsystem: "import",
				Name:      "statements_failed_total",
				Help:      "Total number of mutation statements rejected by the store",
			},
			[]string{"path"},
		),
		ImportRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ontograph",
				Subsystem: "import",
				Name:      "runs_total",
				Help:      "Total number of import runs",
			},
			[]string{"path"},
		),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.StatementsGenerated,
		m.StatementsSucceeded,
		m.StatementsFailed,
		m.ImportRuns,
	)
	return m
}

// Handler returns an HTTP handler exposing the metrics in Prometheus
// format. Used by watch mode, where the process is long-lived.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
