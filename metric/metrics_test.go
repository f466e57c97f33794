package metric

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()

	m.StatementsGenerated.WithLabelValues(PathOntology).Add(5)
	m.StatementsSucceeded.WithLabelValues(PathOntology).Add(4)
	m.StatementsFailed.WithLabelValues(PathOntology).Inc()
	m.ImportRuns.WithLabelValues(PathOntology).Inc()

	assert.Equal(t, 5.0, testutil.ToFloat64(m.StatementsGenerated.WithLabelValues(PathOntology)))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.StatementsSucceeded.WithLabelValues(PathOntology)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StatementsFailed.WithLabelValues(PathOntology)))

	// Paths count independently.
	assert.Equal(t, 0.0, testutil.ToFloat64(m.StatementsFailed.WithLabelValues(PathDataModel)))
}

func TestHandlerServesMetrics(t *testing.T) {
	m := New()
	m.ImportRuns.WithLabelValues(PathOntology).Inc()

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "ontograph_import_runs_total")
}
