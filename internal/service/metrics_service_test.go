package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/landy-api/internal/models"
)

func TestMetricsServiceCounters(t *testing.T) {
	m := NewMetricsService()

	m.RecordEvaluation(EvaluationDashboard)
	m.RecordEvaluation(EvaluationDashboard)
	m.RecordPortfolio(60, []models.ActionAlert{{Severity: models.SeverityRed}, {Severity: models.SeveritySage}, {Severity: models.SeveritySage}})
	m.RecordRejection(EvaluationRentIncrease, "VALIDATION_ERROR")
	m.RecordReport("pdf", true)
	m.RecordCacheOperation(true, time.Millisecond)
	m.RecordCacheOperation(false, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.evaluations.WithLabelValues(EvaluationDashboard)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.alertsRaised.WithLabelValues("sage")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ruleRejections.WithLabelValues(EvaluationRentIncrease, "VALIDATION_ERROR")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reportRenders.WithLabelValues("pdf", "true")))
	assert.Equal(t, 0.5, testutil.ToFloat64(m.cacheHitRatio))

	snap := m.Snapshot()
	assert.Equal(t, uint64(2), snap.Evaluations)
	assert.Equal(t, uint64(1), snap.ReportsRendered)
	assert.Equal(t, 0.5, snap.CacheHitRatio)
}

func TestMetricsServiceHandler(t *testing.T) {
	m := NewMetricsService()
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/dashboard", http.StatusOK, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
	assert.Contains(t, rec.Body.String(), "goroutines_total")
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var m *MetricsService
	m.RecordEvaluation(EvaluationReport)
	m.RecordReport("csv", false)
	assert.Equal(t, models.SystemMetrics{}, m.Snapshot())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
