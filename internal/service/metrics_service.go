package service

import (
	"net/http"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/landy-api/internal/models"
)

// Evaluation kinds reported on compliance_evaluations_total.
const (
	EvaluationDashboard    = "dashboard"
	EvaluationReport       = "report"
	EvaluationRentIncrease = "rent_increase"
	EvaluationNotice       = "notice"
)

// MetricsService owns the Prometheus registry for the API and keeps a few
// counters in memory for the JSON snapshot.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	cacheLatency    prometheus.Histogram
	cacheWrite      prometheus.Histogram
	cacheHitRatio   prometheus.Gauge
	cacheLookups    *prometheus.CounterVec
	evaluations     *prometheus.CounterVec
	alertsRaised    *prometheus.CounterVec
	ruleRejections  *prometheus.CounterVec
	reportRenders   *prometheus.CounterVec
	portfolioScore  prometheus.Histogram

	cacheHitCount        uint64
	cacheMissCount       uint64
	requestCount         uint64
	requestDurationTotal uint64
	evaluationCount      uint64
	reportCount          uint64
}

// NewMetricsService registers the API collectors on a private registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	m := &MetricsService{
		registry: registry,
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		cacheLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "report_cache_latency_seconds",
			Help:    "Latency of report cache lookups",
			Buckets: prometheus.DefBuckets,
		}),
		cacheWrite: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "report_cache_write_seconds",
			Help:    "Latency of report cache writes",
			Buckets: prometheus.DefBuckets,
		}),
		cacheHitRatio: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "report_cache_hit_ratio",
			Help: "Ratio of report cache hits to lookups",
		}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "report_cache_lookups_total",
			Help: "Report cache lookups by result",
		}, []string{"result"}),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "compliance_evaluations_total",
			Help: "Rules engine evaluations by kind",
		}, []string{"kind"}),
		alertsRaised: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "compliance_alerts_total",
			Help: "Action alerts produced by severity",
		}, []string{"severity"}),
		ruleRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "compliance_rule_rejections_total",
			Help: "Requests rejected by the rules engine by kind and error code",
		}, []string{"kind", "code"}),
		reportRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "compliance_reports_rendered_total",
			Help: "Compliance reports served by format and cache result",
		}, []string{"format", "cached"}),
		portfolioScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "compliance_portfolio_score",
			Help:    "Distribution of evaluated portfolio scores",
			Buckets: []float64{20, 40, 50, 60, 80, 100},
		}),
	}

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(m.requestDuration, m.requestTotal, m.cacheLatency, m.cacheWrite,
		m.cacheHitRatio, m.cacheLookups, m.evaluations, m.alertsRaised, m.ruleRejections, m.reportRenders, m.portfolioScore, goroutines)

	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// Registry exposes the underlying registry for tests.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
}

// RecordCacheOperation records a report cache lookup and updates the hit ratio.
func (m *MetricsService) RecordCacheOperation(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheLatency.Observe(duration.Seconds())
	if hit {
		m.cacheLookups.WithLabelValues("hit").Inc()
		atomic.AddUint64(&m.cacheHitCount, 1)
	} else {
		m.cacheLookups.WithLabelValues("miss").Inc()
		atomic.AddUint64(&m.cacheMissCount, 1)
	}
	hits := atomic.LoadUint64(&m.cacheHitCount)
	total := hits + atomic.LoadUint64(&m.cacheMissCount)
	if total > 0 {
		m.cacheHitRatio.Set(float64(hits) / float64(total))
	}
}

// ObserveCacheWrite tracks report cache write latency.
func (m *MetricsService) ObserveCacheWrite(duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheWrite.Observe(duration.Seconds())
}

// RecordEvaluation counts one rules engine evaluation of kind.
func (m *MetricsService) RecordEvaluation(kind string) {
	if m == nil {
		return
	}
	m.evaluations.WithLabelValues(kind).Inc()
	atomic.AddUint64(&m.evaluationCount, 1)
}

// RecordPortfolio records the outcome of a portfolio evaluation.
func (m *MetricsService) RecordPortfolio(score int, alerts []models.ActionAlert) {
	if m == nil {
		return
	}
	m.portfolioScore.Observe(float64(score))
	for _, a := range alerts {
		m.alertsRaised.WithLabelValues(string(a.Severity)).Inc()
	}
}

// RecordRejection counts a rules engine rejection of kind with error code.
func (m *MetricsService) RecordRejection(kind, code string) {
	if m == nil {
		return
	}
	m.ruleRejections.WithLabelValues(kind, code).Inc()
}

// RecordReport counts a served report.
func (m *MetricsService) RecordReport(format string, cached bool) {
	if m == nil {
		return
	}
	m.reportRenders.WithLabelValues(format, strconv.FormatBool(cached)).Inc()
	atomic.AddUint64(&m.reportCount, 1)
}

// Snapshot returns aggregated metrics for the JSON metrics endpoint.
func (m *MetricsService) Snapshot() models.SystemMetrics {
	if m == nil {
		return models.SystemMetrics{}
	}
	hits := atomic.LoadUint64(&m.cacheHitCount)
	misses := atomic.LoadUint64(&m.cacheMissCount)
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)

	var cacheRatio float64
	if total := hits + misses; total > 0 {
		cacheRatio = float64(hits) / float64(total)
	}
	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}

	return models.SystemMetrics{
		CacheHitRatio:            cacheRatio,
		CacheHits:                hits,
		CacheMisses:              misses,
		RequestsTotal:            requests,
		AverageRequestDurationMs: avgRequestMs,
		Evaluations:              atomic.LoadUint64(&m.evaluationCount),
		ReportsRendered:          atomic.LoadUint64(&m.reportCount),
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
}
