package shared

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// AppMetrics holds the process-wide Prometheus collectors on a private
// registry, exposed through /metrics on the main router.
type AppMetrics struct {
	Registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	authOperations  *prometheus.CounterVec
	cardOperations  *prometheus.CounterVec
	rateLimitHits   *prometheus.CounterVec
}

func NewAppMetrics() *AppMetrics {
	metrics := &AppMetrics{
		Registry: prometheus.NewRegistry(),

		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),

		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),

		authOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_operations_total",
			Help: "Auth operations by name and result.",
		}, []string{"operation", "result"}),

		cardOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "card_operations_total",
			Help: "Card operations by name and result.",
		}, []string{"operation", "result"}),

		rateLimitHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rate_limit_hits_total",
			Help: "Requests rejected by the rate limiter, by route.",
		}, []string{"route"}),
	}

	metrics.Registry.MustRegister(
		metrics.requestTotal,
		metrics.requestDuration,
		metrics.authOperations,
		metrics.cardOperations,
		metrics.rateLimitHits,
	)

	return metrics
}

func (m *AppMetrics) RecordRequest(method, route string, status int, duration time.Duration) {
	m.requestTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *AppMetrics) RecordAuthOperation(operation, result string) {
	m.authOperations.WithLabelValues(operation, result).Inc()
}

func (m *AppMetrics) RecordCardOperation(operation, result string) {
	m.cardOperations.WithLabelValues(operation, result).Inc()
}

func (m *AppMetrics) RecordRateLimitHit(route string) {
	m.rateLimitHits.WithLabelValues(route).Inc()
}
