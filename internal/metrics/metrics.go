// Package metrics exposes Prometheus counters for SpaceTraders API traffic,
// both as seen by the client and as served by the mock API.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jmerrifield20/spacetraders/pkg/apierr"
)

// Metrics owns a private registry so that several instances (one per test,
// say) never collide on metric names.
type Metrics struct {
	reg *prometheus.Registry

	callsTotal    *prometheus.CounterVec
	callErrors    *prometheus.CounterVec
	callDuration  *prometheus.HistogramVec
	requestsTotal *prometheus.CounterVec
	requestDur    *prometheus.HistogramVec
	envelopes     *prometheus.CounterVec
}

// New creates a Metrics with its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		reg: reg,
		callsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "st_client_calls_total",
			Help: "Total API calls by operation and outcome.",
		}, []string{"op", "outcome"}),
		callErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "st_client_errors_total",
			Help: "Total API errors by taxonomy name.",
		}, []string{"name"}),
		callDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "st_client_call_duration_seconds",
			Help:    "API call duration in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
		requestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "st_mock_requests_total",
			Help: "Total mock API requests by method, path, and response status.",
		}, []string{"method", "path", "status"}),
		requestDur: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "st_mock_request_duration_seconds",
			Help:    "Mock API request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		envelopes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "st_mock_envelopes_total",
			Help: "Total envelopes served by the mock API by kind and error name.",
		}, []string{"kind", "name"}),
	}
}

// Registry returns the registry the metrics are registered with.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// ObserveCall records one client call. It satisfies client.Observer.
func (m *Metrics) ObserveCall(op, outcome string, code int, elapsed time.Duration) {
	m.callsTotal.WithLabelValues(op, outcome).Inc()
	m.callDuration.WithLabelValues(op).Observe(elapsed.Seconds())
	if code != 0 {
		m.callErrors.WithLabelValues(apierr.Name(code)).Inc()
	}
}

// RecordEnvelope records an envelope served by the mock API. code is 0 for
// data envelopes.
func (m *Metrics) RecordEnvelope(code int) {
	if code == 0 {
		m.envelopes.WithLabelValues("data", "none").Inc()
		return
	}
	m.envelopes.WithLabelValues("error", apierr.Name(code)).Inc()
}

// Middleware returns a Gin middleware that records per-request metrics.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		m.requestsTotal.WithLabelValues(method, path, status).Inc()
		m.requestDur.WithLabelValues(method, path).Observe(duration)
	}
}

// Handler returns a Gin handler that serves the registry in the Prometheus
// text format.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
