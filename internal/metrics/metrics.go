// Package metrics exposes Prometheus instrumentation for the user
// directory: HTTP request counters and latencies plus a gauge tracking the
// number of directory records.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all metrics for the service. It wraps a dedicated
// prometheus.Registry so tests can create isolated instances without
// collisions on the default global registry.
type Registry struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Directory metrics
	UsersTotal prometheus.Gauge
}

// NewRegistry creates a Registry with all collectors registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}
	r.initHTTPMetrics()
	r.initDirectoryMetrics()

	return r
}

func (r *Registry) initHTTPMetrics() {
	r.HTTPRequestsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "userdir_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	r.HTTPRequestDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "userdir_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	r.HTTPRequestsInFlight = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "userdir_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)
}

func (r *Registry) initDirectoryMetrics() {
	r.UsersTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "userdir_users_total",
			Help: "Current number of records in the user directory",
		},
	)
}

// RecordHTTPRequest records one completed HTTP request with its duration.
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// SetUsersTotal updates the directory size gauge.
func (r *Registry) SetUsersTotal(n int) {
	r.UsersTotal.Set(float64(n))
}

// Handler returns the HTTP handler serving the /metrics scrape endpoint
// for this registry.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
