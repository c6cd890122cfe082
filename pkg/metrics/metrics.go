package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the service.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP traffic by route template
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	UsersRegistered *prometheus.CounterVec
	UsersVerified   prometheus.Counter
	UsersDeleted    prometheus.Counter
	LoginFailures   *prometheus.CounterVec
}

// New creates a Metrics instance on its own registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "panchayat_http_requests_total",
			Help: "Total HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "panchayat_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route"}),
		UsersRegistered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "panchayat_users_registered_total",
			Help: "Total registrations by role",
		}, []string{"role"}),
		UsersVerified: factory.NewCounter(prometheus.CounterOpts{
			Name: "panchayat_users_verified_total",
			Help: "Total accounts verified by an admin",
		}),
		UsersDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "panchayat_users_deleted_total",
			Help: "Total accounts deleted by an admin",
		}),
		LoginFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "panchayat_login_failures_total",
			Help: "Total rejected logins by reason",
		}, []string{"reason"}),
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.RequestsTotal.WithLabelValues(method, route, statusLabel(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) IncrementRegistered(role string) {
	if m != nil {
		m.UsersRegistered.WithLabelValues(role).Inc()
	}
}

func (m *Metrics) IncrementVerified() {
	if m != nil {
		m.UsersVerified.Inc()
	}
}

func (m *Metrics) IncrementDeleted() {
	if m != nil {
		m.UsersDeleted.Inc()
	}
}

// IncrementLoginFailure records a rejected login. reason is a short code such
// as "invalid_credentials" or "not_verified".
func (m *Metrics) IncrementLoginFailure(reason string) {
	if m != nil {
		m.LoginFailures.WithLabelValues(reason).Inc()
	}
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
