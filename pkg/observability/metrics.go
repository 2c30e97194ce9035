// Package observability provides Prometheus metrics and HTTP middleware
// for monitoring the skillgate normalization layer and gateway.
package observability

import "github.com/prometheus/client_golang/prometheus"

// APIBuckets defines histogram buckets suited for provider CRUD
// latencies, ranging from 10ms to 60s.
var APIBuckets = []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60}

var (
	// RequestsTotal counts gateway HTTP requests by method, route, and
	// status class.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillgate_requests_total",
			Help: "Total gateway requests",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration records gateway request duration in seconds.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skillgate_request_duration_seconds",
			Help:    "Gateway request duration",
			Buckets: APIBuckets,
		},
		[]string{"method", "route"},
	)

	// ProviderRequestsTotal counts requests sent to skills providers by
	// provider, operation, and outcome.
	ProviderRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillgate_provider_requests_total",
			Help: "Provider requests",
		},
		[]string{"provider", "operation", "status"},
	)

	// ProviderLatency records provider round-trip latency in seconds.
	ProviderLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skillgate_provider_latency_seconds",
			Help:    "Provider latency",
			Buckets: APIBuckets,
		},
		[]string{"provider", "operation"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		ProviderRequestsTotal,
		ProviderLatency,
	)
}

// ObserveProviderRequest records one provider call outcome. Status is
// "ok" or "error".
func ObserveProviderRequest(providerName, operation, status string, seconds float64) {
	ProviderRequestsTotal.WithLabelValues(providerName, operation, status).Inc()
	ProviderLatency.WithLabelValues(providerName, operation).Observe(seconds)
}
