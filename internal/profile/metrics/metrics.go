// Package metrics provides Prometheus metrics for the account age service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "redditage"

var (
	// UpstreamRequestsTotal counts outbound requests to Reddit by status code.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Total number of requests sent to Reddit",
		},
		[]string{"code", "method"},
	)

	// UpstreamDuration measures outbound request latency.
	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Duration of requests sent to Reddit in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// TokenRefreshTotal counts access token exchanges.
	TokenRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_refresh_total",
			Help:      "Total number of client credentials exchanges",
		},
		[]string{"status"},
	)

	// ProfileLookupsTotal counts profile lookups by outcome.
	ProfileLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_lookups_total",
			Help:      "Total number of profile lookups",
		},
		[]string{"outcome"},
	)
)

// InstrumentTransport wraps next so every outbound request is counted and timed.
func InstrumentTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return promhttp.InstrumentRoundTripperCounter(UpstreamRequestsTotal,
		promhttp.InstrumentRoundTripperDuration(UpstreamDuration, next),
	)
}

// RecordTokenRefresh records the result of a token exchange.
func RecordTokenRefresh(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	TokenRefreshTotal.WithLabelValues(status).Inc()
}

// RecordLookup records a profile lookup outcome such as "ok" or "not_found".
func RecordLookup(outcome string) {
	ProfileLookupsTotal.WithLabelValues(outcome).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
