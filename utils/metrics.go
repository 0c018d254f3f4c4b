package utils

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of active HTTP requests",
		},
	)

	// Database Metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Duration of database operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "collection"},
	)

	// Schedule Metrics
	OccurrencesMaterialized = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "schedule_occurrences_materialized",
			Help:    "Number of occurrences produced per schedule query",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	EventCompletionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "event_completions_total",
			Help: "Total number of event occurrences marked complete",
		},
	)

	// Auth Metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"status", "type"},
	)

	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by component and reason",
		},
		[]string{"component", "reason"},
	)
)

// TrackDBOperation times one database operation; callers defer ObserveDuration.
func TrackDBOperation(operation, collection string) *prometheus.Timer {
	return prometheus.NewTimer(DBOperationDuration.WithLabelValues(operation, collection))
}

// TrackError increments the error counter for a component/reason pair.
func TrackError(component, reason string) {
	ErrorsTotal.WithLabelValues(component, reason).Inc()
}

// TrackAuthAttempt records one authentication attempt.
func TrackAuthAttempt(status, authType string) {
	AuthAttempts.WithLabelValues(status, authType).Inc()
}

// TrackEventCompletion counts a completed occurrence.
func TrackEventCompletion() {
	EventCompletionsTotal.Inc()
}

// FormatStatus renders an HTTP status code for use as a metric label.
func FormatStatus(status int) string {
	return strconv.Itoa(status)
}
