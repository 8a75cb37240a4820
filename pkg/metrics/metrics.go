// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// QueriesTotal tracks processed chatbot queries.
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_queries_total",
			Help: "Total chatbot queries processed",
		},
		[]string{"variant", "intent", "response_type"},
	)

	// UnknownIntentsTotal tracks queries that matched no rule.
	UnknownIntentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_unknown_intents_total",
			Help: "Total queries that matched no intent rule",
		},
		[]string{"variant"},
	)

	// ReportsTotal tracks generated reports.
	ReportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reports_generated_total",
			Help: "Total reports generated",
		},
		[]string{"report_type", "format"},
	)

	// ExternalFetchFailures tracks data source failures.
	ExternalFetchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "external_fetch_failures_total",
			Help: "Total external data source failures",
		},
		[]string{"source"},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordQuery records metrics for one processed chatbot query.
func RecordQuery(variant, intentID, responseType string) {
	QueriesTotal.WithLabelValues(variant, intentID, responseType).Inc()
	if intentID == "unknown" {
		UnknownIntentsTotal.WithLabelValues(variant).Inc()
	}
}

// RecordReport records metrics for one generated report.
func RecordReport(reportType, format string) {
	ReportsTotal.WithLabelValues(reportType, format).Inc()
}

// RecordFetchFailure records one external data source failure.
func RecordFetchFailure(source string) {
	ExternalFetchFailures.WithLabelValues(source).Inc()
}
