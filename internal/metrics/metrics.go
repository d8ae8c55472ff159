package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const prefix = "rental"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// OperationsTotal counts CRUD, resolver and report calls by outcome.
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_operations_total",
			Help: "Total number of record operations by collection, operation and outcome",
		},
		[]string{"collection", "operation", "outcome"},
	)

	AuthAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_auth_attempts_total",
			Help: "Total number of login attempts by outcome",
		},
		[]string{"outcome"},
	)
)

func RecordOperation(collection, operation, outcome string) {
	OperationsTotal.WithLabelValues(collection, operation, outcome).Inc()
}

func RecordAuthAttempt(outcome string) {
	AuthAttemptsTotal.WithLabelValues(outcome).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
