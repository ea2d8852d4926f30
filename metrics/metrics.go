package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "pantry",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pantry",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pantry",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	aiRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pantry",
			Subsystem: "ai",
			Name:      "requests_total",
			Help:      "Total number of language model calls by operation and outcome.",
		},
		[]string{"operation", "success"},
	)

	aiDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pantry",
			Subsystem: "ai",
			Name:      "request_duration_seconds",
			Help:      "Duration of language model calls.",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10), // 100ms to ~50s
		},
		[]string{"operation"},
	)

	shoppingGenerations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pantry",
			Subsystem: "shopping_list",
			Name:      "generations_total",
			Help:      "Total number of shopping list regenerations from the meal plan.",
		},
		[]string{"success"},
	)

	rateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pantry",
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Total number of requests rejected by the rate limiter.",
		},
	)

	jobRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pantry",
			Subsystem: "jobs",
			Name:      "runs_total",
			Help:      "Total number of housekeeping job runs.",
		},
		[]string{"job", "success"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		aiRequests,
		aiDuration,
		shoppingGenerations,
		rateLimited,
		jobRuns,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func IncInFlight() { httpInFlight.Inc() }
func DecInFlight() { httpInFlight.Dec() }

// RecordHTTPRequest records one handled request. path should be the route template.
func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequests.WithLabelValues(method, path, status).Inc()
	httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func RecordAIRequest(operation string, duration time.Duration, success bool) {
	aiRequests.WithLabelValues(operation, boolLabel(success)).Inc()
	aiDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func RecordShoppingGeneration(success bool) {
	shoppingGenerations.WithLabelValues(boolLabel(success)).Inc()
}

func RecordRateLimited() {
	rateLimited.Inc()
}

func RecordJobRun(job string, success bool) {
	jobRuns.WithLabelValues(job, boolLabel(success)).Inc()
}

func boolLabel(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
