package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the service's Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "backing_tracks",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "backing_tracks",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	accessDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "backing_tracks",
			Subsystem: "access",
			Name:      "decisions_total",
			Help:      "Track request access decisions by reason.",
		},
		[]string{"reason"},
	)

	unknownOptions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "backing_tracks",
			Subsystem: "pricing",
			Name:      "unknown_option_values_total",
			Help:      "Option values outside the price catalog seen while pricing.",
		},
	)

	invalidManualRanges = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "backing_tracks",
			Subsystem: "pricing",
			Name:      "invalid_manual_ranges_total",
			Help:      "Operator pricing saves rejected for a low bound above the high bound.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		accessDecisions,
		unknownOptions,
		invalidManualRanges,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler exposes the registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveHTTP records one handled request.
func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func RecordAccessDecision(reason string) {
	accessDecisions.WithLabelValues(reason).Inc()
}

func RecordUnknownOptions(n int) {
	if n > 0 {
		unknownOptions.Add(float64(n))
	}
}

func RecordInvalidManualRange() {
	invalidManualRanges.Inc()
}
