package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	TicksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geofence_ticks_total",
		Help: "Total simulation ticks completed",
	})
	TickDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "geofence_tick_duration_ms",
		Help:    "Full-fleet tick duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000, 5000, 10000},
	})
	TransitionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "geofence_transitions_total",
		Help: "Region boundary crossings by kind",
	}, []string{"kind"})
	ClassifyRemoteFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geofence_classify_remote_failures_total",
		Help: "Remote spatial queries that failed and degraded to the local heuristic",
	})
	ClassifyFallbackTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geofence_classify_fallback_total",
		Help: "Classifications resolved by the nearest-centroid fallback",
	})
	SinkFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geofence_sink_failures_total",
		Help: "Trace events that could not be persisted",
	})
)

// MustRegister installs the simulation metrics into the default registry.
// Call once from the composition root.
func MustRegister() {
	prometheus.MustRegister(
		TicksTotal,
		TickDurationMs,
		TransitionsTotal,
		ClassifyRemoteFailuresTotal,
		ClassifyFallbackTotal,
		SinkFailuresTotal,
	)
}

// MetricsHandler exposes the default registry for the /metrics route.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
