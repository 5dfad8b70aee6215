package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every resume-builder collector.
var Registry = prometheus.NewRegistry()

var (
	// Export metrics
	exportTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resume_builder",
			Subsystem: "export",
			Name:      "total",
			Help:      "Total number of exports by mode and result",
		},
		[]string{"mode", "result"},
	)

	exportDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "resume_builder",
			Subsystem: "export",
			Name:      "duration_seconds",
			Help:      "Duration of exports in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
		},
		[]string{"mode"},
	)

	// Session metrics
	sessionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "resume_builder",
			Subsystem: "editor",
			Name:      "sessions_active",
			Help:      "Number of editing sessions held in memory",
		},
	)

	actionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resume_builder",
			Subsystem: "editor",
			Name:      "actions_total",
			Help:      "Total number of editor actions by type",
		},
		[]string{"type"},
	)
)

func init() {
	Registry.MustRegister(
		exportTotal,
		exportDuration,
		sessionsActive,
		actionsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// RecordExport records the outcome of one export.
func RecordExport(mode, result string, seconds float64) {
	exportTotal.WithLabelValues(mode, result).Inc()
	exportDuration.WithLabelValues(mode).Observe(seconds)
}

// SetActiveSessions records the number of live sessions.
func SetActiveSessions(n int) {
	sessionsActive.Set(float64(n))
}

// RecordAction counts one dispatched editor action.
func RecordAction(actionType string) {
	actionsTotal.WithLabelValues(actionType).Inc()
}

// Handler exposes Registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
