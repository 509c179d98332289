package contagiongo

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SweepMetrics exposes sweep progress on a Prometheus registry so a long
// grid sweep can be watched from outside the process (spec.md §5 C12),
// grounded on the CounterVec/Gauge declaration style used for
// per-label instrumentation in the distributor examples of the pack.
type SweepMetrics struct {
	registry        *prometheus.Registry
	replicatesTotal prometheus.Counter
	cellsInFlight   prometheus.Gauge
	totalInfected   prometheus.Histogram
}

// NewSweepMetrics creates a fresh registry and registers every sweep
// gauge/counter on it.
func NewSweepMetrics() *SweepMetrics {
	m := &SweepMetrics{
		registry: prometheus.NewRegistry(),
		replicatesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "contagiongo_sweep_replicates_total",
			Help: "Number of completed sweep replicates.",
		}),
		cellsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "contagiongo_sweep_cells_in_flight",
			Help: "Number of (p_traced, p_app) cells with at least one replicate running.",
		}),
		totalInfected: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "contagiongo_sweep_total_infected",
			Help:    "Distribution of total_infected across completed replicates.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
	m.registry.MustRegister(m.replicatesTotal, m.cellsInFlight, m.totalInfected)
	return m
}

// ObserveReplicate records one completed replicate's outcome.
func (m *SweepMetrics) ObserveReplicate(result RunResult) {
	if m == nil {
		return
	}
	m.replicatesTotal.Inc()
	m.totalInfected.Observe(float64(result.TotalInfected))
}

// Handler returns an http.Handler serving this registry in the
// Prometheus exposition format, suitable for mounting under /metrics.
func (m *SweepMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
