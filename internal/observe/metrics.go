// Package observe exposes the engine's cache and latency behaviour as
// Prometheus metrics.
package observe

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics implements extractor.Observer on a dedicated registry.
type Metrics struct {
	registry *prometheus.Registry

	CacheLookups      *prometheus.CounterVec
	BundleDuration    prometheus.Histogram
	CacheResets       prometheus.Counter
	AnalysesProcessed *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "callmetrics",
			Name:      "cache_lookups_total",
			Help:      "Engine memo table lookups by table and result.",
		}, []string{"table", "result"}),
		BundleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "callmetrics",
			Name:      "bundle_compute_seconds",
			Help:      "Time spent computing an uncached metrics bundle.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		CacheResets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "callmetrics",
			Name:      "cache_resets_total",
			Help:      "Number of times the engine caches were cleared.",
		}),
		AnalysesProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "callmetrics",
			Name:      "analyses_total",
			Help:      "Processed transcripts by outcome.",
		}, []string{"outcome"}),
	}
	m.registry.MustRegister(m.CacheLookups, m.BundleDuration, m.CacheResets, m.AnalysesProcessed)
	return m
}

func (m *Metrics) CacheLookup(table string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(table, result).Inc()
}

func (m *Metrics) BundleComputed(elapsed time.Duration) {
	m.BundleDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) CachesCleared() { m.CacheResets.Inc() }

// AnalysisDone counts one processed transcript; outcome is "ok" or "error".
func (m *Metrics) AnalysisDone(err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.AnalysesProcessed.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
