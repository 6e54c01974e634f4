package graph

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics is a Metrics implementation backed by a Prometheus
// registry. Pass it to Run/RunMany via WithMetrics to get cache hit/miss
// counters and provider latency histograms out of the box.
type PrometheusMetrics struct {
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
	providerDur *prometheus.HistogramVec
}

// NewPrometheusMetrics registers the dependency graph's metrics with
// registry and returns a ready-to-use Metrics. Pass nil to register
// against prometheus.DefaultRegisterer.
func NewPrometheusMetrics(registry prometheus.Registerer) *PrometheusMetrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &PrometheusMetrics{
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "depgraph",
			Name:      "cache_hits_total",
			Help:      "Node resolutions served from an execution's Cache without invoking a provider",
		}),
		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "depgraph",
			Name:      "cache_misses_total",
			Help:      "Node resolutions that installed a new Cache entry and ran a provider",
		}),
		providerDur: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "depgraph",
			Name:      "provider_duration_seconds",
			Help:      "Provider call duration in seconds, labeled by outcome",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
	}
}

// IncCacheHit implements Metrics.
func (m *PrometheusMetrics) IncCacheHit() { m.cacheHits.Inc() }

// IncCacheMiss implements Metrics.
func (m *PrometheusMetrics) IncCacheMiss() { m.cacheMisses.Inc() }

// ObserveProvider implements Metrics.
func (m *PrometheusMetrics) ObserveProvider(d time.Duration, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	m.providerDur.WithLabelValues(status).Observe(d.Seconds())
}
