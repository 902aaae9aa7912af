package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"mwa/internal/structures"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncPartitionsComputed(component string)
	IncPartitionsSkipped(component, reason string)
	IncPartitionsFailed(component string)
	ObserveComponentDuration(component string, duration time.Duration)
	ObserveRunDuration(duration time.Duration)
	SetTableRows(table string, count int)
	IncCacheHits()
	IncCacheMisses()
}

type MetricsProvider struct {
	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	partitionsComputed *prometheus.CounterVec
	partitionsSkipped  *prometheus.CounterVec
	partitionsFailed   *prometheus.CounterVec
	componentDuration  *prometheus.HistogramVec
	runDuration        prometheus.Histogram
	tableRows          *prometheus.GaugeVec
	cacheHits          prometheus.Counter
	cacheMisses        prometheus.Counter
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncPartitionsComputed(component string) {
	m.partitionsComputed.WithLabelValues(component).Inc()
}

func (m *MetricsProvider) IncPartitionsSkipped(component, reason string) {
	m.partitionsSkipped.WithLabelValues(component, reason).Inc()
}

func (m *MetricsProvider) IncPartitionsFailed(component string) {
	m.partitionsFailed.WithLabelValues(component).Inc()
}

func (m *MetricsProvider) ObserveComponentDuration(component string, duration time.Duration) {
	m.componentDuration.WithLabelValues(component).Observe(duration.Seconds())
}

func (m *MetricsProvider) ObserveRunDuration(duration time.Duration) {
	m.runDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) SetTableRows(table string, count int) {
	m.tableRows.WithLabelValues(table).Set(float64(count))
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mwa_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mwa_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		partitionsComputed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mwa_partitions_computed_total",
			Help: "Analysis partitions computed per component",
		}, []string{"component"}),

		partitionsSkipped: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mwa_partitions_skipped_total",
			Help: "Analysis partitions skipped per component and reason",
		}, []string{"component", "reason"}),

		partitionsFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mwa_partitions_failed_total",
			Help: "Analysis partitions failed per component",
		}, []string{"component"}),

		componentDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mwa_component_duration_seconds",
			Help:    "Duration of one component pass in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"component"}),

		runDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "mwa_run_duration_seconds",
			Help:    "Duration of a full analysis run in seconds",
			Buckets: []float64{.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		}),

		tableRows: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "mwa_table_rows",
			Help: "Row count per derived table in the current snapshot",
		}, []string{"table"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mwa_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mwa_cache_misses_total",
			Help: "Total number of cache misses",
		}),
	}
}

type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                   {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)   {}
func (n *noopMetrics) IncPartitionsComputed(_ string)                     {}
func (n *noopMetrics) IncPartitionsSkipped(_, _ string)                   {}
func (n *noopMetrics) IncPartitionsFailed(_ string)                       {}
func (n *noopMetrics) ObserveComponentDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) ObserveRunDuration(_ time.Duration)                 {}
func (n *noopMetrics) SetTableRows(_ string, _ int)                       {}
func (n *noopMetrics) IncCacheHits()                                      {}
func (n *noopMetrics) IncCacheMisses()                                    {}

// NewNopMetrics returns a metrics sink that records nothing.
func NewNopMetrics() MetricsProviderInterface {
	return &noopMetrics{}
}
