package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mwa/internal/structures"
)

func TestNoopMetrics_WhenDisabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: false},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*noopMetrics)
	assert.True(t, ok, "should return noopMetrics when disabled")

	// Ensure no-op methods don't panic
	m.IncRequestsTotal("/test", 200)
	m.ObserveRequestDuration("/test", time.Millisecond)
	m.IncPartitionsComputed("phrases")
	m.IncPartitionsSkipped("topics", "insufficient_data")
	m.IncPartitionsFailed("topics")
	m.ObserveComponentDuration("streaks", time.Millisecond)
	m.ObserveRunDuration(time.Second)
	m.SetTableRows("streaks", 3)
	m.IncCacheHits()
	m.IncCacheMisses()
}

// Registers against the default prometheus registry, so enabled construction
// happens exactly once across the test binary.
func TestMetricsProvider_Enabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*MetricsProvider)
	assert.True(t, ok)

	m.IncRequestsTotal("/streaks", 200)
	m.IncRequestsTotal("/streaks", 503)
	m.ObserveRequestDuration("/streaks", 5*time.Millisecond)
	m.IncPartitionsComputed("phrases")
	m.IncPartitionsSkipped("topics", "insufficient_data")
	m.IncPartitionsFailed("topics")
	m.ObserveComponentDuration("relationships", time.Millisecond)
	m.ObserveRunDuration(2 * time.Second)
	m.SetTableRows("rankings", 12)
	m.IncCacheHits()
	m.IncCacheMisses()
}

func TestHttpStatusBucket(t *testing.T) {
	assert.Equal(t, "1xx", httpStatusBucket(101))
	assert.Equal(t, "2xx", httpStatusBucket(200))
	assert.Equal(t, "3xx", httpStatusBucket(301))
	assert.Equal(t, "4xx", httpStatusBucket(404))
	assert.Equal(t, "5xx", httpStatusBucket(503))
}
