package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingMetrics struct {
	noopMetrics
	hits   int
	misses int
}

func (m *countingMetrics) IncCacheHits()   { m.hits++ }
func (m *countingMetrics) IncCacheMisses() { m.misses++ }

func TestInstrumentedCacheProvider_CountsHitsAndMisses(t *testing.T) {
	metrics := &countingMetrics{}
	cp := NewInstrumentedCacheProvider(cacheConfig(true, 1), NewNopLogger(), metrics)

	_, ok := cp.Get("absent")
	require.False(t, ok)

	cp.Set("key", []byte("value"))
	got, ok := cp.Get("key")
	require.True(t, ok)
	assert.Equal(t, []byte("value"), got)

	assert.Equal(t, 1, metrics.hits)
	assert.Equal(t, 1, metrics.misses)
}

func TestInstrumentedCacheProvider_ClearPassesThrough(t *testing.T) {
	metrics := &countingMetrics{}
	cp := NewInstrumentedCacheProvider(cacheConfig(true, 1), NewNopLogger(), metrics)

	cp.Set("key", []byte("value"))
	cp.Clear()
	_, ok := cp.Get("key")
	assert.False(t, ok)
}

func TestInstrumentedCacheProvider_DisabledSkipsCounting(t *testing.T) {
	metrics := &countingMetrics{}
	cp := NewInstrumentedCacheProvider(cacheConfig(false, 1), NewNopLogger(), metrics)

	_, ok := cp.Get("anything")
	require.False(t, ok)
	assert.Zero(t, metrics.misses, "a disabled cache must not record phantom misses")
}
