package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mwa/internal/structures"
)

func cacheConfig(enabled bool, sizeMB int) *structures.Config {
	conf := &structures.Config{}
	conf.Cache = structures.CacheConfig{Enabled: enabled, Size: sizeMB}
	conf.Analysis.RefreshInterval = 300
	return conf
}

func TestCacheProvider_SetGet(t *testing.T) {
	cp := NewCacheProvider(cacheConfig(true, 1), NewNopLogger())

	cp.Set("key", []byte("value"))
	got, ok := cp.Get("key")
	require.True(t, ok)
	assert.Equal(t, []byte("value"), got)
}

func TestCacheProvider_MissingKey(t *testing.T) {
	cp := NewCacheProvider(cacheConfig(true, 1), NewNopLogger())

	_, ok := cp.Get("nope")
	assert.False(t, ok)
}

func TestCacheProvider_Clear(t *testing.T) {
	cp := NewCacheProvider(cacheConfig(true, 1), NewNopLogger())

	cp.Set("key", []byte("value"))
	cp.Clear()
	_, ok := cp.Get("key")
	assert.False(t, ok)
}

func TestCacheProvider_DisabledIsNoop(t *testing.T) {
	cp := NewCacheProvider(cacheConfig(false, 1), NewNopLogger())

	cp.Set("key", []byte("value"))
	_, ok := cp.Get("key")
	assert.False(t, ok)
}

func TestCacheProvider_ZeroSizeIsNoop(t *testing.T) {
	cp := NewCacheProvider(cacheConfig(true, 0), NewNopLogger())

	cp.Set("key", []byte("value"))
	_, ok := cp.Get("key")
	assert.False(t, ok)
}
