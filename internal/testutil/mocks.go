package testutil

import (
	"context"
	"sync"
	"time"

	"mwa/internal/models"
	"mwa/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

func (m *MockLogger) Entries(level string) []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []LogEntry
	for _, e := range m.Logs {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// MockAnalysisService implements services.AnalysisServiceInterface.
type MockAnalysisService struct {
	mu       sync.Mutex
	Results  *models.Results
	RunErr   error
	RunCalls int
	PutCalls []*models.Results
}

func (m *MockAnalysisService) Run(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RunCalls++
	return m.RunErr
}

func (m *MockAnalysisService) GetResults() *models.Results {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Results
}

func (m *MockAnalysisService) PutResults(r *models.Results) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Results = r
	m.PutCalls = append(m.PutCalls, r)
}

func (m *MockAnalysisService) RunCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.RunCalls
}

func (m *MockAnalysisService) Ready() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Results != nil
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu         sync.Mutex
	Data       map[string][]byte
	ClearCalls int
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data = make(map[string][]byte)
	m.ClearCalls++
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

// MockLoader implements services.CollectionLoader.
type MockLoader struct {
	Collection *models.Collection
	Err        error
	Calls      int
}

func (m *MockLoader) Load() (*models.Collection, error) {
	m.Calls++
	return m.Collection, m.Err
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu          sync.Mutex
	Requests    map[string]int
	Computed    map[string]int
	Skipped     map[string]int
	Failed      map[string]int
	TableRows   map[string]int
	RunCount    int
	CacheHits   int
	CacheMisses int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		Requests:  make(map[string]int),
		Computed:  make(map[string]int),
		Skipped:   make(map[string]int),
		Failed:    make(map[string]int),
		TableRows: make(map[string]int),
	}
}

func (m *MockMetrics) IncRequestsTotal(endpoint string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests[endpoint]++
}

func (m *MockMetrics) ObserveRequestDuration(endpoint string, duration time.Duration) {}

func (m *MockMetrics) IncPartitionsComputed(component string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Computed[component]++
}

func (m *MockMetrics) IncPartitionsSkipped(component, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Skipped[component+":"+reason]++
}

func (m *MockMetrics) IncPartitionsFailed(component string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Failed[component]++
}

func (m *MockMetrics) ObserveComponentDuration(component string, duration time.Duration) {}

func (m *MockMetrics) ObserveRunDuration(duration time.Duration) {}

func (m *MockMetrics) SetTableRows(table string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TableRows[table] = count
}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
