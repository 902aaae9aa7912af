package runner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mwa/internal/models"
	"mwa/internal/structures"
	"mwa/internal/testutil"
)

func schedulerFixture(t *testing.T, svc *testutil.MockAnalysisService) (*Scheduler, string) {
	t.Helper()
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "results.db")
	conf := &structures.Config{}
	conf.Persistence = structures.Persistence{FilePath: path, SaveInterval: 3600}
	conf.Analysis.RefreshInterval = 3600

	fm := NewFileManager(compressor, svc, &testutil.MockLogger{})
	s := NewScheduler(conf, &testutil.MockLogger{}, svc, fm).(*Scheduler)
	return s, path
}

func TestScheduler_RestoreMissingSnapshot(t *testing.T) {
	svc := &testutil.MockAnalysisService{}
	s, _ := schedulerFixture(t, svc)

	require.NoError(t, s.Restore())
	assert.Empty(t, svc.PutCalls)
}

func TestScheduler_PersistThenRestore(t *testing.T) {
	svc := &testutil.MockAnalysisService{Results: &models.Results{Messages: 7}}
	s, path := schedulerFixture(t, svc)

	require.NoError(t, s.Persist())
	_, err := os.Stat(path)
	require.NoError(t, err)

	restored := &testutil.MockAnalysisService{}
	s2, _ := schedulerFixture(t, restored)
	// Point the second scheduler at the first one's snapshot.
	s2.config.Persistence.FilePath = path
	require.NoError(t, s2.Restore())
	require.Len(t, restored.PutCalls, 1)
	assert.Equal(t, 7, restored.PutCalls[0].Messages)
}

func TestScheduler_StopWithoutInit(t *testing.T) {
	svc := &testutil.MockAnalysisService{}
	s, _ := schedulerFixture(t, svc)
	assert.NotPanics(t, s.Stop)
}
