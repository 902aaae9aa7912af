package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mwa/internal/models"
	"mwa/internal/structures"
	"mwa/internal/testutil"
)

func serviceConfig() *structures.Config {
	conf := &structures.Config{}
	conf.Analysis = structures.AnalysisConfig{
		GapHours:                      4,
		Epsilon:                       0.1,
		MinMessagesForBalance:         50,
		MinConversationsForInitiation: 10,
		ReplyCutoff:                   24 * time.Hour,
		RisingFloor:                   20,
		RisingTier:                    10,
		FadedTier:                     10,
		FadedFloor:                    20,
		TopPhrases:                    20,
		PhraseMinMessages:             3,
		PhraseMaxShare:                0.5,
		TopTerms:                      10,
		MaxTopics:                     5,
		TopicMinMessages:              100,
		TopicTopTerms:                 5,
		MinMessagesForSentiment:       50,
		QuestionMinMessages:           50,
		Workers:                       2,
	}
	return conf
}

func smallCollection(t *testing.T) *models.Collection {
	t.Helper()
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	var msgs []models.Message
	for i := 0; i < 10; i++ {
		dir := models.DirectionSent
		if i%2 == 1 {
			dir = models.DirectionReceived
		}
		msgs = append(msgs, models.Message{
			ID:         int64(i + 1),
			Text:       "see you at dinner tonight",
			Direction:  dir,
			Timestamp:  base.Add(time.Duration(i) * time.Hour),
			ContactKey: "c1",
		})
	}
	col, err := models.NewCollection(msgs)
	require.NoError(t, err)
	return col
}

func TestRun_SwapsResultsAndClearsCache(t *testing.T) {
	cache := testutil.NewMockCache()
	cache.Set("stale", []byte("x"))
	loader := &testutil.MockLoader{Collection: smallCollection(t)}
	metrics := testutil.NewMockMetrics()
	svc := NewAnalysisService(serviceConfig(), &testutil.MockLogger{}, metrics, cache, loader)

	require.NoError(t, svc.Run(context.Background()))

	assert.True(t, svc.Ready())
	res := svc.GetResults()
	require.NotNil(t, res)
	assert.Equal(t, 10, res.Messages)
	assert.Equal(t, 1, loader.Calls)
	assert.Equal(t, 1, cache.ClearCalls)
	assert.Equal(t, 1, metrics.TableRows["relationships"])
}

func TestRun_LoaderErrorLeavesStoreUntouched(t *testing.T) {
	loadErr := errors.New("missing input")
	loader := &testutil.MockLoader{Err: loadErr}
	svc := NewAnalysisService(serviceConfig(), &testutil.MockLogger{}, testutil.NewMockMetrics(), testutil.NewMockCache(), loader)

	err := svc.Run(context.Background())
	assert.ErrorIs(t, err, loadErr)
	assert.False(t, svc.Ready())
	assert.Nil(t, svc.GetResults())
}

func TestRun_CancelledContext(t *testing.T) {
	loader := &testutil.MockLoader{Collection: smallCollection(t)}
	svc := NewAnalysisService(serviceConfig(), &testutil.MockLogger{}, testutil.NewMockMetrics(), testutil.NewMockCache(), loader)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, svc.Run(ctx))
	assert.False(t, svc.Ready())
}

func TestPutResults_RestoresSnapshot(t *testing.T) {
	metrics := testutil.NewMockMetrics()
	svc := NewAnalysisService(serviceConfig(), &testutil.MockLogger{}, metrics, testutil.NewMockCache(), &testutil.MockLoader{})

	r := &models.Results{
		Messages:      42,
		Relationships: []models.RelationshipMetric{{ContactKey: "a"}},
	}
	svc.PutResults(r)

	assert.True(t, svc.Ready())
	assert.Same(t, r, svc.GetResults())
	assert.Equal(t, 1, metrics.TableRows["relationships"])
}
