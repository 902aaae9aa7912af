package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mwa/internal/models"
)

func msgAt(ts time.Time, dir models.Direction) models.Message {
	return models.Message{Direction: dir, Timestamp: ts, ContactKey: "c1"}
}

func TestSegmentContact_SingleMessage(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	out := SegmentContact([]models.Message{msgAt(base, models.DirectionSent)}, 4*time.Hour)

	require.Len(t, out, 1)
	assert.True(t, out[0].IsStart)
	assert.False(t, out[0].HasElapsed)
}

func TestSegmentContact_GapStartsNewConversation(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	msgs := []models.Message{
		msgAt(base, models.DirectionSent),
		msgAt(base.Add(30*time.Minute), models.DirectionReceived),
		msgAt(base.Add(30*time.Hour), models.DirectionSent),
	}
	out := SegmentContact(msgs, 4*time.Hour)

	require.Len(t, out, 3)
	assert.True(t, out[0].IsStart)
	assert.False(t, out[1].IsStart)
	assert.Equal(t, 30*time.Minute, out[1].Elapsed)
	assert.True(t, out[2].IsStart)
}

func TestSegmentContact_GapEqualToThresholdContinues(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	msgs := []models.Message{
		msgAt(base, models.DirectionSent),
		msgAt(base.Add(4*time.Hour), models.DirectionSent),
	}
	out := SegmentContact(msgs, 4*time.Hour)

	assert.False(t, out[1].IsStart)
}

func TestSegmentContact_Idempotent(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	msgs := []models.Message{
		msgAt(base, models.DirectionSent),
		msgAt(base.Add(10*time.Hour), models.DirectionReceived),
	}
	first := SegmentContact(msgs, 4*time.Hour)
	second := SegmentContact(msgs, 4*time.Hour)
	assert.Equal(t, first, second)
}

func TestConversationsFor_CountsInitiators(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	msgs := []models.Message{
		msgAt(base, models.DirectionSent),
		msgAt(base.Add(5*time.Minute), models.DirectionReceived),
		msgAt(base.Add(20*time.Hour), models.DirectionReceived),
		msgAt(base.Add(48*time.Hour), models.DirectionSent),
	}
	cs := ConversationsFor(SegmentContact(msgs, 4*time.Hour))

	assert.Equal(t, 3, cs.Conversations)
	assert.Equal(t, 2, cs.OwnerInitiated)
}
