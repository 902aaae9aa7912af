package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mwa/internal/models"
)

func questionCorpus(key string, year int, questions, plain int) []models.Message {
	base := time.Date(year, 1, 1, 9, 0, 0, 0, time.UTC)
	var msgs []models.Message
	id := int64(year) * 1000
	for i := 0; i < questions; i++ {
		msgs = append(msgs, models.Message{
			ID: id, Text: "you around?", Direction: models.DirectionSent,
			Timestamp: base.Add(time.Duration(i) * time.Hour), ContactKey: key,
		})
		id++
	}
	for i := 0; i < plain; i++ {
		msgs = append(msgs, models.Message{
			ID: id, Text: "on my way", Direction: models.DirectionSent,
			Timestamp: base.Add(time.Duration(questions+i) * time.Hour), ContactKey: key,
		})
		id++
	}
	return msgs
}

func TestQuestionRatiosByYear_Percentage(t *testing.T) {
	msgs := questionCorpus("c1", 2023, 1, 3)
	msgs = append(msgs, questionCorpus("c2", 2024, 2, 2)...)
	// Received questions never count.
	msgs = append(msgs, models.Message{
		ID: 9999, Text: "coming?", Direction: models.DirectionReceived,
		Timestamp: time.Date(2023, 6, 1, 9, 0, 0, 0, time.UTC), ContactKey: "c1",
	})

	out := QuestionRatiosByYear(timedCollection(t, msgs))

	require.Len(t, out, 2)
	assert.Equal(t, models.YearQuestionRatio{Year: 2023, Total: 4, Questions: 1, Pct: 25}, out[0])
	assert.Equal(t, models.YearQuestionRatio{Year: 2024, Total: 4, Questions: 2, Pct: 50}, out[1])
}

func TestQuestionRatiosByContact_MinimumSample(t *testing.T) {
	conf := testAnalysisConfig()
	conf.QuestionMinMessages = 4

	msgs := questionCorpus("chatty", 2024, 2, 2)
	msgs = append(msgs, questionCorpus("quiet", 2024, 1, 1)...)

	out := QuestionRatiosByContact(timedCollection(t, msgs), conf)

	require.Len(t, out, 1, "contacts under the sample floor have no row")
	assert.Equal(t, "chatty", out[0].ContactKey)
	assert.Equal(t, 50.0, out[0].Pct)
}

func TestQuestionRatiosByContact_SortedByShareDesc(t *testing.T) {
	conf := testAnalysisConfig()
	conf.QuestionMinMessages = 2

	msgs := questionCorpus("a", 2024, 1, 3)
	msgs = append(msgs, questionCorpus("b", 2024, 3, 1)...)
	msgs = append(msgs, questionCorpus("c", 2024, 2, 2)...)

	out := QuestionRatiosByContact(timedCollection(t, msgs), conf)

	require.Len(t, out, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{out[0].ContactKey, out[1].ContactKey, out[2].ContactKey})
}
