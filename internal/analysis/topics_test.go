package analysis

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// topicCorpus builds a corpus with two clearly separated term clusters.
func topicCorpus(docs int) [][]string {
	out := make([][]string, 0, docs)
	for i := 0; i < docs; i++ {
		if i%2 == 0 {
			out = append(out, []string{"wedding", "venue", "flowers", "catering", fmt.Sprintf("w%d", i)})
		} else {
			out = append(out, []string{"basketball", "playoffs", "tickets", "arena", fmt.Sprintf("b%d", i)})
		}
	}
	return out
}

func TestExtractTopics_FindsClusters(t *testing.T) {
	conf := testAnalysisConfig()
	conf.MaxTopics = 2
	bp := NewBoilerplate(nil, nil)

	topics, err := ExtractTopics(2023, topicCorpus(120), bp, conf)
	require.NoError(t, err)
	require.Len(t, topics, 2)

	var all []string
	for _, tp := range topics {
		assert.Equal(t, 2023, tp.Year)
		assert.NotEmpty(t, tp.Terms)
		all = append(all, tp.Terms...)
	}
	// Both clusters should surface somewhere across the components. Terms
	// may come out as bigrams, so match on containment.
	assert.True(t, anyTermContains(all, "wedding"), "wedding cluster missing from %v", all)
	assert.True(t, anyTermContains(all, "basketball"), "basketball cluster missing from %v", all)
}

func anyTermContains(terms []string, substr string) bool {
	for _, t := range terms {
		if strings.Contains(t, substr) {
			return true
		}
	}
	return false
}

func TestExtractTopics_ComponentCountScalesWithCorpus(t *testing.T) {
	conf := testAnalysisConfig()
	conf.MaxTopics = 5
	bp := NewBoilerplate(nil, nil)

	// 40 messages -> k = 2.
	topics, err := ExtractTopics(2023, topicCorpus(40), bp, conf)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(topics), 2)
	for _, tp := range topics {
		assert.Less(t, tp.TopicID, 2)
	}
}

func TestExtractTopics_Deterministic(t *testing.T) {
	conf := testAnalysisConfig()
	conf.MaxTopics = 2
	bp := NewBoilerplate(nil, nil)

	a, err := ExtractTopics(2023, topicCorpus(120), bp, conf)
	require.NoError(t, err)
	b, err := ExtractTopics(2023, topicCorpus(120), bp, conf)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestExtractTopics_NoUsableVocabulary(t *testing.T) {
	conf := testAnalysisConfig()
	bp := NewBoilerplate(nil, nil)

	// Every term appears once: below the document frequency floor.
	docs := [][]string{{"alpha"}, {"bravo"}, {"charlie"}}
	_, err := ExtractTopics(2023, docs, bp, conf)
	assert.Error(t, err)
}

func TestBuildVocabulary_FrequencyWindow(t *testing.T) {
	var docs [][]string
	for i := 0; i < 10; i++ {
		doc := []string{"everywhere"}
		if i < 6 {
			doc = append(doc, "common")
		}
		docs = append(docs, doc)
	}
	vocab, _ := buildVocabulary(docs)

	// df("everywhere") = 10 > 0.7*10; df("common") = 6 inside the window.
	assert.NotContains(t, vocab, "everywhere")
	assert.Contains(t, vocab, "common")
}

func TestSingularize(t *testing.T) {
	assert.Equal(t, "party", singularize("parties"))
	assert.Equal(t, "friend", singularize("friends"))
	assert.Equal(t, "box", singularize("boxes"))
	assert.Equal(t, "class", singularize("class"))
	assert.Equal(t, "dog", singularize("dog"))
}

func TestIsDuplicateTerm(t *testing.T) {
	assert.True(t, isDuplicateTerm("friends", []string{"friend"}))
	assert.True(t, isDuplicateTerm("wedding venue", []string{"venue"}))
	assert.False(t, isDuplicateTerm("arena", []string{"wedding"}))
}
