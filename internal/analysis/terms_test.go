package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearTerms_DistinctiveTermScoresHigher(t *testing.T) {
	conf := testAnalysisConfig()
	bp := NewBoilerplate(nil, nil)

	docs := map[int][]string{
		2022: {"wedding", "wedding", "wedding", "dinner", "coffee"},
		2023: {"apartment", "apartment", "apartment", "dinner", "coffee"},
	}
	out := YearTerms(docs, bp, conf)
	require.NotEmpty(t, out)

	byYear := make(map[int][]string)
	scores := make(map[string]float64)
	for _, ts := range out {
		byYear[ts.Year] = append(byYear[ts.Year], ts.Term)
		if ts.Year == 2022 {
			scores[ts.Term] = ts.Score
		}
	}
	assert.Equal(t, "wedding", byYear[2022][0])
	assert.Equal(t, "apartment", byYear[2023][0])
	// "dinner" appears in both years, so its idf drags it below "wedding".
	assert.Greater(t, scores["wedding"], scores["dinner"])
}

func TestYearTerms_ShortAndBoilerplateExcluded(t *testing.T) {
	conf := testAnalysisConfig()
	bp := NewBoilerplate(nil, []string{"yeah"})

	docs := map[int][]string{
		2022: {"ok", "ok", "yeah", "yeah", "holiday"},
	}
	out := YearTerms(docs, bp, conf)
	require.Len(t, out, 1)
	assert.Equal(t, "holiday", out[0].Term)
}

func TestYearTerms_ScoresAreL2Normalized(t *testing.T) {
	conf := testAnalysisConfig()
	conf.TopTerms = 100
	bp := NewBoilerplate(nil, nil)

	docs := map[int][]string{
		2022: {"alpha", "alpha", "bravo", "charlie"},
	}
	out := YearTerms(docs, bp, conf)
	var norm float64
	for _, ts := range out {
		norm += ts.Score * ts.Score
	}
	assert.InDelta(t, 1.0, norm, 1e-9)
}

func TestYearTerms_EmptyInput(t *testing.T) {
	conf := testAnalysisConfig()
	bp := NewBoilerplate(nil, nil)
	assert.Nil(t, YearTerms(nil, bp, conf))
}
