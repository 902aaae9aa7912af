package analysis

import (
	"math"
	"sort"

	"mwa/internal/models"
	"mwa/internal/structures"
)

// YearTerms scores terms by tf-idf across year pseudo-documents: each year's
// owner-sent tokens form one document, so a term is distinctive when frequent
// in one year relative to the others. Uses smooth idf
// (ln((1+N)/(1+df)) + 1) and l2-normalized document vectors. Terms of length
// <= 2 and boilerplate words are excluded; the top conf.TopTerms per year
// are kept.
func YearTerms(docs map[int][]string, bp *Boilerplate, conf *structures.AnalysisConfig) []models.TermScore {
	if len(docs) == 0 {
		return nil
	}

	years := make([]int, 0, len(docs))
	for y := range docs {
		years = append(years, y)
	}
	sort.Ints(years)

	tf := make(map[int]map[string]int, len(docs))
	df := make(map[string]int)
	for y, tokens := range docs {
		counts := make(map[string]int)
		for _, t := range tokens {
			counts[t]++
		}
		tf[y] = counts
		for term := range counts {
			df[term]++
		}
	}

	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for term, d := range df {
		idf[term] = math.Log((1+n)/(1+float64(d))) + 1
	}

	var out []models.TermScore
	for _, y := range years {
		scores := make([]models.TermScore, 0, len(tf[y]))
		var norm float64
		for term, count := range tf[y] {
			s := float64(count) * idf[term]
			norm += s * s
			scores = append(scores, models.TermScore{Year: y, Term: term, Score: s})
		}
		if norm == 0 {
			continue
		}
		norm = math.Sqrt(norm)
		for i := range scores {
			scores[i].Score /= norm
		}
		sort.SliceStable(scores, func(i, j int) bool {
			if scores[i].Score != scores[j].Score {
				return scores[i].Score > scores[j].Score
			}
			return scores[i].Term < scores[j].Term
		})

		kept := 0
		for _, s := range scores {
			if kept >= conf.TopTerms {
				break
			}
			if len(s.Term) <= 2 || bp.IsWord(s.Term) {
				continue
			}
			out = append(out, s)
			kept++
		}
	}
	return out
}
