package analysis

import (
	"sort"
	"strings"

	"mwa/internal/models"
	"mwa/internal/structures"
)

const (
	phraseMinLen = 2
	phraseMaxLen = 4
)

type phraseStat struct {
	count    int
	messages int
}

// MinePhrases extracts the top contiguous word n-grams (length 2-4) for one
// year of owner-sent message tokens. A candidate must occur in at least
// conf.PhraseMinMessages distinct messages and in fewer than
// conf.PhraseMaxShare of them, dropping both rare noise and near-universal
// boilerplate. Candidates overlapping a boilerplate phrase, made entirely of
// boilerplate words, carrying fewer than two non-boilerplate words, or
// substring-duplicating an already kept phrase are discarded.
func MinePhrases(year int, messages [][]string, bp *Boilerplate, conf *structures.AnalysisConfig) []models.PhraseCount {
	if len(messages) == 0 {
		return nil
	}

	stats := make(map[string]*phraseStat)
	for _, tokens := range messages {
		seen := make(map[string]struct{})
		for n := phraseMinLen; n <= phraseMaxLen; n++ {
			for i := 0; i+n <= len(tokens); i++ {
				phrase := strings.Join(tokens[i:i+n], " ")
				st := stats[phrase]
				if st == nil {
					st = &phraseStat{}
					stats[phrase] = st
				}
				st.count++
				if _, dup := seen[phrase]; !dup {
					st.messages++
					seen[phrase] = struct{}{}
				}
			}
		}
	}

	// Compared as floats: truncating the cap to an int would exclude counts
	// still under the share, e.g. 2 of 5 messages against a 0.5 cap.
	maxMessages := conf.PhraseMaxShare * float64(len(messages))
	candidates := make([]models.PhraseCount, 0, len(stats))
	for phrase, st := range stats {
		if st.messages < conf.PhraseMinMessages || float64(st.messages) >= maxMessages {
			continue
		}
		candidates = append(candidates, models.PhraseCount{
			Year:     year,
			Phrase:   phrase,
			Count:    st.count,
			Messages: st.messages,
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Count != candidates[j].Count {
			return candidates[i].Count > candidates[j].Count
		}
		return candidates[i].Phrase < candidates[j].Phrase
	})

	kept := make([]models.PhraseCount, 0, conf.TopPhrases)
	keptPhrases := make([]string, 0, conf.TopPhrases)
	for _, c := range candidates {
		if len(kept) >= conf.TopPhrases {
			break
		}
		words := strings.Fields(c.Phrase)
		if bp.PhraseOverlaps(c.Phrase) {
			continue
		}
		if bp.AllWords(words) || bp.NonBoilerplateCount(words) < 2 {
			continue
		}
		if overlapsAny(c.Phrase, keptPhrases) {
			continue
		}
		kept = append(kept, c)
		keptPhrases = append(keptPhrases, c.Phrase)
	}
	return kept
}

// overlapsAny reports substring containment against already kept phrases, in
// either direction, so "want to grab dinner" and "to grab dinner" do not both
// make the list.
func overlapsAny(phrase string, existing []string) bool {
	for _, e := range existing {
		if strings.Contains(e, phrase) || strings.Contains(phrase, e) {
			return true
		}
	}
	return false
}
