package analysis

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"

	"mwa/internal/models"
	"mwa/internal/structures"
)

const (
	topicMaxFeatures = 2000
	topicMinDF       = 5
	topicMaxDF       = 0.7
	nmfIterations    = 200
	nmfSeed          = 42
	nmfEps           = 1e-9
)

// ExtractTopics factorizes one year's tf-idf document-term matrix into
// non-negative components and reports each component's top weighted terms.
// The component count scales with corpus size (one per 20 messages), capped
// at conf.MaxTopics, minimum 1. Vocabulary covers unigrams and bigrams so
// compound topics survive. Returns an error for degenerate corpora; the
// engine isolates it to this year.
func ExtractTopics(year int, messages [][]string, bp *Boilerplate, conf *structures.AnalysisConfig) ([]models.Topic, error) {
	vocab, docTF := buildVocabulary(messages)
	if len(vocab) == 0 {
		return nil, fmt.Errorf("year %d: no usable vocabulary after frequency filtering", year)
	}

	v := tfidfMatrix(docTF, len(vocab), len(messages))

	k := len(messages) / 20
	if k > conf.MaxTopics {
		k = conf.MaxTopics
	}
	if k < 1 {
		k = 1
	}

	components, err := nmf(v, k)
	if err != nil {
		return nil, fmt.Errorf("year %d: factorization: %w", year, err)
	}

	topics := make([]models.Topic, 0, k)
	for topicID := 0; topicID < k; topicID++ {
		terms := topTopicTerms(components, topicID, vocab, bp, conf.TopicTopTerms)
		if len(terms) == 0 {
			continue
		}
		topics = append(topics, models.Topic{Year: year, TopicID: topicID, Terms: terms})
	}
	return topics, nil
}

// buildVocabulary collects unigram and bigram features with document
// frequency inside [topicMinDF, topicMaxDF*docs], keeping the
// topicMaxFeatures most frequent. Returns the ordered vocabulary and each
// document's term counts by vocabulary index.
func buildVocabulary(messages [][]string) ([]string, []map[int]int) {
	df := make(map[string]int)
	total := make(map[string]int)
	perDoc := make([]map[string]int, len(messages))

	for i, tokens := range messages {
		counts := make(map[string]int)
		for _, t := range tokens {
			counts[t]++
		}
		for j := 0; j+2 <= len(tokens); j++ {
			counts[tokens[j]+" "+tokens[j+1]]++
		}
		perDoc[i] = counts
		for term, c := range counts {
			df[term]++
			total[term] += c
		}
	}

	maxDF := int(topicMaxDF * float64(len(messages)))
	type feat struct {
		term  string
		count int
	}
	feats := make([]feat, 0, len(df))
	for term, d := range df {
		if d < topicMinDF || d > maxDF {
			continue
		}
		feats = append(feats, feat{term, total[term]})
	}
	sort.SliceStable(feats, func(i, j int) bool {
		if feats[i].count != feats[j].count {
			return feats[i].count > feats[j].count
		}
		return feats[i].term < feats[j].term
	})
	if len(feats) > topicMaxFeatures {
		feats = feats[:topicMaxFeatures]
	}

	vocab := make([]string, len(feats))
	index := make(map[string]int, len(feats))
	for i, f := range feats {
		vocab[i] = f.term
		index[f.term] = i
	}

	docTF := make([]map[int]int, len(messages))
	for i, counts := range perDoc {
		tf := make(map[int]int)
		for term, c := range counts {
			if idx, ok := index[term]; ok {
				tf[idx] = c
			}
		}
		docTF[i] = tf
	}
	return vocab, docTF
}

// tfidfMatrix builds the dense documents x terms weight matrix with smooth
// idf and l2 row normalization.
func tfidfMatrix(docTF []map[int]int, terms, docs int) *mat.Dense {
	df := make([]int, terms)
	for _, tf := range docTF {
		for idx := range tf {
			df[idx]++
		}
	}
	idf := make([]float64, terms)
	n := float64(docs)
	for i, d := range df {
		idf[i] = math.Log((1+n)/(1+float64(d))) + 1
	}

	v := mat.NewDense(docs, terms, nil)
	for row, tf := range docTF {
		var norm float64
		for idx, c := range tf {
			w := float64(c) * idf[idx]
			v.Set(row, idx, w)
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for idx := range tf {
				v.Set(row, idx, v.At(row, idx)/norm)
			}
		}
	}
	return v
}

// nmf factors v (docs x terms) into W (docs x k) and H (k x terms) by
// multiplicative updates, returning H as the term weights per component.
// Seeded initialization keeps runs deterministic.
func nmf(v *mat.Dense, k int) (*mat.Dense, error) {
	docs, terms := v.Dims()
	if k > docs || k > terms {
		return nil, fmt.Errorf("component count %d exceeds matrix dims %dx%d", k, docs, terms)
	}

	rng := rand.New(rand.NewSource(nmfSeed))
	w := randomMatrix(rng, docs, k)
	h := randomMatrix(rng, k, terms)

	var wtv, wtw, wtwh mat.Dense
	var vht, hht, whht mat.Dense

	for iter := 0; iter < nmfIterations; iter++ {
		// H <- H * (W^T V) / (W^T W H + eps)
		wtv.Mul(w.T(), v)
		wtw.Mul(w.T(), w)
		wtwh.Mul(&wtw, h)
		updateElem(h, &wtv, &wtwh)

		// W <- W * (V H^T) / (W H H^T + eps)
		vht.Mul(v, h.T())
		hht.Mul(h, h.T())
		whht.Mul(w, &hht)
		updateElem(w, &vht, &whht)
	}
	return h, nil
}

func randomMatrix(rng *rand.Rand, rows, cols int) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.Float64() + nmfEps
	}
	return mat.NewDense(rows, cols, data)
}

// updateElem applies m <- m * num / (den + eps) element-wise.
func updateElem(m, num, den *mat.Dense) {
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.Set(i, j, m.At(i, j)*num.At(i, j)/(den.At(i, j)+nmfEps))
		}
	}
}

// topTopicTerms picks a component's highest-weighted terms, filtering
// boilerplate, very short tokens and singular/plural duplicates. Scans three
// times the requested count so filtering still fills the list.
func topTopicTerms(h *mat.Dense, topicID int, vocab []string, bp *Boilerplate, topN int) []string {
	type weighted struct {
		term   string
		weight float64
	}
	row := make([]weighted, len(vocab))
	for i, term := range vocab {
		row[i] = weighted{term, h.At(topicID, i)}
	}
	sort.SliceStable(row, func(i, j int) bool {
		if row[i].weight != row[j].weight {
			return row[i].weight > row[j].weight
		}
		return row[i].term < row[j].term
	})

	limit := topN * 3
	if limit > len(row) {
		limit = len(row)
	}

	var terms []string
	for _, cand := range row[:limit] {
		if len(terms) >= topN {
			break
		}
		words := strings.Fields(cand.term)
		if len(words) == 1 && bp.IsWord(cand.term) {
			continue
		}
		if len(words) > 1 && bp.AllWords(words) {
			continue
		}
		if len(strings.ReplaceAll(cand.term, " ", "")) < 3 {
			continue
		}
		if isDuplicateTerm(cand.term, terms) {
			continue
		}
		terms = append(terms, cand.term)
	}
	return terms
}

// singularize folds simple plural forms so "friend" and "friends" do not
// both appear in one topic.
func singularize(word string) string {
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 3:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "es") && len(word) > 3:
		return word[:len(word)-2]
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") && len(word) > 2:
		return word[:len(word)-1]
	}
	return word
}

func isDuplicateTerm(term string, existing []string) bool {
	norm := singularize(term)
	for _, e := range existing {
		ne := singularize(e)
		if norm == ne || strings.Contains(norm, ne) || strings.Contains(ne, norm) {
			return true
		}
	}
	return false
}
