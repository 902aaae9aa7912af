package analysis

import (
	"encoding/binary"
	"math"
	"sort"
	"strings"

	"github.com/jonreiter/govader"

	"mwa/internal/models"
	"mwa/internal/structures"
)

// ScoreCache memoizes polarity scores for repeated texts ("ok", "lol" and
// friends dominate real corpora). Satisfied by providers.CacheProviderInterface.
type ScoreCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type polarity struct {
	compound float64
	positive float64
	negative float64
}

// SentimentAnalyzer scores message text with the VADER rule/lexicon model.
type SentimentAnalyzer struct {
	vader *govader.SentimentIntensityAnalyzer
	cache ScoreCache
}

func NewSentimentAnalyzer(cache ScoreCache) *SentimentAnalyzer {
	return &SentimentAnalyzer{
		vader: govader.NewSentimentIntensityAnalyzer(),
		cache: cache,
	}
}

// Score returns the polarity of one text. Empty or whitespace-only text
// yields the neutral zero vector rather than an error.
func (sa *SentimentAnalyzer) Score(text string) (compound, positive, negative float64) {
	if strings.TrimSpace(text) == "" {
		return 0, 0, 0
	}

	if sa.cache != nil {
		if raw, ok := sa.cache.Get("snt:" + text); ok {
			if p, ok := decodePolarity(raw); ok {
				return p.compound, p.positive, p.negative
			}
		}
	}

	s := sa.vader.PolarityScores(text)
	if sa.cache != nil {
		sa.cache.Set("snt:"+text, encodePolarity(polarity{s.Compound, s.Positive, s.Negative}))
	}
	return s.Compound, s.Positive, s.Negative
}

// ByContact averages compound scores over all messages in both directions,
// restricted to contacts meeting the configured minimum message count.
// Output is ordered by mean compound descending.
func (sa *SentimentAnalyzer) ByContact(col *models.Collection, conf *structures.AnalysisConfig) []models.ContactSentiment {
	var out []models.ContactSentiment
	for _, key := range col.Contacts() {
		msgs := col.ByContact(key)
		if len(msgs) < conf.MinMessagesForSentiment {
			continue
		}
		var sumC, sumP, sumN float64
		for _, m := range msgs {
			c, p, n := sa.Score(m.Text)
			sumC += c
			sumP += p
			sumN += n
		}
		total := float64(len(msgs))
		out = append(out, models.ContactSentiment{
			ContactKey:   key,
			Messages:     len(msgs),
			MeanCompound: sumC / total,
			MeanPositive: sumP / total,
			MeanNegative: sumN / total,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MeanCompound != out[j].MeanCompound {
			return out[i].MeanCompound > out[j].MeanCompound
		}
		return out[i].ContactKey < out[j].ContactKey
	})
	return out
}

func encodePolarity(p polarity) []byte {
	buf := make([]byte, 24)
	binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(p.compound))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(p.positive))
	binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(p.negative))
	return buf
}

func decodePolarity(raw []byte) (polarity, bool) {
	if len(raw) != 24 {
		return polarity{}, false
	}
	return polarity{
		compound: math.Float64frombits(binary.LittleEndian.Uint64(raw[0:])),
		positive: math.Float64frombits(binary.LittleEndian.Uint64(raw[8:])),
		negative: math.Float64frombits(binary.LittleEndian.Uint64(raw[16:])),
	}, true
}
