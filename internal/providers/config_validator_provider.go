package providers

import (
	"fmt"

	"github.com/gookit/validate"

	"mwa/internal/structures"
)

// CnfValidator rejects nonsensical parameters at startup. A run must never
// proceed with negative thresholds, a zero silence gap or empty boilerplate
// sets.
type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return fmt.Errorf("config validation failed: %s", v.Errors.One())
	}
	return cv.validateAnalysis()
}

func (cv *CnfValidator) validateAnalysis() error {
	a := &cv.conf.Analysis

	positive := map[string]float64{
		"analysis.gapHours":                      a.GapHours,
		"analysis.epsilon":                       a.Epsilon,
		"analysis.minMessagesForBalance":         float64(a.MinMessagesForBalance),
		"analysis.minConversationsForInitiation": float64(a.MinConversationsForInitiation),
		"analysis.replyCutoff":                   float64(a.ReplyCutoff),
		"analysis.risingFloor":                   float64(a.RisingFloor),
		"analysis.risingTier":                    float64(a.RisingTier),
		"analysis.fadedTier":                     float64(a.FadedTier),
		"analysis.fadedFloor":                    float64(a.FadedFloor),
		"analysis.topPhrases":                    float64(a.TopPhrases),
		"analysis.phraseMinMessages":             float64(a.PhraseMinMessages),
		"analysis.topTerms":                      float64(a.TopTerms),
		"analysis.maxTopics":                     float64(a.MaxTopics),
		"analysis.topicMinMessages":              float64(a.TopicMinMessages),
		"analysis.topicTopTerms":                 float64(a.TopicTopTerms),
		"analysis.minMessagesForSentiment":       float64(a.MinMessagesForSentiment),
		"analysis.questionMinMessages":           float64(a.QuestionMinMessages),
		"analysis.refreshInterval":               float64(a.RefreshInterval),
	}
	for field, val := range positive {
		if val <= 0 {
			return fmt.Errorf("%s must be positive, got %v", field, val)
		}
	}

	if a.PhraseMaxShare <= 0 || a.PhraseMaxShare > 1 {
		return fmt.Errorf("analysis.phraseMaxShare must be in (0, 1], got %v", a.PhraseMaxShare)
	}
	if a.Workers < 0 {
		return fmt.Errorf("analysis.workers must be >= 0, got %d", a.Workers)
	}
	if len(a.BoilerplatePhrases) == 0 {
		return fmt.Errorf("analysis.boilerplatePhrases must not be empty")
	}
	if len(a.BoilerplateWords) == 0 {
		return fmt.Errorf("analysis.boilerplateWords must not be empty")
	}
	return nil
}
