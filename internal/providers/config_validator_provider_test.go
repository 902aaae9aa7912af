package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mwa/internal/structures"
)

func validConfig() *structures.Config {
	conf := &structures.Config{
		Input:     structures.InputConfig{FilePath: "/var/lib/mwa/messages.json"},
		WebServer: structures.Server{Host: "127.0.0.1", Port: 8090},
		Persistence: structures.Persistence{
			FilePath:     "/var/lib/mwa/results.db",
			SaveInterval: 300,
		},
		Logger: structures.LoggerConfig{Level: "info", Mode: 420, Dir: "/var/log/mwa"},
	}
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
		RefreshInterval:               3600,
		BoilerplatePhrases:            structures.DefaultBoilerplatePhrases,
		BoilerplateWords:              structures.DefaultBoilerplateWords,
	}
	return conf
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, NewCnfValidator(validConfig()).Validate())
}

func TestValidate_MissingInputFile(t *testing.T) {
	conf := validConfig()
	conf.Input.FilePath = ""
	assert.Error(t, NewCnfValidator(conf).Validate())
}

func TestValidate_BadLogLevel(t *testing.T) {
	conf := validConfig()
	conf.Logger.Level = "verbose"
	assert.Error(t, NewCnfValidator(conf).Validate())
}

func TestValidate_NonPositiveGap(t *testing.T) {
	conf := validConfig()
	conf.Analysis.GapHours = 0
	assert.Error(t, NewCnfValidator(conf).Validate())
}

func TestValidate_PhraseMaxShareOutOfRange(t *testing.T) {
	conf := validConfig()
	conf.Analysis.PhraseMaxShare = 1.5
	assert.Error(t, NewCnfValidator(conf).Validate())

	conf.Analysis.PhraseMaxShare = 1.0
	assert.NoError(t, NewCnfValidator(conf).Validate())
}

func TestValidate_NegativeWorkers(t *testing.T) {
	conf := validConfig()
	conf.Analysis.Workers = -1
	assert.Error(t, NewCnfValidator(conf).Validate())
}

func TestValidate_EmptyBoilerplate(t *testing.T) {
	conf := validConfig()
	conf.Analysis.BoilerplateWords = []string{}
	assert.Error(t, NewCnfValidator(conf).Validate())
}
