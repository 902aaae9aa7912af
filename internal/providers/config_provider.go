package providers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"mwa/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "MWA_LOG_LEVEL")
	viper.BindEnv("input.filePath", "MWA_INPUT_FILE")
	viper.BindEnv("persistence.saveInterval", "MWA_SAVE_INTERVAL")
	viper.BindEnv("analysis.refreshInterval", "MWA_REFRESH_INTERVAL")
	viper.BindEnv("cache.enabled", "MWA_CACHE_ENABLED")
	viper.BindEnv("cache.size", "MWA_CACHE_SIZE")

	setAnalysisDefaults()

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "MessageWrappedAnalyzer"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode
	conf.OneShot = flags.OneShot

	return &conf, nil
}

// setAnalysisDefaults registers the documented defaults. The boilerplate
// sets default to the built-in lists only when the keys are absent; an
// explicitly empty list is rejected by the validator.
func setAnalysisDefaults() {
	viper.SetDefault("analysis.gapHours", 4.0)
	viper.SetDefault("analysis.epsilon", 0.1)
	viper.SetDefault("analysis.minMessagesForBalance", 50)
	viper.SetDefault("analysis.minConversationsForInitiation", 10)
	viper.SetDefault("analysis.replyCutoff", 24*time.Hour)
	viper.SetDefault("analysis.risingFloor", 20)
	viper.SetDefault("analysis.risingTier", 10)
	viper.SetDefault("analysis.fadedTier", 10)
	viper.SetDefault("analysis.fadedFloor", 20)
	viper.SetDefault("analysis.topPhrases", 20)
	viper.SetDefault("analysis.phraseMinMessages", 3)
	viper.SetDefault("analysis.phraseMaxShare", 0.5)
	viper.SetDefault("analysis.topTerms", 10)
	viper.SetDefault("analysis.maxTopics", 5)
	viper.SetDefault("analysis.topicMinMessages", 100)
	viper.SetDefault("analysis.topicTopTerms", 5)
	viper.SetDefault("analysis.minMessagesForSentiment", 50)
	viper.SetDefault("analysis.questionMinMessages", 50)
	// Seconds count, same convention as persistence.saveInterval.
	viper.SetDefault("analysis.refreshInterval", 3600)
	viper.SetDefault("analysis.workers", 0)
	viper.SetDefault("analysis.boilerplatePhrases", structures.DefaultBoilerplatePhrases)
	viper.SetDefault("analysis.boilerplateWords", structures.DefaultBoilerplateWords)
}
