package structures

import (
	"net/http"
	"time"
)

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
	OneShot    bool
}

type Route struct {
	Url     string
	Handler http.Handler
}

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Persistence struct {
	FilePath     string        `yaml:"filePath" validate:"required|unixPath"`
	SaveInterval time.Duration `yaml:"saveInterval" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type InputConfig struct {
	FilePath string `yaml:"filePath" validate:"required|unixPath"`
}

// AnalysisConfig carries every tunable the engine accepts. Defaults mirror the
// documented ones: 4h silence gap, 50-message balance floor, 10-conversation
// initiation floor, 24h reply cutoff, rank thresholds 20/10, top-20 phrases.
type AnalysisConfig struct {
	GapHours                      float64       `yaml:"gapHours"`
	Epsilon                       float64       `yaml:"epsilon"`
	MinMessagesForBalance         int           `yaml:"minMessagesForBalance"`
	MinConversationsForInitiation int           `yaml:"minConversationsForInitiation"`
	ReplyCutoff                   time.Duration `yaml:"replyCutoff"`
	RisingFloor                   int           `yaml:"risingFloor"`
	RisingTier                    int           `yaml:"risingTier"`
	FadedTier                     int           `yaml:"fadedTier"`
	FadedFloor                    int           `yaml:"fadedFloor"`
	TopPhrases                    int           `yaml:"topPhrases"`
	PhraseMinMessages             int           `yaml:"phraseMinMessages"`
	PhraseMaxShare                float64       `yaml:"phraseMaxShare"`
	TopTerms                      int           `yaml:"topTerms"`
	MaxTopics                     int           `yaml:"maxTopics"`
	TopicMinMessages              int           `yaml:"topicMinMessages"`
	TopicTopTerms                 int           `yaml:"topicTopTerms"`
	MinMessagesForSentiment       int           `yaml:"minMessagesForSentiment"`
	QuestionMinMessages           int           `yaml:"questionMinMessages"`
	RefreshInterval               time.Duration `yaml:"refreshInterval"`
	Workers                       int           `yaml:"workers"`
	BoilerplatePhrases            []string      `yaml:"boilerplatePhrases"`
	BoilerplateWords              []string      `yaml:"boilerplateWords"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	OneShot   bool
	Path      string
	Analysis  AnalysisConfig `yaml:"analysis"`
	Input     InputConfig    `yaml:"input"`
	WebServer Server         `yaml:"webServer"`

	Persistence Persistence   `yaml:"persistence"`
	Logger      LoggerConfig  `yaml:"logger"`
	Cache       CacheConfig   `yaml:"cache"`
	Metrics     MetricsConfig `yaml:"metrics"`
}

// Gap returns the silence threshold as a duration.
func (a *AnalysisConfig) Gap() time.Duration {
	return time.Duration(a.GapHours * float64(time.Hour))
}
