package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config is built once per process and handed to the clients each service
// needs.
type Config struct {
	Port         string
	FrontendURLs []string
	HTTPTimeout  time.Duration

	NewsAPIKey   string
	KeywordsFile string

	LLMProvider     string
	LLMModel        string
	LLMBaseURL      string
	GeminiAPIKey    string
	OpenAIAPIKey    string
	AnthropicAPIKey string

	YouTubeAPIKey     string
	MistralAPIKey     string
	ScrapingDogAPIKey string

	PresidioAnalyzerURL   string
	PresidioAnonymizerURL string
}

// Load reads .env (if present) and the environment. defaultPort is used
// when PORT is unset.
func Load(defaultPort string) *Config {
	_ = godotenv.Load()
	return FromViper(newViper(defaultPort))
}

func newViper(defaultPort string) *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", defaultPort)
	v.SetDefault("HTTP_TIMEOUT", "30s")
	v.SetDefault("LLM_PROVIDER", ProviderGemini)
	v.SetDefault("PRESIDIO_ANALYZER_URL", "http://presidio-analyzer:3000")
	v.SetDefault("PRESIDIO_ANONYMIZER_URL", "http://presidio-anonymizer:3000")
	return v
}

func FromViper(v *viper.Viper) *Config {
	origins := []string{"http://localhost:3000"}
	for _, o := range strings.Split(v.GetString("FRONTEND_URL"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	scrapingDogKey := v.GetString("SCRAPINGDOG_API_KEY")
	if scrapingDogKey == "" {
		scrapingDogKey = v.GetString("API_KEY")
	}

	return &Config{
		Port:         v.GetString("PORT"),
		FrontendURLs: origins,
		HTTPTimeout:  v.GetDuration("HTTP_TIMEOUT"),

		NewsAPIKey:   v.GetString("NEWS_API_KEY"),
		KeywordsFile: v.GetString("NEWS_KEYWORDS_FILE"),

		LLMProvider:     strings.ToLower(v.GetString("LLM_PROVIDER")),
		LLMModel:        v.GetString("LLM_MODEL"),
		LLMBaseURL:      v.GetString("LLM_BASE_URL"),
		GeminiAPIKey:    v.GetString("GEMINI_API_KEY"),
		OpenAIAPIKey:    v.GetString("OPENAI_API_KEY"),
		AnthropicAPIKey: v.GetString("ANTHROPIC_API_KEY"),

		YouTubeAPIKey:     v.GetString("YOUTUBE_API_KEY"),
		MistralAPIKey:     v.GetString("MISTRAL_API_KEY"),
		ScrapingDogAPIKey: scrapingDogKey,

		PresidioAnalyzerURL:   v.GetString("PRESIDIO_ANALYZER_URL"),
		PresidioAnonymizerURL: v.GetString("PRESIDIO_ANONYMIZER_URL"),
	}
}
