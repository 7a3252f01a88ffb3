package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config represents application configuration
type Config struct {
	Server  ServerConfig  `envconfig:"SERVER"`
	NewsAPI NewsAPIConfig `envconfig:"NEWSAPI"`
	OpenAI  OpenAIConfig  `envconfig:"OPENAI"`
	Cache   CacheConfig   `envconfig:"CACHE"`
	Logging LoggingConfig `envconfig:"LOGGING"`
}

// ServerConfig represents HTTP server parameters. Rate limits are requests
// per minute per client, applied per route.
type ServerConfig struct {
	Port                     string  `envconfig:"SERVER_PORT" default:"8080"`
	APIKey                   string  `envconfig:"API_KEY" required:"true"`
	PreferencesRateLimit     float64 `envconfig:"SERVER_PREFERENCES_RATE_LIMIT" default:"5"`
	RecommendationsRateLimit float64 `envconfig:"SERVER_RECOMMENDATIONS_RATE_LIMIT" default:"10"`
}

// NewsAPIConfig represents NewsAPI client parameters
type NewsAPIConfig struct {
	APIKey  string `envconfig:"NEWSAPI_KEY" required:"true"`
	BaseURL string `envconfig:"NEWSAPI_BASE_URL" default:"https://newsapi.org/v2/everything"`
}

// OpenAIConfig represents LLM provider parameters. A missing key disables
// article analysis instead of failing startup.
type OpenAIConfig struct {
	APIKey string `envconfig:"OPENAI_API_KEY" required:"false"`
	Model  string `envconfig:"OPENAI_MODEL" default:"gpt-3.5-turbo"`
}

// CacheConfig represents memoization cache parameters
type CacheConfig struct {
	NewsCapacity     int           `envconfig:"CACHE_NEWS_CAPACITY" default:"100"`
	NewsTTL          time.Duration `envconfig:"CACHE_NEWS_TTL" default:"10m"`
	AnalysisCapacity int           `envconfig:"CACHE_ANALYSIS_CAPACITY" default:"500"`
	AnalysisTTL      time.Duration `envconfig:"CACHE_ANALYSIS_TTL" default:"1h"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
	File  string `envconfig:"LOG_FILE" default:""`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	if c.Cache.NewsCapacity <= 0 || c.Cache.AnalysisCapacity <= 0 {
		return fmt.Errorf("cache capacities must be positive")
	}
	if c.Cache.NewsTTL <= 0 || c.Cache.AnalysisTTL <= 0 {
		return fmt.Errorf("cache TTLs must be positive")
	}
	if c.Server.PreferencesRateLimit <= 0 || c.Server.RecommendationsRateLimit <= 0 {
		return fmt.Errorf("rate limits must be positive")
	}
	return nil
}
