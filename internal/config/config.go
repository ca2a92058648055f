package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the portal's process configuration, loaded from the environment.
type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// DatabaseURL is optional: without it the portal runs with translation
	// history disabled.
	DatabaseURL string `envconfig:"DATABASE_URL" default:""`
	DBMinConns  int32  `envconfig:"DB_MIN_CONNS" default:"1"`
	DBMaxConns  int32  `envconfig:"DB_MAX_CONNS" default:"8"`

	// Server-side fallback API keys, used when a request supplies none of
	// its own. The portal never persists keys sent by callers.
	DeepLAPIKey  string `envconfig:"DEEPL_API_KEY" default:""`
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY" default:""`
	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY" default:""`

	GeminiModel string `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`
	OpenAIModel string `envconfig:"OPENAI_MODEL" default:"gpt-4o"`

	// Endpoint overrides, for the DeepL free-plan host and for
	// OpenAI-compatible backends.
	DeepLAPIURL  string `envconfig:"DEEPL_API_URL" default:""`
	OpenAIAPIURL string `envconfig:"OPENAI_API_URL" default:""`

	CacheTTL     time.Duration `envconfig:"TRANSLATION_CACHE_TTL" default:"1h"`
	CacheMaxSize int           `envconfig:"TRANSLATION_CACHE_MAX_SIZE" default:"256"`
	RetryCount   int           `envconfig:"TRANSLATION_RETRY_COUNT" default:"1"`
	RetryDelay   time.Duration `envconfig:"TRANSLATION_RETRY_DELAY" default:"1s"`

	HistoryPageSize    int    `envconfig:"HISTORY_PAGE_SIZE" default:"50"`
	FeedUserAgent      string `envconfig:"FEED_USER_AGENT" default:""`
	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:""`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DBMinConns < 0 {
		return fmt.Errorf("DB_MIN_CONNS must be >= 0")
	}
	if c.DBMaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be >= 1")
	}
	if c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS (%d) cannot exceed DB_MAX_CONNS (%d)", c.DBMinConns, c.DBMaxConns)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("TRANSLATION_CACHE_TTL must be positive")
	}
	if c.CacheMaxSize < 1 {
		return fmt.Errorf("TRANSLATION_CACHE_MAX_SIZE must be >= 1")
	}
	if c.RetryCount < 0 {
		return fmt.Errorf("TRANSLATION_RETRY_COUNT must be >= 0")
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("TRANSLATION_RETRY_DELAY must be >= 0")
	}
	if c.HistoryPageSize < 1 {
		return fmt.Errorf("HISTORY_PAGE_SIZE must be >= 1")
	}
	if strings.TrimSpace(c.GeminiModel) == "" {
		return fmt.Errorf("GEMINI_MODEL is required")
	}
	if strings.TrimSpace(c.OpenAIModel) == "" {
		return fmt.Errorf("OPENAI_MODEL is required")
	}
	return nil
}

// HasDatabase reports whether history persistence is configured.
func (c *Config) HasDatabase() bool {
	return c != nil && strings.TrimSpace(c.DatabaseURL) != ""
}

func (c *Config) CORSAllowedOriginsList() []string {
	if c == nil {
		return nil
	}

	parts := strings.Split(c.CORSAllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin == "" {
			continue
		}
		if _, exists := seen[origin]; exists {
			continue
		}
		seen[origin] = struct{}{}
		origins = append(origins, origin)
	}
	return origins
}
