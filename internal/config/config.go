package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultModel         = "llama-3.3-70b-versatile"
	defaultOpenAIBaseURL = "https://api.groq.com/openai/v1"

	// ScoreModeStrict parses the quality score as an integer
	ScoreModeStrict = "strict"
	// ScoreModeLegacy keeps the historical regex match
	ScoreModeLegacy = "legacy"
)

// Config holds the application configuration.
// One Config is built at startup and injected into every handler.
type Config struct {
	// Environment
	Environment string
	Port        string
	LogLevel    string
	LogFormat   string

	// LLM provider
	LLMProvider   string // "openai" (any OpenAI-compatible endpoint, Groq by default) or "gemini"
	Model         string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	GeminiAPIKey  string

	// Quality gate
	QualityScoreMode string

	// Preference persistence
	DatabaseURL     string // postgres://... or sqlite:path; empty disables persistence
	PersistAttempts int
	PersistBackoff  time.Duration

	// Observability
	SentryDSN         string
	LangfusePublicKey string
	LangfuseSecretKey string
	LangfuseHost      string
	LangfuseEnabled   bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
		LLMProvider:       strings.ToLower(getEnv("LLM_PROVIDER", "openai")),
		Model:             getEnv("LLM_MODEL", defaultModel),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", getEnv("GROQ_API_KEY", "")),
		OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", defaultOpenAIBaseURL),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		QualityScoreMode:  strings.ToLower(getEnv("QUALITY_SCORE_MODE", ScoreModeStrict)),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		LangfusePublicKey: getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey: getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseHost:      getEnv("LANGFUSE_HOST", "https://cloud.langfuse.com"),
		LangfuseEnabled:   getEnv("LANGFUSE_ENABLED", "false") == "true",
	}

	var err error
	cfg.PersistAttempts, err = strconv.Atoi(getEnv("PERSIST_ATTEMPTS", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid PERSIST_ATTEMPTS: %w", err)
	}
	cfg.PersistBackoff, err = time.ParseDuration(getEnv("PERSIST_BACKOFF", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid PERSIST_BACKOFF: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	switch c.LLMProvider {
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY (or GROQ_API_KEY) is required for provider openai")
		}
	case "gemini":
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for provider gemini")
		}
	default:
		return fmt.Errorf("unknown LLM_PROVIDER: %s (allowed: openai, gemini)", c.LLMProvider)
	}

	if c.QualityScoreMode != ScoreModeStrict && c.QualityScoreMode != ScoreModeLegacy {
		return fmt.Errorf("invalid QUALITY_SCORE_MODE: %s (allowed: strict, legacy)", c.QualityScoreMode)
	}
	if c.PersistAttempts < 1 {
		return fmt.Errorf("PERSIST_ATTEMPTS must be at least 1")
	}
	if c.PersistBackoff < 0 {
		return fmt.Errorf("PERSIST_BACKOFF must not be negative")
	}
	return nil
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
