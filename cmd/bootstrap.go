package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Conceptual-Machines/tweetcraft-api/internal/config"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/database"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/llm"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/logger"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/metrics"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/services"
	"github.com/getsentry/sentry-go"
)

const sentryFlushTimeout = 2 * time.Second

// app holds the process-wide clients shared by every subcommand
type app struct {
	cfg      *config.Config
	recorder metrics.Recorder
	store    database.Store // nil when DATABASE_URL is empty
	service  *services.TweetService
}

// loadConfig reads and validates the environment and configures logging
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)
	return cfg, nil
}

// newApp builds the LLM client, the optional preference store and the pipeline
func newApp(ctx context.Context, cfg *config.Config, recorder metrics.Recorder) (*app, error) {
	factory := llm.NewProviderFactory(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.GeminiAPIKey)
	provider, err := factory.GetProvider(ctx, cfg.Model, cfg.LLMProvider)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM provider: %w", err)
	}
	client := llm.NewClient(provider, cfg.Model, recorder)

	a := &app{cfg: cfg, recorder: recorder}

	var preferences *services.PreferenceRecorder
	if cfg.DatabaseURL != "" {
		store, err := database.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		a.store = store
		preferences = services.NewPreferenceRecorder(store, cfg.PersistAttempts, cfg.PersistBackoff)
		logger.Info("Preference persistence enabled", logger.Fields{"driver": store.Driver()})
	} else {
		preferences = services.NewPreferenceRecorder(services.NopPreferenceStore{}, cfg.PersistAttempts, cfg.PersistBackoff)
		logger.Warn("DATABASE_URL not set, preferences are not persisted", nil)
	}

	a.service = services.NewTweetService(client, services.NewScoreParser(cfg.QualityScoreMode), preferences, recorder)
	return a, nil
}

// Close releases the preference store
func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			logger.Warn("Failed to close database", logger.Fields{"error": err.Error()})
		}
	}
}

// initSentry configures the global Sentry client. It returns false when no DSN is set.
func initSentry(cfg *config.Config, version string) bool {
	if cfg.SentryDSN == "" {
		log.Println("⚠️  Sentry not configured (SENTRY_DSN not set)")
		return false
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          "tweetcraft-api@" + version,
		EnableTracing:    true,
		TracesSampleRate: 1.0,
		EnableLogs:       true,
		Debug:            !cfg.IsProduction(),
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			if event.Request != nil {
				event.Request.Headers = filterSensitiveHeaders(event.Request.Headers)
			}
			return event
		},
	}); err != nil {
		log.Printf("Failed to initialize Sentry: %v", err)
		return false
	}

	log.Printf("✅ Sentry initialized (environment: %s, release: %s)", cfg.Environment, version)
	return true
}

var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"x-api-key":     true,
}

func filterSensitiveHeaders(headers map[string]string) map[string]string {
	filtered := make(map[string]string, len(headers))
	for k, v := range headers {
		if sensitiveHeaders[strings.ToLower(k)] {
			filtered[k] = "[REDACTED]"
		} else {
			filtered[k] = v
		}
	}
	return filtered
}
