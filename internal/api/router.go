package api

import (
	"github.com/Conceptual-Machines/tweetcraft-api/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/tweetcraft-api/internal/api/middleware"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/config"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/metrics"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/observability"
	"github.com/gin-gonic/gin"
)

// Dependencies are the process-wide clients built once at startup
type Dependencies struct {
	Pipeline handlers.TweetPipeline
	Database handlers.Pinger // nil when persistence is disabled
	Driver   string          // preference store driver, empty when disabled
	Metrics  metrics.Recorder
	Langfuse *observability.LangfuseClient
}

func SetupRouter(cfg *config.Config, deps Dependencies, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(deps.Metrics))

	// One Langfuse trace per request
	router.Use(apimiddleware.LangfuseTrace(deps.Langfuse))

	router.Use(apimiddleware.CORS())

	// Health check
	healthHandler := handlers.NewHealthHandler(deps.Database, cfg.LLMProvider, cfg.Model)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	persistence := "disabled"
	if deps.Driver != "" {
		persistence = deps.Driver
	}
	metricsHandler := handlers.NewMetricsHandler(version,
		handlers.LLMInfo{Provider: cfg.LLMProvider, Model: cfg.Model},
		handlers.PipelineInfo{
			QualityScoreMode: cfg.QualityScoreMode,
			Persistence:      persistence,
			PersistAttempts:  cfg.PersistAttempts,
		})
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// Tweet pipeline
	api := router.Group("/api")
	{
		tweetHandler := handlers.NewTweetHandler(deps.Pipeline)
		api.POST("/gen-tweets", tweetHandler.GenerateTweet)
		api.POST("/qc", tweetHandler.QualityCheck)
		api.POST("/gatekeeper", tweetHandler.Gatekeeper)
		api.POST("/rand-tweet", tweetHandler.RandomTweet)
		api.POST("/detailscheck", tweetHandler.DetailsCheck)
	}

	return router
}
