package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Conceptual-Machines/tweetcraft-api/internal/api"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/api/handlers"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/logger"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/metrics"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/observability"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(version string) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}

			if initSentry(cfg, version) {
				defer sentry.Flush(sentryFlushTimeout)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			recorder := metrics.New(ctx, cfg.Environment)
			a, err := newApp(ctx, cfg, recorder)
			if err != nil {
				sentry.CaptureException(err)
				return err
			}
			defer a.Close()

			if cfg.IsProduction() {
				gin.SetMode(gin.ReleaseMode)
			}

			deps := api.Dependencies{
				Pipeline: a.service,
				Metrics:  recorder,
				Langfuse: observability.NewLangfuseClient(ctx, cfg),
			}
			// a nil store must stay a nil interface
			if a.store != nil {
				deps.Database = handlers.Pinger(a.store)
				deps.Driver = a.store.Driver()
			}

			server := &http.Server{
				Addr:              ":" + cfg.Port,
				Handler:           api.SetupRouter(cfg, deps, version),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("Starting server", logger.Fields{
					"port":     cfg.Port,
					"provider": cfg.LLMProvider,
					"model":    cfg.Model,
					"version":  version,
				})
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					sentry.CaptureException(err)
					return err
				}
				return nil
			case <-ctx.Done():
			}

			logger.Info("Shutting down server", nil)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides PORT)")

	return cmd
}
