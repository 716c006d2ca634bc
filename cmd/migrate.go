package cmd

import (
	"fmt"

	"github.com/Conceptual-Machines/tweetcraft-api/internal/config"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/database"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/logger"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the preference table in DATABASE_URL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.Configure(cfg.LogLevel, cfg.LogFormat)
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL is not set")
			}

			store, err := database.Open(cmd.Context(), cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer store.Close()

			if err := store.Migrate(cmd.Context()); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			logger.Info("Migrations complete", logger.Fields{"driver": store.Driver()})
			return nil
		},
	}
}
