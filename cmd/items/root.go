package main

import (
	"fmt"

	"github.com/deppfellow/items-api/internal/config"
	"github.com/deppfellow/items-api/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30

var rootCmd = &cobra.Command{
	Use:   "items",
	Short: "Items CRUD API over PostgreSQL",
	Long: `items serves a JSON CRUD API for a single "items" table.

Configuration comes from POSTGRES_USER, POSTGRES_PASSWORD, POSTGRES_DB,
POSTGRES_HOST and POSTGRES_PORT, plus ITEMS_* variables for everything else.
Running without a subcommand is the same as "items serve".`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// bootstrap loads configuration and builds the root logger shared by every subcommand.
func bootstrap() (*config.Config, *logger.LoggerService, zerolog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, zerolog.Logger{}, fmt.Errorf("failed to load config: %w", err)
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	return cfg, loggerService, log, nil
}
