// Package main implements the entry point for the vocab-api server, a
// spaced-repetition vocabulary trainer with LLM-assisted word enrichment.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/lpetrosyan/vocab-api/internal/config"
	"github.com/lpetrosyan/vocab-api/internal/platform/logger"
	"github.com/lpetrosyan/vocab-api/internal/platform/postgres"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command instead of the server (up, status)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.Setup(cfg.Server)
	slog.SetDefault(appLogger)

	appLogger.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Bool("generation_enabled", cfg.LLM.Enabled()))

	ctx := context.Background()

	db, err := openDatabase(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if *migrateCmd != "" {
		if err := runMigrationCommand(ctx, db, *migrateCmd); err != nil {
			appLogger.Error("migration failed", "command", *migrateCmd, "error", err)
			os.Exit(1)
		}
		return
	}

	// The server always runs against a fully migrated schema.
	if err := postgres.MigrateUp(ctx, db); err != nil {
		appLogger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		appLogger.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		appLogger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func runMigrationCommand(ctx context.Context, db *sql.DB, command string) error {
	switch command {
	case "up":
		return postgres.MigrateUp(ctx, db)
	case "status":
		return postgres.MigrateStatus(ctx, db)
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
}
