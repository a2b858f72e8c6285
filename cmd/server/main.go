// Package main implements the entry point for the Taskr API server,
// which exposes create, read, update, delete and list operations on tasks
// over HTTP and persists them in PostgreSQL.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/taskr-api/internal/config"
	"github.com/phrazzld/taskr-api/internal/platform/logger"
)

// main is the entry point for the taskr-api server.
// With -migrate it runs the requested migration command and exits;
// otherwise it starts the HTTP server.
func main() {
	migrateCmd := flag.String("migrate", "", "Run a database migration command (up, down, status, reset, version) and exit")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("taskr-api: %v", err)
	}
}

func run(migrateCmd string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"auto_migrate", cfg.Database.AutoMigrate)

	db, err := setupAppDatabase(cfg, l)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer func() {
			if err := db.Close(); err != nil {
				l.Error("Error closing database connection", "error", err)
			}
		}()
		return runMigrations(db, migrateCmd, l)
	}

	if cfg.Database.AutoMigrate {
		if err := runMigrations(db, "up", l); err != nil {
			_ = db.Close()
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(cfg, l, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
