package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskr-api/internal/config"
	"github.com/phrazzld/taskr-api/internal/platform/postgres"
	"github.com/phrazzld/taskr-api/internal/service"
	"github.com/phrazzld/taskr-api/internal/store"
)

// application holds the dependencies shared by the HTTP layer.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	taskStore   store.TaskStore
	taskService service.TaskService
}

// newApplication wires stores and services on top of an established database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.taskStore = postgres.NewPostgresTaskStore(db, logger)

	var err error
	app.taskService, err = service.NewTaskService(app.taskStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the HTTP server and blocks until ctx is cancelled or the server fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
