package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskr-api/internal/platform/postgres/migrations"
	"github.com/phrazzld/taskr-api/internal/redact"
	"github.com/pressly/goose/v3"
)

// migrationCommands lists the values accepted by the -migrate flag.
var migrationCommands = map[string]func(db *sql.DB, dir string) error{
	"up":      func(db *sql.DB, dir string) error { return goose.Up(db, dir) },
	"down":    func(db *sql.DB, dir string) error { return goose.Down(db, dir) },
	"status":  func(db *sql.DB, dir string) error { return goose.Status(db, dir) },
	"reset":   func(db *sql.DB, dir string) error { return goose.Reset(db, dir) },
	"version": func(db *sql.DB, dir string) error { return goose.Version(db, dir) },
}

// runMigrations executes a goose command against the embedded migration files.
func runMigrations(db *sql.DB, command string, logger *slog.Logger) error {
	migrate, ok := migrationCommands[command]
	if !ok {
		return fmt.Errorf("unknown migration command %q", command)
	}

	migrationLogger := logger.With("component", "migrations", "command", command)
	goose.SetLogger(&slogGooseLogger{logger: migrationLogger})
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	migrationLogger.Info("Running migration command")
	if err := migrate(db, migrations.Dir); err != nil {
		migrationLogger.Error("Migration failed", "error", redact.Error(err))
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	migrationLogger.Info("Migration command completed")
	return nil
}

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf logs at error level without exiting; the caller handles the returned error.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}
