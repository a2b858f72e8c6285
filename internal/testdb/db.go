//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/taskr-api/internal/platform/postgres/migrations"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

var (
	schemaOnce sync.Once
	schemaErr  error
)

// GetTestDatabaseURL returns the database URL for tests.
// TASKR_TEST_DATABASE_URL takes precedence over DATABASE_URL.
func GetTestDatabaseURL() string {
	if url := os.Getenv("TASKR_TEST_DATABASE_URL"); url != "" {
		return url
	}
	return os.Getenv("DATABASE_URL")
}

// GetTestDBWithT returns a migrated database connection that is closed when
// the test finishes. The test is skipped when no database URL is configured.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("TASKR_TEST_DATABASE_URL or DATABASE_URL not set - skipping integration test")
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "Failed to open database connection")

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close database connection: %v", err)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "Database ping failed")

	SetupTestDatabaseSchema(t, db)
	return db
}

// SetupTestDatabaseSchema applies the embedded migrations once per test binary.
func SetupTestDatabaseSchema(t *testing.T, db *sql.DB) {
	t.Helper()

	schemaOnce.Do(func() {
		goose.SetLogger(&testGooseLogger{t: t})
		goose.SetBaseFS(migrations.FS)
		if err := goose.SetDialect("postgres"); err != nil {
			schemaErr = fmt.Errorf("failed to set goose dialect: %w", err)
			return
		}
		if err := goose.Up(db, migrations.Dir); err != nil {
			schemaErr = fmt.Errorf("failed to run migrations: %w", err)
		}
	})
	require.NoError(t, schemaErr, "Failed to set up database schema")
}

// WithTx executes a test function within a transaction, automatically rolling back
// after the test completes.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		// sql.ErrTxDone is expected if tx is already committed or rolled back
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}

type testGooseLogger struct {
	t *testing.T
}

func (l *testGooseLogger) Printf(format string, v ...interface{}) {
	l.t.Log("Goose: " + strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *testGooseLogger) Fatalf(format string, v ...interface{}) {
	l.t.Fatal("Goose fatal error: " + strings.TrimSpace(fmt.Sprintf(format, v...)))
}
