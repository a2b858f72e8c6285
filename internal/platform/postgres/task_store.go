package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/taskr-api/internal/domain"
	"github.com/phrazzld/taskr-api/internal/platform/logger"
	"github.com/phrazzld/taskr-api/internal/redact"
	"github.com/phrazzld/taskr-api/internal/store"
)

const taskColumns = `id, title, description, due_date, status, created_at, updated_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	sqlDB  *sql.DB // nil when bound to a transaction
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	sqlDB, _ := db.(*sql.DB)

	return &PostgresTaskStore{
		db:     db,
		sqlDB:  sqlDB,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// WithTx returns a new task store bound to the given transaction.
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{
		db:     tx,
		logger: s.logger,
	}
}

// RunInTx implements store.TaskStore.RunInTx.
// A store already bound to a transaction runs fn inside that transaction.
func (s *PostgresTaskStore) RunInTx(
	ctx context.Context,
	fn func(ctx context.Context, txStore store.TaskStore) error,
) error {
	if s.sqlDB == nil {
		return fn(ctx, s)
	}

	return store.RunInTransaction(ctx, s.sqlDB, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, s.WithTx(tx))
	})
}

// Create implements store.TaskStore.Create
// It inserts the task and populates its ID and timestamps from the database.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO tasks (title, description, due_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.DueDate,
		string(task.Status),
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		log.Error("failed to create task", slog.String("error", redact.Error(err)))
		return taskStoreError("create", "failed to insert task", err)
	}

	log.Info("task created successfully",
		slog.Int64("task_id", task.ID),
		slog.String("status", string(task.Status)))
	return nil
}

// GetByID implements store.TaskStore.GetByID
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving task by ID", slog.Int64("task_id", id))

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found", slog.Int64("task_id", id))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by ID",
			slog.String("error", redact.Error(err)),
			slog.Int64("task_id", id))
		return nil, taskStoreError("get", "failed to select task", err)
	}

	return task, nil
}

// Update implements store.TaskStore.Update
// Every mutable column is written; updated_at is refreshed by the database.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return err
	}

	query := `
		UPDATE tasks
		SET title = $1, description = $2, due_date = $3, status = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.DueDate,
		string(task.Status),
		task.ID,
	).Scan(&task.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found for update", slog.Int64("task_id", task.ID))
			return store.ErrTaskNotFound
		}
		log.Error("failed to update task",
			slog.String("error", redact.Error(err)),
			slog.Int64("task_id", task.ID))
		return taskStoreError("update", "failed to update task", err)
	}

	log.Info("task updated successfully",
		slog.Int64("task_id", task.ID),
		slog.String("status", string(task.Status)))
	return nil
}

// Delete implements store.TaskStore.Delete
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", redact.Error(err)),
			slog.Int64("task_id", id))
		return taskStoreError("delete", "failed to delete task", err)
	}

	if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			log.Debug("task not found for delete", slog.Int64("task_id", id))
		} else {
			log.Error("failed to confirm task deletion",
				slog.String("error", redact.Error(err)),
				slog.Int64("task_id", id))
		}
		return err
	}

	log.Info("task deleted successfully", slog.Int64("task_id", id))
	return nil
}

// List implements store.TaskStore.List
// Tasks are ordered by ID ascending. Returns an empty slice if no tasks match.
func (s *PostgresTaskStore) List(ctx context.Context, limit, offset int) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		return []*domain.Task{}, nil
	}
	if offset < 0 {
		offset = 0
	}

	log.Debug("listing tasks", slog.Int("limit", limit), slog.Int("offset", offset))

	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY id ASC LIMIT $1 OFFSET $2`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		log.Error("failed to query tasks", slog.String("error", redact.Error(err)))
		return nil, taskStoreError("list", "failed to query tasks", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", redact.Error(err)))
		}
	}()

	tasks := []*domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row", slog.String("error", redact.Error(err)))
			return nil, taskStoreError("list", "failed to scan task row", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", redact.Error(err)))
		return nil, taskStoreError("list", "failed to iterate task rows", err)
	}

	log.Debug("listed tasks", slog.Int("count", len(tasks)))
	return tasks, nil
}

// Count implements store.TaskStore.Count
func (s *PostgresTaskStore) Count(ctx context.Context) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&count); err != nil {
		log.Error("failed to count tasks", slog.String("error", redact.Error(err)))
		return 0, taskStoreError("count", "failed to count tasks", err)
	}

	return count, nil
}

// taskStoreError maps a database error and annotates it with the failed operation.
func taskStoreError(operation, message string, err error) error {
	return store.NewStoreError("task", operation, message, MapError(err))
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	var status string

	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.DueDate,
		&status,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Status = domain.TaskStatus(status)
	task.DueDate = domain.TruncateToDate(task.DueDate)
	return &task, nil
}
