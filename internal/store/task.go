package store

import (
	"context"

	"github.com/phrazzld/taskr-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task and populates its ID and timestamps.
	// Returns ErrConstraintViolation or ErrInvalidEntity when the database
	// rejects the row.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Update writes every mutable field of task to the row with task.ID and
	// refreshes task.UpdatedAt. It never inserts.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// List returns at most limit tasks ordered by ID ascending, skipping offset rows.
	// An offset past the end yields an empty slice.
	List(ctx context.Context, limit, offset int) ([]*domain.Task, error)

	// Count returns the total number of stored tasks.
	Count(ctx context.Context) (int, error)

	// RunInTx executes fn with a TaskStore bound to a single transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	RunInTx(ctx context.Context, fn func(ctx context.Context, txStore TaskStore) error) error
}
