package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskr-api/internal/domain"
	"github.com/phrazzld/taskr-api/internal/platform/logger"
	"github.com/phrazzld/taskr-api/internal/store"
)

// TaskService provides task-related operations
type TaskService interface {
	// CreateTask validates the supplied fields and persists a new task.
	// The returned task carries the store-assigned ID.
	CreateTask(ctx context.Context, fields domain.TaskFields) (*domain.Task, error)

	// GetTask retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// UpdateTask changes only the supplied fields of an existing task.
	// Validation happens before the task is looked up.
	// Returns ErrTaskNotFound if the task does not exist.
	UpdateTask(ctx context.Context, id int64, fields domain.TaskFields) (*domain.Task, error)

	// DeleteTask permanently removes a task.
	// Returns ErrTaskNotFound if the task does not exist.
	DeleteTask(ctx context.Context, id int64) error

	// ListTasks returns one page of tasks ordered by ID together with the
	// pagination metadata.
	ListTasks(ctx context.Context, req domain.PageRequest) (*domain.TaskPage, error)
}

// TaskServiceError wraps errors from the task service with context.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g., "create_task", "update_task")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
// Not-found errors are returned as ErrTaskNotFound without wrapping.
func NewTaskServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrTaskNotFound) || store.IsNotFoundError(err) {
		return ErrTaskNotFound
	}

	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if taskStore is nil.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "taskStore cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With("component", "task_service"),
	}, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(ctx context.Context, fields domain.TaskFields) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(fields)
	if err != nil {
		log.Debug("task validation failed", "error", err)
		return nil, NewTaskServiceError("create_task", "invalid task data", err)
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		log.Error("failed to save task", "error", err)
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	log.Info("task created", "task_id", task.ID, "status", task.Status)
	return task, nil
}

// GetTask implements TaskService.GetTask
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("task not found", "task_id", id)
			return nil, ErrTaskNotFound
		}
		log.Error("failed to retrieve task", "error", err, "task_id", id)
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}

	return task, nil
}

// UpdateTask implements TaskService.UpdateTask
// The read and the write run in one transaction; concurrent updates are
// last-write-wins.
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id int64,
	fields domain.TaskFields,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if fields.IsEmpty() {
		return nil, NewTaskServiceError(
			"update_task",
			"no fields supplied",
			domain.NewValidationError("", "at least one field must be supplied", domain.ErrNoFieldsToUpdate),
		)
	}

	var updated *domain.Task
	err := s.taskStore.RunInTx(ctx, func(ctx context.Context, txStore store.TaskStore) error {
		task, err := txStore.GetByID(ctx, id)
		if err != nil {
			return NewTaskServiceError("update_task", "failed to retrieve task", err)
		}

		if err := task.Apply(fields); err != nil {
			return NewTaskServiceError("update_task", "invalid task data", err)
		}

		if err := txStore.Update(ctx, task); err != nil {
			return NewTaskServiceError("update_task", "failed to save task", err)
		}

		updated = task
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			log.Debug("task not found for update", "task_id", id)
		} else {
			log.Error("failed to update task", "error", err, "task_id", id)
		}
		return nil, NewTaskServiceError("update_task", "transaction failed", err)
	}

	log.Info("task updated", "task_id", id, "status", updated.Status)
	return updated, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.taskStore.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("task not found for delete", "task_id", id)
			return ErrTaskNotFound
		}
		log.Error("failed to delete task", "error", err, "task_id", id)
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	log.Info("task deleted", "task_id", id)
	return nil
}

// ListTasks implements TaskService.ListTasks
// Pages beyond the last one yield an empty task list with exact metadata.
func (s *taskServiceImpl) ListTasks(ctx context.Context, req domain.PageRequest) (*domain.TaskPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := domain.NewPageRequest(req.Page, req.PerPage, 0); err != nil {
		return nil, NewTaskServiceError("list_tasks", "invalid page request", err)
	}

	total, err := s.taskStore.Count(ctx)
	if err != nil {
		log.Error("failed to count tasks", "error", err)
		return nil, NewTaskServiceError("list_tasks", "failed to count tasks", err)
	}

	// Offset is only computed for in-range pages, where it cannot overflow.
	tasks := []*domain.Task{}
	if req.Page <= domain.TotalPages(total, req.PerPage) {
		tasks, err = s.taskStore.List(ctx, req.PerPage, req.Offset())
		if err != nil {
			log.Error("failed to list tasks", "error", err, "page", req.Page, "per_page", req.PerPage)
			return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
		}
	}

	page := domain.NewTaskPage(req, tasks, total)
	log.Debug("listed tasks",
		"page", page.Page,
		"per_page", page.PerPage,
		"count", len(page.Tasks),
		"total_items", page.TotalItems)
	return page, nil
}
