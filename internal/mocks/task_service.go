package mocks

import (
	"context"

	"github.com/phrazzld/taskr-api/internal/domain"
)

// MockTaskService implements service.TaskService for testing
type MockTaskService struct {
	// Custom behavior functions
	CreateTaskFn func(ctx context.Context, fields domain.TaskFields) (*domain.Task, error)
	GetTaskFn    func(ctx context.Context, id int64) (*domain.Task, error)
	UpdateTaskFn func(ctx context.Context, id int64, fields domain.TaskFields) (*domain.Task, error)
	DeleteTaskFn func(ctx context.Context, id int64) error
	ListTasksFn  func(ctx context.Context, req domain.PageRequest) (*domain.TaskPage, error)

	// Default return values
	Task         *domain.Task
	Page         *domain.TaskPage
	DefaultError error
}

// CreateTask implements the TaskService.CreateTask method
func (m *MockTaskService) CreateTask(ctx context.Context, fields domain.TaskFields) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, fields)
	}
	return m.Task, m.DefaultError
}

// GetTask implements the TaskService.GetTask method
func (m *MockTaskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, id)
	}
	return m.Task, m.DefaultError
}

// UpdateTask implements the TaskService.UpdateTask method
func (m *MockTaskService) UpdateTask(ctx context.Context, id int64, fields domain.TaskFields) (*domain.Task, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, id, fields)
	}
	return m.Task, m.DefaultError
}

// DeleteTask implements the TaskService.DeleteTask method
func (m *MockTaskService) DeleteTask(ctx context.Context, id int64) error {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, id)
	}
	return m.DefaultError
}

// ListTasks implements the TaskService.ListTasks method
func (m *MockTaskService) ListTasks(ctx context.Context, req domain.PageRequest) (*domain.TaskPage, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx, req)
	}
	return m.Page, m.DefaultError
}
