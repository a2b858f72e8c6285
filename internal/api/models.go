package api

import (
	"github.com/phrazzld/taskr-api/internal/domain"
)

// Response messages for mutating endpoints.
const (
	MessageTaskCreated = "Task created successfully"
	MessageTaskUpdated = "Task updated successfully"
	MessageTaskDeleted = "Task deleted successfully"
)

// CreateTaskRequest defines the payload for POST /tasks.
// Pointer fields distinguish an absent field from an empty one.
type CreateTaskRequest struct {
	Title       *string `json:"title"       validate:"required,min=1,max=80"`
	Description *string `json:"description" validate:"required,min=1,max=255"`
	DueDate     *string `json:"due_date"    validate:"required,date"`
	Status      *string `json:"status"      validate:"omitnil,oneof=incomplete in_progress completed"`
}

// UpdateTaskRequest defines the payload for PUT /tasks/{id}.
// Every field is optional; supplied fields obey the same rules as on create.
type UpdateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitnil,min=1,max=80"`
	Description *string `json:"description" validate:"omitnil,min=1,max=255"`
	DueDate     *string `json:"due_date"    validate:"omitnil,date"`
	Status      *string `json:"status"      validate:"omitnil,oneof=incomplete in_progress completed"`
}

// ToFields converts the request into domain.TaskFields.
func (r CreateTaskRequest) ToFields() (domain.TaskFields, error) {
	return toTaskFields(r.Title, r.Description, r.DueDate, r.Status)
}

// ToFields converts the request into domain.TaskFields.
func (r UpdateTaskRequest) ToFields() (domain.TaskFields, error) {
	return toTaskFields(r.Title, r.Description, r.DueDate, r.Status)
}

func toTaskFields(title, description, dueDate, status *string) (domain.TaskFields, error) {
	fields := domain.TaskFields{
		Title:       title,
		Description: description,
	}

	if dueDate != nil {
		date, err := domain.ParseDueDate(*dueDate)
		if err != nil {
			return domain.TaskFields{}, err
		}
		fields.DueDate = &date
	}

	if status != nil {
		parsed, err := domain.ParseTaskStatus(*status)
		if err != nil {
			return domain.TaskFields{}, err
		}
		fields.Status = &parsed
	}

	return fields, nil
}

// TaskResponse is the wire representation of a task.
type TaskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
}

// GetTaskResponse is the body of GET /tasks/{id}.
type GetTaskResponse struct {
	Task TaskResponse `json:"task"`
}

// CreateTaskResponse is the body of POST /tasks.
type CreateTaskResponse struct {
	Message string `json:"message"`
	Task    int64  `json:"task"`
}

// MessageResponse is the body of PUT and DELETE /tasks/{id}.
type MessageResponse struct {
	Message string `json:"message"`
}

// TaskListResponse is the body of GET /tasks.
type TaskListResponse struct {
	Tasks      []TaskResponse `json:"tasks"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
	TotalPages int            `json:"total_pages"`
	TotalItems int            `json:"total_items"`
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.FormattedDueDate(),
		Status:      string(task.Status),
	}
}

// pageToResponse converts a domain.TaskPage to a TaskListResponse
func pageToResponse(page *domain.TaskPage) TaskListResponse {
	tasks := make([]TaskResponse, 0, len(page.Tasks))
	for _, task := range page.Tasks {
		tasks = append(tasks, taskToResponse(task))
	}

	return TaskListResponse{
		Tasks:      tasks,
		Page:       page.Page,
		PerPage:    page.PerPage,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
	}
}
