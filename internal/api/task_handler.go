package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskr-api/internal/api/shared"
	"github.com/phrazzld/taskr-api/internal/config"
	"github.com/phrazzld/taskr-api/internal/platform/logger"
	"github.com/phrazzld/taskr-api/internal/service"
)

// TaskIDParam is the name of the task ID path parameter.
const TaskIDParam = "id"

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	pagination  config.PaginationConfig
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
// Zero pagination values fall back to a default page size of 10 and a
// maximum of 100.
func NewTaskHandler(
	taskService service.TaskService,
	pagination config.PaginationConfig,
	logger *slog.Logger,
) *TaskHandler {
	if taskService == nil {
		panic("taskService cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if pagination.MaxPerPage <= 0 {
		pagination.MaxPerPage = 100
	}
	if pagination.DefaultPerPage <= 0 {
		pagination.DefaultPerPage = min(10, pagination.MaxPerPage)
	}

	return &TaskHandler{
		taskService: taskService,
		pagination:  pagination,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// CreateTask handles POST /tasks requests
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, withRequestFormat(err), "")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	fields, err := req.ToFields()
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), fields)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("task created via API", slog.Int64("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, CreateTaskResponse{
		Message: MessageTaskCreated,
		Task:    task.ID,
	})
}

// GetTask handles GET /tasks/{id} requests
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, TaskIDParam)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GetTaskResponse{Task: taskToResponse(task)})
}

// UpdateTask handles PUT /tasks/{id} requests.
// Only the supplied fields change; the request is validated before the task
// is looked up.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, TaskIDParam)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, withRequestFormat(err), "")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	fields, err := req.ToFields()
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if _, err := h.taskService.UpdateTask(r.Context(), id, fields); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("task updated via API", slog.Int64("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: MessageTaskUpdated})
}

// DeleteTask handles DELETE /tasks/{id} requests
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, TaskIDParam)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("task deleted via API", slog.Int64("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: MessageTaskDeleted})
}

// ListTasks handles GET /tasks?page=&per_page= requests
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	req, err := parsePageRequest(r, h.pagination.DefaultPerPage, h.pagination.MaxPerPage)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := h.taskService.ListTasks(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, pageToResponse(page))
}
