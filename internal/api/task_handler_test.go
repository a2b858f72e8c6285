package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/taskr-api/internal/api"
	"github.com/phrazzld/taskr-api/internal/api/shared"
	"github.com/phrazzld/taskr-api/internal/config"
	"github.com/phrazzld/taskr-api/internal/domain"
	"github.com/phrazzld/taskr-api/internal/mocks"
	"github.com/phrazzld/taskr-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ service.TaskService = (*mocks.MockTaskService)(nil)

const validTaskJSON = `{"title":"Write report","description":"Quarterly numbers","due_date":"2024-01-15"}`

func newRouter(taskService service.TaskService) http.Handler {
	handler := api.NewTaskHandler(taskService, config.PaginationConfig{DefaultPerPage: 10, MaxPerPage: 100}, nil)

	r := chi.NewRouter()
	r.Route("/tasks", func(r chi.Router) {
		r.Post("/", handler.CreateTask)
		r.Get("/", handler.ListTasks)
		r.Get("/{id}", handler.GetTask)
		r.Put("/{id}", handler.UpdateTask)
		r.Delete("/{id}", handler.DeleteTask)
	})
	return r
}

func newStoreBackedRouter(t *testing.T) http.Handler {
	t.Helper()
	taskService, err := service.NewTaskService(mocks.NewMockTaskStore(), nil)
	require.NoError(t, err)
	return newRouter(taskService)
}

func do(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req = req.WithContext(shared.WithTraceID(req.Context(), "test-trace"))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "test-trace", body.TraceID)
	return body
}

func createTask(t *testing.T, router http.Handler, body string) int64 {
	t.Helper()
	rr := do(t, router, http.MethodPost, "/tasks", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp api.CreateTaskResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, api.MessageTaskCreated, resp.Message)
	return resp.Task
}

func TestTaskHandler_CreateAndGet(t *testing.T) {
	router := newStoreBackedRouter(t)

	first := createTask(t, router, validTaskJSON)
	second := createTask(t, router, `{"title":"Plan","description":"Sprint plan","due_date":"2024-02-01","status":"in_progress"}`)
	assert.NotEqual(t, first, second)

	rr := do(t, router, http.MethodGet, fmt.Sprintf("/tasks/%d", first), "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		fmt.Sprintf(`{"task":{"id":%d,"title":"Write report","description":"Quarterly numbers","due_date":"2024-01-15","status":"incomplete"}}`, first),
		rr.Body.String())

	rr = do(t, router, http.MethodGet, fmt.Sprintf("/tasks/%d", second), "")
	require.Equal(t, http.StatusOK, rr.Code)
	var resp api.GetTaskResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "in_progress", resp.Task.Status)
}

func TestTaskHandler_CreateValidation(t *testing.T) {
	router := newStoreBackedRouter(t)

	tests := []struct {
		name            string
		body            string
		expectedMessage string
	}{
		{
			name:            "missing title",
			body:            `{"description":"d","due_date":"2024-01-15"}`,
			expectedMessage: "Missing required field: title",
		},
		{
			name:            "missing description",
			body:            `{"title":"t","due_date":"2024-01-15"}`,
			expectedMessage: "Missing required field: description",
		},
		{
			name:            "missing due date",
			body:            `{"title":"t","description":"d"}`,
			expectedMessage: "Missing required field: due_date",
		},
		{
			name:            "wrong date format",
			body:            `{"title":"t","description":"d","due_date":"01-01-2024"}`,
			expectedMessage: "Invalid due_date format, expected YYYY-MM-DD",
		},
		{
			name:            "empty title",
			body:            `{"title":"","description":"d","due_date":"2024-01-15"}`,
			expectedMessage: "Invalid title: cannot be empty",
		},
		{
			name:            "blank title",
			body:            `{"title":"   ","description":"d","due_date":"2024-01-15"}`,
			expectedMessage: "Invalid title: cannot be empty",
		},
		{
			name:            "title too long",
			body:            `{"title":"` + strings.Repeat("x", 81) + `","description":"d","due_date":"2024-01-15"}`,
			expectedMessage: "Invalid title: must be at most 80 characters",
		},
		{
			name:            "description too long",
			body:            `{"title":"t","description":"` + strings.Repeat("x", 256) + `","due_date":"2024-01-15"}`,
			expectedMessage: "Invalid description: must be at most 255 characters",
		},
		{
			name:            "unknown status",
			body:            `{"title":"t","description":"d","due_date":"2024-01-15","status":"archived"}`,
			expectedMessage: "Invalid status: must be one of incomplete, in_progress, completed",
		},
		{
			name:            "malformed json",
			body:            `{"title":`,
			expectedMessage: "Invalid request format",
		},
		{
			name:            "wrong field type",
			body:            `{"title":5,"description":"d","due_date":"2024-01-15"}`,
			expectedMessage: "Invalid request format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, router, http.MethodPost, "/tasks", tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.expectedMessage, decodeError(t, rr).Error)
		})
	}

	t.Run("boundary lengths are accepted", func(t *testing.T) {
		body := `{"title":"` + strings.Repeat("x", 80) + `","description":"` + strings.Repeat("y", 255) + `","due_date":"2024-01-15"}`
		createTask(t, router, body)
	})

	t.Run("earliest calendar date is a valid due date", func(t *testing.T) {
		id := createTask(t, router, `{"title":"a","description":"b","due_date":"0001-01-01"}`)

		rr := do(t, router, http.MethodGet, fmt.Sprintf("/tasks/%d", id), "")
		require.Equal(t, http.StatusOK, rr.Code)

		var resp api.GetTaskResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "0001-01-01", resp.Task.DueDate)
	})

	t.Run("empty body", func(t *testing.T) {
		rr := do(t, router, http.MethodPost, "/tasks", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid request format", decodeError(t, rr).Error)
	})
}

func TestTaskHandler_Update(t *testing.T) {
	router := newStoreBackedRouter(t)
	id := createTask(t, router, validTaskJSON)
	target := fmt.Sprintf("/tasks/%d", id)

	rr := do(t, router, http.MethodPut, target, `{"status":"completed"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Task updated successfully"}`, rr.Body.String())

	rr = do(t, router, http.MethodGet, target, "")
	var resp api.GetTaskResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Task.Status)
	assert.Equal(t, "Write report", resp.Task.Title)
	assert.Equal(t, "2024-01-15", resp.Task.DueDate)

	rr = do(t, router, http.MethodPut, target, `{"due_date":"2025-03-31","title":"Rewrite report"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, router, http.MethodGet, target, "")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Rewrite report", resp.Task.Title)
	assert.Equal(t, "2025-03-31", resp.Task.DueDate)
	assert.Equal(t, "completed", resp.Task.Status)
}

func TestTaskHandler_UpdateErrors(t *testing.T) {
	router := newStoreBackedRouter(t)
	id := createTask(t, router, validTaskJSON)
	target := fmt.Sprintf("/tasks/%d", id)

	tests := []struct {
		name            string
		target          string
		body            string
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "empty update",
			target:          target,
			body:            `{}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid request: at least one field must be supplied",
		},
		{
			name:            "bad date",
			target:          target,
			body:            `{"due_date":"2024/01/15"}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid due_date format, expected YYYY-MM-DD",
		},
		{
			name:            "empty description",
			target:          target,
			body:            `{"description":""}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid description: cannot be empty",
		},
		{
			name:            "unknown status",
			target:          target,
			body:            `{"status":"done"}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid status: must be one of incomplete, in_progress, completed",
		},
		{
			name:            "not found",
			target:          "/tasks/999999",
			body:            `{"title":"x"}`,
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Task not found",
		},
		{
			name:            "validation precedes lookup",
			target:          "/tasks/999999",
			body:            `{"due_date":"tomorrow"}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid due_date format, expected YYYY-MM-DD",
		},
		{
			name:            "invalid id",
			target:          "/tasks/abc",
			body:            `{"title":"x"}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid task ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, router, http.MethodPut, tt.target, tt.body)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedMessage, decodeError(t, rr).Error)
		})
	}
}

func TestTaskHandler_Delete(t *testing.T) {
	router := newStoreBackedRouter(t)
	id := createTask(t, router, validTaskJSON)
	target := fmt.Sprintf("/tasks/%d", id)

	rr := do(t, router, http.MethodDelete, target, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Task deleted successfully"}`, rr.Body.String())

	rr = do(t, router, http.MethodDelete, target, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Task not found", decodeError(t, rr).Error)

	rr = do(t, router, http.MethodGet, target, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestTaskHandler_GetErrors(t *testing.T) {
	router := newStoreBackedRouter(t)

	rr := do(t, router, http.MethodGet, "/tasks/999999", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Task not found", decodeError(t, rr).Error)

	rr = do(t, router, http.MethodGet, "/tasks/not-a-number", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid task ID", decodeError(t, rr).Error)
}

func TestTaskHandler_List(t *testing.T) {
	router := newStoreBackedRouter(t)

	var ids []int64
	for i := 0; i < 5; i++ {
		ids = append(ids, createTask(t, router, validTaskJSON))
	}

	rr := do(t, router, http.MethodGet, "/tasks?page=1&per_page=2", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp api.TaskListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Tasks, 2)
	assert.Equal(t, ids[0], resp.Tasks[0].ID)
	assert.Equal(t, ids[1], resp.Tasks[1].ID)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 2, resp.PerPage)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, 5, resp.TotalItems)

	rr = do(t, router, http.MethodGet, "/tasks", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Tasks, 5)
	assert.Equal(t, 10, resp.PerPage)
	assert.Equal(t, 1, resp.TotalPages)

	rr = do(t, router, http.MethodGet, "/tasks?page=9&per_page=2", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"tasks":[],"page":9,"per_page":2,"total_pages":3,"total_items":5}`, rr.Body.String())

	rr = do(t, router, http.MethodGet, "/tasks?page=4611686018427387905&per_page=4", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`{"tasks":[],"page":4611686018427387905,"per_page":4,"total_pages":2,"total_items":5}`,
		rr.Body.String())

	rr = do(t, router, http.MethodGet, "/tasks?page=9223372036854775807&per_page=100", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`{"tasks":[],"page":9223372036854775807,"per_page":100,"total_pages":1,"total_items":5}`,
		rr.Body.String())

	for _, query := range []string{"page=0", "per_page=-1", "page=abc", "per_page=101"} {
		t.Run(query, func(t *testing.T) {
			rr := do(t, router, http.MethodGet, "/tasks?"+query, "")
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.True(t, strings.HasPrefix(decodeError(t, rr).Error, "Invalid pagination parameter"))
		})
	}
}

func TestTaskHandler_ListEmpty(t *testing.T) {
	rr := do(t, newStoreBackedRouter(t), http.MethodGet, "/tasks", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"tasks":[],"page":1,"per_page":10,"total_pages":0,"total_items":0}`, rr.Body.String())
}

func TestTaskHandler_UnexpectedErrors(t *testing.T) {
	failure := errors.New("query failed: SELECT id FROM tasks WHERE id = $1")
	taskService := &mocks.MockTaskService{DefaultError: failure}
	router := newRouter(taskService)

	for _, tc := range []struct {
		method, target, body string
	}{
		{http.MethodPost, "/tasks", validTaskJSON},
		{http.MethodGet, "/tasks/1", ""},
		{http.MethodPut, "/tasks/1", `{"title":"x"}`},
		{http.MethodDelete, "/tasks/1", ""},
		{http.MethodGet, "/tasks", ""},
	} {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			rr := do(t, router, tc.method, tc.target, tc.body)

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			body := decodeError(t, rr)
			assert.Equal(t, "An unexpected error occurred: query failed: [REDACTED_SQL]", body.Error)
		})
	}
}

func TestTaskHandler_PassesParsedFieldsToService(t *testing.T) {
	var captured domain.TaskFields
	taskService := &mocks.MockTaskService{
		UpdateTaskFn: func(ctx context.Context, id int64, fields domain.TaskFields) (*domain.Task, error) {
			assert.Equal(t, int64(7), id)
			captured = fields
			return &domain.Task{ID: id}, nil
		},
	}

	rr := do(t, newRouter(taskService), http.MethodPut, "/tasks/7", `{"status":"in_progress","due_date":"2024-12-31"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, captured.Title)
	assert.Nil(t, captured.Description)
	require.NotNil(t, captured.Status)
	assert.Equal(t, domain.TaskStatusInProgress, *captured.Status)
	require.NotNil(t, captured.DueDate)
	assert.Equal(t, "2024-12-31", captured.DueDate.Format(domain.DueDateLayout))
}
