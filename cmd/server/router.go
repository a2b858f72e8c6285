package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/handlers"
	"github.com/phrazzld/taskr-api/internal/api"
	apimiddleware "github.com/phrazzld/taskr-api/internal/api/middleware"
)

const healthCheckTimeout = 2 * time.Second

// setupRouter creates the HTTP router with the middleware chain and task routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(apimiddleware.NewTraceMiddleware(app.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(time.Duration(app.config.Server.RequestTimeoutSeconds) * time.Second))

	if origins := app.config.Server.CORSAllowedOrigins; len(origins) > 0 {
		r.Use(handlers.CORS(
			handlers.AllowedOrigins(origins),
			handlers.AllowedMethods([]string{
				http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
			}),
			handlers.AllowedHeaders([]string{"Content-Type", "X-Trace-ID"}),
			handlers.ExposedHeaders([]string{"X-Trace-ID"}),
		))
	}

	taskHandler := api.NewTaskHandler(app.taskService, app.config.Pagination, app.logger)
	healthHandler := api.NewHealthHandler(app.db, healthCheckTimeout)

	r.Get("/health", healthHandler.Check)

	r.Route("/tasks", func(r chi.Router) {
		r.Post("/", taskHandler.CreateTask)
		r.Get("/", taskHandler.ListTasks)
		r.Get("/{"+api.TaskIDParam+"}", taskHandler.GetTask)
		r.Put("/{"+api.TaskIDParam+"}", taskHandler.UpdateTask)
		r.Delete("/{"+api.TaskIDParam+"}", taskHandler.DeleteTask)
	})

	return r
}
