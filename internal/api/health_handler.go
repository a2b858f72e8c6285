package api

import (
	"context"
	"net/http"
	"time"

	"github.com/phrazzld/taskr-api/internal/api/shared"
)

// Pinger reports whether a backing dependency is reachable.
// *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is the body of a successful GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// HealthHandler serves GET /health.
type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

// NewHealthHandler creates a HealthHandler that pings db with the given timeout.
func NewHealthHandler(db Pinger, timeout time.Duration) *HealthHandler {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &HealthHandler{db: db, timeout: timeout}
}

// Check responds 200 when the database answers a ping and 503 otherwise.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, "Database unavailable", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}
