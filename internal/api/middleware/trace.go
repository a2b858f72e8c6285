// Package middleware provides HTTP middleware shared by all routes.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/taskr-api/internal/api/shared"
	"github.com/phrazzld/taskr-api/internal/platform/logger"
)

// NewTraceMiddleware returns middleware that assigns a trace ID to each
// request, stores a request-scoped logger carrying that ID in the context,
// echoes the ID in the X-Trace-ID header, and logs request completion.
// It should be applied early so every later handler sees the trace ID.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			if requestID := chimiddleware.GetReqID(ctx); requestID != "" {
				log = log.With(slog.String("request_id", requestID))
			}
			ctx = logger.WithLogger(ctx, log)

			w.Header().Set(shared.TraceIDHeader, traceID)
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(ww, r.WithContext(ctx))

			log.Info("request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)))
		})
	}
}
