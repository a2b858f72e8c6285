package shared

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Key type for context values
type ContextKey string

// TraceIDKey is the key for the trace ID in the request context
const TraceIDKey ContextKey = "traceID"

// TraceIDHeader is the response header carrying the trace ID.
const TraceIDHeader = "X-Trace-ID"

// SetTraceID adds a freshly generated trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return WithTraceID(ctx, generateTraceID())
}

// WithTraceID adds the given trace ID to the context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID returns a random 32-character hex string.
func generateTraceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
