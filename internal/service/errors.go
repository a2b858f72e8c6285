package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check for them with errors.Is(); the API layer maps them to HTTP
// status codes.
var (
	// ErrTaskNotFound indicates that the task does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrTaskNotFound = errors.New("task not found")
)
