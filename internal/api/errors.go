package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/taskr-api/internal/api/shared"
	"github.com/phrazzld/taskr-api/internal/domain"
	"github.com/phrazzld/taskr-api/internal/redact"
	"github.com/phrazzld/taskr-api/internal/service"
	"github.com/phrazzld/taskr-api/internal/store"
)

// ErrInvalidRequestFormat indicates a request body that could not be decoded.
var ErrInvalidRequestFormat = errors.New("invalid request format")

// unexpectedErrorMessage prefixes the description of errors no other rule matches.
const unexpectedErrorMessage = "An unexpected error occurred"

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusInternalServerError

	// Bad request errors
	case errors.Is(err, ErrInvalidRequestFormat),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidPagination),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, service.ErrTaskNotFound),
		store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsConstraintError(err):
		return http.StatusConflict

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for err.
// Validation messages name the offending field; unexpected errors carry a
// redacted description.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return unexpectedErrorMessage
	}

	var (
		missingErr    *domain.MissingFieldError
		formatErr     *domain.FormatError
		paginationErr *domain.PaginationError
		validationErr *domain.ValidationError
	)

	switch {
	case errors.Is(err, ErrInvalidRequestFormat):
		return "Invalid request format"

	case errors.As(err, &missingErr):
		return "Missing required field: " + missingErr.Field

	case errors.As(err, &formatErr):
		return fmt.Sprintf("Invalid %s format, expected %s", formatErr.Field, formatErr.Format)

	case errors.As(err, &paginationErr):
		return fmt.Sprintf("Invalid pagination parameter %s: %s", paginationErr.Param, paginationErr.Message)

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid task ID"

	case errors.As(err, &validationErr):
		if validationErr.Field == "" {
			return "Invalid request: " + validationErr.Message
		}
		return fmt.Sprintf("Invalid %s: %s", validationErr.Field, validationErr.Message)

	case errors.Is(err, domain.ErrValidation):
		return "Invalid request"

	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound):
		return "Task not found"

	case errors.Is(err, store.ErrDuplicate):
		return "Task conflicts with an existing record"

	case errors.Is(err, store.ErrConstraintViolation):
		return "Task violates a data integrity rule"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid task data"

	default:
		description := strings.TrimSpace(redact.Error(err))
		if description == "" {
			return unexpectedErrorMessage
		}
		return unexpectedErrorMessage + ": " + description
	}
}

// HandleAPIError writes the error response for err: the status comes from
// MapErrorToStatusCode and the message from GetSafeErrorMessage unless
// message is non-empty.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// withRequestFormat marks a body decoding failure as ErrInvalidRequestFormat.
func withRequestFormat(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidRequestFormat, err)
}
