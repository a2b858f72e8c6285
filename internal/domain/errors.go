package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrMissingField is returned when a required field was not supplied.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidFormat is returned when data is not in the expected format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidPagination is returned when a page or page size is not a positive integer.
	ErrInvalidPagination = errors.New("invalid pagination parameter")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidTaskStatus is returned when a task status is not one of the known values.
	ErrInvalidTaskStatus = errors.New("invalid task status")

	// ErrNoFieldsToUpdate is returned when an update carries no fields at all.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

// ValidationError describes a single field that failed validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error. ErrValidation is returned when no
// specific cause was recorded so errors.Is(err, ErrValidation) always holds.
func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrValidation
	}
	return e.Err
}

// Is reports whether target is ErrValidation, in addition to the wrapped chain.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// MissingFieldError is returned when a required field is absent from the input.
type MissingFieldError struct {
	Field string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// Unwrap returns ErrMissingField.
func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// Is reports whether target is ErrValidation.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrValidation
}

// NewMissingFieldError creates a MissingFieldError naming field.
func NewMissingFieldError(field string) *MissingFieldError {
	return &MissingFieldError{Field: field}
}

// FormatError is returned when a value does not match the required textual layout.
type FormatError struct {
	Field  string
	Value  string
	Format string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s format %q, expected %s", e.Field, e.Value, e.Format)
}

// Unwrap returns ErrInvalidFormat.
func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}

// Is reports whether target is ErrValidation.
func (e *FormatError) Is(target error) bool {
	return target == ErrValidation
}

// NewFormatError creates a FormatError for field.
func NewFormatError(field, value, format string) *FormatError {
	return &FormatError{
		Field:  field,
		Value:  value,
		Format: format,
	}
}

// PaginationError is returned when a page or per_page parameter is not a
// positive integer within the allowed range.
type PaginationError struct {
	Param   string
	Value   string
	Message string
}

// Error implements the error interface.
func (e *PaginationError) Error() string {
	return fmt.Sprintf("invalid pagination parameter %s=%q: %s", e.Param, e.Value, e.Message)
}

// Unwrap returns ErrInvalidPagination.
func (e *PaginationError) Unwrap() error {
	return ErrInvalidPagination
}

// NewPaginationError creates a PaginationError for param.
func NewPaginationError(param, value, message string) *PaginationError {
	return &PaginationError{
		Param:   param,
		Value:   value,
		Message: message,
	}
}
