package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// TaskStatus represents the progress state of a task.
type TaskStatus string

// Possible task status values
const (
	TaskStatusIncomplete TaskStatus = "incomplete"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Field limits and formats for Task.
const (
	// MaxTitleLength is the maximum number of characters in a task title.
	MaxTitleLength = 80

	// MaxDescriptionLength is the maximum number of characters in a task description.
	MaxDescriptionLength = 255

	// DueDateLayout is the time layout for due dates on the wire (YYYY-MM-DD).
	DueDateLayout = "2006-01-02"

	// DueDateFormat is the human readable form of DueDateLayout.
	DueDateFormat = "YYYY-MM-DD"
)

// Field names as they appear on the wire.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDueDate     = "due_date"
	FieldStatus      = "status"
)

// Task is a to-do item with a due date and a status.
// ID is assigned by the store on creation and never changes afterwards.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     time.Time  `json:"due_date"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaskFields is a normalized set of task fields. A nil pointer means the
// field was not supplied.
type TaskFields struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Status      *TaskStatus
}

// IsEmpty reports whether no field was supplied.
func (f TaskFields) IsEmpty() bool {
	return f.Title == nil && f.Description == nil && f.DueDate == nil && f.Status == nil
}

// NewTask builds a Task from the supplied fields. Title, description and due
// date are required; status defaults to incomplete when omitted.
// Returns a MissingFieldError or ValidationError if validation fails.
func NewTask(fields TaskFields) (*Task, error) {
	switch {
	case fields.Title == nil:
		return nil, NewMissingFieldError(FieldTitle)
	case fields.Description == nil:
		return nil, NewMissingFieldError(FieldDescription)
	case fields.DueDate == nil:
		return nil, NewMissingFieldError(FieldDueDate)
	}

	task := &Task{
		Title:       *fields.Title,
		Description: *fields.Description,
		DueDate:     TruncateToDate(*fields.DueDate),
		Status:      TaskStatusIncomplete,
	}
	if fields.Status != nil {
		task.Status = *fields.Status
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if err := validateText(FieldTitle, t.Title, MaxTitleLength); err != nil {
		return err
	}

	if err := validateText(FieldDescription, t.Description, MaxDescriptionLength); err != nil {
		return err
	}

	if !t.Status.IsValid() {
		return NewValidationError(FieldStatus, "must be one of incomplete, in_progress, completed", ErrInvalidTaskStatus)
	}

	return nil
}

// Apply copies every supplied field onto the task and re-validates it.
// The task is left untouched when validation fails.
func (t *Task) Apply(fields TaskFields) error {
	if fields.IsEmpty() {
		return NewValidationError("", "at least one field must be supplied", ErrNoFieldsToUpdate)
	}

	updated := *t
	if fields.Title != nil {
		updated.Title = *fields.Title
	}
	if fields.Description != nil {
		updated.Description = *fields.Description
	}
	if fields.DueDate != nil {
		updated.DueDate = TruncateToDate(*fields.DueDate)
	}
	if fields.Status != nil {
		updated.Status = *fields.Status
	}

	if err := updated.Validate(); err != nil {
		return err
	}

	*t = updated
	return nil
}

// FormattedDueDate returns the due date in DueDateLayout.
func (t *Task) FormattedDueDate() string {
	return t.DueDate.Format(DueDateLayout)
}

// IsValid reports whether s is one of the known task statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusIncomplete, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// ParseTaskStatus converts a raw string into a TaskStatus.
func ParseTaskStatus(raw string) (TaskStatus, error) {
	status := TaskStatus(raw)
	if !status.IsValid() {
		return "", NewValidationError(FieldStatus, "must be one of incomplete, in_progress, completed", ErrInvalidTaskStatus)
	}
	return status, nil
}

// ParseDueDate parses a YYYY-MM-DD string into a UTC date.
// Returns a FormatError when the value does not match the layout.
func ParseDueDate(raw string) (time.Time, error) {
	date, err := time.Parse(DueDateLayout, raw)
	if err != nil {
		return time.Time{}, NewFormatError(FieldDueDate, raw, DueDateFormat)
	}
	return date, nil
}

// TruncateToDate drops the time-of-day component, keeping the calendar date in UTC.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validateText(field, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(field, "cannot be empty", ErrValidation)
	}
	if utf8.RuneCountInString(value) > maxLen {
		return NewValidationError(field, fmt.Sprintf("must be at most %d characters", maxLen), ErrValidation)
	}
	return nil
}
