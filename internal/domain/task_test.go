package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func statusPtr(s TaskStatus) *TaskStatus { return &s }

func datePtr(t time.Time) *time.Time { return &t }

func validFields() TaskFields {
	return TaskFields{
		Title:       strPtr("Write report"),
		Description: strPtr("Quarterly numbers"),
		DueDate:     datePtr(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)),
	}
}

func TestNewTask(t *testing.T) {
	t.Parallel()

	t.Run("defaults status to incomplete", func(t *testing.T) {
		t.Parallel()
		task, err := NewTask(validFields())
		require.NoError(t, err)
		assert.Equal(t, TaskStatusIncomplete, task.Status)
		assert.Equal(t, "Write report", task.Title)
		assert.Equal(t, "2024-01-01", task.FormattedDueDate())
		assert.Zero(t, task.ID, "ID is assigned by the store")
	})

	t.Run("keeps supplied status", func(t *testing.T) {
		t.Parallel()
		fields := validFields()
		fields.Status = statusPtr(TaskStatusInProgress)
		task, err := NewTask(fields)
		require.NoError(t, err)
		assert.Equal(t, TaskStatusInProgress, task.Status)
	})

	t.Run("drops time of day from due date", func(t *testing.T) {
		t.Parallel()
		fields := validFields()
		fields.DueDate = datePtr(time.Date(2024, time.March, 5, 23, 59, 0, 0, time.UTC))
		task, err := NewTask(fields)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), task.DueDate)
	})

	t.Run("accepts the zero calendar date", func(t *testing.T) {
		t.Parallel()
		earliest, err := ParseDueDate("0001-01-01")
		require.NoError(t, err)

		fields := validFields()
		fields.DueDate = &earliest
		task, err := NewTask(fields)
		require.NoError(t, err)
		assert.Equal(t, "0001-01-01", task.FormattedDueDate())
	})

	missing := []struct {
		name  string
		clear func(*TaskFields)
		field string
	}{
		{"title", func(f *TaskFields) { f.Title = nil }, FieldTitle},
		{"description", func(f *TaskFields) { f.Description = nil }, FieldDescription},
		{"due_date", func(f *TaskFields) { f.DueDate = nil }, FieldDueDate},
	}
	for _, tc := range missing {
		tc := tc
		t.Run("missing "+tc.name, func(t *testing.T) {
			t.Parallel()
			fields := validFields()
			tc.clear(&fields)

			_, err := NewTask(fields)

			var missingErr *MissingFieldError
			require.ErrorAs(t, err, &missingErr)
			assert.Equal(t, tc.field, missingErr.Field)
			assert.ErrorIs(t, err, ErrMissingField)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tc.field)
		})
	}

	invalid := []struct {
		name   string
		mutate func(*TaskFields)
		field  string
	}{
		{"empty title", func(f *TaskFields) { f.Title = strPtr("  ") }, FieldTitle},
		{"title too long", func(f *TaskFields) { f.Title = strPtr(strings.Repeat("a", MaxTitleLength+1)) }, FieldTitle},
		{"empty description", func(f *TaskFields) { f.Description = strPtr("") }, FieldDescription},
		{"description too long", func(f *TaskFields) {
			f.Description = strPtr(strings.Repeat("d", MaxDescriptionLength+1))
		}, FieldDescription},
		{"unknown status", func(f *TaskFields) { f.Status = statusPtr("archived") }, FieldStatus},
	}
	for _, tc := range invalid {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			fields := validFields()
			tc.mutate(&fields)

			_, err := NewTask(fields)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestNewTask_TitleAtLimit(t *testing.T) {
	t.Parallel()
	fields := validFields()
	fields.Title = strPtr(strings.Repeat("é", MaxTitleLength))

	_, err := NewTask(fields)
	assert.NoError(t, err, "length is counted in characters, not bytes")
}

func TestTask_Apply(t *testing.T) {
	t.Parallel()

	base := func() *Task {
		task, err := NewTask(validFields())
		require.NoError(t, err)
		task.ID = 7
		return task
	}

	t.Run("applies only supplied fields", func(t *testing.T) {
		t.Parallel()
		task := base()
		err := task.Apply(TaskFields{Status: statusPtr(TaskStatusCompleted)})
		require.NoError(t, err)
		assert.Equal(t, TaskStatusCompleted, task.Status)
		assert.Equal(t, "Write report", task.Title)
		assert.Equal(t, int64(7), task.ID)
	})

	t.Run("any status may follow any other", func(t *testing.T) {
		t.Parallel()
		task := base()
		require.NoError(t, task.Apply(TaskFields{Status: statusPtr(TaskStatusCompleted)}))
		require.NoError(t, task.Apply(TaskFields{Status: statusPtr(TaskStatusIncomplete)}))
		assert.Equal(t, TaskStatusIncomplete, task.Status)
	})

	t.Run("rejects empty update", func(t *testing.T) {
		t.Parallel()
		task := base()
		err := task.Apply(TaskFields{})
		assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("leaves task untouched on invalid input", func(t *testing.T) {
		t.Parallel()
		task := base()
		before := *task
		err := task.Apply(TaskFields{
			Title:  strPtr("New title"),
			Status: statusPtr("bogus"),
		})
		assert.ErrorIs(t, err, ErrInvalidTaskStatus)
		assert.Equal(t, before, *task)
	})
}

func TestParseDueDate(t *testing.T) {
	t.Parallel()

	date, err := ParseDueDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), date)

	for _, raw := range []string{"01-01-2024", "2024/01/01", "2023-02-29", "", "2024-01-01T00:00:00Z"} {
		_, err := ParseDueDate(raw)
		var formatErr *FormatError
		require.True(t, errors.As(err, &formatErr), "expected FormatError for %q", raw)
		assert.Equal(t, FieldDueDate, formatErr.Field)
		assert.Equal(t, DueDateFormat, formatErr.Format)
		assert.ErrorIs(t, err, ErrInvalidFormat)
	}
}

func TestParseTaskStatus(t *testing.T) {
	t.Parallel()

	for _, s := range []TaskStatus{TaskStatusIncomplete, TaskStatusInProgress, TaskStatusCompleted} {
		got, err := ParseTaskStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseTaskStatus("IN_PROGRESS")
	assert.ErrorIs(t, err, ErrInvalidTaskStatus)
}
