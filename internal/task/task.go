// Package task provides the task data model and the in-memory task store.
package task

import (
	"strings"
	"time"

	todoerrors "github.com/wexinc/todo/internal/errors"
)

// DateLayout is the day-month-year layout due dates are entered and shown in.
// Day and month are two digits, the year four.
const DateLayout = "02-01-2006"

// Status labels used when rendering a task.
const (
	LabelCompleted = "Completed"
	LabelPending   = "Pending"
)

// Task represents a single to-do item.
type Task struct {
	// ID identifies the task for the lifetime of the process.
	ID string
	// Description is the trimmed, non-empty text the user entered.
	Description string
	// DueDate is the calendar date the task is due (midnight UTC).
	DueDate time.Time
	// Completed is set once and never cleared.
	Completed bool
	// CreatedAt is when the task was added.
	CreatedAt time.Time
	// CompletedAt is when the task was completed (zero if pending).
	CompletedAt time.Time
}

// StatusLabel returns "Completed" or "Pending".
func (t *Task) StatusLabel() string {
	if t.Completed {
		return LabelCompleted
	}
	return LabelPending
}

// DueDateString returns the due date in DD-MM-YYYY form.
func (t *Task) DueDateString() string {
	return t.DueDate.Format(DateLayout)
}

// String renders the task the way the list shows it:
// "<description> - <Completed|Pending>, Due: <DD-MM-YYYY>".
func (t *Task) String() string {
	return t.Description + " - " + t.StatusLabel() + ", Due: " + t.DueDateString()
}

// markCompleted sets the completion flag. Completing twice keeps the
// original completion time.
func (t *Task) markCompleted(now time.Time) {
	if t.Completed {
		return
	}
	t.Completed = true
	t.CompletedAt = now
}

// Clone returns a copy of the task.
func (t *Task) Clone() *Task {
	clone := *t
	return &clone
}

// ParseDueDate validates a raw due date and returns the date it names.
// Surrounding whitespace is ignored. A blank value yields EmptyDueDate; any
// value that is not a real DD-MM-YYYY date yields InvalidDateFormat.
func ParseDueDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, todoerrors.EmptyDueDate()
	}
	due, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, todoerrors.InvalidDateFormat(value).WithCause(err)
	}
	return due, nil
}

// ValidateInput checks a description and due date in order, stopping at the
// first failure, and returns the trimmed description and parsed date.
func ValidateInput(description, dueDate string) (string, time.Time, error) {
	desc := strings.TrimSpace(description)
	if desc == "" {
		return "", time.Time{}, todoerrors.EmptyDescription()
	}
	due, err := ParseDueDate(dueDate)
	if err != nil {
		return "", time.Time{}, err
	}
	return desc, due, nil
}
