// Package errors provides error types with actionable suggestions for todo.
// Errors carry a Kind for errors.Is matching and a human-readable message
// that the user interface can show as-is.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error categories. Input errors wrap ErrValidation or ErrSelection so callers
// can match either the specific failure or its category.
var (
	// ErrValidation indicates task input that failed validation.
	ErrValidation = errors.New("validation error")
	// ErrSelection indicates an action that needed a selected task.
	ErrSelection = errors.New("selection error")
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrScript indicates a malformed batch script line.
	ErrScript = errors.New("script error")
)

// Specific input failures.
var (
	// ErrEmptyDescription indicates a blank task description.
	ErrEmptyDescription = fmt.Errorf("%w: empty description", ErrValidation)
	// ErrEmptyDueDate indicates a blank due date.
	ErrEmptyDueDate = fmt.Errorf("%w: empty due date", ErrValidation)
	// ErrInvalidDateFormat indicates a due date that is not a real DD-MM-YYYY date.
	ErrInvalidDateFormat = fmt.Errorf("%w: invalid date format", ErrValidation)
	// ErrNoSelection indicates that no task was selected.
	ErrNoSelection = fmt.Errorf("%w: no task selected", ErrSelection)
)

// TodoError is the base error type for todo errors.
// It wraps an underlying error and provides additional context.
type TodoError struct {
	// Kind is the category of error (e.g., ErrEmptyDueDate, ErrConfig).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., offending value, file path).
	Details map[string]string
}

// Error implements the error interface.
func (e *TodoError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *TodoError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error's Kind matches the target.
func (e *TodoError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with details and suggestion.
func (e *TodoError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n💡 Suggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *TodoError) WithDetails(key, value string) *TodoError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *TodoError) WithCause(cause error) *TodoError {
	e.Cause = cause
	return e
}

// New creates a new TodoError with the given kind and message.
func New(kind error, message string) *TodoError {
	return &TodoError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *TodoError {
	return &TodoError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *TodoError {
	return &TodoError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Suggestion returns the suggestion attached to err, if it is a TodoError.
func Suggestion(err error) string {
	var te *TodoError
	if errors.As(err, &te) {
		return te.Suggestion
	}
	return ""
}

// Message returns the user-facing message of err without its cause chain.
func Message(err error) string {
	var te *TodoError
	if errors.As(err, &te) {
		return te.Message
	}
	return err.Error()
}
