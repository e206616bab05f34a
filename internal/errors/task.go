package errors

import "fmt"

// Task input error constructors.

// EmptyDescription creates an error for a blank task description.
func EmptyDescription() *TodoError {
	return &TodoError{
		Kind:       ErrEmptyDescription,
		Message:    "Task description cannot be empty.",
		Suggestion: "Type a description for the task before adding it.",
	}
}

// EmptyDueDate creates an error for a blank due date.
func EmptyDueDate() *TodoError {
	return &TodoError{
		Kind:       ErrEmptyDueDate,
		Message:    "Due date is required.",
		Suggestion: "Enter the due date as DD-MM-YYYY, e.g. 25-12-2024.",
	}
}

// InvalidDateFormat creates an error for a due date that does not parse.
func InvalidDateFormat(value string) *TodoError {
	return &TodoError{
		Kind:       ErrInvalidDateFormat,
		Message:    "Invalid due date format. Please use DD-MM-YYYY.",
		Suggestion: "Use a two-digit day, a two-digit month and a four-digit year that form a real date.",
		Details: map[string]string{
			"value": value,
		},
	}
}

// NoSelection creates an error for an action that needs a selected task.
// The action names what the user tried to do ("mark as completed", "delete").
func NoSelection(action string) *TodoError {
	return &TodoError{
		Kind:       ErrNoSelection,
		Message:    fmt.Sprintf("Please select a task to %s.", action),
		Suggestion: "Move to the task list with Tab and pick a task with ↑/↓ first.",
		Details: map[string]string{
			"action": action,
		},
	}
}

// ScriptSyntax creates an error for a batch script line that cannot be parsed.
func ScriptSyntax(line int, text, reason string) *TodoError {
	return &TodoError{
		Kind:    ErrScript,
		Message: fmt.Sprintf("line %d: %s", line, reason),
		Details: map[string]string{
			"line": fmt.Sprintf("%d", line),
			"text": text,
		},
		Suggestion: `Each line must be one of:
  add <DD-MM-YYYY> <description...>
  done <n> | delete <n>
  filter all|completed|pending
  list`,
	}
}
