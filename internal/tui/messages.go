// Package tui provides the terminal user interface for todo.
package tui

import (
	"github.com/wexinc/todo/internal/task"
)

// Messages sent after a store mutation succeeds. They carry a copy of the
// task as it was when the operation finished.

// TaskAddedMsg is sent when a task is added.
type TaskAddedMsg struct {
	Task *task.Task
}

// TaskCompletedMsg is sent when a task is marked as completed.
type TaskCompletedMsg struct {
	Task *task.Task
}

// TaskDeletedMsg is sent when a task is deleted.
type TaskDeletedMsg struct {
	Task *task.Task
}
