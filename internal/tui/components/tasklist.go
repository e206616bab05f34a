// Package components provides reusable TUI components for todo.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/todo/internal/task"
	"github.com/wexinc/todo/internal/tui/styles"
)

var newlineCollapser = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// TaskList is a scrollable list of tasks. Positions in the list are view
// indices into whatever slice was last passed to SetTasks.
type TaskList struct {
	tasks       []*task.Task
	selected    int
	height      int
	width       int
	scrollStart int
	focused     bool
}

// NewTaskList creates a new TaskList component showing height rows.
func NewTaskList(height int) *TaskList {
	if height < 1 {
		height = 1
	}
	return &TaskList{
		selected: task.NoSelection,
		height:   height,
	}
}

// SetTasks replaces the rows. The selection keeps its position when it is
// still in range, is clamped to the last row otherwise, and is cleared when
// the list becomes empty.
func (t *TaskList) SetTasks(tasks []*task.Task) {
	t.tasks = tasks
	switch {
	case len(tasks) == 0:
		t.selected = task.NoSelection
	case t.selected >= len(tasks):
		t.selected = len(tasks) - 1
	}
	t.updateScroll()
}

// Len returns the number of rows.
func (t *TaskList) Len() int {
	return len(t.tasks)
}

// SetHeight sets the visible height of the list.
func (t *TaskList) SetHeight(height int) {
	if height < 1 {
		height = 1
	}
	t.height = height
	t.updateScroll()
}

// SetWidth sets the width of the list.
func (t *TaskList) SetWidth(width int) {
	t.width = width
}

// SetFocused sets whether the list is focused. Focusing a list with rows
// and no selection selects the first row.
func (t *TaskList) SetFocused(focused bool) {
	t.focused = focused
	if focused && t.selected == task.NoSelection && len(t.tasks) > 0 {
		t.selected = 0
		t.updateScroll()
	}
}

// Focused returns whether the list is focused.
func (t *TaskList) Focused() bool {
	return t.focused
}

// Selected returns the selected view index, or task.NoSelection.
func (t *TaskList) Selected() int {
	return t.selected
}

// SelectedTask returns the selected task, or nil if nothing is selected.
func (t *TaskList) SelectedTask() *task.Task {
	if t.selected < 0 || t.selected >= len(t.tasks) {
		return nil
	}
	return t.tasks[t.selected]
}

// SetSelected sets the selected index. Out-of-range values are ignored.
func (t *TaskList) SetSelected(index int) {
	if index >= 0 && index < len(t.tasks) {
		t.selected = index
		t.updateScroll()
	}
}

// ClearSelection drops the selection.
func (t *TaskList) ClearSelection() {
	t.selected = task.NoSelection
}

// MoveUp moves selection up.
func (t *TaskList) MoveUp() {
	if t.selected > 0 {
		t.selected--
		t.updateScroll()
	}
}

// MoveDown moves selection down. With no selection it selects the first row.
func (t *TaskList) MoveDown() {
	if t.selected < len(t.tasks)-1 {
		t.selected++
		t.updateScroll()
	}
}

// GoToTop moves selection to the first item.
func (t *TaskList) GoToTop() {
	if len(t.tasks) > 0 {
		t.selected = 0
		t.updateScroll()
	}
}

// GoToBottom moves selection to the last item.
func (t *TaskList) GoToBottom() {
	if len(t.tasks) > 0 {
		t.selected = len(t.tasks) - 1
		t.updateScroll()
	}
}

// updateScroll ensures the selected item is visible.
func (t *TaskList) updateScroll() {
	if t.selected < 0 {
		t.scrollStart = 0
		return
	}
	if t.selected < t.scrollStart {
		t.scrollStart = t.selected
	}
	if t.selected >= t.scrollStart+t.height {
		t.scrollStart = t.selected - t.height + 1
	}
	if t.scrollStart < 0 {
		t.scrollStart = 0
	}
}

// Update handles ListKeys.
func (t *TaskList) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, ListKeys.Up):
		t.MoveUp()
	case key.Matches(keyMsg, ListKeys.Down):
		t.MoveDown()
	case key.Matches(keyMsg, ListKeys.Top):
		t.GoToTop()
	case key.Matches(keyMsg, ListKeys.Bottom):
		t.GoToBottom()
	}
	return nil
}

// View renders the task list.
func (t *TaskList) View() string {
	if len(t.tasks) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(styles.Muted).
			Italic(true).
			Padding(0, 2)
		return emptyStyle.Render("No tasks")
	}

	endIndex := t.scrollStart + t.height
	if endIndex > len(t.tasks) {
		endIndex = len(t.tasks)
	}

	lines := make([]string, 0, endIndex-t.scrollStart+2)
	if t.scrollStart > 0 {
		lines = append(lines, styles.MutedTextStyle.Render("  ↑ more above"))
	}
	for i := t.scrollStart; i < endIndex; i++ {
		lines = append(lines, t.renderItem(t.tasks[i], i == t.selected))
	}
	if endIndex < len(t.tasks) {
		lines = append(lines, styles.MutedTextStyle.Render("  ↓ more below"))
	}

	return strings.Join(lines, "\n")
}

// renderItem renders a single task row.
func (t *TaskList) renderItem(tsk *task.Task, isSelected bool) string {
	icon := styles.StatusPending
	lineStyle := styles.PendingLineStyle
	if tsk.Completed {
		icon = styles.StatusCompleted
		lineStyle = styles.CompletedLineStyle
	}

	cursor := " "
	if isSelected {
		cursor = lipgloss.NewStyle().
			Foreground(styles.Secondary).
			Bold(true).
			Render("▶")
		if t.focused {
			lineStyle = lineStyle.Inherit(styles.SelectedLineStyle)
		}
	}

	if t.width > 0 {
		lineStyle = lineStyle.Width(t.width - 4).MaxHeight(1)
	}

	return cursor + " " + icon + " " + lineStyle.Render(RenderLine(tsk))
}

// RenderLine returns the one-line text for a task, with any newlines in
// the description collapsed to spaces.
func RenderLine(tsk *task.Task) string {
	return newlineCollapser.Replace(tsk.String())
}
