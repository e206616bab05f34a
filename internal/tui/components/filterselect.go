package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/todo/internal/task"
	"github.com/wexinc/todo/internal/tui/styles"
)

// FilterSelect is a one-of-three selector for the task list filter.
type FilterSelect struct {
	current task.Filter
}

// NewFilterSelect creates a selector starting at initial. Invalid values
// fall back to task.FilterAll.
func NewFilterSelect(initial task.Filter) *FilterSelect {
	if !initial.IsValid() {
		initial = task.FilterAll
	}
	return &FilterSelect{current: initial}
}

// Filter returns the selected filter.
func (f *FilterSelect) Filter() task.Filter {
	return f.current
}

// SetFilter selects filter. It reports whether the selection changed.
func (f *FilterSelect) SetFilter(filter task.Filter) bool {
	if !filter.IsValid() || filter == f.current {
		return false
	}
	f.current = filter
	return true
}

// Update handles FilterKeys.
// A FilterChangedMsg is returned when the selection changes.
func (f *FilterSelect) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	var next task.Filter
	switch {
	case key.Matches(keyMsg, FilterKeys.Next):
		next = f.current.Next()
	case key.Matches(keyMsg, FilterKeys.Prev):
		next = f.current.Prev()
	case key.Matches(keyMsg, FilterKeys.All):
		next = task.FilterAll
	case key.Matches(keyMsg, FilterKeys.Completed):
		next = task.FilterCompleted
	case key.Matches(keyMsg, FilterKeys.Pending):
		next = task.FilterPending
	default:
		return nil
	}

	if !f.SetFilter(next) {
		return nil
	}
	return func() tea.Msg {
		return FilterChangedMsg{Filter: next}
	}
}

// View renders the options with the active one highlighted.
func (f *FilterSelect) View() string {
	parts := make([]string, 0, len(task.Filters()))
	for _, option := range task.Filters() {
		style := styles.FilterInactiveStyle
		if option == f.current {
			style = styles.FilterActiveStyle
		}
		parts = append(parts, style.Render(option.Label()))
	}
	return styles.HeaderLabelStyle.Render("Filter: ") + strings.Join(parts, " ")
}

// FilterChangedMsg is sent when the selected filter changes.
type FilterChangedMsg struct {
	Filter task.Filter
}
