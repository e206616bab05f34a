package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/todo/internal/task"
	"github.com/wexinc/todo/internal/tui/styles"
)

// StatusBarData contains the data to display in the status bar.
type StatusBarData struct {
	Visible   int
	Completed int
	Pending   int
	Filter    task.Filter
	Message   string
	Shortcuts []key.Binding
}

// StatusBar shows task counts, the active filter, the last message and
// the shortcuts for the focused area.
type StatusBar struct {
	data  StatusBarData
	width int
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{
		data: StatusBarData{
			Filter: task.FilterAll,
		},
	}
}

// SetData updates the status bar data.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

// Data returns the current status bar data.
func (s *StatusBar) Data() StatusBarData {
	return s.data
}

// SetCounts sets the visible, completed and pending task counts.
func (s *StatusBar) SetCounts(visible, completed, pending int) {
	s.data.Visible = visible
	s.data.Completed = completed
	s.data.Pending = pending
}

// SetFilter sets the active filter.
func (s *StatusBar) SetFilter(filter task.Filter) {
	s.data.Filter = filter
}

// SetMessage sets an optional status message.
func (s *StatusBar) SetMessage(message string) {
	s.data.Message = message
}

// SetShortcuts sets the bindings shown on the right.
func (s *StatusBar) SetShortcuts(shortcuts []key.Binding) {
	s.data.Shortcuts = shortcuts
}

// SetWidth sets the width of the status bar.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	sep := lipgloss.NewStyle().
		Foreground(styles.Muted).
		Render(" │ ")
	label := lipgloss.NewStyle().Foreground(styles.MutedLight).Render
	value := lipgloss.NewStyle().Foreground(styles.Foreground).Render

	total := s.data.Completed + s.data.Pending
	leftContent := label("Showing: ") + value(fmt.Sprintf("%d/%d", s.data.Visible, total)) +
		sep + label("Done: ") + lipgloss.NewStyle().Foreground(styles.Success).Render(fmt.Sprintf("%d", s.data.Completed)) +
		sep + label("Open: ") + lipgloss.NewStyle().Foreground(styles.Secondary).Render(fmt.Sprintf("%d", s.data.Pending)) +
		sep + label("Filter: ") + value(s.data.Filter.Label())

	if s.data.Message != "" {
		msgStyle := lipgloss.NewStyle().
			Foreground(styles.MutedLight).
			Italic(true)
		leftContent += sep + msgStyle.Render(s.data.Message)
	}

	rightContent := ""
	if len(s.data.Shortcuts) > 0 {
		rightContent = NewShortcutBar(s.data.Shortcuts...).View()
	}

	containerStyle := styles.StatusBarStyle

	if s.width > 0 {
		containerStyle = containerStyle.Width(s.width)

		leftWidth := lipgloss.Width(leftContent)
		rightWidth := lipgloss.Width(rightContent)
		padding := s.width - leftWidth - rightWidth - 2 // container padding
		if padding > 0 {
			return containerStyle.Render(leftContent + strings.Repeat(" ", padding) + rightContent)
		}
	}

	if rightContent == "" {
		return containerStyle.Render(leftContent)
	}
	return containerStyle.Render(leftContent + "  " + rightContent)
}
