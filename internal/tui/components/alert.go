// Package components provides reusable TUI components for todo.
package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	todoerrors "github.com/wexinc/todo/internal/errors"
	"github.com/wexinc/todo/internal/tui/styles"
)

// Alert is a modal warning that blocks other input until dismissed.
type Alert struct {
	visible    bool
	title      string
	message    string
	suggestion string
	width      int
}

// NewAlert creates a new, hidden Alert.
func NewAlert() *Alert {
	return &Alert{
		width: 50,
	}
}

// Show displays the alert.
func (a *Alert) Show(title, message, suggestion string) {
	a.visible = true
	a.title = title
	a.message = message
	a.suggestion = suggestion
}

// ShowError displays the message and suggestion carried by err.
func (a *Alert) ShowError(err error) {
	a.Show("Warning", todoerrors.Message(err), todoerrors.Suggestion(err))
}

// Hide hides the alert.
func (a *Alert) Hide() {
	a.visible = false
}

// IsVisible returns whether the alert is visible.
func (a *Alert) IsVisible() bool {
	return a.visible
}

// Message returns the message being shown.
func (a *Alert) Message() string {
	return a.message
}

// SetWidth sets the alert width.
func (a *Alert) SetWidth(width int) {
	a.width = width
}

// Update handles input while visible. Enter, Esc and Space dismiss the
// alert; every other key is swallowed.
func (a *Alert) Update(msg tea.Msg) tea.Cmd {
	if !a.visible {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", "esc", " ":
			a.Hide()
			return func() tea.Msg {
				return AlertDismissedMsg{}
			}
		}
	}
	return nil
}

// View renders the alert.
func (a *Alert) View() string {
	if !a.visible {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Background(styles.Warning).
		Bold(true).
		Padding(0, 1).
		Width(a.width - 4)
	b.WriteString(titleStyle.Render("⚠ " + a.title))
	b.WriteString("\n\n")

	msgStyle := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Width(a.width - 8)
	b.WriteString(msgStyle.Render(a.message))
	b.WriteString("\n")

	if a.suggestion != "" {
		b.WriteString("\n")
		b.WriteString(styles.MutedTextStyle.Width(a.width - 8).Render(a.suggestion))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.ButtonPrimaryStyle.Render("OK"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(styles.Warning).
		Padding(1, 2)

	return boxStyle.Render(b.String())
}

// AlertDismissedMsg is sent when the user dismisses the alert.
type AlertDismissedMsg struct{}
