package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/todo/internal/tui/styles"
)

// ShortcutBar renders a row of "key:description" hints from key bindings.
// Disabled bindings and bindings without help text are left out.
type ShortcutBar struct {
	bindings []key.Binding
	width    int
	centered bool
}

// NewShortcutBar creates a new ShortcutBar showing bindings.
func NewShortcutBar(bindings ...key.Binding) *ShortcutBar {
	return &ShortcutBar{bindings: bindings}
}

// SetBindings replaces the bindings shown.
func (s *ShortcutBar) SetBindings(bindings ...key.Binding) {
	s.bindings = bindings
}

// SetWidth sets the bar width for alignment.
func (s *ShortcutBar) SetWidth(width int) {
	s.width = width
}

// SetCentered controls whether the bar content is centered.
func (s *ShortcutBar) SetCentered(centered bool) {
	s.centered = centered
}

var shortcutSeparator = lipgloss.NewStyle().Foreground(styles.Muted).Render(" │ ")

// View renders the shortcut bar.
func (s *ShortcutBar) View() string {
	parts := make([]string, 0, len(s.bindings))
	for _, b := range s.bindings {
		help := b.Help()
		if !b.Enabled() || help.Key == "" {
			continue
		}
		parts = append(parts, styles.KeyStyle.Render(help.Key)+styles.HelpStyle.Render(":"+help.Desc))
	}
	if len(parts) == 0 {
		return ""
	}

	content := strings.Join(parts, shortcutSeparator)
	if s.centered && s.width > 0 {
		return lipgloss.NewStyle().Width(s.width).Align(lipgloss.Center).Render(content)
	}
	return content
}
