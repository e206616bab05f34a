package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/todo/internal/tui/styles"
)

// HelpSection is a titled group of bindings shown in the help overlay.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// ListHelp returns the help sections for the task list and filter keys.
func ListHelp() []HelpSection {
	return []HelpSection{
		{
			Title:    "Task List",
			Bindings: []key.Binding{ListKeys.Up, ListKeys.Down, ListKeys.Top, ListKeys.Bottom},
		},
		{
			Title: "Filter",
			Bindings: []key.Binding{
				FilterKeys.Next, FilterKeys.Prev,
				FilterKeys.All, FilterKeys.Completed, FilterKeys.Pending,
			},
		},
	}
}

// HelpOverlay is a modal listing key bindings by section. Each row is
// taken from the binding's help text, so disabled bindings are skipped.
type HelpOverlay struct {
	visible  bool
	width    int
	sections []HelpSection
}

// NewHelpOverlay creates a hidden overlay showing sections.
func NewHelpOverlay(sections ...HelpSection) *HelpOverlay {
	return &HelpOverlay{
		width:    60,
		sections: sections,
	}
}

// Sections returns the sections shown.
func (h *HelpOverlay) Sections() []HelpSection {
	return h.sections
}

// SetWidth sets the overlay width.
func (h *HelpOverlay) SetWidth(width int) {
	h.width = width
}

// Show makes the overlay visible.
func (h *HelpOverlay) Show() {
	h.visible = true
}

// Hide hides the overlay.
func (h *HelpOverlay) Hide() {
	h.visible = false
}

// IsVisible returns whether the overlay is visible.
func (h *HelpOverlay) IsVisible() bool {
	return h.visible
}

// Update closes the overlay on esc, ? or q. Other keys are swallowed.
func (h *HelpOverlay) Update(msg tea.Msg) tea.Cmd {
	if !h.visible {
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, helpCloseKeys) {
		h.Hide()
		return func() tea.Msg {
			return HelpClosedMsg{}
		}
	}
	return nil
}

// View renders the help overlay.
func (h *HelpOverlay) View() string {
	if !h.visible {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Background(styles.Primary).
		Bold(true).
		Padding(0, 1).
		Width(h.width - 4)

	blocks := []string{titleStyle.Render("Keyboard Shortcuts")}
	for _, section := range h.sections {
		if rendered := renderSection(section); rendered != "" {
			blocks = append(blocks, rendered)
		}
	}
	blocks = append(blocks, styles.MutedTextStyle.Italic(true).Render("Press ? or Esc to close"))

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(styles.Primary).
		Padding(1, 2)

	return box.Render(strings.Join(blocks, "\n\n"))
}

var (
	helpSectionStyle = lipgloss.NewStyle().Foreground(styles.Secondary).Bold(true)
	helpKeyStyle     = lipgloss.NewStyle().Foreground(styles.Foreground).Bold(true).Width(11)
	helpDescStyle    = lipgloss.NewStyle().Foreground(styles.MutedLight)
)

func renderSection(section HelpSection) string {
	rows := make([]string, 0, len(section.Bindings))
	for _, b := range section.Bindings {
		if !b.Enabled() || b.Help().Key == "" {
			continue
		}
		rows = append(rows, "  "+helpKeyStyle.Render(b.Help().Key)+" "+helpDescStyle.Render(b.Help().Desc))
	}
	if len(rows) == 0 {
		return ""
	}
	return helpSectionStyle.Render(section.Title) + "\n" + strings.Join(rows, "\n")
}

// HelpClosedMsg is sent when the help overlay is closed.
type HelpClosedMsg struct{}
