// Package styles provides Lip Gloss styles for the todo TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI.
var (
	Primary     = lipgloss.Color("#7C3AED") // Purple
	Secondary   = lipgloss.Color("#06B6D4") // Cyan
	Success     = lipgloss.Color("#10B981") // Green
	Warning     = lipgloss.Color("#F59E0B") // Amber
	Muted       = lipgloss.Color("#6B7280") // Gray
	MutedLight  = lipgloss.Color("#9CA3AF") // Light Gray
	Background  = lipgloss.Color("#1F2937") // Dark Gray
	Foreground  = lipgloss.Color("#F9FAFB") // White
	BorderColor = lipgloss.Color("#374151") // Border Gray
)

// Header styles.
var (
	// TitleStyle is for the application title.
	TitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	// HeaderLabelStyle is for header labels.
	HeaderLabelStyle = lipgloss.NewStyle().
				Foreground(MutedLight)
)

// Task status icons.
var (
	StatusCompleted = lipgloss.NewStyle().
			Foreground(Success).
			Render("✓")

	StatusPending = lipgloss.NewStyle().
			Foreground(Muted).
			Render("○")
)

// Task line styles.
var (
	// CompletedLineStyle dims tasks that are done.
	CompletedLineStyle = lipgloss.NewStyle().
				Foreground(MutedLight)

	// PendingLineStyle is for open tasks.
	PendingLineStyle = lipgloss.NewStyle().
				Foreground(Foreground)

	// SelectedLineStyle highlights the selected row of a focused list.
	SelectedLineStyle = lipgloss.NewStyle().
				Background(Background).
				Bold(true)
)

// Box styles.
var (
	// BoxStyle is a standard box with border.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// FocusedBoxStyle is a box that's currently focused.
	FocusedBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)
)

// MutedTextStyle is for secondary text.
var MutedTextStyle = lipgloss.NewStyle().
	Foreground(Muted)

// Status bar styles.
var (
	// StatusBarStyle is the main status bar container.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(MutedLight).
			Background(Background).
			Padding(0, 1)

	// KeyStyle is for keyboard shortcut keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// HelpStyle is for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// Form styles.
var (
	// FormLabelStyle is for form field labels.
	FormLabelStyle = lipgloss.NewStyle().
			Foreground(MutedLight)

	// FormLabelFocusedStyle is for focused form field labels.
	FormLabelFocusedStyle = lipgloss.NewStyle().
				Foreground(Secondary).
				Bold(true)

	// PlaceholderStyle is for placeholder text in empty fields.
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Italic(true)

	// FilterActiveStyle marks the active option in the filter selector.
	FilterActiveStyle = lipgloss.NewStyle().
				Foreground(Background).
				Background(Secondary).
				Bold(true).
				Padding(0, 1)

	// FilterInactiveStyle is for the other filter options.
	FilterInactiveStyle = lipgloss.NewStyle().
				Foreground(MutedLight).
				Padding(0, 1)

	// ButtonPrimaryStyle is for the alert's dismiss button.
	ButtonPrimaryStyle = lipgloss.NewStyle().
				Foreground(Background).
				Background(Primary).
				Bold(true).
				Padding(0, 2)
)
