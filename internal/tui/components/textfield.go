// Package components provides reusable TUI components for todo.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/todo/internal/tui/styles"
)

// fieldInput is the editing widget behind a TextField.
type fieldInput interface {
	Value() string
	SetValue(string)
	Reset()
	Focus() tea.Cmd
	Blur()
	SetPlaceholder(string)
	SetWidth(int)
	SetCharLimit(int)
	Update(tea.Msg) tea.Cmd
	View() string
}

// singleLine is a fieldInput backed by a bubbles textinput.
type singleLine struct {
	model textinput.Model
}

func (s *singleLine) Value() string           { return s.model.Value() }
func (s *singleLine) SetValue(v string)       { s.model.SetValue(v) }
func (s *singleLine) Reset()                  { s.model.Reset() }
func (s *singleLine) Focus() tea.Cmd          { return s.model.Focus() }
func (s *singleLine) Blur()                   { s.model.Blur() }
func (s *singleLine) SetPlaceholder(p string) { s.model.Placeholder = p }
func (s *singleLine) SetCharLimit(n int)      { s.model.CharLimit = n }
func (s *singleLine) View() string            { return s.model.View() }

func (s *singleLine) SetWidth(w int) {
	if w < 10 {
		w = 10
	}
	s.model.Width = w
}

func (s *singleLine) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.model, cmd = s.model.Update(msg)
	return cmd
}

// multiLine is a fieldInput backed by a bubbles textarea.
type multiLine struct {
	model textarea.Model
}

func (m *multiLine) Value() string           { return m.model.Value() }
func (m *multiLine) SetValue(v string)       { m.model.SetValue(v) }
func (m *multiLine) Reset()                  { m.model.Reset() }
func (m *multiLine) Focus() tea.Cmd          { return m.model.Focus() }
func (m *multiLine) Blur()                   { m.model.Blur() }
func (m *multiLine) SetPlaceholder(p string) { m.model.Placeholder = p }
func (m *multiLine) SetCharLimit(n int)      { m.model.CharLimit = n }
func (m *multiLine) View() string            { return m.model.View() }

func (m *multiLine) SetWidth(w int) {
	if w < 10 {
		w = 10
	}
	m.model.SetWidth(w)
}

func (m *multiLine) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.model, cmd = m.model.Update(msg)
	return cmd
}

// TextField is a labelled text entry that is either single-line or
// multi-line. The placeholder is shown only while the field is unfocused
// and empty; it is never part of the value.
type TextField struct {
	input       fieldInput
	id          string
	label       string
	placeholder string
	focused     bool
	multiline   bool
}

// NewSingleLineField creates a one-line TextField.
func NewSingleLineField(id, label, placeholder string) *TextField {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 64
	ti.Width = 20
	ti.PlaceholderStyle = styles.PlaceholderStyle

	return newTextField(&singleLine{model: ti}, id, label, placeholder, false)
}

// NewMultiLineField creates a TextField that accepts newlines and shows
// height rows at a time.
func NewMultiLineField(id, label, placeholder string, height int) *TextField {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 500
	ta.SetWidth(60)
	ta.FocusedStyle.Placeholder = styles.PlaceholderStyle
	ta.BlurredStyle.Placeholder = styles.PlaceholderStyle
	if height < 1 {
		height = 1
	}
	ta.SetHeight(height)

	return newTextField(&multiLine{model: ta}, id, label, placeholder, true)
}

func newTextField(input fieldInput, id, label, placeholder string, multiline bool) *TextField {
	input.SetPlaceholder(placeholder)
	return &TextField{
		input:       input,
		id:          id,
		label:       label,
		placeholder: placeholder,
		multiline:   multiline,
	}
}

// ID returns the component's unique identifier.
func (f *TextField) ID() string {
	return f.id
}

// Multiline reports whether the field accepts newlines.
func (f *TextField) Multiline() bool {
	return f.multiline
}

// Value returns the current text, exactly as typed.
func (f *TextField) Value() string {
	return f.input.Value()
}

// SetValue replaces the text.
func (f *TextField) SetValue(value string) {
	f.input.SetValue(value)
}

// Clear empties the field. An unfocused field shows its placeholder again.
func (f *TextField) Clear() {
	f.input.Reset()
}

// Focus focuses the field and hides the placeholder.
func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	f.input.SetPlaceholder("")
	return f.input.Focus()
}

// Blur removes focus. A field left blank (or holding only whitespace) is
// emptied so the placeholder shows again.
func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
	if strings.TrimSpace(f.input.Value()) == "" {
		f.input.Reset()
	}
	f.input.SetPlaceholder(f.placeholder)
}

// Focused returns whether the field is focused.
func (f *TextField) Focused() bool {
	return f.focused
}

// Placeholder returns the guidance text configured for the field.
func (f *TextField) Placeholder() string {
	return f.placeholder
}

// ShowingPlaceholder reports whether the placeholder is currently displayed.
func (f *TextField) ShowingPlaceholder() bool {
	return !f.focused && f.input.Value() == ""
}

// SetWidth sets the width of the editing area, excluding the label.
func (f *TextField) SetWidth(width int) {
	f.input.SetWidth(width)
}

// SetCharLimit sets the maximum number of characters. Zero means no limit.
func (f *TextField) SetCharLimit(limit int) {
	f.input.SetCharLimit(limit)
}

// Update forwards messages to the editing widget while focused.
func (f *TextField) Update(msg tea.Msg) tea.Cmd {
	if !f.focused {
		return nil
	}
	return f.input.Update(msg)
}

// View renders the label above the editing area.
func (f *TextField) View() string {
	labelStyle := styles.FormLabelStyle
	boxStyle := styles.BoxStyle
	if f.focused {
		labelStyle = styles.FormLabelFocusedStyle
		boxStyle = styles.FocusedBoxStyle
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(f.label))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(f.input.View()))
	return b.String()
}
