package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/wexinc/todo/internal/tui/components"
)

// keyMap holds the application-level bindings. Navigation inside the task
// list and the filter selector is handled by those components.
type keyMap struct {
	Add       key.Binding
	Submit    key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	Complete  key.Binding
	Delete    key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "add task"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add task"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Complete: key.NewBinding(
			key.WithKeys("c", " "),
			key.WithHelp("c/space", "mark completed"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d/x", "delete"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// helpSections groups the bindings for the help overlay. The list actions
// join the component's navigation keys.
func (k keyMap) helpSections() []components.HelpSection {
	sections := []components.HelpSection{
		{Title: "Adding", Bindings: []key.Binding{k.Add, k.Submit}},
	}
	for _, section := range components.ListHelp() {
		if section.Title == "Task List" {
			section.Bindings = append(section.Bindings, k.Complete, k.Delete)
		}
		sections = append(sections, section)
	}
	return append(sections, components.HelpSection{
		Title:    "General",
		Bindings: []key.Binding{k.NextFocus, k.PrevFocus, k.Help, k.Quit, k.ForceQuit},
	})
}

// shortHelp returns the bindings shown in the status bar for a focus area.
func (k keyMap) shortHelp(f Focus) []key.Binding {
	switch f {
	case FocusDueDate:
		return []key.Binding{k.Submit, k.NextFocus, k.ForceQuit}
	case FocusList:
		return []key.Binding{k.Complete, k.Delete, components.FilterKeys.Next, k.Help, k.Quit}
	default:
		return []key.Binding{k.Add, k.NextFocus, k.ForceQuit}
	}
}
