package components

import "github.com/charmbracelet/bubbles/key"

// ListKeys are the task list navigation bindings.
var ListKeys = struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/↑", "move up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/↓", "move down")),
	Top:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g/home", "first task")),
	Bottom: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/end", "last task")),
}

// FilterKeys are the filter selector bindings.
var FilterKeys = struct {
	Next      key.Binding
	Prev      key.Binding
	All       key.Binding
	Completed key.Binding
	Pending   key.Binding
}{
	Next:      key.NewBinding(key.WithKeys("f", "right"), key.WithHelp("f/→", "next filter")),
	Prev:      key.NewBinding(key.WithKeys("F", "left"), key.WithHelp("F/←", "previous filter")),
	All:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "show all")),
	Completed: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "show completed")),
	Pending:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "show pending")),
}

// helpCloseKeys close the help overlay.
var helpCloseKeys = key.NewBinding(key.WithKeys("esc", "?", "q"))
