// Package tui provides the terminal user interface for todo.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/todo/internal/config"
	"github.com/wexinc/todo/internal/logging"
	"github.com/wexinc/todo/internal/task"
	"github.com/wexinc/todo/internal/tui/components"
	"github.com/wexinc/todo/internal/tui/styles"
)

// Placeholders shown in the empty, unfocused form fields.
const (
	DescriptionPlaceholder = "Enter task description..."
	DueDatePlaceholder     = "DD-MM-YYYY"
)

// Focus identifies which control receives key input.
type Focus int

const (
	FocusDescription Focus = iota
	FocusDueDate
	FocusList
)

var focusOrder = []Focus{FocusDescription, FocusDueDate, FocusList}

// Model is the Bubble Tea model for the todo TUI.
type Model struct {
	store *task.Store
	keys  keyMap
	log   *logging.Logger

	// Components
	description *components.TextField
	dueDate     *components.TextField
	filterSel   *components.FilterSelect
	taskList    *components.TaskList
	statusBar   *components.StatusBar
	helpOverlay *components.HelpOverlay
	alert       *components.Alert

	focus      Focus
	listHeight int

	// Window dimensions
	width  int
	height int

	quitting bool
}

// New creates a new TUI model over store. A nil cfg uses the defaults.
func New(store *task.Store, cfg *config.Config) *Model {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	description := components.NewMultiLineField("description", "Description", DescriptionPlaceholder, 3)
	description.SetCharLimit(cfg.UI.DescriptionCharLimit)
	dueDate := components.NewSingleLineField("due_date", "Due date", DueDatePlaceholder)
	dueDate.SetCharLimit(20)

	keys := defaultKeyMap()
	m := &Model{
		store:       store,
		keys:        keys,
		log:         logging.With("component", "tui"),
		description: description,
		dueDate:     dueDate,
		filterSel:   components.NewFilterSelect(cfg.UI.DefaultFilter),
		taskList:    components.NewTaskList(cfg.UI.ListHeight),
		statusBar:   components.NewStatusBar(),
		helpOverlay: components.NewHelpOverlay(keys.helpSections()...),
		alert:       components.NewAlert(),
		listHeight:  cfg.UI.ListHeight,
	}

	m.setFocus(FocusDescription)
	m.refresh()
	return m
}

// Init is the Bubble Tea initialization function.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Overlays capture input while visible
	if m.alert.IsVisible() || m.helpOverlay.IsVisible() {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.ForceQuit) {
			return m.quit()
		}
		if m.alert.IsVisible() {
			return m, m.alert.Update(msg)
		}
		return m, m.helpOverlay.Update(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case components.FilterChangedMsg:
		m.log.Debug("filter changed", "filter", msg.Filter)
		m.statusBar.SetMessage("Showing " + strings.ToLower(msg.Filter.Label()) + " tasks")
		return m, nil

	case TaskAddedMsg:
		m.statusBar.SetMessage("Added: " + components.RenderLine(msg.Task))
		return m, nil

	case TaskCompletedMsg:
		m.statusBar.SetMessage("Completed: " + components.RenderLine(msg.Task))
		return m, nil

	case TaskDeletedMsg:
		m.statusBar.SetMessage("Deleted: " + components.RenderLine(msg.Task))
		return m, nil

	case components.AlertDismissedMsg, components.HelpClosedMsg:
		return m, nil
	}

	// Cursor blink and other internal messages go to the focused field
	return m, m.updateFocusedField(msg)
}

// handleKeyPress handles keyboard input.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m.quit()
	case key.Matches(msg, m.keys.Add):
		return m, m.addTask()
	case key.Matches(msg, m.keys.NextFocus):
		return m, m.cycleFocus(1)
	case key.Matches(msg, m.keys.PrevFocus):
		return m, m.cycleFocus(-1)
	}

	switch m.focus {
	case FocusDueDate:
		if key.Matches(msg, m.keys.Submit) {
			return m, m.addTask()
		}
		return m, m.dueDate.Update(msg)
	case FocusList:
		return m.handleListKey(msg)
	default:
		return m, m.description.Update(msg)
	}
}

// handleListKey handles keys while the task list is focused.
func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.helpOverlay.Show()
		return m, nil
	case key.Matches(msg, m.keys.Complete):
		return m, m.markCompleted()
	case key.Matches(msg, m.keys.Delete):
		return m, m.deleteTask()
	}

	if cmd := m.filterSel.Update(msg); cmd != nil {
		m.refresh()
		return m, cmd
	}
	return m, m.taskList.Update(msg)
}

// addTask adds a task from the form fields. Validation failures open the
// alert and leave the fields untouched.
func (m *Model) addTask() tea.Cmd {
	added, err := m.store.Add(m.description.Value(), m.dueDate.Value())
	if err != nil {
		m.alert.ShowError(err)
		return nil
	}

	m.log.Debug("task added", "id", added.ID, "due", added.DueDateString())
	m.description.Clear()
	m.dueDate.Clear()
	m.refresh()
	cmd := m.setFocus(FocusDescription)

	return tea.Batch(cmd, func() tea.Msg {
		return TaskAddedMsg{Task: added}
	})
}

// markCompleted completes the selected task of the current view.
func (m *Model) markCompleted() tea.Cmd {
	index, filter := m.taskList.Selected(), m.filterSel.Filter()
	done, err := m.store.MarkCompleted(index, filter)
	if err != nil {
		m.alert.ShowError(err)
		return nil
	}

	m.log.Debug("task completed", "id", done.ID, "filter", filter, "index", index)
	m.refresh()
	return func() tea.Msg {
		return TaskCompletedMsg{Task: done}
	}
}

// deleteTask removes the selected task of the current view.
func (m *Model) deleteTask() tea.Cmd {
	index, filter := m.taskList.Selected(), m.filterSel.Filter()
	removed, err := m.store.Delete(index, filter)
	if err != nil {
		m.alert.ShowError(err)
		return nil
	}

	m.log.Debug("task deleted", "id", removed.ID, "filter", filter, "index", index)
	m.refresh()
	return func() tea.Msg {
		return TaskDeletedMsg{Task: removed}
	}
}

// refresh re-reads the current view from the store.
func (m *Model) refresh() {
	filter := m.filterSel.Filter()
	tasks := m.store.List(filter)
	m.taskList.SetTasks(tasks)
	m.taskList.SetFocused(m.focus == FocusList)

	completed, pending := m.store.Counts()
	m.statusBar.SetCounts(len(tasks), completed, pending)
	m.statusBar.SetFilter(filter)
}

// cycleFocus moves focus forward (step 1) or backward (step -1) around
// the focus ring.
func (m *Model) cycleFocus(step int) tea.Cmd {
	current := 0
	for i, f := range focusOrder {
		if f == m.focus {
			current = i
			break
		}
	}
	next := (current + step + len(focusOrder)) % len(focusOrder)
	return m.setFocus(focusOrder[next])
}

// setFocus moves focus to f, blurring the other controls.
func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f

	var cmd tea.Cmd
	switch f {
	case FocusDescription:
		m.dueDate.Blur()
		cmd = m.description.Focus()
	case FocusDueDate:
		m.description.Blur()
		cmd = m.dueDate.Focus()
	case FocusList:
		m.description.Blur()
		m.dueDate.Blur()
	}
	m.taskList.SetFocused(f == FocusList)
	m.statusBar.SetShortcuts(m.keys.shortHelp(f))
	return cmd
}

func (m *Model) updateFocusedField(msg tea.Msg) tea.Cmd {
	switch m.focus {
	case FocusDescription:
		return m.description.Update(msg)
	case FocusDueDate:
		return m.dueDate.Update(msg)
	}
	return nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// resize lays the components out for a terminal of the given size.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	m.description.SetWidth(width - 6)
	m.dueDate.SetWidth(len(DueDatePlaceholder) + 2)
	m.taskList.SetWidth(width - 4)
	m.statusBar.SetWidth(width)
	m.helpOverlay.SetWidth(60)
	m.alert.SetWidth(56)

	// Title, both fields, the filter row, list border and status bar
	available := height - 17
	listHeight := m.listHeight
	if available < listHeight {
		listHeight = available
	}
	if listHeight < 3 {
		listHeight = 3
	}
	m.taskList.SetHeight(listHeight)
}

// View renders the TUI.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	if m.alert.IsVisible() {
		return m.renderOverlay(m.alert.View())
	}
	if m.helpOverlay.IsVisible() {
		return m.renderOverlay(m.helpOverlay.View())
	}

	listBox := styles.BoxStyle
	if m.focus == FocusList {
		listBox = styles.FocusedBoxStyle
	}
	if m.width > 0 {
		listBox = listBox.Width(m.width - 2)
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("TO-DO LIST"))
	b.WriteString("\n\n")
	b.WriteString(m.description.View())
	b.WriteString("\n")
	b.WriteString(m.dueDate.View())
	b.WriteString("\n\n")
	b.WriteString(m.filterSel.View())
	b.WriteString("\n")
	b.WriteString(listBox.Render(m.taskList.View()))
	b.WriteString("\n")
	b.WriteString(m.statusBar.View())

	return b.String()
}

// renderOverlay centers an overlay in the window.
func (m *Model) renderOverlay(overlay string) string {
	if m.width <= 0 || m.height <= 0 {
		return overlay
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
}

// Run starts the TUI over store and blocks until the user quits.
func Run(store *task.Store, cfg *config.Config) error {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	_, err := tea.NewProgram(New(store, cfg), opts...).Run()
	return err
}
