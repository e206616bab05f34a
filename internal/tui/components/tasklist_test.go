package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/todo/internal/task"
)

func sampleTasks(t *testing.T, descriptions ...string) []*task.Task {
	t.Helper()
	store := task.NewStore()
	for _, d := range descriptions {
		if _, err := store.Add(d, "01-02-2025"); err != nil {
			t.Fatalf("Add(%q): %v", d, err)
		}
	}
	return store.List(task.FilterAll)
}

func TestNewTaskList(t *testing.T) {
	tl := NewTaskList(5)
	if tl.Len() != 0 {
		t.Errorf("expected empty list, got %d", tl.Len())
	}
	if tl.Selected() != task.NoSelection {
		t.Errorf("expected no selection, got %d", tl.Selected())
	}
	if tl.SelectedTask() != nil {
		t.Error("SelectedTask() should be nil on an empty list")
	}
	if tl.Focused() {
		t.Error("list should start unfocused")
	}
}

func TestTaskList_FocusSelectsFirstRow(t *testing.T) {
	tl := NewTaskList(5)
	tl.SetTasks(sampleTasks(t, "a", "b"))

	if tl.Selected() != task.NoSelection {
		t.Fatalf("SetTasks should not select, got %d", tl.Selected())
	}

	tl.SetFocused(true)
	if tl.Selected() != 0 {
		t.Errorf("focusing should select row 0, got %d", tl.Selected())
	}
}

func TestTaskList_FocusEmptyKeepsNoSelection(t *testing.T) {
	tl := NewTaskList(5)
	tl.SetFocused(true)
	if tl.Selected() != task.NoSelection {
		t.Errorf("Selected() = %d, want NoSelection", tl.Selected())
	}
}

func TestTaskList_Navigation(t *testing.T) {
	tl := NewTaskList(5)
	tl.SetTasks(sampleTasks(t, "first", "second", "third"))
	tl.SetFocused(true)

	steps := []struct {
		key  string
		want int
	}{
		{"j", 1},
		{"down", 2},
		{"j", 2},
		{"k", 1},
		{"up", 0},
		{"up", 0},
		{"G", 2},
		{"g", 0},
		{"end", 2},
		{"home", 0},
	}

	for _, s := range steps {
		var msg tea.KeyMsg
		switch s.key {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "home":
			msg = tea.KeyMsg{Type: tea.KeyHome}
		case "end":
			msg = tea.KeyMsg{Type: tea.KeyEnd}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s.key)}
		}
		tl.Update(msg)
		if tl.Selected() != s.want {
			t.Fatalf("after %q selected = %d, want %d", s.key, tl.Selected(), s.want)
		}
	}
}

func TestTaskList_MoveDownFromNoSelection(t *testing.T) {
	tl := NewTaskList(5)
	tl.SetTasks(sampleTasks(t, "a", "b"))
	tl.MoveDown()
	if tl.Selected() != 0 {
		t.Errorf("Selected() = %d, want 0", tl.Selected())
	}
}

func TestTaskList_SetTasksClampsSelection(t *testing.T) {
	tl := NewTaskList(5)
	tl.SetTasks(sampleTasks(t, "a", "b", "c"))
	tl.SetSelected(2)

	tl.SetTasks(sampleTasks(t, "a", "b"))
	if tl.Selected() != 1 {
		t.Errorf("selection should clamp to 1, got %d", tl.Selected())
	}

	tl.SetTasks(nil)
	if tl.Selected() != task.NoSelection {
		t.Errorf("empty list should clear selection, got %d", tl.Selected())
	}
}

func TestTaskList_SetSelectedIgnoresOutOfRange(t *testing.T) {
	tl := NewTaskList(5)
	tl.SetTasks(sampleTasks(t, "a", "b"))
	tl.SetSelected(1)
	tl.SetSelected(7)
	tl.SetSelected(-3)
	if tl.Selected() != 1 {
		t.Errorf("Selected() = %d, want 1", tl.Selected())
	}

	tl.ClearSelection()
	if tl.Selected() != task.NoSelection {
		t.Errorf("ClearSelection left %d", tl.Selected())
	}
}

func TestTaskList_SelectedTask(t *testing.T) {
	tl := NewTaskList(5)
	tl.SetTasks(sampleTasks(t, "a", "b"))
	tl.SetSelected(1)

	got := tl.SelectedTask()
	if got == nil || got.Description != "b" {
		t.Errorf("SelectedTask() = %v, want task b", got)
	}
}

func TestTaskList_ViewEmpty(t *testing.T) {
	tl := NewTaskList(5)
	if !strings.Contains(tl.View(), "No tasks") {
		t.Errorf("empty View() = %q", tl.View())
	}
}

func TestTaskList_ViewRendersLines(t *testing.T) {
	tl := NewTaskList(5)
	tl.SetTasks(sampleTasks(t, "Buy milk", "Call mom"))

	view := tl.View()
	for _, want := range []string{
		"Buy milk - Pending, Due: 01-02-2025",
		"Call mom - Pending, Due: 01-02-2025",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestTaskList_ViewScrollIndicators(t *testing.T) {
	tl := NewTaskList(2)
	tl.SetTasks(sampleTasks(t, "one", "two", "three", "four"))
	tl.SetFocused(true)

	view := tl.View()
	if strings.Contains(view, "more above") {
		t.Error("top of list should not show 'more above'")
	}
	if !strings.Contains(view, "more below") {
		t.Error("expected 'more below'")
	}
	if strings.Contains(view, "three") {
		t.Error("row outside the window should not render")
	}

	tl.GoToBottom()
	view = tl.View()
	if !strings.Contains(view, "more above") {
		t.Error("expected 'more above' after scrolling")
	}
	if !strings.Contains(view, "four") {
		t.Error("last row should be visible")
	}
}

func TestRenderLine_CollapsesNewlines(t *testing.T) {
	tasks := sampleTasks(t, "first line\nsecond line\r\nthird")
	got := RenderLine(tasks[0])
	want := "first line second line third - Pending, Due: 01-02-2025"
	if got != want {
		t.Errorf("RenderLine() = %q, want %q", got, want)
	}
}
