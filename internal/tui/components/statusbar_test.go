package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/todo/internal/task"
)

func TestNewStatusBar(t *testing.T) {
	sb := NewStatusBar()
	if sb.Data().Filter != task.FilterAll {
		t.Errorf("default filter = %q, want all", sb.Data().Filter)
	}
}

func TestStatusBar_View(t *testing.T) {
	sb := NewStatusBar()
	sb.SetCounts(1, 2, 3)
	sb.SetFilter(task.FilterCompleted)
	sb.SetMessage("Task added")

	view := sb.View()
	for _, want := range []string{"Showing: 1/5", "Done: 2", "Open: 3", "Filter: Completed", "Task added"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestStatusBar_Shortcuts(t *testing.T) {
	sb := NewStatusBar()
	sb.SetShortcuts([]key.Binding{completeKey, deleteKey})

	view := sb.View()
	if !strings.Contains(view, "complete") || !strings.Contains(view, "delete") {
		t.Errorf("View() should list shortcuts:\n%s", view)
	}
}

func TestStatusBar_WidthPadsContent(t *testing.T) {
	sb := NewStatusBar()
	sb.SetShortcuts([]key.Binding{quitKey})
	sb.SetWidth(120)

	view := sb.View()
	if w := lipgloss.Width(view); w != 120 {
		t.Errorf("rendered width = %d, want 120", w)
	}
}

func TestStatusBar_SetData(t *testing.T) {
	sb := NewStatusBar()
	sb.SetData(StatusBarData{Visible: 4, Pending: 4, Filter: task.FilterPending})

	if got := sb.Data(); got.Visible != 4 || got.Filter != task.FilterPending {
		t.Errorf("Data() = %+v", got)
	}
}
