package batch

import (
	"errors"
	"strings"
	"testing"

	todoerrors "github.com/wexinc/todo/internal/errors"
	"github.com/wexinc/todo/internal/task"
)

func TestParseLine_Skips(t *testing.T) {
	for _, text := range []string{"", "   ", "# a comment", "  #indented comment"} {
		_, ok, err := ParseLine(1, text)
		if ok || err != nil {
			t.Errorf("ParseLine(%q) = ok %v, err %v; want skipped", text, ok, err)
		}
	}
}

func TestParseLine_Commands(t *testing.T) {
	tests := []struct {
		text string
		want Command
	}{
		{
			text: "add 25-12-2024 Buy milk",
			want: Command{Op: OpAdd, DueDate: "25-12-2024", Description: "Buy milk", Index: task.NoSelection},
		},
		{
			text: "ADD 01-01-2025   Call   mom  ",
			want: Command{Op: OpAdd, DueDate: "01-01-2025", Description: "Call mom", Index: task.NoSelection},
		},
		{
			text: "add",
			want: Command{Op: OpAdd, Index: task.NoSelection},
		},
		{
			text: "done 2",
			want: Command{Op: OpComplete, Index: 1},
		},
		{
			text: "complete 1",
			want: Command{Op: OpComplete, Index: 0},
		},
		{
			text: "done 0",
			want: Command{Op: OpComplete, Index: task.NoSelection},
		},
		{
			text: "delete 3",
			want: Command{Op: OpDelete, Index: 2},
		},
		{
			text: "rm 1",
			want: Command{Op: OpDelete, Index: 0},
		},
		{
			text: "filter Pending",
			want: Command{Op: OpFilter, Filter: task.FilterPending, Index: task.NoSelection},
		},
		{
			text: "list",
			want: Command{Op: OpList, Index: task.NoSelection},
		},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok, err := ParseLine(7, tt.text)
			if err != nil || !ok {
				t.Fatalf("ParseLine() ok = %v, err = %v", ok, err)
			}
			if got.Line != 7 {
				t.Errorf("Line = %d, want 7", got.Line)
			}
			if got.Text != strings.TrimSpace(tt.text) {
				t.Errorf("Text = %q", got.Text)
			}
			got.Line, got.Text = 0, ""
			if got != tt.want {
				t.Errorf("ParseLine() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseLine_SyntaxErrors(t *testing.T) {
	tests := []struct {
		text    string
		wantMsg string
	}{
		{"frobnicate 1", `unknown command "frobnicate"`},
		{"done", "takes exactly one task number"},
		{"done 1 2", "takes exactly one task number"},
		{"delete two", `invalid task number "two"`},
		{"filter", "filter takes one of"},
		{"filter someday", `unknown filter "someday"`},
		{"list all", "list takes no arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, ok, err := ParseLine(4, tt.text)
			if ok {
				t.Error("ok should be false on error")
			}
			if !errors.Is(err, todoerrors.ErrScript) {
				t.Fatalf("expected ErrScript, got %v", err)
			}
			msg := todoerrors.Message(err)
			if !strings.HasPrefix(msg, "line 4:") {
				t.Errorf("message %q should start with the line number", msg)
			}
			if !strings.Contains(msg, tt.wantMsg) {
				t.Errorf("message %q should contain %q", msg, tt.wantMsg)
			}
		})
	}
}
