package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wexinc/todo/internal/task"
)

func newTestRunner(format OutputFormat, stopOnError bool) (*Runner, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	r := NewRunner(task.NewStore(), Config{
		OutputFormat: format,
		Writer:       out,
		ErrorWriter:  errOut,
		StopOnError:  stopOnError,
	})
	return r, out, errOut
}

func run(t *testing.T, r *Runner, script string) *Result {
	t.Helper()
	result, err := r.Run(context.Background(), strings.NewReader(script))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return result
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    OutputFormat
		wantErr bool
	}{
		{"", OutputText, false},
		{"text", OutputText, false},
		{"JSON", OutputJSON, false},
		{" json ", OutputJSON, false},
		{"yaml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseOutputFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseOutputFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNewRunner_Defaults(t *testing.T) {
	r := NewRunner(nil, Config{})
	if r.config.OutputFormat != OutputText {
		t.Errorf("OutputFormat = %q, want text", r.config.OutputFormat)
	}
	if r.config.Writer == nil || r.config.ErrorWriter == nil {
		t.Error("writers should default to stdout and stderr")
	}
	if r.Store() == nil {
		t.Error("nil store should be replaced with an empty one")
	}
	if r.Filter() != task.FilterAll {
		t.Errorf("Filter() = %q, want all", r.Filter())
	}
}

func TestRun_TextOutput(t *testing.T) {
	r, out, errOut := newTestRunner(OutputText, false)

	result := run(t, r, `# groceries
add 25-12-2024 Buy milk

add 01-01-2025 Call mom
done 1
list
filter pending
list
`)

	if result.HasFailures() {
		t.Fatalf("unexpected failures: %s", errOut.String())
	}
	if result.Lines != 6 || result.Succeeded != 6 {
		t.Errorf("Lines = %d, Succeeded = %d, want 6 and 6", result.Lines, result.Succeeded)
	}

	want := `added: Buy milk - Pending, Due: 25-12-2024
added: Call mom - Pending, Due: 01-01-2025
completed: Buy milk - Completed, Due: 25-12-2024
1. Buy milk - Completed, Due: 25-12-2024
2. Call mom - Pending, Due: 01-01-2025
filter: Pending
1. Call mom - Pending, Due: 01-01-2025
`
	if out.String() != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", out.String(), want)
	}
	if errOut.Len() != 0 {
		t.Errorf("unexpected error output: %s", errOut.String())
	}
}

func TestRun_IndicesFollowFilter(t *testing.T) {
	r, _, _ := newTestRunner(OutputText, false)

	run(t, r, `add 01-01-2025 first
add 02-01-2025 second
add 03-01-2025 third
done 2
filter pending
delete 2
`)

	all := r.Store().List(task.FilterAll)
	if len(all) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(all))
	}
	if all[0].Description != "first" || all[1].Description != "second" {
		t.Errorf("wrong task deleted: %q, %q", all[0].Description, all[1].Description)
	}
	if !all[1].Completed {
		t.Error("second should still be completed")
	}
}

func TestRun_ErrorsReportedPerLine(t *testing.T) {
	r, out, errOut := newTestRunner(OutputText, false)

	result := run(t, r, `add 31-02-2024 Impossible date
add 01-01-2025
add 01-01-2025 Valid
bogus
done 5
list
`)

	if result.Failed != 4 {
		t.Errorf("Failed = %d, want 4", result.Failed)
	}
	if result.Succeeded != 2 {
		t.Errorf("Succeeded = %d, want 2", result.Succeeded)
	}

	wantErrors := []string{
		"error: line 1: Invalid due date format. Please use DD-MM-YYYY.",
		"error: line 2: Task description cannot be empty.",
		`error: line 4: unknown command "bogus"`,
		"error: line 5: Please select a task to mark as completed.",
	}
	for _, want := range wantErrors {
		if !strings.Contains(errOut.String(), want) {
			t.Errorf("error output missing %q:\n%s", want, errOut.String())
		}
	}
	if !strings.Contains(out.String(), "1. Valid - Pending, Due: 01-01-2025") {
		t.Errorf("list output missing valid task:\n%s", out.String())
	}
	if r.Store().Count() != 1 {
		t.Errorf("failed adds should not change the store, Count() = %d", r.Store().Count())
	}
}

func TestRun_StopOnError(t *testing.T) {
	r, _, _ := newTestRunner(OutputText, true)

	result := run(t, r, `add 01-01-2025 one
delete 3
add 02-01-2025 two
`)

	if !result.Stopped {
		t.Error("run should report that it stopped")
	}
	if result.Lines != 2 || result.Failed != 1 {
		t.Errorf("Lines = %d, Failed = %d, want 2 and 1", result.Lines, result.Failed)
	}
	if r.Store().Count() != 1 {
		t.Errorf("lines after the failure should not run, Count() = %d", r.Store().Count())
	}
}

func TestRun_EmptyListOutput(t *testing.T) {
	r, out, _ := newTestRunner(OutputText, false)
	run(t, r, "filter completed\nlist\n")

	if !strings.Contains(out.String(), "(no tasks)") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRun_JSONOutput(t *testing.T) {
	r, out, errOut := newTestRunner(OutputJSON, false)

	result := run(t, r, `add 25-12-2024 Buy milk
add 26-12-2024 Wrap gifts
done 2
rm 9
list
`)

	if errOut.Len() != 0 {
		t.Errorf("json mode should not write to the error writer: %s", errOut.String())
	}

	var doc JSONOutput
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
	}

	if len(doc.Events) != 5 {
		t.Fatalf("expected 5 events, got %d", len(doc.Events))
	}
	if doc.Events[3].OK || !strings.Contains(doc.Events[3].Error, "line 4:") {
		t.Errorf("event 4 = %+v, want a failure on line 4", doc.Events[3])
	}
	if doc.Events[2].Task == nil || !doc.Events[2].Task.Completed || doc.Events[2].Task.CompletedAt == nil {
		t.Errorf("done event should carry the completed task: %+v", doc.Events[2])
	}
	if len(doc.Events[4].Tasks) != 2 {
		t.Errorf("list event should carry the view, got %d tasks", len(doc.Events[4].Tasks))
	}

	if len(doc.Tasks) != 2 {
		t.Fatalf("expected 2 tasks in snapshot, got %d", len(doc.Tasks))
	}
	if doc.Tasks[0].DueDate != "25-12-2024" || doc.Tasks[0].Completed {
		t.Errorf("first task = %+v", doc.Tasks[0])
	}
	if doc.Tasks[1].Description != "Wrap gifts" || !doc.Tasks[1].Completed {
		t.Errorf("second task = %+v", doc.Tasks[1])
	}

	if doc.Summary.Failed != 1 || doc.Summary.Succeeded != 4 {
		t.Errorf("summary = %+v", doc.Summary)
	}
	if doc.Summary.Completed != 1 || doc.Summary.Pending != 1 {
		t.Errorf("summary counts = %+v", doc.Summary)
	}
	if doc.Summary != result.Summary {
		t.Errorf("written summary %+v differs from result %+v", doc.Summary, result.Summary)
	}
}

func TestRun_JSONOutputEmptyScript(t *testing.T) {
	r, out, _ := newTestRunner(OutputJSON, false)
	run(t, r, "# nothing to do\n")

	var doc map[string]any
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	events, ok := doc["events"].([]any)
	if !ok || len(events) != 0 {
		t.Errorf("events = %v, want empty array", doc["events"])
	}
}

func TestRun_Cancelled(t *testing.T) {
	r, _, _ := newTestRunner(OutputText, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, strings.NewReader("add 01-01-2025 never\n"))
	if err == nil {
		t.Fatal("expected cancellation error")
	}
	if r.Store().Count() != 0 {
		t.Error("cancelled run should not execute lines")
	}
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.todo")
	if err := os.WriteFile(path, []byte("add 05-05-2025 From file\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r, out, _ := newTestRunner(OutputText, false)
	if _, err := r.RunFile(context.Background(), path); err != nil {
		t.Fatalf("RunFile() error = %v", err)
	}
	if !strings.Contains(out.String(), "added: From file") {
		t.Errorf("output = %q", out.String())
	}

	if _, err := r.RunFile(context.Background(), filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for a missing file")
	}
}
