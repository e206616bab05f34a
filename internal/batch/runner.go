package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	todoerrors "github.com/wexinc/todo/internal/errors"
	"github.com/wexinc/todo/internal/logging"
	"github.com/wexinc/todo/internal/task"
)

// OutputFormat specifies the output format for a batch run.
type OutputFormat string

const (
	// OutputText writes one human-readable line per result.
	OutputText OutputFormat = "text"
	// OutputJSON writes a single JSON document when the run ends.
	OutputJSON OutputFormat = "json"
)

// ParseOutputFormat parses an output format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(s))) {
	case OutputText, "":
		return OutputText, nil
	case OutputJSON:
		return OutputJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text or json)", s)
	}
}

// maxLineSize bounds a single script line.
const maxLineSize = 1024 * 1024

// Config configures a batch run.
type Config struct {
	// OutputFormat is text or json (default: text).
	OutputFormat OutputFormat
	// Writer receives normal output (default: os.Stdout).
	Writer io.Writer
	// ErrorWriter receives per-line errors in text mode (default: os.Stderr).
	ErrorWriter io.Writer
	// StopOnError ends the run at the first failed line.
	StopOnError bool
}

// DefaultConfig returns the default batch configuration.
func DefaultConfig() Config {
	return Config{
		OutputFormat: OutputText,
		Writer:       os.Stdout,
		ErrorWriter:  os.Stderr,
	}
}

// TaskJSON is the JSON form of a task.
type TaskJSON struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	DueDate     string     `json:"due_date"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func newTaskJSON(t *task.Task) TaskJSON {
	out := TaskJSON{
		ID:          t.ID,
		Description: t.Description,
		DueDate:     t.DueDateString(),
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
	}
	if !t.CompletedAt.IsZero() {
		completedAt := t.CompletedAt
		out.CompletedAt = &completedAt
	}
	return out
}

func newTaskJSONList(tasks []*task.Task) []TaskJSON {
	out := make([]TaskJSON, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, newTaskJSON(t))
	}
	return out
}

// Event records the outcome of one script line.
type Event struct {
	Line    int        `json:"line"`
	Command string     `json:"command"`
	OK      bool       `json:"ok"`
	Error   string     `json:"error,omitempty"`
	Task    *TaskJSON  `json:"task,omitempty"`
	Filter  string     `json:"filter,omitempty"`
	Tasks   []TaskJSON `json:"tasks,omitempty"`
}

// Summary counts the lines of a run.
type Summary struct {
	Lines     int    `json:"lines"`
	Succeeded int    `json:"succeeded"`
	Failed    int    `json:"failed"`
	Stopped   bool   `json:"stopped,omitempty"`
	Filter    string `json:"filter"`
	Completed int    `json:"completed"`
	Pending   int    `json:"pending"`
}

// JSONOutput is the document written in json mode.
type JSONOutput struct {
	Events  []Event    `json:"events"`
	Tasks   []TaskJSON `json:"tasks"`
	Summary Summary    `json:"summary"`
}

// Result is the outcome of a run.
type Result struct {
	Summary
	Events []Event
}

// HasFailures reports whether any line failed.
func (r *Result) HasFailures() bool {
	return r.Failed > 0
}

// Runner executes scripts against a task store. The store outlives the run,
// so several scripts can be applied to the same list.
type Runner struct {
	config Config
	store  *task.Store
	filter task.Filter
	log    *logging.Logger
}

// NewRunner creates a runner over store. Zero config fields take defaults.
func NewRunner(store *task.Store, config Config) *Runner {
	defaults := DefaultConfig()
	if config.OutputFormat == "" {
		config.OutputFormat = defaults.OutputFormat
	}
	if config.Writer == nil {
		config.Writer = defaults.Writer
	}
	if config.ErrorWriter == nil {
		config.ErrorWriter = defaults.ErrorWriter
	}
	if store == nil {
		store = task.NewStore()
	}

	return &Runner{
		config: config,
		store:  store,
		filter: task.FilterAll,
		log:    logging.With("component", "batch"),
	}
}

// Store returns the store the runner operates on.
func (r *Runner) Store() *task.Store {
	return r.store
}

// Filter returns the current view filter.
func (r *Runner) Filter() task.Filter {
	return r.filter
}

// Run executes the script read from script. Failed lines are reported and
// counted; the returned error is only for read failures and cancellation.
func (r *Runner) Run(ctx context.Context, script io.Reader) (*Result, error) {
	result := &Result{}

	scanner := bufio.NewScanner(script)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		lineNo++

		cmd, ok, err := ParseLine(lineNo, scanner.Text())
		if err == nil && !ok {
			continue
		}

		var event Event
		if err != nil {
			event = Event{Line: lineNo, Command: strings.TrimSpace(scanner.Text())}
		} else {
			event, err = r.execute(cmd)
		}

		result.Lines++
		if err != nil {
			event.OK = false
			event.Error = lineMessage(lineNo, err)
			result.Failed++
			r.reportError(event)
		} else {
			event.OK = true
			result.Succeeded++
		}
		result.Events = append(result.Events, event)

		if err != nil && r.config.StopOnError {
			result.Stopped = true
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("reading script: %w", err)
	}

	result.Filter = string(r.filter)
	result.Completed, result.Pending = r.store.Counts()

	r.log.Info("batch finished",
		"lines", result.Lines,
		"failed", result.Failed,
		"stopped", result.Stopped,
	)

	if r.config.OutputFormat == OutputJSON {
		if err := r.writeJSON(result); err != nil {
			return result, err
		}
	}
	return result, nil
}

// RunFile executes the script at path, or standard input when path is "-".
func (r *Runner) RunFile(ctx context.Context, path string) (*Result, error) {
	if path == "-" {
		return r.Run(ctx, os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()

	return r.Run(ctx, f)
}

// execute applies one command to the store.
func (r *Runner) execute(cmd Command) (Event, error) {
	event := Event{Line: cmd.Line, Command: cmd.Text}

	switch cmd.Op {
	case OpAdd:
		added, err := r.store.Add(cmd.Description, cmd.DueDate)
		if err != nil {
			return event, err
		}
		r.log.Debug("task added", "line", cmd.Line, "id", added.ID, "due", added.DueDateString())
		r.recordTask(&event, "added", added)

	case OpComplete:
		done, err := r.store.MarkCompleted(cmd.Index, r.filter)
		if err != nil {
			return event, err
		}
		r.log.Debug("task completed", "line", cmd.Line, "id", done.ID, "filter", r.filter, "index", cmd.Index)
		r.recordTask(&event, "completed", done)

	case OpDelete:
		removed, err := r.store.Delete(cmd.Index, r.filter)
		if err != nil {
			return event, err
		}
		r.log.Debug("task deleted", "line", cmd.Line, "id", removed.ID, "filter", r.filter, "index", cmd.Index)
		r.recordTask(&event, "deleted", removed)

	case OpFilter:
		r.filter = cmd.Filter
		event.Filter = string(cmd.Filter)
		r.printf("filter: %s\n", cmd.Filter.Label())

	case OpList:
		view := r.store.List(r.filter)
		event.Filter = string(r.filter)
		event.Tasks = newTaskJSONList(view)
		r.printList(view)

	default:
		return event, todoerrors.ScriptSyntax(cmd.Line, cmd.Text, fmt.Sprintf("unsupported command %q", cmd.Op))
	}

	return event, nil
}

func (r *Runner) recordTask(event *Event, verb string, t *task.Task) {
	tj := newTaskJSON(t)
	event.Task = &tj
	r.printf("%s: %s\n", verb, oneLine(t))
}

// printList writes the view with 1-based numbers, matching the numbers
// done and delete accept.
func (r *Runner) printList(view []*task.Task) {
	if len(view) == 0 {
		r.printf("(no tasks)\n")
		return
	}
	for i, t := range view {
		r.printf("%d. %s\n", i+1, oneLine(t))
	}
}

// printf writes to the output in text mode only.
func (r *Runner) printf(format string, args ...any) {
	if r.config.OutputFormat != OutputText {
		return
	}
	fmt.Fprintf(r.config.Writer, format, args...)
}

func (r *Runner) reportError(event Event) {
	if r.config.OutputFormat != OutputText {
		return
	}
	fmt.Fprintf(r.config.ErrorWriter, "error: %s\n", event.Error)
}

func (r *Runner) writeJSON(result *Result) error {
	events := result.Events
	if events == nil {
		events = []Event{}
	}
	output := JSONOutput{
		Events:  events,
		Tasks:   newTaskJSONList(r.store.List(task.FilterAll)),
		Summary: result.Summary,
	}

	encoder := json.NewEncoder(r.config.Writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("writing JSON output: %w", err)
	}
	return nil
}

// lineMessage formats an error for a script line. Syntax errors already
// carry the line number.
func lineMessage(line int, err error) string {
	if errors.Is(err, todoerrors.ErrScript) {
		return todoerrors.Message(err)
	}
	return fmt.Sprintf("line %d: %s", line, todoerrors.Message(err))
}

var newlineCollapser = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func oneLine(t *task.Task) string {
	return newlineCollapser.Replace(t.String())
}
