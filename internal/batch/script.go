// Package batch runs todo commands from a script instead of the TUI.
package batch

import (
	"fmt"
	"strconv"
	"strings"

	todoerrors "github.com/wexinc/todo/internal/errors"
	"github.com/wexinc/todo/internal/task"
)

// Op is a script command.
type Op string

const (
	OpAdd      Op = "add"
	OpComplete Op = "done"
	OpDelete   Op = "delete"
	OpFilter   Op = "filter"
	OpList     Op = "list"
)

// aliases maps every accepted keyword to its command.
var aliases = map[string]Op{
	"add":      OpAdd,
	"done":     OpComplete,
	"complete": OpComplete,
	"delete":   OpDelete,
	"rm":       OpDelete,
	"filter":   OpFilter,
	"list":     OpList,
}

// Command is one parsed script line.
type Command struct {
	// Line is the 1-based line number in the script.
	Line int
	// Text is the line as written, trimmed.
	Text string
	Op   Op

	// Add arguments. Validation is left to the store.
	DueDate     string
	Description string

	// Index is the 0-based view index for done and delete.
	Index int

	Filter task.Filter
}

// ParseLine parses one script line. Blank lines and lines starting with #
// return ok == false and no error.
func ParseLine(line int, text string) (cmd Command, ok bool, err error) {
	text = strings.TrimSpace(text)
	if text == "" || strings.HasPrefix(text, "#") {
		return Command{}, false, nil
	}

	fields := strings.Fields(text)
	keyword := strings.ToLower(fields[0])
	args := fields[1:]

	op, known := aliases[keyword]
	if !known {
		return Command{}, false, todoerrors.ScriptSyntax(line, text, fmt.Sprintf("unknown command %q", fields[0]))
	}

	cmd = Command{Line: line, Text: text, Op: op, Index: task.NoSelection}

	switch op {
	case OpAdd:
		if len(args) > 0 {
			cmd.DueDate = args[0]
		}
		if len(args) > 1 {
			cmd.Description = strings.Join(args[1:], " ")
		}

	case OpComplete, OpDelete:
		if len(args) != 1 {
			return Command{}, false, todoerrors.ScriptSyntax(line, text, keyword+" takes exactly one task number")
		}
		n, convErr := strconv.Atoi(args[0])
		if convErr != nil {
			return Command{}, false, todoerrors.ScriptSyntax(line, text, fmt.Sprintf("invalid task number %q", args[0]))
		}
		// Numbers are 1-based in scripts; 0 and below select nothing
		if n > 0 {
			cmd.Index = n - 1
		}

	case OpFilter:
		if len(args) != 1 {
			return Command{}, false, todoerrors.ScriptSyntax(line, text, "filter takes one of all, completed or pending")
		}
		f, parseErr := task.ParseFilter(args[0])
		if parseErr != nil {
			return Command{}, false, todoerrors.ScriptSyntax(line, text, parseErr.Error())
		}
		cmd.Filter = f

	case OpList:
		if len(args) != 0 {
			return Command{}, false, todoerrors.ScriptSyntax(line, text, "list takes no arguments")
		}
	}

	return cmd, true, nil
}
