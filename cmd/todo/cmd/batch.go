package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wexinc/todo/internal/batch"
	"github.com/wexinc/todo/internal/task"
)

// batchCmd represents the batch command.
var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Run todo commands from a script",
	Long: `Run todo commands from a script file, or from standard input when no
file (or "-") is given.

One command per line; blank lines and lines starting with # are ignored:
  add <DD-MM-YYYY> <description...>
  done <n>       (also: complete <n>)
  delete <n>     (also: rm <n>)
  filter all|completed|pending
  list

Task numbers are 1-based and refer to the current filter's view, as
printed by list. A failed line is reported and the run continues unless
--stop-on-error is set. The exit status is non-zero if any line failed.

Examples:
  todo batch tasks.todo
  todo batch --output json < tasks.todo
  echo "add 25-12-2024 Buy milk" | todo batch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	addBatchFlags(batchCmd)
}

func addBatchFlags(c *cobra.Command) {
	c.Flags().StringP("output", "o", "text", "Output format: text or json")
	c.Flags().Bool("stop-on-error", false, "Stop at the first failed line")
}

// runBatch is the main entry point for the batch command.
func runBatch(cmd *cobra.Command, args []string) error {
	rawFormat, _ := cmd.Flags().GetString("output")
	stopOnError, _ := cmd.Flags().GetBool("stop-on-error")

	format, err := batch.ParseOutputFormat(rawFormat)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	closeLogging := setupLogging(cmd, cfg)
	defer closeLogging()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := batch.NewRunner(task.NewStore(), batch.Config{
		OutputFormat: format,
		Writer:       cmd.OutOrStdout(),
		ErrorWriter:  cmd.ErrOrStderr(),
		StopOnError:  stopOnError,
	})

	var result *batch.Result
	name := "stdin"
	if len(args) == 1 && args[0] != "-" {
		name = args[0]
		result, err = runner.RunFile(ctx, name)
	} else {
		result, err = runner.Run(ctx, cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if result.HasFailures() {
		return fmt.Errorf("%s: %d of %d lines failed", name, result.Failed, result.Lines)
	}
	return nil
}
