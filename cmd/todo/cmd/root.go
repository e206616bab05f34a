// Package cmd provides the CLI commands for todo.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wexinc/todo/internal/config"
	todoerrors "github.com/wexinc/todo/internal/errors"
	"github.com/wexinc/todo/internal/logging"
	"github.com/wexinc/todo/internal/task"
	"github.com/wexinc/todo/internal/tui"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "A terminal to-do list",
	Long: `todo is a terminal to-do list.

Add tasks with a description and a due date, mark them as completed,
delete them, and filter the list by status. Tasks live in memory for
the length of the session.

Examples:
  todo                     # Start the interactive list
  todo --filter pending    # Start showing pending tasks only
  todo batch tasks.todo    # Run commands from a script`,
	RunE:          runRoot,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	addRootFlags(rootCmd)
}

func addRootFlags(c *cobra.Command) {
	c.PersistentFlags().String("config", "", "Path to config file (default: user config dir)")
	c.Flags().StringP("filter", "f", "", "Initial filter: all, completed or pending")
}

// runRoot starts the TUI.
func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if raw, _ := cmd.Flags().GetString("filter"); raw != "" {
		filter, err := task.ParseFilter(raw)
		if err != nil {
			return err
		}
		cfg.UI.DefaultFilter = filter
	}

	closeLogging := setupLogging(cmd, cfg)
	defer closeLogging()

	logging.Info("todo starting", "version", Version, "filter", cfg.UI.DefaultFilter)
	return tui.Run(task.NewStore(), cfg)
}

// loadConfig loads the file named by --config, or the default file if it exists.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		var invalid config.ValidationErrors
		if errors.As(err, &invalid) && len(invalid) > 0 {
			first := invalid[0]
			return nil, todoerrors.ConfigValidationError(first.Field, first.Message, first.Options).WithCause(err)
		}
		var loadErr *config.LoadError
		if errors.As(err, &loadErr) {
			return nil, todoerrors.ConfigParseError(loadErr.Path, err)
		}
		return nil, err
	}
	return cfg, nil
}

// setupLogging initializes the global logger from cfg and returns the
// function that closes it. Logging failures are reported and ignored.
func setupLogging(cmd *cobra.Command, cfg *config.Config) func() {
	if !cfg.Logging.Enabled {
		logging.SetGlobal(logging.NewNoop())
		return func() {}
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v, using info\n", err)
	}

	logConfig := &logging.Config{
		Level:       level,
		LogDir:      cfg.Logging.Dir,
		MaxLogFiles: cfg.Logging.MaxFiles,
		MaxLogAge:   cfg.Logging.MaxAge,
		Console:     false, // Don't mix console output with TUI
		JSONFormat:  cfg.Logging.JSON,
	}
	if err := logging.InitGlobal(logConfig); err != nil {
		// Non-fatal: warn but continue without file logging
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
		logging.SetGlobal(logging.NewNoop())
		return func() {}
	}
	return func() { _ = logging.CloseGlobal() }
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("todo {{.Version}}\n")

	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd, err)
		os.Exit(1)
	}
}

// printError writes err to the command's error stream, with details and a
// suggestion when it carries them.
func printError(cmd *cobra.Command, err error) {
	var todoErr *todoerrors.TodoError
	if errors.As(err, &todoErr) {
		fmt.Fprint(cmd.ErrOrStderr(), todoErr.Format())
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}
