package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wexinc/todo/internal/config"
	todoerrors "github.com/wexinc/todo/internal/errors"
)

// configCmd groups the configuration commands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the configuration file",
	Long: `Show or create the todo configuration file.

Settings are read from the file named by --config, or from config.yaml in
the user config directory when it exists. Environment variables prefixed
with TODO_ override file values, e.g. TODO_UI_DEFAULT_FILTER=pending.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a configuration file with the default settings.

Examples:
  todo config init                 # Write to the default location
  todo config init --config ./todo.yaml
  todo config init --force         # Overwrite an existing file`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	addConfigInitFlags(configInitCmd)
}

func addConfigInitFlags(c *cobra.Command) {
	c.Flags().Bool("force", false, "Overwrite an existing configuration file")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	cmd.Print(string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}

	if _, err := os.Stat(path); err == nil && !force {
		return todoerrors.ConfigExists(path)
	}

	if err := config.NewConfig().Save(path); err != nil {
		return err
	}
	cmd.Printf("Wrote default configuration to %s\n", path)
	return nil
}
