// Package config provides configuration data structures for todo.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wexinc/todo/internal/task"
)

// Config represents the complete todo configuration loaded from config.yaml.
type Config struct {
	UI      UIConfig      `yaml:"ui"      json:"ui"      mapstructure:"ui"`
	Logging LoggingConfig `yaml:"logging" json:"logging" mapstructure:"logging"`
}

// UIConfig configures the terminal interface.
type UIConfig struct {
	// DefaultFilter is the filter the task list starts with (default: all).
	DefaultFilter task.Filter `yaml:"default_filter" json:"default_filter" mapstructure:"default_filter"`
	// ListHeight is the number of task rows shown before scrolling (default: 10).
	ListHeight int `yaml:"list_height" json:"list_height" mapstructure:"list_height"`
	// DescriptionCharLimit caps the description length; 0 means no limit (default: 500).
	DescriptionCharLimit int `yaml:"description_char_limit" json:"description_char_limit" mapstructure:"description_char_limit"`
	// AltScreen runs the interface in the terminal's alternate screen (default: true).
	AltScreen bool `yaml:"alt_screen" json:"alt_screen" mapstructure:"alt_screen"`
}

// LoggingConfig configures the log files.
type LoggingConfig struct {
	// Enabled turns file logging on (default: true).
	Enabled bool `yaml:"enabled" json:"enabled" mapstructure:"enabled"`
	// Level is the minimum level written: debug, info, warn or error (default: info).
	Level string `yaml:"level" json:"level" mapstructure:"level"`
	// Dir is the log directory (default: <user cache dir>/todo/logs).
	Dir string `yaml:"dir" json:"dir" mapstructure:"dir"`
	// MaxFiles is the number of log files kept (default: 10).
	MaxFiles int `yaml:"max_files" json:"max_files" mapstructure:"max_files"`
	// MaxAge is how long old log files are kept (default: 168h).
	MaxAge time.Duration `yaml:"max_age" json:"max_age" mapstructure:"max_age"`
	// JSON writes structured JSON lines instead of text.
	JSON bool `yaml:"json" json:"json" mapstructure:"json"`
}

// Default values.
const (
	DefaultListHeight           = 10
	DefaultDescriptionCharLimit = 500
	DefaultLogLevel             = "info"
	DefaultMaxLogFiles          = 10
	DefaultMaxLogAge            = 7 * 24 * time.Hour
)

// validLogLevels lists the accepted logging.level values.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// DefaultConfigPath returns the default config file location,
// <user config dir>/todo/config.yaml, or .todo/config.yaml if there is none.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".todo", "config.yaml")
	}
	return filepath.Join(dir, "todo", "config.yaml")
}

// DefaultLogDir returns the default log directory,
// <user cache dir>/todo/logs, or .todo/logs if there is none.
func DefaultLogDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(".todo", "logs")
	}
	return filepath.Join(dir, "todo", "logs")
}

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		UI: UIConfig{
			DefaultFilter:        task.FilterAll,
			ListHeight:           DefaultListHeight,
			DescriptionCharLimit: DefaultDescriptionCharLimit,
			AltScreen:            true,
		},
		Logging: LoggingConfig{
			Enabled:  true,
			Level:    DefaultLogLevel,
			Dir:      DefaultLogDir(),
			MaxFiles: DefaultMaxLogFiles,
			MaxAge:   DefaultMaxLogAge,
			JSON:     false,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.UI.DefaultFilter == "" {
		c.UI.DefaultFilter = defaults.UI.DefaultFilter
	}
	if c.UI.ListHeight == 0 {
		c.UI.ListHeight = defaults.UI.ListHeight
	}
	// AltScreen and Enabled default to true but an explicit false cannot be
	// told apart from unset here. The loader seeds viper with the defaults.

	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Logging.Dir == "" {
		c.Logging.Dir = defaults.Logging.Dir
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
	Options []string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if !c.UI.DefaultFilter.IsValid() {
		var names []string
		for _, f := range task.Filters() {
			names = append(names, f.String())
		}
		errs = append(errs, &ValidationError{
			Field:   "ui.default_filter",
			Message: "must be 'all', 'completed', or 'pending'",
			Options: names,
		})
	}
	if c.UI.ListHeight < 1 {
		errs = append(errs, &ValidationError{Field: "ui.list_height", Message: "must be at least 1"})
	}
	if c.UI.DescriptionCharLimit < 0 {
		errs = append(errs, &ValidationError{Field: "ui.description_char_limit", Message: "must be non-negative"})
	}

	if !isValidLevel(c.Logging.Level) {
		errs = append(errs, &ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
			Options: validLogLevels,
		})
	}
	if c.Logging.MaxFiles < 0 {
		errs = append(errs, &ValidationError{Field: "logging.max_files", Message: "must be non-negative"})
	}
	if c.Logging.MaxAge < 0 {
		errs = append(errs, &ValidationError{Field: "logging.max_age", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func isValidLevel(level string) bool {
	level = strings.ToLower(level)
	for _, l := range validLogLevels {
		if l == level {
			return true
		}
	}
	return false
}
