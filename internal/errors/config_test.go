package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigParseError(t *testing.T) {
	parseErr := errors.New("unexpected end of file")
	err := ConfigParseError("/path/config.yaml", parseErr)

	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigParseError should return ErrConfig")
	}
	if !errors.Is(err.Cause, parseErr) {
		t.Error("Should wrap the parse error")
	}
	if !strings.Contains(err.Suggestion, "YAML") {
		t.Error("Suggestion should mention YAML syntax")
	}
}

func TestConfigValidationError(t *testing.T) {
	err := ConfigValidationError("ui.default_filter", "unknown filter", []string{"all", "completed", "pending"})

	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigValidationError should return ErrConfig")
	}
	if !strings.Contains(err.Suggestion, "all, completed, pending") {
		t.Error("Suggestion should list valid options")
	}
	if err.Details["field"] != "ui.default_filter" {
		t.Error("Should include field name")
	}
}

func TestConfigValidationError_NoOptions(t *testing.T) {
	err := ConfigValidationError("ui.list_height", "must be positive", nil)

	if !strings.Contains(err.Suggestion, "Fix the") {
		t.Error("Should still provide suggestion without options")
	}
	if strings.Contains(err.Suggestion, "Valid options") {
		t.Error("Should not list options when none are given")
	}
}

func TestConfigExists(t *testing.T) {
	err := ConfigExists("/home/user/.config/todo/config.yaml")

	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigExists should return ErrConfig")
	}
	if !strings.Contains(err.Suggestion, "--force") {
		t.Error("Suggestion should mention --force")
	}
}
