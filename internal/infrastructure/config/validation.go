package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/edgedock/internal/domain/entity"
)

var (
	validLogLevels  = []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled", "off"}
	validLogFormats = []string{"console", "json", "text"}
	validModifiers  = []string{"ctrl", "shift", "alt", "option", "cmd", "super"}
)

// validateConfig performs comprehensive validation of configuration values.
// Edge offsets outside 0..50 are not rejected here: the panel still renders
// where the offset puts it and the geometry check reports the problem.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateDock(config)...)
	validationErrors = append(validationErrors, validateItems(config)...)
	validationErrors = append(validationErrors, validateScreen(config)...)
	validationErrors = append(validationErrors, validateInput(config)...)
	validationErrors = append(validationErrors, validateHotkey(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateDatabase(config)...)

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateDock(config *Config) []string {
	var validationErrors []string
	if _, err := entity.ParseEdge(config.Dock.Edge); err != nil {
		validationErrors = append(validationErrors,
			fmt.Sprintf("dock.edge must be one of top, bottom, left, right (got %q)", config.Dock.Edge))
	}
	if config.Dock.TriggerDistance <= 0 {
		validationErrors = append(validationErrors, "dock.trigger_distance must be positive")
	}
	if config.Dock.HideDelayMs < 0 {
		validationErrors = append(validationErrors, "dock.hide_delay_ms must be non-negative")
	}

	layout := config.Dock.Layout
	if layout.ItemSize <= 0 {
		validationErrors = append(validationErrors, "dock.layout.item_size must be positive")
	}
	if layout.Thickness <= 0 {
		validationErrors = append(validationErrors, "dock.layout.thickness must be positive")
	}
	if layout.ItemSpacing < 0 {
		validationErrors = append(validationErrors, "dock.layout.item_spacing must be non-negative")
	}
	if layout.Padding < 0 {
		validationErrors = append(validationErrors, "dock.layout.padding must be non-negative")
	}
	return validationErrors
}

func validateItems(config *Config) []string {
	var validationErrors []string
	seen := make(map[string]int, len(config.Items))
	for i, item := range config.Items {
		if item.ID == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("items[%d] needs an id or a name", i))
			continue
		}
		if prev, dup := seen[item.ID]; dup {
			validationErrors = append(validationErrors,
				fmt.Sprintf("items[%d].id %q duplicates items[%d]", i, item.ID, prev))
		}
		seen[item.ID] = i
		if strings.TrimSpace(item.Target) == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("items[%d].target must not be empty", i))
		}
	}
	return validationErrors
}

func validateScreen(config *Config) []string {
	var validationErrors []string
	s := config.Screen
	if s.Width < 0 || s.Height < 0 {
		validationErrors = append(validationErrors, "screen.width and screen.height must be non-negative")
	}
	if s.InsetTop < 0 || s.InsetBottom < 0 {
		validationErrors = append(validationErrors, "screen insets must be non-negative")
	}
	if s.Height > 0 && s.InsetTop+s.InsetBottom >= s.Height {
		validationErrors = append(validationErrors, "screen insets leave no usable area")
	}
	return validationErrors
}

func validateInput(config *Config) []string {
	var validationErrors []string
	if config.Input.PollIntervalMs <= 0 {
		validationErrors = append(validationErrors, "input.poll_interval_ms must be positive")
	}
	if config.Input.PermissionPollIntervalMs <= 0 {
		validationErrors = append(validationErrors, "input.permission_poll_interval_ms must be positive")
	}
	return validationErrors
}

func validateHotkey(config *Config) []string {
	if !config.Hotkey.Enabled {
		return nil
	}
	var validationErrors []string
	for _, m := range config.Hotkey.Modifiers {
		if !slices.Contains(validModifiers, m) {
			validationErrors = append(validationErrors, fmt.Sprintf("hotkey.modifiers: unknown modifier %q", m))
		}
	}
	if config.Hotkey.Key == "" {
		validationErrors = append(validationErrors, "hotkey.key must not be empty when the hotkey is enabled")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if config.Logging.Level != "" && !slices.Contains(validLogLevels, config.Logging.Level) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of %s (got %q)", strings.Join(validLogLevels, ", "), config.Logging.Level))
	}
	if config.Logging.Format != "" && !slices.Contains(validLogFormats, config.Logging.Format) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be one of %s (got %q)", strings.Join(validLogFormats, ", "), config.Logging.Format))
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validateDatabase(config *Config) []string {
	if config.Database.RetentionDays < 0 {
		return []string{"database.retention_days must be non-negative"}
	}
	return nil
}
