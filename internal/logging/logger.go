// Package logging builds zerolog loggers and carries them through contexts.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// ParseLevel maps a config string to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New creates a new zerolog logger writing to stderr
func New(cfg Config) zerolog.Logger {
	return newLogger(cfg, consoleOrJSON(cfg, os.Stderr))
}

// NewFromConfigValues builds a stderr logger from raw config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" {
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// EDGEDOCK_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// EDGEDOCK_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("EDGEDOCK_LOG_LEVEL"), os.Getenv("EDGEDOCK_LOG_FORMAT"))
}

// NewWithFile logs to stderr and to a size-rotated file in logDir. File
// output is always JSON so it stays greppable. The returned cleanup closes
// the file.
func NewWithFile(cfg Config, logDir string, opts RotatorOptions) (zerolog.Logger, func(), error) {
	if logDir == "" {
		return New(cfg), func() {}, nil
	}

	rotator, err := NewRotator(logDir, opts)
	if err != nil {
		return New(cfg), func() {}, fmt.Errorf("open log file: %w", err)
	}

	out := zerolog.MultiLevelWriter(consoleOrJSON(cfg, os.Stderr), rotator)
	cleanup := func() {
		if closeErr := rotator.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", closeErr)
		}
	}
	return newLogger(cfg, out), cleanup, nil
}

func consoleOrJSON(cfg Config, w io.Writer) io.Writer {
	if cfg.Format == "json" {
		return w
	}
	return zerolog.ConsoleWriter{Out: w, TimeFormat: cfg.TimeFormat}
}

func newLogger(cfg Config, w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}
