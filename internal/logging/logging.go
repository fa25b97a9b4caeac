// Package logging builds the structured logger shared by the engine and the
// command line tool.
//
// Code logs through log/slog. The handler behind it is charmbracelet/log,
// which renders human-friendly output on a terminal and logfmt or JSON
// elsewhere.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// ErrUnknownLevel indicates a level name ParseLevel does not know.
var ErrUnknownLevel = errors.New("unknown log level")

// Format selects the handler output format.
type Format string

const (
	// FormatText writes human-readable lines.
	FormatText Format = "text"

	// FormatJSON writes one JSON object per record.
	FormatJSON Format = "json"

	// FormatLogfmt writes key=value pairs.
	FormatLogfmt Format = "logfmt"
)

// Config configures a logger.
type Config struct {
	// Level is the minimum level name: debug, info, warn or error.
	// Empty means info.
	Level string

	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer

	// Prefix is prepended to every message.
	Prefix string

	// Format defaults to FormatText.
	Format Format

	// Timestamps adds the time to every record.
	Timestamps bool
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Output: os.Stderr,
		Prefix: "mentions",
		Format: FormatText,
	}
}

// ParseLevel parses a level name, ignoring case.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// New creates a logger from cfg.
func New(cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	opts := charmlog.Options{
		Level:           charmLevel(level),
		Prefix:          cfg.Prefix,
		ReportTimestamp: cfg.Timestamps,
		TimeFormat:      time.RFC3339,
	}
	switch cfg.Format {
	case "", FormatText:
		opts.Formatter = charmlog.TextFormatter
	case FormatJSON:
		opts.Formatter = charmlog.JSONFormatter
	case FormatLogfmt:
		opts.Formatter = charmlog.LogfmtFormatter
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return slog.New(charmlog.NewWithOptions(cfg.Output, opts)), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func charmLevel(l slog.Level) charmlog.Level {
	switch {
	case l <= slog.LevelDebug:
		return charmlog.DebugLevel
	case l <= slog.LevelInfo:
		return charmlog.InfoLevel
	case l <= slog.LevelWarn:
		return charmlog.WarnLevel
	default:
		return charmlog.ErrorLevel
	}
}
