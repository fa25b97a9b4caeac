package config

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/nioark/mentions/internal/engine/tokenize"
	"github.com/nioark/mentions/internal/logging"
)

// Config holds the resolved settings.
type Config struct {
	// Trigger is the character that starts a mention.
	Trigger string

	// Directory is the path of the directory file. Empty means the
	// built-in directory.
	Directory string

	// DiffTimeout bounds each diff. Zero means no limit.
	DiffTimeout time.Duration

	// Watch reloads the directory file when it changes.
	Watch bool

	Log LogConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Trigger: string(tokenize.DefaultTrigger),
		Log: LogConfig{
			Level:  "info",
			Format: string(logging.FormatText),
		},
	}
}

// TriggerRune returns the trigger as a rune.
func (c Config) TriggerRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Trigger)
	return r
}

// Logging returns the logger configuration for c.
func (c Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Log.Level
	cfg.Format = logging.Format(strings.ToLower(c.Log.Format))
	return cfg
}

// Validate checks the settings.
func (c Config) Validate() error {
	if utf8.RuneCountInString(c.Trigger) != 1 {
		return fmt.Errorf("%w: %q must be one character", ErrInvalidTrigger, c.Trigger)
	}
	if r := c.TriggerRune(); tokenize.IsWordRune(r) || unicode.IsSpace(r) {
		return fmt.Errorf("%w: %q cannot start a mention", ErrInvalidTrigger, c.Trigger)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLevel, err)
	}
	switch logging.Format(strings.ToLower(c.Log.Format)) {
	case logging.FormatText, logging.FormatJSON, logging.FormatLogfmt:
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidValue, c.Log.Format)
	}
	if c.DiffTimeout < 0 {
		return fmt.Errorf("%w: negative diff timeout %s", ErrInvalidValue, c.DiffTimeout)
	}
	return nil
}

// apply decodes a merged settings map over c.
func (c *Config) apply(m map[string]any) error {
	var err error
	for key, val := range m {
		switch key {
		case "trigger":
			c.Trigger, err = asString(key, val)
		case "directory":
			c.Directory, err = asString(key, val)
		case "diff_timeout":
			c.DiffTimeout, err = asDuration(key, val)
		case "watch":
			c.Watch, err = asBool(key, val)
		case "log":
			sub, ok := val.(map[string]any)
			if !ok {
				return fmt.Errorf("%w: %s must be a table", ErrInvalidValue, key)
			}
			err = c.Log.apply(sub)
		default:
			return fmt.Errorf("%w: unknown setting %q", ErrInvalidValue, key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (l *LogConfig) apply(m map[string]any) error {
	var err error
	for key, val := range m {
		switch key {
		case "level":
			l.Level, err = asString("log."+key, val)
		case "format":
			l.Format, err = asString("log."+key, val)
		default:
			return fmt.Errorf("%w: unknown setting %q", ErrInvalidValue, "log."+key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func asString(key string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidValue, key, v)
	}
	return s, nil
}

func asBool(key string, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s must be a boolean, got %T", ErrInvalidValue, key, v)
	}
	return b, nil
}

// asDuration accepts a duration, a duration string, or a number of
// milliseconds.
func asDuration(key string, v any) (time.Duration, error) {
	switch d := v.(type) {
	case time.Duration:
		return d, nil
	case int64:
		return time.Duration(d) * time.Millisecond, nil
	case string:
		if parsed, err := time.ParseDuration(d); err == nil {
			return parsed, nil
		}
	}
	return 0, fmt.Errorf("%w: %s must be a duration, got %v", ErrInvalidValue, key, v)
}
