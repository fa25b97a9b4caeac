package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvPrefix prefixes every environment variable read by the loader.
const EnvPrefix = "MENTIONS_"

// EnvLoader reads settings from environment variables.
type EnvLoader struct {
	prefix  string
	mapping map[string]string // env var suffix -> settings path
	lookup  func(string) (string, bool)
}

// NewEnvLoader creates a loader for variables starting with prefix.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix: prefix,
		mapping: map[string]string{
			"TRIGGER":      "trigger",
			"DIRECTORY":    "directory",
			"DIFF_TIMEOUT": "diff_timeout",
			"WATCH":        "watch",
			"LOG_LEVEL":    "log.level",
			"LOG_FORMAT":   "log.format",
		},
		lookup: os.LookupEnv,
	}
}

// Load returns the settings present in the environment. Empty values are
// treated as set.
func (l *EnvLoader) Load() map[string]any {
	out := make(map[string]any)
	for suffix, path := range l.mapping {
		val, ok := l.lookup(l.prefix + suffix)
		if !ok {
			continue
		}
		setByPath(out, path, l.parseValue(path, val))
	}
	return out
}

// parseValue converts a raw value for the setting at path. Strings settings
// are kept verbatim so that a trigger like "1" is reported as invalid
// rather than turned into a number.
func (l *EnvLoader) parseValue(path, s string) any {
	switch path {
	case "watch":
		switch strings.ToLower(s) {
		case "true", "yes", "on", "1":
			return true
		case "false", "no", "off", "0", "":
			return false
		}
		return s
	case "diff_timeout":
		if d, err := time.ParseDuration(s); err == nil {
			return d
		}
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
			return ms
		}
		return s
	default:
		return s
	}
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}
