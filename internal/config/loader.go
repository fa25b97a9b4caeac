package config

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Load resolves the configuration from defaults, the TOML file at path and
// the environment. An empty path or a missing file is not an error.
func Load(path string) (Config, error) {
	file, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	return resolve(file, NewEnvLoader(EnvPrefix).Load())
}

// LoadFile reads the TOML file at path into a settings map. It returns nil
// for an empty path or a missing file.
func LoadFile(path string) (map[string]any, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return parse(path, data)
}

// LoadFromReader reads TOML settings from r.
func LoadFromReader(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse("<reader>", data)
}

func parse(source string, data []byte) (map[string]any, error) {
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
	}
	return m, nil
}

// resolve merges the layers in order over the defaults and validates the
// result.
func resolve(layers ...map[string]any) (Config, error) {
	merged := make(map[string]any)
	for _, l := range layers {
		merged = merge(merged, l)
	}

	cfg := Default()
	if err := cfg.apply(merged); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// merge overlays src onto dst. Tables are merged recursively; other values
// are replaced.
func merge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any)
	}
	for key, srcVal := range src {
		srcMap, srcIsMap := srcVal.(map[string]any)
		dstMap, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			dst[key] = merge(dstMap, srcMap)
			continue
		}
		if srcIsMap {
			dst[key] = merge(nil, srcMap)
			continue
		}
		dst[key] = srcVal
	}
	return dst
}
