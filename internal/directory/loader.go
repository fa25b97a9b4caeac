package directory

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Format identifies a directory file encoding.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseError describes a directory file that could not be decoded.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing directory %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type fileEntry struct {
	ID      string `toml:"id" yaml:"id"`
	Display string `toml:"display" yaml:"display"`
}

type fileDirectory struct {
	Entries []fileEntry `toml:"entries" yaml:"entries"`
}

// FormatFor returns the format implied by a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// Load reads a directory file, picking the decoder from its extension.
func Load(path string) (*Directory, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading directory file %s: %w", path, err)
	}
	return parse(path, format, data)
}

// LoadFromReader decodes a directory in the given format.
func LoadFromReader(r io.Reader, format Format) (*Directory, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}
	return parse("<reader>", format, data)
}

func parse(source string, format Format, data []byte) (*Directory, error) {
	var (
		raw []fileEntry
		err error
	)
	switch format {
	case FormatTOML:
		raw, err = parseTOML(data)
	case FormatYAML:
		raw, err = parseYAML(data)
	case FormatJSON:
		raw, err = parseJSON(data)
	default:
		return nil, fmt.Errorf("%s: %w", format, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
	}

	entries := make([]*Entry, 0, len(raw))
	for _, fe := range raw {
		entries = append(entries, NewEntry(strings.TrimSpace(fe.ID), fe.Display))
	}
	d, err := New(entries...)
	if err != nil {
		return nil, fmt.Errorf("directory %s: %w", source, err)
	}
	return d, nil
}

func parseTOML(data []byte) ([]fileEntry, error) {
	var fd fileDirectory
	if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&fd); err != nil {
		return nil, err
	}
	return fd.Entries, nil
}

func parseYAML(data []byte) ([]fileEntry, error) {
	var fd fileDirectory
	if err := yaml.Unmarshal(data, &fd); err != nil {
		return nil, err
	}
	return fd.Entries, nil
}

// parseJSON accepts either {"entries": [...]} or a bare array.
func parseJSON(data []byte) ([]fileEntry, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	list := root
	if !root.IsArray() {
		list = root.Get("entries")
		if !list.IsArray() {
			return nil, fmt.Errorf("missing entries array")
		}
	}

	var out []fileEntry
	list.ForEach(func(_, v gjson.Result) bool {
		out = append(out, fileEntry{
			ID:      v.Get("id").String(),
			Display: v.Get("display").String(),
		})
		return true
	})
	return out, nil
}
