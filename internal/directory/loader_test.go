package directory

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlDirectory = `
[[entries]]
id = "1"
display = "John"

[[entries]]
id = "2"
display = "Jane"
`

const yamlDirectory = `
entries:
  - id: "1"
    display: John
  - id: "2"
    display: Jane
`

const jsonDirectory = `{"entries": [{"id": "1", "display": "John"}, {"id": "2", "display": "Jane"}]}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "people.toml", tomlDirectory},
		{"yaml", "people.yaml", yamlDirectory},
		{"yml", "people.yml", yamlDirectory},
		{"json", "people.json", jsonDirectory},
		{"json array", "people.json", `[{"id": "1", "display": "John"}, {"id": "2", "display": "Jane"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, err := Load(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, []string{"John", "Jane"}, displays(dir.Entries()))

			e, ok := dir.Lookup("2")
			require.True(t, ok)
			assert.Equal(t, "Jane", e.Display())
		})
	}
}

func TestLoadFromReader(t *testing.T) {
	dir, err := LoadFromReader(strings.NewReader(jsonDirectory), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 2, dir.Len())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeFile(t, "people.csv", "id,display"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "bad.json", `{"entries": [`))
	var perr *ParseError
	assert.ErrorAs(t, err, &perr)

	_, err = Load(writeFile(t, "bad.toml", "[[entries]]\nid = \"1\"\nnickname = \"x\"\n"))
	assert.ErrorAs(t, err, &perr)

	_, err = Load(writeFile(t, "dup.yaml", "entries:\n  - {id: a, display: A}\n  - {id: a, display: B}\n"))
	assert.ErrorIs(t, err, ErrDuplicateID)

	_, err = Load(writeFile(t, "empty.json", `{"people": []}`))
	assert.ErrorAs(t, err, &perr)
}
