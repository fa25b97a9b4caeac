package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSegmentCmd(t *testing.T) {
	out, err := execute(t, "", "segment", "hi @jo")
	require.NoError(t, err)
	assert.Contains(t, out, `candidate[3:6) "@jo"`)

	out, err = execute(t, "ping #bo\n", "segment", "--trigger", "#")
	require.NoError(t, err)
	assert.Contains(t, out, `candidate[5:8) "#bo"`)
}

func TestSuggestCmd(t *testing.T) {
	out, err := execute(t, "", "suggest", "--caret", "9", "hello @jo there")
	require.NoError(t, err)
	assert.Contains(t, out, `query "jo"`)
	assert.Contains(t, out, "> John(1)")
	assert.Contains(t, out, "  Joao(4)")

	out, err = execute(t, "", "suggest", "plain")
	require.NoError(t, err)
	assert.Contains(t, out, "no candidate")
}

func TestSuggestCmdDirectoryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entries:\n  - {id: a, display: Ana}\n"), 0o644))

	out, err := execute(t, "", "suggest", "--directory", path, "@an")
	require.NoError(t, err)
	assert.Contains(t, out, "> Ana(a)")
}

func TestSessionCmd(t *testing.T) {
	script := strings.Join([]string{
		"text 9 hello @jo there",
		"down",
		"up",
		"commit",
		"text 0 oh hello John there",
		"export",
		"caret 13",
		"remove delete",
		"commit",
		"bogus",
		"quit",
		"text 0 ignored",
	}, "\n")

	out, err := execute(t, script, "session")
	require.NoError(t, err)

	assert.Contains(t, out, "event committed")
	assert.Contains(t, out, `idle caret=10 text="hello John there"`)
	assert.Contains(t, out, `mention "John"[9..12]`)
	assert.Contains(t, out, `text="oh hello  there"`)
	assert.Contains(t, out, "event removed")
	assert.Contains(t, out, "error: no suggestion to commit")
	assert.Contains(t, out, `error: unknown command "bogus"`)
	assert.NotContains(t, out, "ignored")

	var doc string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, `{"mentions"`) {
			doc = line
		}
	}
	require.NotEmpty(t, doc)
	assert.Equal(t, int64(9), gjson.Get(doc, "mentions.0.start").Int())
}

func TestSessionCmdBadInput(t *testing.T) {
	out, err := execute(t, "text x hi\ncaret y\n", "session")
	require.NoError(t, err)
	assert.Contains(t, out, `error: text: bad caret "x"`)
	assert.Contains(t, out, `error: caret: bad offset "y"`)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("MENTIONS_TRIGGER", "#")

	out, err := execute(t, "", "segment", "ping #bo @jo")
	require.NoError(t, err)
	assert.Contains(t, out, `candidate[5:8) "#bo"`)
	assert.NotContains(t, out, `"@jo"`)

	out, err = execute(t, "", "segment", "--trigger", "@", "ping #bo @jo")
	require.NoError(t, err)
	assert.Contains(t, out, `candidate[9:12) "@jo"`)
	assert.NotContains(t, out, `"#bo"`)
}

func TestInvalidFlags(t *testing.T) {
	_, err := execute(t, "", "segment", "--log-level", "loud", "x")
	assert.Error(t, err)

	_, err = execute(t, "", "segment", "--trigger", "ab", "x")
	assert.Error(t, err)

	_, err = execute(t, "", "suggest", "--directory", filepath.Join(t.TempDir(), "missing.json"), "@a")
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	assert.Equal(t, 0, run([]string{"--version"}))
	assert.Equal(t, 1, run([]string{"nope"}))
}
