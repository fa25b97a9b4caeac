package suggest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nioark/mentions/internal/directory"
	"github.com/nioark/mentions/internal/engine/store"
	"github.com/nioark/mentions/internal/engine/tokenize"
)

func names(entries []*directory.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Display())
	}
	return out
}

func TestResolve(t *testing.T) {
	dir := directory.Default()
	r := NewResolver(nil)

	tests := []struct {
		name      string
		text      string
		caret     int
		candidate string
		start     int
		matches   []string
	}{
		{"caret after token", "hello @jo there", 9, "@jo", 6, []string{"John", "Joao", "Jorge"}},
		{"caret inside token", "hello @jo there", 8, "@jo", 6, []string{"John", "Joao", "Jorge"}},
		{"caret before trigger", "hello @jo there", 6, "@jo", 6, []string{"John", "Joao", "Jorge"}},
		{"caret at end of multi-word token", "hello @jo there", 15, "@jo there", 6, []string{}},
		{"upper case query", "@JA", 3, "@JA", 0, []string{"Jane"}},
		{"second token", "@bo and @ja", 11, "@ja", 8, []string{"Jane"}},
		{"no matches", "@xy", 3, "@xy", 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := r.Resolve(tt.text, tt.caret, dir, nil)
			require.True(t, st.HasCandidate)
			assert.Equal(t, tt.candidate, st.Candidate.Text)
			assert.Equal(t, tt.start, st.Candidate.Start)
			assert.Equal(t, tokenize.Candidate, st.Candidate.Kind)
			assert.Equal(t, tt.matches, names(st.Matches))
			assert.Equal(t, 0, st.Selected)
		})
	}
}

func TestResolveNoCandidate(t *testing.T) {
	dir := directory.Default()
	r := NewResolver(nil)

	tests := []struct {
		name  string
		text  string
		caret int
	}{
		{"empty", "", 0},
		{"plain text", "hello there", 5},
		{"caret away from token", "hello @jo there", 2},
		{"lone trigger", "hello @", 7},
		{"caret past token", "@jo, hi", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := r.Resolve(tt.text, tt.caret, dir, nil)
			assert.False(t, st.HasCandidate)
			assert.False(t, st.Active())
			assert.NotNil(t, st.Matches)
			assert.Empty(t, st.Matches)
			_, ok := st.Selection()
			assert.False(t, ok)
		})
	}
}

func TestResolveClampsCaret(t *testing.T) {
	r := NewResolver(nil)
	dir := directory.Default()

	st := r.Resolve("@bo", 99, dir, nil)
	require.True(t, st.HasCandidate)
	assert.Equal(t, "@bo", st.Candidate.Text)

	st = r.Resolve("@bo", -4, dir, nil)
	require.True(t, st.HasCandidate)
	assert.Equal(t, 0, st.Candidate.Start)
}

func TestResolvePrefersTokenEndingAtCaret(t *testing.T) {
	st := NewResolver(nil).Resolve("@jo@ja", 3, directory.Default(), nil)
	require.True(t, st.HasCandidate)
	assert.Equal(t, "@jo", st.Candidate.Text)
}

func TestResolveStopsAtMention(t *testing.T) {
	dir := directory.Default()
	john, _ := dir.Lookup("1")
	r := NewResolver(nil)

	text := "@ja John"
	mentions := []store.Mention{store.NewMention(john, 4)}

	st := r.Resolve(text, 3, dir, mentions)
	require.True(t, st.HasCandidate)
	assert.Equal(t, "@ja", st.Candidate.Text)
	assert.Equal(t, 3, st.Candidate.End)

	// Caret at the end of the mention is not on the candidate.
	st = r.Resolve(text, 8, dir, mentions)
	assert.False(t, st.HasCandidate)
}

func TestResolveInsideMention(t *testing.T) {
	dir := directory.MustNew(directory.NewEntry("x", "@team"))
	team, _ := dir.Lookup("x")
	mentions := []store.Mention{store.NewMention(team, 0)}

	st := NewResolver(nil).Resolve("@team", 5, dir, mentions)
	assert.False(t, st.HasCandidate)
}

func TestResolveCustomTrigger(t *testing.T) {
	r := NewResolver(tokenize.New(tokenize.WithTrigger('#')))
	assert.Equal(t, '#', r.Tokenizer().Trigger())

	st := r.Resolve("ping #bo", 8, directory.Default(), nil)
	require.True(t, st.HasCandidate)
	assert.Equal(t, "bo", st.Query)
	assert.Equal(t, []string{"Bob"}, names(st.Matches))

	st = r.Resolve("ping @bo", 8, directory.Default(), nil)
	assert.False(t, st.HasCandidate)
}

func TestResolveIsIdempotent(t *testing.T) {
	dir := directory.Default()
	r := NewResolver(nil)
	inputs := []struct {
		text  string
		caret int
	}{
		{"hello @jo there", 9},
		{"@J", 2},
		{"nothing", 3},
		{"@a @b @c", 5},
	}

	for _, in := range inputs {
		first := r.Resolve(in.text, in.caret, dir, nil)
		second := r.Resolve(in.text, in.caret, dir, nil)
		assert.Equal(t, first, second, "%q at %d", in.text, in.caret)
	}
}

func TestMoveSelectionClamps(t *testing.T) {
	st := NewResolver(nil).Resolve("@j", 2, directory.Default(), nil)
	require.Len(t, st.Matches, 4)

	st = st.MoveSelection(1)
	assert.Equal(t, 1, st.Selected)
	st = st.MoveSelection(2)
	assert.Equal(t, 3, st.Selected)
	for i := 0; i < 10; i++ {
		st = st.MoveSelection(1)
	}
	assert.Equal(t, 3, st.Selected)

	st = st.MoveSelection(math.MaxInt)
	assert.Equal(t, 3, st.Selected)
	st = st.MoveSelection(math.MinInt)
	assert.Equal(t, 0, st.Selected)
	st = st.MoveSelection(-1)
	assert.Equal(t, 0, st.Selected)

	sel, ok := st.MoveSelection(2).Selection()
	require.True(t, ok)
	assert.Equal(t, "Joao", sel.Display())
}

func TestMoveSelectionEmpty(t *testing.T) {
	st := Empty()
	assert.Equal(t, st, st.MoveSelection(5))
	assert.Equal(t, 0, st.MoveSelection(-5).Selected)
}

func TestMoveSelectionReturnsCopy(t *testing.T) {
	st := NewResolver(nil).Resolve("@j", 2, directory.Default(), nil)
	moved := st.MoveSelection(1)
	assert.Equal(t, 0, st.Selected)
	assert.Equal(t, 1, moved.Selected)
}

func TestInherit(t *testing.T) {
	dir := directory.Default()
	r := NewResolver(nil)

	prev := r.Resolve("hi @j", 5, dir, nil).MoveSelection(2)
	require.Equal(t, 2, prev.Selected)

	// Caret moved within the same candidate.
	next := r.Resolve("hi @j", 4, dir, nil).Inherit(prev, false)
	assert.Equal(t, 2, next.Selected)

	// Same start, but the text changed.
	next = r.Resolve("hi @jo", 6, dir, nil).Inherit(prev, true)
	assert.Equal(t, 0, next.Selected)

	// Different candidate.
	next = r.Resolve("@j hi @j", 2, dir, nil).Inherit(prev, false)
	assert.Equal(t, 0, next.Selected)

	// Previous selection beyond the new matches is clamped.
	big := State{HasCandidate: true, Candidate: tokenize.Span{Start: 3}, Selected: 9}
	next = r.Resolve("hi @j", 5, dir, nil).Inherit(big, false)
	assert.Equal(t, 3, next.Selected)

	// No candidate now.
	next = Empty().Inherit(prev, false)
	assert.Equal(t, 0, next.Selected)
}
