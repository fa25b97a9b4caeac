package tokenize

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nioark/mentions/internal/engine/text"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Span
	}{
		{
			name: "empty",
			in:   "",
			want: nil,
		},
		{
			name: "no candidates",
			in:   "plain text",
			want: []Span{{Text: "plain text", Kind: Normal, Start: 0, End: 10}},
		},
		{
			name: "single candidate",
			in:   "hi @jo",
			want: []Span{
				{Text: "hi ", Kind: Normal, Start: 0, End: 3},
				{Text: "@jo", Kind: Candidate, Start: 3, End: 6},
			},
		},
		{
			name: "multi word candidate",
			in:   "hello @jo there",
			want: []Span{
				{Text: "hello ", Kind: Normal, Start: 0, End: 6},
				{Text: "@jo there", Kind: Candidate, Start: 6, End: 15},
			},
		},
		{
			name: "double space ends candidate",
			in:   "@ana  maria",
			want: []Span{
				{Text: "@ana", Kind: Candidate, Start: 0, End: 4},
				{Text: "  maria", Kind: Normal, Start: 4, End: 11},
			},
		},
		{
			name: "trailing space is not part of candidate",
			in:   "@jo ",
			want: []Span{
				{Text: "@jo", Kind: Candidate, Start: 0, End: 3},
				{Text: " ", Kind: Normal, Start: 3, End: 4},
			},
		},
		{
			name: "bare trigger at end",
			in:   "mail @",
			want: []Span{{Text: "mail @", Kind: Normal, Start: 0, End: 6}},
		},
		{
			name: "doubled trigger",
			in:   "@@bob",
			want: []Span{
				{Text: "@", Kind: Normal, Start: 0, End: 1},
				{Text: "@bob", Kind: Candidate, Start: 1, End: 5},
			},
		},
		{
			name: "adjacent candidates",
			in:   "@a@b, @c",
			want: []Span{
				{Text: "@a", Kind: Candidate, Start: 0, End: 2},
				{Text: "@b", Kind: Candidate, Start: 2, End: 4},
				{Text: ", ", Kind: Normal, Start: 4, End: 6},
				{Text: "@c", Kind: Candidate, Start: 6, End: 8},
			},
		},
		{
			name: "rune offsets",
			in:   "olá @João!",
			want: []Span{
				{Text: "olá ", Kind: Normal, Start: 0, End: 4},
				{Text: "@João", Kind: Candidate, Start: 4, End: 9},
				{Text: "!", Kind: Normal, Start: 9, End: 10},
			},
		},
		{
			name: "newline ends candidate",
			in:   "@jo\nnext",
			want: []Span{
				{Text: "@jo", Kind: Candidate, Start: 0, End: 3},
				{Text: "\nnext", Kind: Normal, Start: 3, End: 8},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Segment(tt.in))
		})
	}
}

func TestWithTrigger(t *testing.T) {
	tok := New(WithTrigger('#'))
	assert.Equal(t, '#', tok.Trigger())

	got := tok.Candidates("see #ops and @ana")
	require.Len(t, got, 1)
	assert.Equal(t, "#ops and", got[0].Text)

	// Word runes cannot trigger.
	assert.Equal(t, DefaultTrigger, New(WithTrigger('a')).Trigger())
	assert.Equal(t, DefaultTrigger, New(WithTrigger(' ')).Trigger())
}

func TestSegmentPartition(t *testing.T) {
	alphabet := []rune("ab @  _9ã\n@@")
	rng := rand.New(rand.NewSource(42))

	for n := 0; n < 500; n++ {
		var sb strings.Builder
		size := rng.Intn(40)
		for i := 0; i < size; i++ {
			sb.WriteRune(alphabet[rng.Intn(len(alphabet))])
		}
		in := sb.String()

		spans := Segment(in)
		assertPartition(t, in, spans)
	}
}

func assertPartition(t *testing.T, in string, spans []Span) {
	t.Helper()

	if in == "" {
		assert.Empty(t, spans)
		return
	}
	require.NotEmpty(t, spans, "input %q", in)
	assert.Equal(t, 0, spans[0].Start)
	assert.Equal(t, text.Len(in), spans[len(spans)-1].End)

	var sb strings.Builder
	for i, sp := range spans {
		sb.WriteString(sp.Text)
		assert.Equal(t, text.Len(sp.Text), sp.End-sp.Start, "span %v of %q", sp, in)
		if i > 0 {
			assert.Equal(t, spans[i-1].End, sp.Start, "gap before %v in %q", sp, in)
			if spans[i-1].Kind == Normal {
				assert.Equal(t, Candidate, sp.Kind, "adjacent normal spans in %q", in)
			}
		}
		if sp.IsCandidate() {
			assert.True(t, strings.HasPrefix(sp.Text, string(DefaultTrigger)), "candidate %v", sp)
		}
	}
	assert.Equal(t, in, sb.String())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "normal", Normal.String())
	assert.Equal(t, "candidate", Candidate.String())
	assert.Equal(t, "unknown", Kind(9).String())
	assert.Equal(t, `candidate[3:6) "@jo"`, Span{Text: "@jo", Kind: Candidate, Start: 3, End: 6}.String())
}
