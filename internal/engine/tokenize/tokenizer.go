package tokenize

import (
	"unicode"

	"github.com/nioark/mentions/internal/engine/text"
)

// DefaultTrigger is the rune that starts a candidate token.
const DefaultTrigger = '@'

// Tokenizer segments text around candidate tokens.
// A Tokenizer is immutable and safe for concurrent use.
type Tokenizer struct {
	trigger rune
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithTrigger sets the trigger rune. Word runes and whitespace are ignored
// since they could never start a token.
func WithTrigger(r rune) Option {
	return func(t *Tokenizer) {
		if !IsWordRune(r) && !unicode.IsSpace(r) {
			t.trigger = r
		}
	}
}

// New creates a Tokenizer.
func New(opts ...Option) *Tokenizer {
	t := &Tokenizer{trigger: DefaultTrigger}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var defaultTokenizer = New()

// Segment splits text using the default trigger.
func Segment(s string) []Span {
	return defaultTokenizer.Segment(s)
}

// Trigger returns the trigger rune.
func (t *Tokenizer) Trigger() rune {
	return t.trigger
}

// IsWordRune reports whether r may appear inside a candidate name.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Segment returns the ordered spans of s. Empty text yields no spans and
// text without candidates yields a single Normal span.
func (t *Tokenizer) Segment(s string) []Span {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}

	var spans []Span
	normalStart := 0
	i := 0
	for i < len(runes) {
		if runes[i] != t.trigger {
			i++
			continue
		}
		end := t.scanCandidate(runes, i)
		if end == i {
			i++
			continue
		}
		if normalStart < i {
			spans = append(spans, span(runes, Normal, normalStart, i))
		}
		spans = append(spans, span(runes, Candidate, i, end))
		normalStart = end
		i = end
	}
	if normalStart < len(runes) {
		spans = append(spans, span(runes, Normal, normalStart, len(runes)))
	}
	return spans
}

// Candidates returns only the candidate spans of s.
func (t *Tokenizer) Candidates(s string) []Span {
	var out []Span
	for _, sp := range t.Segment(s) {
		if sp.IsCandidate() {
			out = append(out, sp)
		}
	}
	return out
}

// scanCandidate returns the exclusive end of the candidate starting at the
// trigger at index start, or start if none begins there.
func (t *Tokenizer) scanCandidate(runes []rune, start int) int {
	i := start + 1
	if i >= len(runes) || !IsWordRune(runes[i]) {
		return start
	}
	for {
		for i < len(runes) && IsWordRune(runes[i]) {
			i++
		}
		// A single space continues the name only if another word run follows.
		if i+1 < len(runes) && runes[i] == ' ' && IsWordRune(runes[i+1]) {
			i++
			continue
		}
		return i
	}
}

func span(runes []rune, kind Kind, start, end text.Offset) Span {
	return Span{
		Text:  string(runes[start:end]),
		Kind:  kind,
		Start: start,
		End:   end,
	}
}
