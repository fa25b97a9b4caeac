package tokenize

import (
	"fmt"

	"github.com/nioark/mentions/internal/engine/text"
)

// Kind tags a span as plain text or a candidate token.
type Kind uint8

const (
	// Normal is text outside any candidate token.
	Normal Kind = iota

	// Candidate is unconfirmed text matching the trigger pattern.
	Candidate
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Candidate:
		return "candidate"
	default:
		return "unknown"
	}
}

// Span is a contiguous piece of text. End is exclusive.
type Span struct {
	Text  string
	Kind  Kind
	Start text.Offset
	End   text.Offset
}

// Range returns the span's [Start, End) range.
func (s Span) Range() text.Range {
	return text.NewRange(s.Start, s.End)
}

// IsCandidate returns true for candidate spans.
func (s Span) IsCandidate() bool {
	return s.Kind == Candidate
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("%s%s %q", s.Kind, s.Range(), s.Text)
}
