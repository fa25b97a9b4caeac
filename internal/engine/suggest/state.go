package suggest

import (
	"github.com/nioark/mentions/internal/directory"
	"github.com/nioark/mentions/internal/engine/tokenize"
)

// State is the suggestion state for one caret position.
type State struct {
	// Candidate is the token under the caret. Only meaningful when
	// HasCandidate is set.
	Candidate    tokenize.Span
	HasCandidate bool

	// Query is the candidate text without its trigger, lower-cased.
	Query string

	// Matches are the directory entries starting with Query, in directory
	// order. Never nil.
	Matches []*directory.Entry

	// Selected indexes Matches. It is 0 when there are no matches.
	Selected int
}

// Empty returns the state with no candidate.
func Empty() State {
	return State{Matches: []*directory.Entry{}}
}

// Active reports whether there is something to commit.
func (s State) Active() bool {
	return s.HasCandidate && len(s.Matches) > 0
}

// Selection returns the selected entry.
func (s State) Selection() (*directory.Entry, bool) {
	if !s.Active() {
		return nil, false
	}
	return s.Matches[s.clamp(s.Selected)], true
}

// MoveSelection returns a copy with the selection moved by delta and
// clamped to the matches.
func (s State) MoveSelection(delta int) State {
	if len(s.Matches) == 0 {
		return s
	}
	last := len(s.Matches) - 1
	sel := s.clamp(s.Selected)
	switch {
	case delta > 0 && delta > last-sel:
		sel = last
	case delta < 0 && delta < -sel:
		sel = 0
	default:
		sel += delta
	}
	s.Selected = sel
	return s
}

// Inherit returns a copy of s that keeps prev's selection when the text is
// unchanged and both states sit on the candidate starting at the same
// offset. Otherwise the selection is reset.
func (s State) Inherit(prev State, textChanged bool) State {
	s.Selected = 0
	if textChanged || !s.HasCandidate || !prev.HasCandidate {
		return s
	}
	if prev.Candidate.Start != s.Candidate.Start {
		return s
	}
	s.Selected = s.clamp(prev.Selected)
	return s
}

func (s State) clamp(i int) int {
	if i < 0 || len(s.Matches) == 0 {
		return 0
	}
	if i >= len(s.Matches) {
		return len(s.Matches) - 1
	}
	return i
}
