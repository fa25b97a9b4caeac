package remap

import (
	"fmt"
	"time"

	"github.com/nioark/mentions/internal/engine/store"
	"github.com/nioark/mentions/internal/engine/text"
)

// Reason explains why a mention was invalidated.
type Reason uint8

const (
	// ReasonEdited means a change inserted into or deleted from the mention.
	ReasonEdited Reason = iota

	// ReasonMismatch means the remapped range does not hold the mention text.
	ReasonMismatch

	// ReasonOverlap means the remapped range collides with another mention.
	ReasonOverlap
)

// String returns a human-readable representation of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonEdited:
		return "edited"
	case ReasonMismatch:
		return "mismatch"
	case ReasonOverlap:
		return "overlap"
	default:
		return "unknown"
	}
}

// Invalidation records a mention dropped by a remap.
type Invalidation struct {
	// Mention is the dropped mention in old text coordinates.
	Mention store.Mention

	Reason Reason

	// Change is the run that destroyed the mention when Reason is
	// ReasonEdited.
	Change EditChange
}

// String returns a human-readable representation of the invalidation.
func (inv Invalidation) String() string {
	if inv.Reason == ReasonEdited {
		return fmt.Sprintf("%s %s by %s", inv.Mention, inv.Reason, inv.Change)
	}
	return fmt.Sprintf("%s %s", inv.Mention, inv.Reason)
}

// Result is the outcome of a remap.
type Result struct {
	// Mentions are the surviving mentions in new text coordinates, in
	// input order.
	Mentions []store.Mention

	// Invalidated are the dropped mentions in input order.
	Invalidated []Invalidation

	// Changes is the change list the remap was computed from.
	Changes []EditChange
}

// Option configures a Remapper.
type Option func(*Remapper)

// WithTimeout bounds the diff computation. A diff that runs out of time is
// still correct but may be less minimal, which invalidates more mentions.
// Zero, the default, means no limit.
func WithTimeout(d time.Duration) Option {
	return func(r *Remapper) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// Remapper moves mentions across text edits.
type Remapper struct {
	timeout time.Duration
}

var defaultRemapper = New()

// New creates a remapper.
func New(opts ...Option) *Remapper {
	r := &Remapper{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Remap diffs old against new and moves mentions accordingly. The input
// slice is not modified.
func (r *Remapper) Remap(old, new string, mentions []store.Mention) Result {
	return r.RemapChanges(old, new, r.Changes(old, new), mentions)
}

// Remap moves mentions from old to new with default settings.
func Remap(old, new string, mentions []store.Mention) Result {
	return defaultRemapper.Remap(old, new, mentions)
}

// RemapTyped is Remap for an edit made at caret. When new differs from old by
// an insertion ending at caret or a deletion starting there, that edit is
// used instead of a computed diff, so text repeated around a mention cannot
// leave it on the wrong copy.
func (r *Remapper) RemapTyped(old, new string, caret text.Offset, mentions []store.Mention) Result {
	if edit, ok := TypedEdit(old, new, caret); ok {
		if changes, err := ChangesForEdit(old, edit); err == nil {
			return r.RemapChanges(old, new, changes, mentions)
		}
	}
	return r.Remap(old, new, mentions)
}

// RemapTyped moves mentions across an edit made at caret with default
// settings.
func RemapTyped(old, new string, caret text.Offset, mentions []store.Mention) Result {
	return defaultRemapper.RemapTyped(old, new, caret, mentions)
}

// RemapChanges moves mentions using a precomputed change list, such as one
// from ChangesForEdit. mentions must be sorted by Start and must not
// overlap.
func (r *Remapper) RemapChanges(old, new string, changes []EditChange, mentions []store.Mention) Result {
	res := Result{
		Mentions: make([]store.Mention, 0, len(mentions)),
		Changes:  changes,
	}
	if len(mentions) == 0 {
		return res
	}

	oldRunes := []rune(old)
	newRunes := []rune(new)

	for i, m := range mentions {
		lo, hi := 0, len(oldRunes)
		if i > 0 {
			lo = mentions[i-1].End + 1
		}
		if i+1 < len(mentions) {
			hi = mentions[i+1].Start
		}

		moved, c, ok := remapOne(oldRunes, changes, m, lo, hi)
		switch {
		case !ok:
			res.Invalidated = append(res.Invalidated, Invalidation{Mention: m, Reason: ReasonEdited, Change: c})
		case !matches(newRunes, moved):
			res.Invalidated = append(res.Invalidated, Invalidation{Mention: m, Reason: ReasonMismatch})
		case len(res.Mentions) > 0 && res.Mentions[len(res.Mentions)-1].End >= moved.Start:
			res.Invalidated = append(res.Invalidated, Invalidation{Mention: m, Reason: ReasonOverlap})
		default:
			res.Mentions = append(res.Mentions, moved)
		}
	}
	return res
}

// RemapChanges moves mentions using a precomputed change list with default
// settings.
func RemapChanges(old, new string, changes []EditChange, mentions []store.Mention) Result {
	return defaultRemapper.RemapChanges(old, new, changes, mentions)
}

// remapOne computes the new position of m. lo and hi bound the old text a
// change may slide through without crossing a neighbouring mention.
func remapOne(old []rune, changes []EditChange, m store.Mention, lo, hi int) (store.Mention, EditChange, bool) {
	delta := 0
	for i, c := range changes {
		if c.OldOffset > m.End {
			break
		}
		switch c.Kind {
		case Inserted:
			switch p := c.OldOffset; {
			case p <= m.Start:
				delta += c.Len()
			case slideInsertLeft(old, changes, i, m):
				delta += c.Len()
			case slideInsertRight(old, changes, i, m):
			default:
				return m, c, false
			}
		case Deleted:
			switch {
			case c.OldEnd() <= m.Start:
				delta -= c.Len()
			case slideDeleteLeft(old, changes, i, m, lo):
				delta -= c.Len()
			case slideDeleteRight(old, changes, i, m, hi):
			default:
				return m, c, false
			}
		}
	}
	return m.Shift(delta), EditChange{}, true
}

func matches(s []rune, m store.Mention) bool {
	if m.Start < 0 || m.End >= len(s) {
		return false
	}
	return string(s[m.Start:m.End+1]) == m.Display
}

// isolated reports whether the change at i is surrounded by unchanged text.
func isolated(changes []EditChange, i int) bool {
	if i > 0 && changes[i-1].Kind != Equal {
		return false
	}
	if i+1 < len(changes) && changes[i+1].Kind != Equal {
		return false
	}
	return true
}

// slideInsertLeft reports whether an insertion inside m can be moved to
// m.Start. With X the unchanged text from m.Start to the insertion point and
// T the inserted text, X+T must equal T'+X for some T' of the same length.
func slideInsertLeft(old []rune, changes []EditChange, i int, m store.Mention) bool {
	if !isolated(changes, i) || i == 0 {
		return false
	}
	c := changes[i]
	if changes[i-1].OldOffset > m.Start {
		return false
	}
	x := old[m.Start:c.OldOffset]
	w := append(append([]rune{}, x...), []rune(c.Text)...)
	return equalRunes(w[len(w)-len(x):], x)
}

// slideInsertRight reports whether an insertion inside m can be moved to
// m.End+1. With Y the unchanged text from the insertion point through
// m.End, T+Y must equal Y+T'.
func slideInsertRight(old []rune, changes []EditChange, i int, m store.Mention) bool {
	if !isolated(changes, i) || i+1 >= len(changes) {
		return false
	}
	c := changes[i]
	if changes[i+1].OldEnd() < m.End+1 {
		return false
	}
	y := old[c.OldOffset : m.End+1]
	w := append([]rune(c.Text), y...)
	return equalRunes(w[:len(y)], y)
}

// slideDeleteLeft reports whether a deletion touching m can be moved to end
// right before m.Start without reaching below lo.
func slideDeleteLeft(old []rune, changes []EditChange, i int, m store.Mention, lo int) bool {
	if !isolated(changes, i) || i == 0 {
		return false
	}
	c := changes[i]
	n := c.Len()
	q := m.Start - n
	if q < 0 || q < lo || changes[i-1].OldOffset > q {
		return false
	}
	// Keeping S[:s] and dropping S[s:] equals dropping S[:n] and keeping S[n:].
	s := c.OldOffset - q
	seg := old[q:c.OldEnd()]
	return equalRunes(seg[:s], seg[n:])
}

// slideDeleteRight reports whether a deletion touching m can be moved to
// start right after m.End without reaching past hi.
func slideDeleteRight(old []rune, changes []EditChange, i int, m store.Mention, hi int) bool {
	if !isolated(changes, i) || i+1 >= len(changes) {
		return false
	}
	c := changes[i]
	n := c.Len()
	end := m.End + 1 + n
	if end > hi || changes[i+1].OldEnd() < end {
		return false
	}
	s := m.End + 1 - c.OldOffset
	seg := old[c.OldOffset:end]
	return equalRunes(seg[n:], seg[:s])
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
