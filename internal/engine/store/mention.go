package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/nioark/mentions/internal/directory"
	"github.com/nioark/mentions/internal/engine/text"
)

// Mention is a confirmed reference to a directory entry anchored at a text
// range. End is inclusive.
type Mention struct {
	// ID identifies this occurrence across remaps.
	ID string

	// Entry is shared with the directory and never modified.
	Entry *directory.Entry

	// Display is the text inserted for the mention.
	Display string

	Start text.Offset
	End   text.Offset
}

// NewMention creates a mention of entry whose text starts at start.
func NewMention(entry *directory.Entry, start text.Offset) Mention {
	display := entry.Display()
	return Mention{
		ID:      uuid.NewString(),
		Entry:   entry,
		Display: display,
		Start:   start,
		End:     start + text.Len(display) - 1,
	}
}

// EntryID returns the id of the referenced entry, or "" if there is none.
func (m Mention) EntryID() string {
	if m.Entry == nil {
		return ""
	}
	return m.Entry.ID()
}

// Range returns the mention as a half-open range [Start, End+1).
func (m Mention) Range() text.Range {
	return text.NewRange(m.Start, m.End+1)
}

// Len returns the number of runes covered.
func (m Mention) Len() text.Offset {
	return m.End - m.Start + 1
}

// IsValid returns true if 0 <= Start <= End.
func (m Mention) IsValid() bool {
	return m.Start >= 0 && m.Start <= m.End
}

// Contains returns true if pos is one of the mention's characters.
func (m Mention) Contains(pos text.Offset) bool {
	return pos >= m.Start && pos <= m.End
}

// Overlaps returns true if the two mentions share a character.
func (m Mention) Overlaps(other Mention) bool {
	return m.Start <= other.End && other.Start <= m.End
}

// Shift returns a copy moved by delta.
func (m Mention) Shift(delta text.Offset) Mention {
	m.Start += delta
	m.End += delta
	return m
}

// Matches reports whether s holds the mention's display text at its range.
func (m Mention) Matches(s string) bool {
	return m.IsValid() && text.Slice(s, m.Start, m.End+1) == m.Display
}

// String returns a human-readable representation of the mention.
func (m Mention) String() string {
	return fmt.Sprintf("%q[%d..%d]", m.Display, m.Start, m.End)
}
