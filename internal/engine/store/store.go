package store

import (
	"fmt"
	"sort"

	"github.com/nioark/mentions/internal/engine/text"
)

// Store holds mentions sorted by Start with no overlaps.
type Store struct {
	mentions []Mention
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Len returns the number of mentions.
func (s *Store) Len() int {
	return len(s.mentions)
}

// All returns a copy of the mentions in order.
func (s *Store) All() []Mention {
	out := make([]Mention, len(s.mentions))
	copy(out, s.mentions)
	return out
}

// Insert adds m, keeping the store sorted.
func (s *Store) Insert(m Mention) error {
	if !m.IsValid() {
		return fmt.Errorf("insert %s: %w", m, ErrInvalidRange)
	}

	// First mention starting after m.
	i := sort.Search(len(s.mentions), func(i int) bool {
		return s.mentions[i].Start > m.Start
	})
	if i > 0 && s.mentions[i-1].Overlaps(m) {
		return fmt.Errorf("insert %s over %s: %w", m, s.mentions[i-1], ErrOverlapRejected)
	}
	if i < len(s.mentions) && s.mentions[i].Overlaps(m) {
		return fmt.Errorf("insert %s over %s: %w", m, s.mentions[i], ErrOverlapRejected)
	}

	s.mentions = append(s.mentions, Mention{})
	copy(s.mentions[i+1:], s.mentions[i:])
	s.mentions[i] = m
	return nil
}

// InsertWithin is Insert that also rejects mentions reaching past the end
// of a text of length textLen.
func (s *Store) InsertWithin(m Mention, textLen text.Offset) error {
	if m.End >= textLen {
		return fmt.Errorf("insert %s into text of length %d: %w", m, textLen, ErrInvalidRange)
	}
	return s.Insert(m)
}

// At returns the mention containing pos.
func (s *Store) At(pos text.Offset) (Mention, bool) {
	i := s.indexAt(pos)
	if i < 0 {
		return Mention{}, false
	}
	return s.mentions[i], true
}

// AtCaret returns the mention a caret touches: one that ends right before
// the caret or contains it, preferring the former so that a caret between
// two adjacent mentions picks the one on its left.
func (s *Store) AtCaret(caret text.Offset) (Mention, bool) {
	if caret > 0 {
		if m, ok := s.At(caret - 1); ok {
			return m, true
		}
	}
	return s.At(caret)
}

// RemoveAt deletes the mention containing pos.
func (s *Store) RemoveAt(pos text.Offset) (Mention, bool) {
	i := s.indexAt(pos)
	if i < 0 {
		return Mention{}, false
	}
	m := s.mentions[i]
	s.mentions = append(s.mentions[:i], s.mentions[i+1:]...)
	return m, true
}

// RemoveByID deletes the mention with the given occurrence id.
func (s *Store) RemoveByID(id string) (Mention, bool) {
	for i, m := range s.mentions {
		if m.ID == id {
			s.mentions = append(s.mentions[:i], s.mentions[i+1:]...)
			return m, true
		}
	}
	return Mention{}, false
}

// RemoveOverlapping deletes every mention sharing a character with r and
// returns them in order.
func (s *Store) RemoveOverlapping(r text.Range) []Mention {
	var removed []Mention
	kept := s.mentions[:0]
	for _, m := range s.mentions {
		if m.Range().Overlaps(r) {
			removed = append(removed, m)
			continue
		}
		kept = append(kept, m)
	}
	s.mentions = kept
	return removed
}

// ReplaceAll swaps in a new set of mentions after checking that they are
// valid, sorted and disjoint. On error the store is unchanged.
func (s *Store) ReplaceAll(ms []Mention) error {
	if err := Validate(ms); err != nil {
		return err
	}
	s.mentions = make([]Mention, len(ms))
	copy(s.mentions, ms)
	return nil
}

// Clear removes every mention.
func (s *Store) Clear() {
	s.mentions = nil
}

// Verify checks that every mention's text is present in t at its range.
func (s *Store) Verify(t string) error {
	for _, m := range s.mentions {
		if !m.Matches(t) {
			return fmt.Errorf("mention %s does not match text: %w", m, ErrInvalidRange)
		}
	}
	return nil
}

// Validate checks that mentions are valid, sorted and disjoint.
func Validate(ms []Mention) error {
	for i, m := range ms {
		if !m.IsValid() {
			return fmt.Errorf("mention %d %s: %w", i, m, ErrInvalidRange)
		}
		if i == 0 {
			continue
		}
		prev := ms[i-1]
		if prev.Start > m.Start {
			return fmt.Errorf("mention %d %s after %s: %w", i, m, prev, ErrUnsorted)
		}
		if prev.Overlaps(m) {
			return fmt.Errorf("mention %d %s over %s: %w", i, m, prev, ErrOverlapRejected)
		}
	}
	return nil
}

func (s *Store) indexAt(pos text.Offset) int {
	i := sort.Search(len(s.mentions), func(i int) bool {
		return s.mentions[i].End >= pos
	})
	if i < len(s.mentions) && s.mentions[i].Contains(pos) {
		return i
	}
	return -1
}
