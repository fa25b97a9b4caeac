package remap

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/nioark/mentions/internal/engine/text"
)

// ChangeKind classifies a diff record.
type ChangeKind uint8

const (
	// Equal is text present in both versions.
	Equal ChangeKind = iota

	// Inserted is text only present in the new version.
	Inserted

	// Deleted is text only present in the old version.
	Deleted
)

// String returns a human-readable representation of the kind.
func (k ChangeKind) String() string {
	switch k {
	case Equal:
		return "equal"
	case Inserted:
		return "inserted"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// EditChange is one run of a diff between an old and a new text.
type EditChange struct {
	Kind ChangeKind
	Text string

	// OldOffset is where the run begins in the old text. Inserted runs
	// occupy no old text and sit at the position they are inserted before.
	OldOffset text.Offset
}

// Len returns the rune length of the run.
func (c EditChange) Len() text.Offset {
	return text.Len(c.Text)
}

// OldEnd returns the end of the old text covered by the run.
func (c EditChange) OldEnd() text.Offset {
	if c.Kind == Inserted {
		return c.OldOffset
	}
	return c.OldOffset + c.Len()
}

// Delta returns the change in text length caused by the run.
func (c EditChange) Delta() text.Offset {
	switch c.Kind {
	case Inserted:
		return c.Len()
	case Deleted:
		return -c.Len()
	default:
		return 0
	}
}

// String returns a human-readable representation of the change.
func (c EditChange) String() string {
	return fmt.Sprintf("%s@%d %q", c.Kind, c.OldOffset, c.Text)
}

// Changes computes the character diff between old and new. Every rune of
// old is covered by exactly one Equal or Deleted run.
func (r *Remapper) Changes(old, new string) []EditChange {
	if old == new {
		if old == "" {
			return nil
		}
		return []EditChange{{Kind: Equal, Text: old}}
	}

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = r.timeout
	diffs := dmp.DiffMain(old, new, false)

	changes := make([]EditChange, 0, len(diffs))
	pos := 0
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		c := EditChange{Text: d.Text, OldOffset: pos}
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			c.Kind = Equal
		case diffmatchpatch.DiffDelete:
			c.Kind = Deleted
		case diffmatchpatch.DiffInsert:
			c.Kind = Inserted
		}
		pos = c.OldEnd()
		changes = append(changes, c)
	}
	return changes
}

// Changes computes the character diff between old and new with default
// settings.
func Changes(old, new string) []EditChange {
	return defaultRemapper.Changes(old, new)
}

// ChangesForEdit returns the exact change list for applying edit to old.
// Unlike a computed diff it carries no ambiguity about where the edit
// happened.
func ChangesForEdit(old string, edit text.Edit) ([]EditChange, error) {
	n := text.Len(old)
	if !edit.Range.Within(n) {
		return nil, fmt.Errorf("changes for %s on text of length %d: %w", edit, n, text.ErrRangeInvalid)
	}
	if edit.IsNoOp() {
		return defaultRemapper.Changes(old, old), nil
	}

	var changes []EditChange
	if edit.Range.Start > 0 {
		changes = append(changes, EditChange{
			Kind: Equal,
			Text: text.Slice(old, 0, edit.Range.Start),
		})
	}
	deleted := EditChange{
		Kind:      Deleted,
		Text:      text.Slice(old, edit.Range.Start, edit.Range.End),
		OldOffset: edit.Range.Start,
	}
	inserted := EditChange{
		Kind:      Inserted,
		Text:      edit.NewText,
		OldOffset: edit.Range.End,
	}
	switch {
	case edit.IsInsert():
		changes = append(changes, inserted)
	case edit.IsDelete():
		changes = append(changes, deleted)
	default:
		changes = append(changes, deleted, inserted)
	}
	if edit.Range.End < n {
		changes = append(changes, EditChange{
			Kind:      Equal,
			Text:      text.Slice(old, edit.Range.End, n),
			OldOffset: edit.Range.End,
		})
	}
	return changes, nil
}

// TypedEdit finds the single edit that turns old into new and leaves the
// caret where typing leaves it: inserted text ends at caret, deleted text
// started at caret. It reports false when no such insertion or deletion
// exists, for example after a replacement.
func TypedEdit(old, new string, caret text.Offset) (text.Edit, bool) {
	o, n := []rune(old), []rune(new)
	d := len(n) - len(o)
	switch {
	case d > 0:
		at := caret - d
		if at < 0 || caret > len(n) {
			return text.Edit{}, false
		}
		if !equalRunes(n[:at], o[:at]) || !equalRunes(n[caret:], o[at:]) {
			return text.Edit{}, false
		}
		return text.NewInsert(at, string(n[at:caret])), true
	case d < 0:
		end := caret - d
		if caret < 0 || end > len(o) {
			return text.Edit{}, false
		}
		if !equalRunes(n[:caret], o[:caret]) || !equalRunes(n[caret:], o[end:]) {
			return text.Edit{}, false
		}
		return text.NewDelete(caret, end), true
	}
	return text.Edit{}, false
}
