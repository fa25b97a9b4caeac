package text

import (
	"errors"
	"fmt"
)

// ErrRangeInvalid indicates a range with Start > End, a negative Start, or an
// End beyond the text.
var ErrRangeInvalid = errors.New("invalid range")

// Edit replaces the runes in Range with NewText.
type Edit struct {
	Range   Range
	NewText string
}

// NewEdit creates a new Edit.
func NewEdit(r Range, newText string) Edit {
	return Edit{Range: r, NewText: newText}
}

// NewInsert creates an Edit that inserts text at a position.
func NewInsert(offset Offset, s string) Edit {
	return Edit{
		Range:   Range{Start: offset, End: offset},
		NewText: s,
	}
}

// NewDelete creates an Edit that deletes a range of text.
func NewDelete(start, end Offset) Edit {
	return Edit{Range: Range{Start: start, End: end}}
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	if e.Range.IsEmpty() {
		return fmt.Sprintf("Insert(%d, %q)", e.Range.Start, e.NewText)
	}
	if e.NewText == "" {
		return fmt.Sprintf("Delete%s", e.Range.String())
	}
	return fmt.Sprintf("Replace%s with %q", e.Range.String(), e.NewText)
}

// IsInsert returns true if this is a pure insertion (empty range).
func (e Edit) IsInsert() bool {
	return e.Range.IsEmpty() && e.NewText != ""
}

// IsDelete returns true if this is a pure deletion (empty replacement).
func (e Edit) IsDelete() bool {
	return !e.Range.IsEmpty() && e.NewText == ""
}

// IsNoOp returns true if this edit does nothing.
func (e Edit) IsNoOp() bool {
	return e.Range.IsEmpty() && e.NewText == ""
}

// Delta returns the change in text length caused by this edit.
func (e Edit) Delta() Offset {
	return Len(e.NewText) - e.Range.Len()
}

// Apply returns s with the edit applied.
func (e Edit) Apply(s string) (string, error) {
	runes := []rune(s)
	if !e.Range.Within(len(runes)) {
		return "", fmt.Errorf("apply %s to text of length %d: %w", e, len(runes), ErrRangeInvalid)
	}
	out := make([]rune, 0, len(runes)+e.Delta())
	out = append(out, runes[:e.Range.Start]...)
	out = append(out, []rune(e.NewText)...)
	out = append(out, runes[e.Range.End:]...)
	return string(out), nil
}
