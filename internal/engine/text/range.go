package text

import "fmt"

// Range is a character range in a text.
// Start is inclusive, End is exclusive: [Start, End).
type Range struct {
	Start Offset
	End   Offset
}

// NewRange creates a new Range from start and end offsets.
func NewRange(start, end Offset) Range {
	return Range{Start: start, End: end}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// Len returns the length of the range in runes.
func (r Range) Len() Offset {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsValid returns true if 0 <= Start <= End.
func (r Range) IsValid() bool {
	return r.Start >= 0 && r.Start <= r.End
}

// Within returns true if the range is valid and fits in a text of length n.
func (r Range) Within(n Offset) bool {
	return r.IsValid() && r.End <= n
}

// Contains returns true if the given offset is within the range.
func (r Range) Contains(offset Offset) bool {
	return offset >= r.Start && offset < r.End
}

// Overlaps returns true if this range shares at least one rune with other.
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}
