package text

import "unicode/utf8"

// Offset is a character (rune) position in a text.
type Offset = int

// Len returns the length of s in runes.
func Len(s string) Offset {
	return utf8.RuneCountInString(s)
}

// Slice returns the runes of s in [start, end).
// Offsets are clamped to the text, and an inverted range yields "".
func Slice(s string, start, end Offset) string {
	runes := []rune(s)
	start = Clamp(start, 0, len(runes))
	end = Clamp(end, 0, len(runes))
	if start >= end {
		return ""
	}
	return string(runes[start:end])
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi Offset) Offset {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
