package store

import "errors"

// Errors returned by store mutations.
var (
	// ErrOverlapRejected indicates a mention overlapping an existing one.
	ErrOverlapRejected = errors.New("mention overlaps an existing mention")

	// ErrInvalidRange indicates Start > End, a negative Start, or a range
	// beyond the end of the text.
	ErrInvalidRange = errors.New("invalid mention range")

	// ErrUnsorted indicates a bulk replacement that is not ordered by Start.
	ErrUnsorted = errors.New("mentions not sorted by start")
)
