package directory

import "errors"

// Errors returned when building or loading a directory.
var (
	// ErrDuplicateID indicates two entries share an id.
	ErrDuplicateID = errors.New("duplicate entry id")

	// ErrEmptyID indicates an entry without an id.
	ErrEmptyID = errors.New("empty entry id")

	// ErrEmptyDisplay indicates an entry without a display name.
	ErrEmptyDisplay = errors.New("empty entry display")

	// ErrUnsupportedFormat indicates a file extension with no loader.
	ErrUnsupportedFormat = errors.New("unsupported directory format")
)
