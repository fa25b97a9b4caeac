package directory

import "fmt"

// Entry is a directory record that can be mentioned.
type Entry struct {
	id      string
	display string
}

// NewEntry creates an entry.
func NewEntry(id, display string) *Entry {
	return &Entry{id: id, display: display}
}

// ID returns the opaque identifier.
func (e *Entry) ID() string {
	return e.id
}

// Display returns the label inserted into the text on commit.
func (e *Entry) Display() string {
	return e.display
}

// String returns a human-readable representation of the entry.
func (e *Entry) String() string {
	return fmt.Sprintf("%s(%s)", e.display, e.id)
}
