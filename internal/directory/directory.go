package directory

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Directory is an ordered, immutable list of entries.
type Directory struct {
	entries []*Entry
	byID    map[string]*Entry
	folded  []string
}

// New builds a directory, keeping the given order.
func New(entries ...*Entry) (*Directory, error) {
	d := &Directory{
		entries: make([]*Entry, 0, len(entries)),
		byID:    make(map[string]*Entry, len(entries)),
		folded:  make([]string, 0, len(entries)),
	}
	fold := cases.Fold()
	for i, e := range entries {
		switch {
		case e == nil || e.id == "":
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyID)
		case e.display == "":
			return nil, fmt.Errorf("entry %q: %w", e.id, ErrEmptyDisplay)
		}
		if _, ok := d.byID[e.id]; ok {
			return nil, fmt.Errorf("entry %q: %w", e.id, ErrDuplicateID)
		}
		d.entries = append(d.entries, e)
		d.byID[e.id] = e
		d.folded = append(d.folded, fold.String(e.display))
	}
	return d, nil
}

// MustNew is like New but panics on error.
func MustNew(entries ...*Entry) *Directory {
	d, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return d
}

// Default returns the demo directory.
func Default() *Directory {
	return MustNew(
		NewEntry("1", "John"),
		NewEntry("2", "Jane"),
		NewEntry("3", "Bob"),
		NewEntry("4", "Joao"),
		NewEntry("5", "Jorge"),
	)
}

// Len returns the number of entries.
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Entries returns the entries in directory order.
func (d *Directory) Entries() []*Entry {
	if d == nil {
		return nil
	}
	out := make([]*Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Lookup returns the entry with the given id.
func (d *Directory) Lookup(id string) (*Entry, bool) {
	if d == nil {
		return nil, false
	}
	e, ok := d.byID[id]
	return e, ok
}

// Match returns the entries whose display name starts with prefix, ignoring
// case, in directory order. It never returns nil.
func (d *Directory) Match(prefix string) []*Entry {
	out := make([]*Entry, 0)
	if d == nil {
		return out
	}
	p := cases.Fold().String(prefix)
	for i, name := range d.folded {
		if strings.HasPrefix(name, p) {
			out = append(out, d.entries[i])
		}
	}
	return out
}

// Match is the free-function form of (*Directory).Match.
func Match(prefix string, d *Directory) []*Entry {
	return d.Match(prefix)
}
