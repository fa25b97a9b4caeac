package engine

import (
	"fmt"

	"github.com/nioark/mentions/internal/engine/store"
)

// EventKind identifies what happened to a mention.
type EventKind uint8

const (
	// EventCommitted is sent when a suggestion becomes a mention.
	EventCommitted EventKind = iota

	// EventRemoved is sent when a mention is removed on request.
	EventRemoved

	// EventInvalidated is sent when an edit destroys a mention.
	EventInvalidated
)

// String returns a human-readable representation of the kind.
func (k EventKind) String() string {
	switch k {
	case EventCommitted:
		return "committed"
	case EventRemoved:
		return "removed"
	case EventInvalidated:
		return "invalidated"
	default:
		return "unknown"
	}
}

// Event describes a change to the mention set.
type Event struct {
	Kind EventKind

	// Mention is the mention concerned. For invalidations it carries the
	// offsets it had before the edit.
	Mention store.Mention

	// Err wraps ErrMentionInvalidated for invalidations.
	Err error
}

// String returns a human-readable representation of the event.
func (e Event) String() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Kind, e.Mention, e.Err)
	}
	return fmt.Sprintf("%s %s", e.Kind, e.Mention)
}

// Observer receives session events.
type Observer func(Event)
