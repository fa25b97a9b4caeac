package engine

import "errors"

// Errors returned by session operations.
var (
	// ErrNoSuggestion indicates a commit while no match is offered.
	ErrNoSuggestion = errors.New("no suggestion to commit")

	// ErrNoMention indicates a removal with no mention at the caret.
	ErrNoMention = errors.New("no mention at caret")

	// ErrMentionInvalidated is reported to observers when an edit destroys
	// a mention. It is informational; the mention is already gone.
	ErrMentionInvalidated = errors.New("mention invalidated")
)
