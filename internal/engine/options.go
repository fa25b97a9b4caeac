package engine

import (
	"log/slog"
	"time"

	"github.com/nioark/mentions/internal/engine/tokenize"
)

// Option configures a Session during creation.
type Option func(*Session)

// WithText sets the initial text.
func WithText(s string) Option {
	return func(e *Session) {
		e.text = s
	}
}

// WithCaret sets the initial caret. By default the caret is at the end of
// the initial text.
func WithCaret(caret int) Option {
	return func(e *Session) {
		e.caret = caret
		e.caretSet = true
	}
}

// WithTrigger sets the character that starts a mention.
func WithTrigger(r rune) Option {
	return func(e *Session) {
		e.trigger = r
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(e *Session) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithDiffTimeout bounds the diff computed for each edit. Zero means no
// limit.
func WithDiffTimeout(d time.Duration) Option {
	return func(e *Session) {
		if d > 0 {
			e.diffTimeout = d
		}
	}
}

// WithObserver registers fn to receive session events.
func WithObserver(fn Observer) Option {
	return func(e *Session) {
		if fn != nil {
			e.observers = append(e.observers, fn)
		}
	}
}

// WithTokenizer replaces the tokenizer. It takes precedence over
// WithTrigger.
func WithTokenizer(t *tokenize.Tokenizer) Option {
	return func(e *Session) {
		e.tokenizer = t
	}
}
