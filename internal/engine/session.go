package engine

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nioark/mentions/internal/directory"
	"github.com/nioark/mentions/internal/engine/remap"
	"github.com/nioark/mentions/internal/engine/store"
	"github.com/nioark/mentions/internal/engine/suggest"
	"github.com/nioark/mentions/internal/engine/text"
	"github.com/nioark/mentions/internal/engine/tokenize"
	"github.com/nioark/mentions/internal/highlight"
	"github.com/nioark/mentions/internal/logging"
)

// Phase is the suggestion state of a session.
type Phase uint8

const (
	// Idle means no match is offered at the caret.
	Idle Phase = iota

	// Suggesting means the caret is on a candidate with at least one match.
	Suggesting
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Suggesting:
		return "suggesting"
	default:
		return "unknown"
	}
}

// Snapshot is the derived state after an event.
type Snapshot struct {
	Text        string
	Caret       text.Offset
	Phase       Phase
	Mentions    []store.Mention
	Suggestions suggest.State
	Spans       []tokenize.Span
}

// Session tracks the mentions of one text across edits.
type Session struct {
	mu sync.Mutex

	text  string
	caret text.Offset
	phase Phase
	spans []tokenize.Span
	state suggest.State

	dir       *directory.Directory
	mentions  *store.Store
	tokenizer *tokenize.Tokenizer
	resolver  *suggest.Resolver
	remapper  *remap.Remapper

	logger    *slog.Logger
	observers []Observer

	// Set by options only.
	trigger     rune
	diffTimeout time.Duration
	caretSet    bool
}

// New creates a session over dir. A nil directory offers no matches.
func New(dir *directory.Directory, opts ...Option) *Session {
	s := &Session{
		dir:      dir,
		mentions: store.New(),
		logger:   logging.Discard(),
		trigger:  tokenize.DefaultTrigger,
		state:    suggest.Empty(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.tokenizer == nil {
		s.tokenizer = tokenize.New(tokenize.WithTrigger(s.trigger))
	}
	s.resolver = suggest.NewResolver(s.tokenizer)
	s.remapper = remap.New(remap.WithTimeout(s.diffTimeout))

	if !s.caretSet {
		s.caret = text.Len(s.text)
	}
	s.caret = text.Clamp(s.caret, 0, text.Len(s.text))
	s.spans = s.tokenizer.Segment(s.text)
	s.refresh(true)
	return s
}

// Update reports the text and caret after an input event. Mentions are
// carried over to the new text, using the caret to place a typed insertion
// or deletion, and suggestions recomputed.
func (s *Session) Update(newText string, caret text.Offset) Snapshot {
	s.mu.Lock()
	changed := newText != s.text
	var events []Event
	if changed {
		res := s.remapper.RemapTyped(s.text, newText, caret, s.mentions.All())
		events = s.install(newText, res)
	}
	s.caret = text.Clamp(caret, 0, text.Len(s.text))
	s.refresh(changed)
	snap := s.snapshot()
	s.mu.Unlock()

	s.notify(events)
	return snap
}

// MoveCaret reports a caret move without a text change. The selection is
// kept while the caret stays on the same candidate.
func (s *Session) MoveCaret(caret text.Offset) Snapshot {
	s.mu.Lock()
	s.caret = text.Clamp(caret, 0, text.Len(s.text))
	s.refresh(false)
	snap := s.snapshot()
	s.mu.Unlock()
	return snap
}

// MoveSelection moves the selected match by delta, clamped to the matches.
func (s *Session) MoveSelection(delta int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.MoveSelection(delta)
	return s.snapshot()
}

// Commit replaces the candidate under the caret with the selected entry
// and records it as a mention. The caret moves right after the inserted
// text and the session becomes Idle.
func (s *Session) Commit() (Snapshot, error) {
	s.mu.Lock()
	events, err := s.commit()
	snap := s.snapshot()
	s.mu.Unlock()

	s.notify(events)
	return snap, err
}

// Remove drops the mention at the caret: the one ending right before the
// caret or holding it. With deleteText its characters are also removed from
// the text and the caret moves to where the mention started.
func (s *Session) Remove(deleteText bool) (Snapshot, error) {
	s.mu.Lock()
	events, err := s.remove(deleteText)
	snap := s.snapshot()
	s.mu.Unlock()

	s.notify(events)
	return snap, err
}

func (s *Session) commit() ([]Event, error) {
	entry, ok := s.state.Selection()
	if s.phase != Suggesting || !ok {
		return nil, ErrNoSuggestion
	}

	cand := s.state.Candidate
	edit := text.NewEdit(cand.Range(), entry.Display())
	newText, changes, err := s.splice(edit)
	if err != nil {
		return nil, fmt.Errorf("commit %s: %w", entry, err)
	}

	res := s.remapper.RemapChanges(s.text, newText, changes, s.mentions.All())
	m := store.NewMention(entry, cand.Start)

	// Build the new mention set aside so a rejected insert leaves the
	// session untouched.
	next := store.New()
	if err := next.ReplaceAll(res.Mentions); err != nil {
		return nil, fmt.Errorf("commit %s: %w", entry, err)
	}
	if err := next.InsertWithin(m, text.Len(newText)); err != nil {
		return nil, fmt.Errorf("commit %s: %w", entry, err)
	}

	events := s.invalidations(res)
	s.mentions = next
	s.setText(newText)
	s.caret = cand.Start + text.Len(entry.Display())
	s.state = suggest.Empty()
	s.phase = Idle

	s.logger.Info("mention committed",
		"entry", entry.ID(),
		"display", m.Display,
		"start", m.Start,
		"end", m.End)
	return append(events, Event{Kind: EventCommitted, Mention: m}), nil
}

func (s *Session) remove(deleteText bool) ([]Event, error) {
	m, ok := s.mentions.AtCaret(s.caret)
	if !ok {
		return nil, ErrNoMention
	}

	events := []Event{{Kind: EventRemoved, Mention: m}}
	if deleteText {
		edit := text.NewDelete(m.Start, m.End+1)
		newText, changes, err := s.splice(edit)
		if err != nil {
			return nil, fmt.Errorf("remove %s: %w", m, err)
		}
		s.mentions.RemoveByID(m.ID)
		res := s.remapper.RemapChanges(s.text, newText, changes, s.mentions.All())
		events = append(events, s.install(newText, res)...)
		s.caret = m.Start
	} else {
		s.mentions.RemoveByID(m.ID)
	}

	s.logger.Info("mention removed",
		"entry", m.EntryID(),
		"start", m.Start,
		"end", m.End,
		"text_deleted", deleteText)
	s.refresh(deleteText)
	return events, nil
}

// SetDirectory replaces the directory used for matching. Existing mentions
// keep the entries they were committed with.
func (s *Session) SetDirectory(dir *directory.Directory) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dir = dir
	s.refresh(false)
	s.logger.Debug("directory replaced", "entries", dir.Len())
	return s.snapshot()
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Text returns the current text.
func (s *Session) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// Caret returns the caret offset.
func (s *Session) Caret() text.Offset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.caret
}

// Phase returns the suggestion phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Mentions returns the confirmed mentions in order.
func (s *Session) Mentions() []store.Mention {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mentions.All()
}

// Suggestions returns the suggestion state.
func (s *Session) Suggestions() suggest.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Spans returns the segmentation of the current text.
func (s *Session) Spans() []tokenize.Span {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]tokenize.Span(nil), s.spans...)
}

// Export returns the mentions as records in order.
func (s *Session) Export() []store.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mentions.Export()
}

// ExportJSON returns the mentions encoded as JSON.
func (s *Session) ExportJSON() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mentions.ExportJSON()
}

// Highlight returns the current text tagged for rendering.
func (s *Session) Highlight() []highlight.Fragment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return highlight.Decorate(s.text, s.spans, s.mentions.All(), s.caret)
}

// splice applies edit to the current text and returns the result with its
// exact change list.
func (s *Session) splice(edit text.Edit) (string, []remap.EditChange, error) {
	newText, err := edit.Apply(s.text)
	if err != nil {
		return "", nil, err
	}
	changes, err := remap.ChangesForEdit(s.text, edit)
	if err != nil {
		return "", nil, err
	}
	return newText, changes, nil
}

// install moves to newText with the remapped mentions and returns the
// invalidation events.
func (s *Session) install(newText string, res remap.Result) []Event {
	if err := s.mentions.ReplaceAll(res.Mentions); err != nil {
		// The remapper only ever returns a valid set.
		s.logger.Error("remapped mentions rejected", "err", err)
		for _, m := range s.mentions.All() {
			res.Invalidated = append(res.Invalidated, remap.Invalidation{Mention: m, Reason: remap.ReasonOverlap})
		}
		s.mentions.Clear()
	}
	s.setText(newText)
	return s.invalidations(res)
}

func (s *Session) invalidations(res remap.Result) []Event {
	var events []Event
	for _, inv := range res.Invalidated {
		s.logger.Debug("mention invalidated",
			"entry", inv.Mention.EntryID(),
			"start", inv.Mention.Start,
			"end", inv.Mention.End,
			"reason", inv.Reason.String())
		events = append(events, Event{
			Kind:    EventInvalidated,
			Mention: inv.Mention,
			Err:     fmt.Errorf("%w: %s", ErrMentionInvalidated, inv.Reason),
		})
	}
	return events
}

func (s *Session) setText(newText string) {
	s.text = newText
	s.spans = s.tokenizer.Segment(newText)
}

// refresh recomputes the suggestion state for the current text and caret.
func (s *Session) refresh(textChanged bool) {
	st := s.resolver.Resolve(s.text, s.caret, s.dir, s.mentions.All())
	s.state = st.Inherit(s.state, textChanged)
	if s.state.Active() {
		s.phase = Suggesting
	} else {
		s.phase = Idle
	}
}

func (s *Session) snapshot() Snapshot {
	return Snapshot{
		Text:        s.text,
		Caret:       s.caret,
		Phase:       s.phase,
		Mentions:    s.mentions.All(),
		Suggestions: s.state,
		Spans:       append([]tokenize.Span(nil), s.spans...),
	}
}

func (s *Session) notify(events []Event) {
	for _, ev := range events {
		for _, fn := range s.observers {
			fn(ev)
		}
	}
}
