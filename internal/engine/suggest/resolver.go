package suggest

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nioark/mentions/internal/directory"
	"github.com/nioark/mentions/internal/engine/store"
	"github.com/nioark/mentions/internal/engine/text"
	"github.com/nioark/mentions/internal/engine/tokenize"
)

// Resolver finds the candidate under the caret and its matches.
type Resolver struct {
	tokenizer *tokenize.Tokenizer
}

// NewResolver creates a resolver using tok to find candidates. A nil
// tokenizer uses the default trigger.
func NewResolver(tok *tokenize.Tokenizer) *Resolver {
	if tok == nil {
		tok = tokenize.New()
	}
	return &Resolver{tokenizer: tok}
}

// Tokenizer returns the tokenizer used for resolution.
func (r *Resolver) Tokenizer() *tokenize.Tokenizer {
	return r.tokenizer
}

// Resolve returns the suggestion state for caret in s. mentions are the
// confirmed mentions of s; a candidate never extends into one of them.
//
// The caret is on a candidate when it lies between the trigger and one past
// the candidate's last character. A candidate ending at the caret wins over
// one starting there. Since a candidate may span several words, it is cut
// at the end of the word holding the caret, so that in "hello @jo there"
// with the caret after "jo" the candidate is "@jo".
func (r *Resolver) Resolve(s string, caret text.Offset, dir *directory.Directory, mentions []store.Mention) State {
	runes := []rune(s)
	caret = text.Clamp(caret, 0, len(runes))

	sp, ok := r.candidateAt(s, caret)
	if !ok {
		return Empty()
	}

	start, end, ok := clip(runes, sp, caret, mentions)
	if !ok {
		return Empty()
	}

	query := cases.Lower(language.Und).String(string(runes[start+1 : end]))
	return State{
		Candidate: tokenize.Span{
			Text:  string(runes[start:end]),
			Kind:  tokenize.Candidate,
			Start: start,
			End:   end,
		},
		HasCandidate: true,
		Query:        query,
		Matches:      dir.Match(query),
	}
}

func (r *Resolver) candidateAt(s string, caret text.Offset) (tokenize.Span, bool) {
	var (
		found tokenize.Span
		ok    bool
	)
	for _, sp := range r.tokenizer.Candidates(s) {
		if sp.Start > caret {
			break
		}
		if sp.Start < caret && caret <= sp.End {
			return sp, true
		}
		if sp.Start == caret {
			found, ok = sp, true
		}
	}
	return found, ok
}

// clip narrows sp to stop before any confirmed mention and at the end of
// the word under the caret. It fails if the caret falls outside the result
// or nothing but the trigger remains.
func clip(runes []rune, sp tokenize.Span, caret text.Offset, mentions []store.Mention) (text.Offset, text.Offset, bool) {
	start, end := sp.Start, sp.End

	for _, m := range mentions {
		if m.Contains(start) {
			return 0, 0, false
		}
		if m.Start > start && m.Start < end {
			end = m.Start
		}
	}
	for end > start && runes[end-1] == ' ' {
		end--
	}
	if caret > end {
		return 0, 0, false
	}

	if caret < end {
		i := caret
		if i == start {
			i++
		}
		for i < end && runes[i] != ' ' {
			i++
		}
		end = i
	}

	if end-start < 2 {
		return 0, 0, false
	}
	return start, end, true
}
