// Package highlight turns segmented text into tagged fragments for a
// renderer.
//
// Tags are data, not markup: a renderer decides what Emphasize and Suppress
// look like. Confirmed mentions are always emphasized; a candidate token is
// emphasized only while the caret is on it.
package highlight

import (
	"fmt"

	"github.com/nioark/mentions/internal/engine/store"
	"github.com/nioark/mentions/internal/engine/text"
	"github.com/nioark/mentions/internal/engine/tokenize"
)

// Tag is the rendering primitive attached to a fragment.
type Tag uint8

const (
	// TagSuppress renders text plainly.
	TagSuppress Tag = iota

	// TagEmphasize renders text distinguished from its surroundings.
	TagEmphasize
)

// String returns a human-readable representation of the tag.
func (t Tag) String() string {
	switch t {
	case TagSuppress:
		return "suppress"
	case TagEmphasize:
		return "emphasize"
	default:
		return "unknown"
	}
}

// Source tells what produced a fragment.
type Source uint8

const (
	// SourceText is plain text outside candidates and mentions.
	SourceText Source = iota

	// SourceCandidate is the candidate token under the caret.
	SourceCandidate

	// SourceMention is a confirmed mention.
	SourceMention
)

// Fragment is a tagged run of text. Fragments returned by Decorate
// partition the text.
type Fragment struct {
	Text   string
	Tag    Tag
	Source Source
	Start  text.Offset
	End    text.Offset
}

// String returns a human-readable representation of the fragment.
func (f Fragment) String() string {
	return fmt.Sprintf("%s[%d:%d) %q", f.Tag, f.Start, f.End, f.Text)
}

// Decorate tags s for rendering. spans are the tokenizer output for s and
// mentions the confirmed mentions; the candidate span holding the caret is
// emphasized. Mentions take precedence over candidates.
func Decorate(s string, spans []tokenize.Span, mentions []store.Mention, caret text.Offset) []Fragment {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}

	// owner[i] identifies the run rune i belongs to: 0 for plain text,
	// -1 for the active candidate and k+1 for mention k.
	owner := make([]int, len(runes))
	for _, sp := range spans {
		if !sp.IsCandidate() || caret < sp.Start || caret > sp.End {
			continue
		}
		for i := text.Clamp(sp.Start, 0, len(runes)); i < text.Clamp(sp.End, 0, len(runes)); i++ {
			owner[i] = -1
		}
	}
	for k, m := range mentions {
		for i := text.Clamp(m.Start, 0, len(runes)); i <= m.End && i < len(runes); i++ {
			owner[i] = k + 1
		}
	}

	var frags []Fragment
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && owner[i] == owner[start] {
			continue
		}
		frags = append(frags, fragment(runes, owner[start], start, i))
		start = i
	}
	return frags
}

func fragment(runes []rune, owner int, start, end text.Offset) Fragment {
	f := Fragment{
		Text:  string(runes[start:end]),
		Start: start,
		End:   end,
	}
	switch {
	case owner < 0:
		f.Tag, f.Source = TagEmphasize, SourceCandidate
	case owner > 0:
		f.Tag, f.Source = TagEmphasize, SourceMention
	}
	return f
}
