// Package engine keeps confirmed mentions in sync with a freely edited text
// and offers completions for the mention being typed.
//
// The engine is built on several sub-packages:
//
//   - text: rune offsets, ranges and edits
//   - tokenize: splitting text into normal and candidate spans
//   - remap: carrying mention offsets across an edit
//   - store: the sorted, non-overlapping set of confirmed mentions
//   - suggest: the candidate under the caret and its matches
//
// # Sessions
//
// A Session owns one text, its caret and its mentions. Every event the
// input widget reports goes through the session, which fully processes it
// before accepting the next one:
//
//	s := engine.New(directory.Default())
//	s.Update("hello @jo", 9)    // Suggesting: John, Joao, Jorge
//	snap, _ := s.Commit()       // "hello John", caret 10
//	s.Update(snap.Text+"!", 11) // John stays at [6..9]
//
// Edits anywhere in the text move the mentions after them. An edit that
// touches a mention's characters drops it and notifies observers with
// ErrMentionInvalidated.
//
// # Thread Safety
//
// Session methods are safe for concurrent use but are serialized: each call
// sees the state left by the previous one. Observers run after the session
// lock is released and may call back into the session.
package engine
