// Package remap carries confirmed mention offsets across a text edit.
//
// Given the text before and after an edit, the remapper computes a
// character-level diff (or takes an exact change list for a known splice)
// and moves every mention to its position in the new text:
//
//   - A change entirely before a mention shifts it by the change's length.
//   - An insertion exactly at a mention's first character counts as before
//     the mention and shifts it.
//   - An insertion right after a mention's last character does not extend
//     the mention; the new text stays outside it.
//   - An insertion inside a mention, or a deletion touching any of its
//     characters, invalidates the mention.
//
// A character diff is ambiguous when an inserted or deleted run repeats the
// text next to it: turning "John" into "JJohn" may be reported as an
// insertion at offset 1, inside the mention. Before invalidating, the
// remapper slides such a change through the neighbouring unchanged text to
// the mention boundary when the result is the same text. Every surviving
// mention is finally checked against the new text.
//
// Remapping never fails. Mentions that cannot be carried over are reported
// in Result.Invalidated.
package remap
