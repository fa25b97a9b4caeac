// Package tokenize splits text into normal and candidate spans.
//
// A candidate is a trigger rune (by default '@') followed by one or more
// runs of word runes, where consecutive runs may be joined by a single
// space so that multi-word names can be typed before they are confirmed:
//
//	hello @jo there, @Ana Maria
//	      ^^^^^^^^^  ^^^^^^^^^^
//
// Matches are maximal and scanned left to right without backtracking, so
// candidates never overlap. The spans returned by Segment always partition
// the input: concatenating their Text reproduces it exactly.
package tokenize
