// Package text provides the offset, range and edit primitives shared by the
// mention engine.
//
// All positions are character offsets: they count Unicode code points
// (runes) from the start of a Go string, never bytes. A caret at offset n
// sits between rune n-1 and rune n.
//
// Basic usage:
//
//	s := "hello @jo there"
//	r := text.NewRange(6, 9)          // "@jo"
//	out, _ := text.NewEdit(r, "John").Apply(s)
//	// out == "hello John there"
package text
