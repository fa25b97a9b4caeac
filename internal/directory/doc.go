// Package directory holds the read-only set of entries that can be
// mentioned and the prefix matcher used to suggest them.
//
// A Directory owns its entries. Entries are immutable and shared by pointer
// with every mention that refers to them; reloading a directory builds a new
// Directory instead of mutating the old one.
//
//	dir, _ := directory.Load("people.toml")
//	for _, e := range dir.Match("jo") {
//	    fmt.Println(e.ID(), e.Display())
//	}
package directory
