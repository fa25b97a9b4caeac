// Package suggest decides whether the caret sits on an unconfirmed
// candidate token and, if so, which directory entries it could become.
//
// A State is a value: every resolution builds a new one and navigation
// returns a modified copy. The selected index survives a re-resolution only
// when the text did not change and the caret is still on the same candidate.
package suggest
