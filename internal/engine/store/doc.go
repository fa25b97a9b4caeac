// Package store keeps the confirmed mentions of one text.
//
// A Store is the authoritative collection of mentions. It keeps them sorted
// ascending by Start and never holds two mentions whose [Start, End] ranges
// overlap. Mutations that would break either rule are rejected and leave
// the store unchanged.
//
// Mention ranges are inclusive of their last character: a mention of "John"
// at offset 6 has Start 6 and End 9.
//
// Store is not safe for concurrent use; the engine serializes access.
package store
