// Package query implements query-string values, parsing, building and merging.
//
// A query string is modelled as an ordered [Map] from key to [Value].
// A [Value] is either a single scalar or a sequence of scalars that
// represents a repeated key:
//
//	m := query.Parse("name=John%20Doe&age=30&age=40")
//	// name => Scalar("John Doe")
//	// age  => Sequence("30", "40")
//
//	query.Build(m, true) // "name=John%20Doe&age=30&age=40"
//
// Keys and values are encoded with RFC 3986 component encoding: every octet
// outside of the unreserved set is percent-encoded and space becomes "%20".
// Decoding never fails, percent signs that don't start a valid "%XX" escape are
// kept as is.
//
// [Merge] combines two maps either replacing values of the same key or
// accumulating them into a sequence.
//
// # Ordering
//
// [Map] iterates in insertion order. Maps created from built-in Go maps
// ([FromMap], [FromValues], [FromStrings]) insert keys in sorted order,
// so the output is deterministic.
package query

//go:generate go tool errtrace -w .
