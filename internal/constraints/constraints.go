// Package constraints declares type set constraints of the generic helpers.
package constraints

// Byteseq is raw text given either as a string or as a byte slice.
type Byteseq interface {
	~string | ~[]byte
}
