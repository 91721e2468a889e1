package query

import "github.com/ghettovoice/urikit/internal/grammar"

// EncodeComponent percent-encodes every octet of tok outside of the RFC 3986 unreserved set.
// When enabled is false, tok is returned unchanged.
func EncodeComponent(tok string, enabled bool) string {
	if !enabled {
		return tok
	}
	return grammar.Escape(tok, nil)
}

// DecodeComponent decodes "%XX" escapes in tok.
// Malformed escapes are copied literally.
func DecodeComponent(tok string) string { return grammar.Unescape(tok) }
