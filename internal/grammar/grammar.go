// Package grammar implements the RFC 3986 character classes, component
// escaping and the few ABNF rules needed to recognize URI prefixes.
package grammar

//go:generate go tool errtrace -w .

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

// IsAlphaChar checks ALPHA rule.
func IsAlphaChar(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }

// IsDigitChar checks DIGIT rule.
func IsDigitChar(c byte) bool { return '0' <= c && c <= '9' }

// IsCharUnreserved checks on RFC 3986 unreserved rule:
//
//	unreserved = ALPHA / DIGIT / "-" / "." / "_" / "~"
func IsCharUnreserved(c byte) bool {
	switch c {
	case '-', '.', '_', '~':
		return true
	}
	return IsAlphaChar(c) || IsDigitChar(c)
}

// IsCtlOrSpace reports whether c is an ASCII control character or white space.
// Such characters never appear in a well-formed URI.
func IsCtlOrSpace(c byte) bool { return c <= ' ' || c == 0x7f }

// ContainsCtlOrSpace reports whether s contains any byte matched by [IsCtlOrSpace].
func ContainsCtlOrSpace[T ~string | ~[]byte](s T) bool {
	for i := 0; i < len(s); i++ {
		if IsCtlOrSpace(s[i]) {
			return true
		}
	}
	return false
}
