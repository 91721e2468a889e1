package grammar

import (
	"github.com/ghettovoice/urikit/internal/constraints"
	"github.com/ghettovoice/urikit/internal/util"
)

// Unescape unescapes s by converting each 3-byte encoded substring of the form "% HEXDIG HEXDIG" into the hex-decoded byte.
// Percent signs that do not start a valid escape are copied as is.
func Unescape[T constraints.Byteseq](s T) T {
	if len(s) == 0 || !hasEscape(s) {
		return s
	}

	b := util.GetBytesBuffer()
	defer util.FreeBytesBuffer(b)

	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.String())
}

// Escape escapes s by replacing each char matched by shouldEscape callback to the hex form "% HEXDIG HEXDIG".
// If shouldEscape is nil, every char outside of the unreserved set is escaped, including "%" itself.
func Escape[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}

	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsCharUnreserved(c) }
	}

	n := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	b := util.GetBytesBuffer()
	defer util.FreeBytesBuffer(b)

	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			b.WriteByte('%')
			b.WriteByte(upperhex[s[i]>>4])
			b.WriteByte(upperhex[s[i]&15])
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.String())
}

func hasEscape[T constraints.Byteseq](s T) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '%' {
			return true
		}
	}
	return false
}

const upperhex = "0123456789ABCDEF"

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
