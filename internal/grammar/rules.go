package grammar

import "github.com/ghettovoice/abnf"

// RFC 3986, section 3.1:
//
//	scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
var (
	alpha = abnf.Alt(
		"ALPHA",
		abnf.Range("%x41-5A", []byte{0x41}, []byte{0x5A}),
		abnf.Range("%x61-7A", []byte{0x61}, []byte{0x7A}),
	)
	digit  = abnf.Range("DIGIT", []byte{0x30}, []byte{0x39})
	scheme = abnf.Concat(
		"scheme",
		alpha,
		abnf.Repeat0Inf(
			`*( ALPHA / DIGIT / "+" / "-" / "." )`,
			abnf.Alt(
				`ALPHA / DIGIT / "+" / "-" / "."`,
				alpha,
				digit,
				abnf.Literal(`"+"`, []byte("+")),
				abnf.Literal(`"-"`, []byte("-")),
				abnf.Literal(`"."`, []byte(".")),
			),
		),
	)
	schemePrefix = abnf.Concat(`scheme ":"`, scheme, abnf.Literal(`":"`, []byte(":")))
)

// SchemePrefixLen returns the length of the leading `scheme ":"` of s
// or 0 if s doesn't start with a scheme.
func SchemePrefixLen[T ~string | ~[]byte](s T) int {
	if len(s) < 2 {
		return 0
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := schemePrefix([]byte(s), 0, ns); err != nil {
		return 0
	}
	return int(ns.Best().Len())
}

// HasSchemePrefix reports whether s starts with `scheme ":"`.
func HasSchemePrefix[T ~string | ~[]byte](s T) bool { return SchemePrefixLen(s) > 0 }
