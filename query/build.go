package query

import (
	"strings"

	"github.com/ghettovoice/urikit/internal/util"
)

// Build serializes the map into a query string without the leading "?".
//
// Entries are rendered in the map order. A scalar renders one "key=value" token,
// a sequence renders one token per element with the key repeated.
// Each key and value is passed through [EncodeComponent] with encode flag.
// An empty map returns an empty string.
func Build(m *Map, encode bool) string {
	if m.Len() == 0 {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for k, v := range m.All() {
		ek := EncodeComponent(k, encode)
		if v.kind == KindSequence {
			for _, s := range v.seq {
				writeToken(sb, ek, EncodeComponent(s, encode))
			}
			continue
		}
		writeToken(sb, ek, EncodeComponent(v.str, encode))
	}
	return sb.String()
}

func writeToken(sb *strings.Builder, k, v string) {
	if sb.Len() > 0 {
		sb.WriteByte('&')
	}
	sb.WriteString(k)
	sb.WriteByte('=')
	sb.WriteString(v)
}
