package query

import (
	"strings"

	"github.com/ghettovoice/urikit/internal/util"
)

// Parse parses the raw query string into a map.
//
// The leading "?" is optional. Pairs are separated by "&", empty pairs are skipped.
// Each pair is split on the first "=" only, a pair without "=" yields an empty value.
// Keys and values are decoded independently with [DecodeComponent].
// Repeated keys accumulate values as described in [Map.Add].
//
// Parse never fails, an empty, blank or "?" input returns an empty map.
func Parse(raw string) *Map {
	m := New()

	raw = util.TrimSP(raw)
	raw = strings.TrimPrefix(raw, "?")
	if raw == "" {
		return m
	}

	for pair := range strings.SplitSeq(raw, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		m.Add(DecodeComponent(k), DecodeComponent(v))
	}
	return m
}
