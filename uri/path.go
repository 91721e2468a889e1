package uri

import (
	"slices"
	"strings"

	"github.com/ghettovoice/urikit/internal/util"
	"github.com/ghettovoice/urikit/query"
)

// Path is an ordered list of raw (not encoded) path segments to append to a base path.
type Path struct {
	// Segments are the raw segments, each one is encoded as a whole,
	// so a "/" inside a segment is escaped instead of starting a new segment.
	Segments []string
	// TrailingSlash requests a final "/" after the joined segments.
	TrailingSlash bool
}

// SplitPath splits a "/"-separated path into segments.
// Empty segments are discarded, a trailing "/" of p sets [Path.TrailingSlash].
func SplitPath(p string) Path {
	var segs []string
	for s := range strings.SplitSeq(p, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return Path{
		Segments:      segs,
		TrailingSlash: len(segs) > 0 && strings.HasSuffix(p, "/"),
	}
}

// PathOf returns a path of explicit segments.
func PathOf(segs ...string) Path {
	return Path{Segments: slices.Clone(segs)}
}

// IsZero reports whether p has no segments to join.
func (p Path) IsZero() bool {
	return !slices.ContainsFunc(p.Segments, func(s string) bool { return s != "" })
}

// String returns the segments joined with "/" without encoding.
func (p Path) String() string {
	s := strings.Join(p.nonEmpty(), "/")
	if p.TrailingSlash && s != "" {
		s += "/"
	}
	return s
}

func (p Path) nonEmpty() []string {
	if !slices.Contains(p.Segments, "") {
		return p.Segments
	}
	return slices.DeleteFunc(slices.Clone(p.Segments), func(s string) bool { return s == "" })
}

// JoinPath appends the segments of p to basePath.
//
// An empty or "/" base path is replaced with "/", any other base path gets a trailing "/"
// if it doesn't have one. Each segment is encoded with [query.EncodeComponent] unless
// encode is false. Empty segments are skipped, when no segments are left
// basePath is returned unchanged.
func JoinPath(basePath string, p Path, encode bool) string {
	segs := p.nonEmpty()
	if len(segs) == 0 {
		return basePath
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	if basePath == "" || basePath == "/" {
		sb.WriteByte('/')
	} else {
		sb.WriteString(basePath)
		if !strings.HasSuffix(basePath, "/") {
			sb.WriteByte('/')
		}
	}
	for i, s := range segs {
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(query.EncodeComponent(s, encode))
	}
	if p.TrailingSlash {
		sb.WriteByte('/')
	}
	return sb.String()
}
