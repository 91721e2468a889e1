package uri

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/ghettovoice/urikit/query"
)

// Builder is a mutable URI handle.
//
// Fields hold the same representation as the [URI] getters: Host may contain
// a bracketed IPv6 literal, Path and Fragment are escaped, RawQuery has no leading "?"
// and Fragment has no leading "#".
//
// A Builder returned by [Compose] or [Normalize] is owned by the caller,
// it is not shared with anything else. Builder is not safe for concurrent modification.
type Builder struct {
	Scheme   string
	User     *url.Userinfo
	Host     string
	Port     string
	Opaque   string
	Path     string
	RawQuery string
	Fragment string
}

// NewBuilder returns a builder initialized from u.
func NewBuilder(u *url.URL) *Builder {
	if u == nil {
		return &Builder{}
	}
	return fromURL(u).Builder()
}

// JoinPath appends the path segments to the builder path, see [JoinPath].
// The path of a builder with a non-empty Opaque part is not rendered.
func (b *Builder) JoinPath(p Path, encode bool) *Builder {
	b.Path = JoinPath(b.Path, p, encode)
	return b
}

// Query returns the parsed builder query.
func (b *Builder) Query() *query.Map { return query.Parse(b.RawQuery) }

// SetQuery replaces the builder query with m.
func (b *Builder) SetQuery(m *query.Map, encode bool) *Builder {
	b.RawQuery = query.Build(m, encode)
	return b
}

// MergeQuery merges m into the builder query, see [query.Merge].
func (b *Builder) MergeQuery(m *query.Map, dup, encode bool) *Builder {
	return b.SetQuery(query.Merge(b.Query(), m, dup), encode)
}

// SetFragment sets the fragment.
// An empty fragment clears it. Otherwise a single leading "#" is stripped and
// the rest is encoded with [query.EncodeComponent] unless encode is false.
func (b *Builder) SetFragment(frag string, encode bool) *Builder {
	b.Fragment = query.EncodeComponent(strings.TrimPrefix(frag, "#"), encode)
	return b
}

// URI returns an immutable snapshot of the builder.
func (b *Builder) URI() *URI {
	if b == nil {
		return nil
	}
	return &URI{
		scheme:   b.Scheme,
		user:     cloneUser(b.User),
		host:     b.Host,
		port:     b.Port,
		opaque:   b.Opaque,
		path:     b.Path,
		rawQuery: b.RawQuery,
		fragment: b.Fragment,
	}
}

// Clone returns a deep copy of the builder.
func (b *Builder) Clone() *Builder {
	if b == nil {
		return nil
	}
	b2 := *b
	b2.User = cloneUser(b.User)
	return &b2
}

// URL converts the builder to [url.URL].
func (b *Builder) URL() *url.URL { return b.URI().URL() }

// Form implements [Output].
func (*Builder) Form() OutputForm { return FormBuilder }

// LogValue implements [slog.LogValuer], the password is masked as in [URI.LogValue].
func (b *Builder) LogValue() slog.Value { return b.URI().LogValue() }

// String returns the string representation of the URI being built.
func (b *Builder) String() string { return b.URI().String() }
