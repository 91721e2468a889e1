package uri

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urikit/internal/constraints"
	"github.com/ghettovoice/urikit/internal/grammar"
	"github.com/ghettovoice/urikit/internal/ioutil"
	"github.com/ghettovoice/urikit/internal/util"
	"github.com/ghettovoice/urikit/query"
)

// URI is an immutable composed URI.
//
// Path and fragment are stored in their escaped form,
// the query is stored raw without the leading "?",
// the fragment without the leading "#".
// Use [URI.Builder] to get a mutable copy.
type URI struct {
	scheme   string
	user     *url.Userinfo
	host     string
	port     string
	opaque   string
	path     string
	rawQuery string
	fragment string
}

// Parse parses an absolute URI or a relative reference with the [DefaultParser].
func Parse[T constraints.Byteseq](s T) (*URI, error) {
	u, err := DefaultParser().TryParse(string(s), KindAny)
	if err != nil {
		return nil, errtrace.Wrap(newInvalidURIErr(fmt.Errorf("parse %q: %w", redactUserinfo(string(s)), err)))
	}
	return fromURL(u), nil
}

// FromURL returns a URI built from u.
func FromURL(u *url.URL) *URI {
	if u == nil {
		return nil
	}
	return fromURL(u)
}

func fromURL(u *url.URL) *URI {
	port := u.Port()
	host := u.Host
	if port != "" {
		host = host[:len(host)-len(port)-1]
	} else {
		host = strings.TrimSuffix(host, ":")
	}
	return &URI{
		scheme:   u.Scheme,
		user:     cloneUser(u.User),
		host:     host,
		port:     port,
		opaque:   u.Opaque,
		path:     u.EscapedPath(),
		rawQuery: u.RawQuery,
		fragment: u.EscapedFragment(),
	}
}

func cloneUser(u *url.Userinfo) *url.Userinfo {
	if u == nil {
		return nil
	}
	if pwd, ok := u.Password(); ok {
		return url.UserPassword(u.Username(), pwd)
	}
	return url.User(u.Username())
}

// Scheme returns the URI scheme.
func (u *URI) Scheme() string {
	if u == nil {
		return ""
	}
	return u.scheme
}

// User returns a copy of the user information or nil.
func (u *URI) User() *url.Userinfo {
	if u == nil {
		return nil
	}
	return cloneUser(u.user)
}

// Host returns the host without the port, IPv6 literals are returned without brackets.
func (u *URI) Host() string {
	if u == nil {
		return ""
	}
	if strings.HasPrefix(u.host, "[") {
		return grammar.Unescape(strings.TrimSuffix(strings.TrimPrefix(u.host, "["), "]"))
	}
	return u.host
}

// Port returns the port or an empty string.
func (u *URI) Port() string {
	if u == nil {
		return ""
	}
	return u.port
}

// Authority returns "host[:port]" as it appears in the URI.
func (u *URI) Authority() string {
	if u == nil {
		return ""
	}
	return authority(u.host, u.port)
}

func authority(host, port string) string {
	if port == "" {
		return host
	}
	return host + ":" + port
}

// Opaque returns the opaque part of a non-hierarchical URI, e.g. "user@example.com" of "mailto:user@example.com".
func (u *URI) Opaque() string {
	if u == nil {
		return ""
	}
	return u.opaque
}

// Path returns the escaped path.
func (u *URI) Path() string {
	if u == nil {
		return ""
	}
	return u.path
}

// RawQuery returns the query string without the leading "?".
func (u *URI) RawQuery() string {
	if u == nil {
		return ""
	}
	return u.rawQuery
}

// Query returns the parsed query string.
func (u *URI) Query() *query.Map { return query.Parse(u.RawQuery()) }

// Fragment returns the escaped fragment without the leading "#".
func (u *URI) Fragment() string {
	if u == nil {
		return ""
	}
	return u.fragment
}

// IsAbs reports whether the URI has a scheme.
func (u *URI) IsAbs() bool { return u.Scheme() != "" }

// Form implements [Output].
func (*URI) Form() OutputForm { return FormURI }

// Builder returns a mutable copy of the URI.
func (u *URI) Builder() *Builder {
	if u == nil {
		return nil
	}
	return &Builder{
		Scheme:   u.scheme,
		User:     cloneUser(u.user),
		Host:     u.host,
		Port:     u.port,
		Opaque:   u.opaque,
		Path:     u.path,
		RawQuery: u.rawQuery,
		Fragment: u.fragment,
	}
}

// URL converts the URI to [url.URL].
func (u *URI) URL() *url.URL {
	if u == nil {
		return nil
	}
	return &url.URL{
		Scheme:      u.scheme,
		Opaque:      u.opaque,
		User:        cloneUser(u.user),
		Host:        u.Authority(),
		Path:        grammar.Unescape(u.path),
		RawPath:     u.path,
		RawQuery:    u.rawQuery,
		Fragment:    grammar.Unescape(u.fragment),
		RawFragment: u.fragment,
	}
}

// RenderOptions contains options for rendering URIs.
type RenderOptions struct {
	// OmitUser skips the user information.
	OmitUser bool
	// SlugFragment replaces every space and "%20" of the fragment with "-".
	SlugFragment bool
}

// textRenderOpts are the options of the [FormString] output.
var textRenderOpts = &RenderOptions{OmitUser: true, SlugFragment: true}

var fragSlugRpl = strings.NewReplacer(" ", "-", "%20", "-")

// RenderTo writes the URI to the provided writer.
func (u *URI) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if u.scheme != "" {
		cw.WriteString(u.scheme)
		cw.WriteString(":")
	}
	if u.opaque != "" {
		cw.WriteString(u.opaque)
	} else {
		omitUser := opts != nil && opts.OmitUser
		if u.scheme != "" || u.host != "" || u.user != nil && !omitUser {
			if u.host != "" || u.port != "" || u.path != "" || u.user != nil && !omitUser {
				cw.WriteString("//")
			}
			if u.user != nil && !omitUser {
				cw.WriteString(u.user.String())
				cw.WriteString("@")
			}
			cw.WriteString(u.Authority())
		}
		if u.path != "" && u.path[0] != '/' && u.host != "" {
			cw.WriteString("/")
		}
		cw.WriteString(u.path)
	}
	if u.rawQuery != "" {
		cw.WriteString("?")
		cw.WriteString(u.rawQuery)
	}
	if u.fragment != "" {
		cw.WriteString("#")
		if opts != nil && opts.SlugFragment {
			cw.WriteString(fragSlugRpl.Replace(u.fragment))
		} else {
			cw.WriteString(u.fragment)
		}
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the URI.
func (u *URI) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the URI.
func (u *URI) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}

// Format implements [fmt.Formatter] for custom formatting of the URI.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}

// LogValue implements [slog.LogValuer].
func (u *URI) LogValue() slog.Value {
	if u == nil {
		return slog.Value{}
	}
	if u.user != nil {
		if _, ok := u.user.Password(); ok {
			u2 := *u
			u2.user = url.UserPassword(u.user.Username(), "xxxxx")
			return slog.StringValue(u2.String())
		}
	}
	return slog.StringValue(u.String())
}

// Equal compares this URI with another for equality.
// Scheme and host are compared case-insensitively, all other parts are compared as is.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}
	return util.EqFold(u.scheme, other.scheme) &&
		util.EqFold(u.host, other.host) &&
		u.port == other.port &&
		u.user.String() == other.user.String() &&
		u.opaque == other.opaque &&
		u.path == other.path &&
		u.rawQuery == other.rawQuery &&
		u.fragment == other.fragment
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URI) UnmarshalText(text []byte) error {
	u1, err := Parse(text)
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}
