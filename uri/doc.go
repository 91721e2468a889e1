// Package uri builds, validates and normalizes URIs.
//
// # Composing
//
// [Compose] takes a base URI and appends path segments, merges query parameters
// and sets the fragment:
//
//	out, err := uri.Compose("https://example.com/data?year=2023", &uri.ComposeOptions{
//	    Path:       &uri.Path{Segments: []string{"reports", "Q1 2024"}},
//	    Query:      map[string]any{"year": 2024, "sort": "asc"},
//	    MergeQuery: true,
//	    Fragment:   uri.Frag("summary"),
//	})
//	// https://example.com/data/reports/Q1%202024?year=2023&year=2024&sort=asc#summary
//
// Path segments given with [PathOf] are encoded as a whole, so a "/" inside a segment
// is escaped. [SplitPath] splits a "/"-separated string instead and keeps its trailing slash.
//
// Query strings are handled by package [github.com/ghettovoice/urikit/query].
// Without [ComposeOptions.MergeQuery] new values replace base values of the same key,
// with it they are accumulated, base values first.
//
// # Output forms
//
// The result of [Compose] and [Normalize] is an [Output]:
//
//   - [FormURI] returns an immutable [*URI];
//   - [FormBuilder] returns a mutable [*Builder] owned by the caller;
//   - [FormString] returns a [Text] rendered as "scheme://host[:port][path][?query][#fragment]",
//     the user information is omitted and spaces of the fragment ("%20" or literal) become "-".
//
// # Parsing and validation
//
// Parsing is delegated to a [Parser], [DefaultParser] wraps [net/url].
// [IsValid] reports whether a string is a valid URI, [Normalize] turns input like
// "example.com/a" into "http://example.com/a".
//
// # Encoding
//
// Path segments, query keys, query values and the fragment are encoded with RFC 3986
// component encoding: every octet outside of ALPHA / DIGIT / "-" / "." / "_" / "~" is
// percent-encoded, space becomes "%20". [ComposeOptions.NoEncode] disables encoding.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use. [Builder] is not safe for
// concurrent modification.
package uri

//go:generate go tool errtrace -w .
