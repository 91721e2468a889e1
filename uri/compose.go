package uri

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/urikit/log"
	"github.com/ghettovoice/urikit/query"
)

// Base is the set of accepted base URI inputs of [Compose].
type Base interface {
	string | []byte | *url.URL | *URI | *Builder
}

// ComposeOptions contains options of [Compose].
// A nil *ComposeOptions is valid and leaves the base URI unchanged.
type ComposeOptions struct {
	// Path is appended to the base path, see [JoinPath].
	// If nil, the base path is left untouched.
	Path *Path
	// Query is merged into the base query.
	// Supported types are string, []byte, *query.Map and any Go map with a string key kind,
	// e.g. url.Values, map[string]string, map[string]int or map[string]any
	// (values converted with [query.ValueOf], see [query.MapOf]).
	// If nil, the base query is left untouched.
	Query any
	// Fragment replaces the base fragment, an empty fragment clears it.
	// If nil, the base fragment is left untouched. See [Frag].
	Fragment *string
	// MergeQuery accumulates values of keys present in both the base and the new query
	// instead of replacing the base value.
	MergeQuery bool
	// NoEncode disables percent-encoding of path segments, query tokens and fragment.
	NoEncode bool
	// Form selects the output representation.
	// Default is [FormURI].
	Form OutputForm
	// Parser is used to parse string base URIs.
	// If nil, [DefaultParser] is used.
	Parser Parser
	// Log is used to log compositions.
	// If nil, [log.Default] is used.
	Log *slog.Logger
}

func (o *ComposeOptions) path() (Path, bool) {
	if o == nil || o.Path == nil {
		return Path{}, false
	}
	return *o.Path, true
}

func (o *ComposeOptions) query() (any, bool) {
	if o == nil || o.Query == nil {
		return nil, false
	}
	return o.Query, true
}

func (o *ComposeOptions) fragment() (string, bool) {
	if o == nil || o.Fragment == nil {
		return "", false
	}
	return *o.Fragment, true
}

func (o *ComposeOptions) mergeQuery() bool { return o != nil && o.MergeQuery }

func (o *ComposeOptions) encode() bool { return o == nil || !o.NoEncode }

func (o *ComposeOptions) form() OutputForm {
	if o == nil {
		return FormURI
	}
	return o.Form
}

func (o *ComposeOptions) parser() Parser {
	if o == nil || o.Parser == nil {
		return DefaultParser()
	}
	return o.Parser
}

func (o *ComposeOptions) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Default()
	}
	return o.Log
}

// Frag returns a pointer to the fragment for [ComposeOptions.Fragment].
func Frag(s string) *string { return &s }

// Compose builds a URI from the base URI and the optional path, query and fragment.
//
// The base is parsed with [ComposeOptions.Parser] when given as a string or bytes,
// URL, URI and Builder bases are copied and never modified.
// Composition steps:
//   - path: the path segments are appended to the base path, see [JoinPath];
//     an opaque base (e.g. "mailto:user@example.com") has no hierarchical path
//     and the segments have no effect on the result;
//   - query: the base query and the new query are parsed and merged
//     (see [query.Merge]), then the result is rebuilt with [query.Build];
//   - fragment: a non-empty fragment without the leading "#" is encoded and replaces
//     the base fragment, an empty fragment removes it;
//   - render: the result is returned in the requested [OutputForm].
//
// Errors:
//   - [ErrOutputFormConflict] if the output form is unknown, checked before anything else;
//   - [ErrInvalidBaseURI] if the base URI can't be parsed;
//   - [ErrInvalidQueryType] if the query has an unsupported type.
func Compose[B Base](base B, opts *ComposeOptions) (Output, error) {
	if form := opts.form(); !form.IsValid() {
		return nil, errtrace.Wrap(newOutputFormConflictErr("unknown output form %s", form))
	}

	c := &composer{base: base, opts: opts}
	out, err := c.run()
	if err != nil {
		opts.log().Debug("URI composition failed", "base", logBase{base}, "error", err)
		return nil, errtrace.Wrap(err)
	}
	opts.log().Debug("URI composed", "base", logBase{base}, "form", opts.form(), "uri", out)
	return out, nil
}

// logBase logs the base of [Compose] with the password masked.
type logBase struct{ v any }

func (b logBase) LogValue() slog.Value {
	switch v := b.v.(type) {
	case string:
		return slog.StringValue(redactUserinfo(v))
	case []byte:
		return slog.StringValue(redactUserinfo(string(v)))
	case *url.URL:
		if v == nil {
			return slog.Value{}
		}
		return slog.StringValue(v.Redacted())
	case slog.LogValuer:
		return v.LogValue()
	default:
		return slog.AnyValue(v)
	}
}

type composeState uint8

const (
	stateIdle composeState = iota
	stateBaseReady
	statePathApplied
	stateQueryApplied
	stateFragmentApplied
	stateRendered
)

type composeTrigger uint8

const (
	triggerValidateBase composeTrigger = iota
	triggerApplyPath
	triggerApplyQuery
	triggerApplyFragment
	triggerRender
)

var composeTriggers = [...]composeTrigger{
	triggerValidateBase,
	triggerApplyPath,
	triggerApplyQuery,
	triggerApplyFragment,
	triggerRender,
}

type composer struct {
	base any
	opts *ComposeOptions
	b    *Builder
	out  Output
}

func (c *composer) machine() *stateless.StateMachine {
	sm := stateless.NewStateMachineWithMode(stateIdle, stateless.FiringImmediate)
	sm.Configure(stateIdle).
		Permit(triggerValidateBase, stateBaseReady)
	sm.Configure(stateBaseReady).
		OnEntry(c.validateBase).
		Permit(triggerApplyPath, statePathApplied)
	sm.Configure(statePathApplied).
		OnEntry(c.applyPath).
		Permit(triggerApplyQuery, stateQueryApplied)
	sm.Configure(stateQueryApplied).
		OnEntry(c.applyQuery).
		Permit(triggerApplyFragment, stateFragmentApplied)
	sm.Configure(stateFragmentApplied).
		OnEntry(c.applyFragment).
		Permit(triggerRender, stateRendered)
	sm.Configure(stateRendered).
		OnEntry(c.render)
	return sm
}

func (c *composer) run() (Output, error) {
	sm := c.machine()
	for _, t := range composeTriggers {
		if err := sm.Fire(t); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	return c.out, nil
}

func (c *composer) validateBase(context.Context, ...any) error {
	switch base := c.base.(type) {
	case string:
		return errtrace.Wrap(c.parseBase(base))
	case []byte:
		return errtrace.Wrap(c.parseBase(string(base)))
	case *url.URL:
		if base == nil {
			return errtrace.Wrap(newInvalidBaseURIErr("nil URL"))
		}
		c.b = NewBuilder(base)
	case *URI:
		if base == nil {
			return errtrace.Wrap(newInvalidBaseURIErr("nil URI"))
		}
		c.b = base.Builder()
	case *Builder:
		if base == nil {
			return errtrace.Wrap(newInvalidBaseURIErr("nil builder"))
		}
		c.b = base.Clone()
	default:
		return errtrace.Wrap(newInvalidBaseURIErr("unsupported type %T", base))
	}
	return nil
}

func (c *composer) parseBase(s string) error {
	u, err := c.opts.parser().TryParse(s, KindAny)
	if err != nil {
		return errtrace.Wrap(newInvalidBaseURIErr(fmt.Errorf("parse %q: %w", redactUserinfo(s), err)))
	}
	c.b = NewBuilder(u)
	return nil
}

func (c *composer) applyPath(context.Context, ...any) error {
	if p, ok := c.opts.path(); ok {
		c.b.JoinPath(p, c.opts.encode())
	}
	return nil
}

func (c *composer) applyQuery(context.Context, ...any) error {
	q, ok := c.opts.query()
	if !ok {
		return nil
	}
	m, err := queryOf(q)
	if err != nil {
		return errtrace.Wrap(err)
	}
	c.b.MergeQuery(m, c.opts.mergeQuery(), c.opts.encode())
	return nil
}

func (c *composer) applyFragment(context.Context, ...any) error {
	if f, ok := c.opts.fragment(); ok {
		c.b.SetFragment(f, c.opts.encode())
	}
	return nil
}

func (c *composer) render(context.Context, ...any) error {
	c.out = render(c.b, c.opts.form())
	return nil
}

func queryOf(v any) (*query.Map, error) {
	switch v := v.(type) {
	case string:
		return query.Parse(v), nil
	case []byte:
		return query.Parse(string(v)), nil
	case *query.Map:
		return v, nil
	case url.Values:
		return query.FromValues(v), nil
	case map[string][]string:
		return query.FromValues(v), nil
	case map[string]string:
		return query.FromStrings(v), nil
	case map[string]query.Value:
		return errtrace.Wrap2(query.FromMap(v))
	case map[string]any:
		m, err := query.FromMap(v)
		if err != nil {
			return nil, errtrace.Wrap(newInvalidQueryTypeErr(err))
		}
		return m, nil
	default:
		m, err := query.MapOf(v)
		if err != nil {
			return nil, errtrace.Wrap(newInvalidQueryTypeErr(err))
		}
		return m, nil
	}
}
