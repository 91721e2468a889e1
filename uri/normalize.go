package uri

import (
	"fmt"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urikit/internal/errorutil"
	"github.com/ghettovoice/urikit/internal/grammar"
	"github.com/ghettovoice/urikit/internal/util"
	"github.com/ghettovoice/urikit/log"
)

// DefaultScheme is the scheme [Normalize] prefixes to scheme-less input.
const DefaultScheme = "http"

// IsValid reports whether text is a valid absolute URI,
// or a valid relative reference when allowRelative is true.
// It uses the [DefaultParser] and never fails.
func IsValid(text string, allowRelative bool) bool {
	return IsValidWith(DefaultParser(), text, allowRelative)
}

// IsValidWith is like [IsValid] but uses the parser p.
func IsValidWith(p Parser, text string, allowRelative bool) bool {
	if text == "" {
		return false
	}
	kind := KindAbsolute
	if allowRelative {
		kind = KindAny
	}
	_, err := p.TryParse(text, kind)
	return err == nil
}

// NormalizeOptions contains options of [NormalizeWith].
type NormalizeOptions struct {
	// Form selects the output representation.
	// Default is [FormURI].
	Form OutputForm
	// Parser is used to parse the input.
	// If nil, [DefaultParser] is used.
	Parser Parser
	// Log is used to log normalizations.
	// If nil, [log.Default] is used.
	Log *slog.Logger
}

func (o *NormalizeOptions) form() OutputForm {
	if o == nil {
		return FormURI
	}
	return o.Form
}

func (o *NormalizeOptions) parser() Parser {
	if o == nil || o.Parser == nil {
		return DefaultParser()
	}
	return o.Parser
}

func (o *NormalizeOptions) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Default()
	}
	return o.Log
}

// Normalize turns a loosely formed string into an absolute URI.
// See [NormalizeWith].
func Normalize(text string, form OutputForm) (Output, error) {
	return errtrace.Wrap2(NormalizeWith(text, &NormalizeOptions{Form: form}))
}

// NormalizeWith turns a loosely formed string into an absolute URI.
//
// The trimmed text is parsed as an absolute URI. If that fails and the text
// doesn't start with a scheme ("scheme:"), it is parsed again with the
// [DefaultScheme] prefix, so "example.com/a" becomes "http://example.com/a".
//
// Errors:
//   - [ErrOutputFormConflict] if the output form is unknown;
//   - [ErrInvalidArgument] if text is empty or blank;
//   - [ErrInvalidURI] if text can't be parsed.
func NormalizeWith(text string, opts *NormalizeOptions) (Output, error) {
	if form := opts.form(); !form.IsValid() {
		return nil, errtrace.Wrap(newOutputFormConflictErr("unknown output form %s", form))
	}

	s := util.TrimSP(text)
	if s == "" {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("empty URI"))
	}

	p := opts.parser()
	u, err := p.TryParse(s, KindAbsolute)
	if err != nil {
		if grammar.HasSchemePrefix(s) {
			return nil, errtrace.Wrap(newInvalidURIErr(fmt.Errorf("parse %q: %w", redactUserinfo(s), err)))
		}

		s2 := DefaultScheme + "://" + s
		var err2 error
		if u, err2 = p.TryParse(s2, KindAbsolute); err2 != nil {
			return nil, errtrace.Wrap(newInvalidURIErr(errorutil.JoinPrefix(
				fmt.Sprintf("parse %q", redactUserinfo(s)),
				err,
				fmt.Errorf("parse %q: %w", redactUserinfo(s2), err2),
			)))
		}
		opts.log().Debug("default scheme applied", "input", log.StringValue(redactUserinfo(s)), "uri", FromURL(u))
	}
	return render(NewBuilder(u), opts.form()), nil
}
