// Package log provides the loggers used by urikit.
//
// All loggers are [log/slog] loggers. The package default returned by [Default]
// is [Noop], so the library stays silent unless the application opts in
// with [SetDefault] or passes a logger explicitly through the options.
package log

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"sync/atomic"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/urikit/internal/constraints"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(u *url.URL) slog.Value {
		if u == nil {
			return slog.StringValue("")
		}
		return slog.StringValue(u.Redacted())
	}),
	slogformatter.FormatByType(func(u url.Values) slog.Value {
		return slog.StringValue(u.Encode())
	}),
)

// Def is a default console logger.
var Def = slog.New(newHandler(
	console.NewHandler(os.Stdout, &console.HandlerOptions{
		AddSource:  true,
		Level:      slog.LevelDebug,
		TimeFormat: time.RFC3339Nano,
	}),
))

// Dev is a developer logger.
var Dev = slog.New(newHandler(
	devslog.NewHandler(os.Stdout, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		},
		SortKeys:   true,
		TimeFormat: time.RFC3339Nano,
	}),
))

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

var defLog atomic.Pointer[slog.Logger]

func init() {
	defLog.Store(Noop)
}

// Default returns the package default logger.
func Default() *slog.Logger { return defLog.Load() }

// SetDefault replaces the package default logger.
// Passing nil restores [Noop].
func SetDefault(l *slog.Logger) {
	if l == nil {
		l = Noop
	}
	defLog.Store(l)
}

// NewHandler wraps h with the formatters used by the package loggers.
func NewHandler(h slog.Handler) slog.Handler { return newHandler(h) }

type fmtValue struct {
	v        any
	goSyntax bool
}

func (v fmtValue) LogValue() slog.Value {
	if v.goSyntax {
		return slog.StringValue(fmt.Sprintf("%#v", v.v))
	}
	return slog.StringValue(fmt.Sprintf("%+v", v.v))
}

// FmtValue returns a value logger that formats values using '%+v' or '%#v' syntax.
func FmtValue(v any, goSyntax bool) slog.LogValuer { return fmtValue{v, goSyntax} }

type stringValue[T constraints.Byteseq] struct {
	v T
}

func (v stringValue[T]) LogValue() slog.Value {
	return slog.StringValue(string(v.v))
}

// StringValue returns a value logger that formats v as string.
func StringValue[T constraints.Byteseq](v T) slog.LogValuer { return stringValue[T]{v} }
