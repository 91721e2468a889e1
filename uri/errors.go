package uri

import (
	"github.com/ghettovoice/urikit/internal/errorutil"
	"github.com/ghettovoice/urikit/query"
)

// Error is a URI error.
// See [errorutil.Error].
type Error = errorutil.Error

const (
	// ErrInvalidBaseURI is returned when the base URI of [Compose] can't be parsed.
	ErrInvalidBaseURI Error = "invalid base URI"
	// ErrInvalidURI is returned when a URI can't be parsed even after applying the default scheme.
	ErrInvalidURI Error = "invalid URI"
	// ErrOutputFormConflict is returned when an unknown or combined [OutputForm] is requested.
	ErrOutputFormConflict Error = "output form conflict"
	// ErrInvalidQueryType is returned when the query input is neither a mapping nor a string.
	ErrInvalidQueryType = query.ErrInvalidType
	// ErrInvalidArgument is returned when a required string argument is empty or blank.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
)

func newInvalidBaseURIErr(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidBaseURI, args...) //errtrace:skip
}

func newInvalidURIErr(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidURI, args...) //errtrace:skip
}

func newOutputFormConflictErr(args ...any) error {
	return errorutil.NewWrapperError(ErrOutputFormConflict, args...) //errtrace:skip
}

func newInvalidQueryTypeErr(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidQueryType, args...) //errtrace:skip
}
