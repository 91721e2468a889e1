package query

import "github.com/ghettovoice/urikit/internal/errorutil"

// Error is a query error.
// See [errorutil.Error].
type Error = errorutil.Error

// ErrInvalidType is returned when a value can't be represented as a query value,
// for example a nested map.
const ErrInvalidType Error = "invalid query type"

func newInvalidTypeErr(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidType, args...) //errtrace:skip
}
