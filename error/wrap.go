package error

import (
	"errors"

	"github.com/next-trace/release-errors/catalog"
)

const (
	codeUnexpected = "EUNEXPECTED"
	keyInternal    = "internal"
)

// Wrap attaches a cause to a new catalog Error. If cause is nil, an opaque cause is created.
// It preserves the original cause for errors.Is / errors.As via Unwrap().
func Wrap(cause error, kind catalog.Kind, ctx catalog.Context) *Error {
	if cause == nil {
		cause = errors.New("unknown")
	}

	return Get(kind, ctx, WithCause(cause))
}

// Ensure converts any error to *Error.
//
// Behavior:
//   - nil input => nil output
//   - if err is already *Error => returned as-is (same pointer)
//   - otherwise wrap it into a generic internal envelope that keeps the cause
func Ensure(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error

	if errors.As(err, &e) {
		return e
	}

	return New(codeUnexpected, keyInternal, "An unexpected error occurred.", "", nil, err)
}
