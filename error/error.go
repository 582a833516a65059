// Package error turns catalog descriptors into error values a release run can return.
//
// It defines a single concrete type Error with immutable, defensively-cloned context
// and support for errors.Is / errors.As via Unwrap.
package error

import (
	"fmt"
	"log/slog"

	"github.com/next-trace/release-errors/contract"
)

// Error is the canonical error type reported by a release run.
//
// Fields:
//   - Code:       catalog code (e.g. "EINVALIDASSETS")
//   - Key:        category/namespace (e.g. "config", "auth")
//   - Message:    single-line summary
//   - Details:    Markdown explanation with documentation links
//   - HTTPStatus: GitHub API status tied to the condition, 0 for local checks
//   - Context:    the fields the descriptor was rendered from
type Error struct {
	code       string
	key        string
	message    string
	details    string
	httpStatus int
	context    map[string]any
	cause      error
}

// compile-time guarantees
var (
	_ contract.Error = (*Error)(nil)
	_ slog.LogValuer = (*Error)(nil)
)

// ------ standard error interface

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	// Compact, log-friendly string. Details stay out; reporters read them via Details().
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.message, e.cause)
	}

	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error { return e.cause }

// ------ contract.Error getters (Go initialisms)

func (e *Error) Code() string            { return e.code }
func (e *Error) Key() string             { return e.key }
func (e *Error) Message() string         { return e.message }
func (e *Error) Details() string         { return e.details }
func (e *Error) HTTPStatus() int         { return e.httpStatus }
func (e *Error) Context() map[string]any { return cloneMap(e.context) }

// LogValue renders the error as a structured group. Details are omitted; they
// are long Markdown meant for humans.
func (e *Error) LogValue() slog.Value {
	if e == nil {
		return slog.StringValue("<nil>")
	}

	attrs := []slog.Attr{
		slog.String("code", e.code),
		slog.String("key", e.key),
		slog.String("message", e.message),
	}
	if e.httpStatus != 0 {
		attrs = append(attrs, slog.Int("status", e.httpStatus))
	}
	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}

	return slog.GroupValue(attrs...)
}

// ------ core constructors

// New creates a new Error with the provided fields.
// Context is defensively cloned (pass nil for none).
// The optional cause parameter (if provided) is stored and exposed via Unwrap().
func New(code, key, message, details string, ctx map[string]any, cause ...error) *Error {
	e := &Error{
		code:    code,
		key:     key,
		message: message,
		details: details,
		context: cloneMap(ctx),
	}
	if len(cause) > 0 {
		e.cause = cause[0]
	}
	return e
}

// ------ fluent helpers (chainable, mutate receiver intentionally)

// WithContextKV sets a single key/value in the error context map and returns the same receiver for chaining.
// The internal context map is created on first use.
func (e *Error) WithContextKV(k string, v any) *Error {
	if e == nil {
		return nil
	}

	if e.context == nil {
		e.context = map[string]any{}
	}

	e.context[k] = cloneValue(v)

	return e
}

// WithContextMap merges the provided map into the error context and returns the same receiver for chaining.
// Nil or empty maps are ignored. Existing keys are overwritten.
func (e *Error) WithContextMap(m map[string]any) *Error {
	if e == nil || len(m) == 0 {
		return e
	}

	if e.context == nil {
		e.context = map[string]any{}
	}

	for k, v := range m {
		e.context[k] = cloneValue(v)
	}

	return e
}

func cloneMap(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}

	out := make(map[string]any, len(in))

	for k, v := range in {
		out[k] = cloneValue(v)
	}

	return out
}

// cloneValue deep-clones nested maps with string keys so internal references never leak.
func cloneValue(v any) any {
	if mv, ok := v.(map[string]any); ok {
		return cloneMap(mv)
	}

	return v
}
