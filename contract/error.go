// Package contract exposes the minimal release error interface used by other packages.
//
// Implementations must ensure Context returns a defensive copy and support
// errors.Unwrap for proper interoperability with standard error helpers.
package contract

// Error is the minimal, stable surface that reporters can depend on.
//
// Implementations must:
//   - Respect Go initialisms (HTTPStatus).
//   - Ensure Context() returns a defensive copy (never the internal map).
//   - Support errors.Unwrap via Unwrap().
//
// Message is a single line; Details is Markdown meant for the release log.
type Error interface {
	error
	Code() string
	Key() string
	Message() string
	Details() string
	// HTTPStatus is the GitHub API status that signals the condition, 0 if none.
	HTTPStatus() int
	// Context returns a defensive copy; NEVER return the internal map directly.
	Context() map[string]any
	Unwrap() error
}
