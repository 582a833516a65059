package error

import "github.com/next-trace/release-errors/catalog"

// Option configures an Error during construction via Get().
type Option func(*Error)

// WithHTTPStatus overrides the GitHub status recorded for the error.
func WithHTTPStatus(status int) Option { return func(e *Error) { e.httpStatus = status } }

// WithContext merges extra fields into the error context without re-rendering.
// The provided map is defensively cloned.
func WithContext(ctx map[string]any) Option {
	return func(e *Error) { e.WithContextMap(ctx) }
}

// WithCause sets the underlying cause to be returned by Unwrap().
func WithCause(cause error) Option { return func(e *Error) { e.cause = cause } }

type kindMeta struct {
	key    string
	status int
}

// kindMetas groups each catalog kind by cause and records the GitHub status
// that reports it. Configuration errors are detected locally.
var kindMetas = map[catalog.Kind]kindMeta{
	catalog.InvalidAssets:         {key: "config"},
	catalog.InvalidSuccessComment: {key: "config"},
	catalog.InvalidGitHubURL:      {key: "config"},
	catalog.MissingRepo:           {key: "repository", status: 404},
	catalog.NoPushPermission:      {key: "permission", status: 403},
	catalog.InvalidToken:          {key: "auth", status: 401},
	catalog.NoToken:               {key: "auth"},
}

// Get renders kind with ctx and returns it as an Error.
//
// Kinds outside the catalog never fail: they produce an internal envelope
// carrying the unknown code.
func Get(kind catalog.Kind, ctx catalog.Context, opts ...Option) *Error {
	d, ok := catalog.Describe(kind, ctx)
	if !ok {
		e := New(codeUnexpected, keyInternal, "Unexpected error "+kind.String()+".", "", ctx)
		for _, o := range opts {
			o(e)
		}

		return e
	}

	meta := kindMetas[kind]
	e := New(kind.String(), meta.key, d.Message, d.Details, ctx)
	e.httpStatus = meta.status

	for _, o := range opts {
		o(e)
	}

	return e
}
