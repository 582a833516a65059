// Package error turns catalog descriptors into error values a release run can return.
//
// It exposes a single concrete type Error that implements contract.Error and integrates
// with the standard library's errors helpers (Is/As) via Unwrap.
//
// Key characteristics:
//   - Stable Code taken from the catalog kind (e.g. EMISSINGREPO)
//   - Key grouping codes by cause (config, repository, permission, auth)
//   - Single-line Message and Markdown Details rendered by the catalog
//   - HTTPStatus of the GitHub response that usually signals the condition
//   - Structured Context map with defensive cloning on read/write
//   - Optional underlying cause preserved for errors.Is / errors.As
//
// Get builds an Error for a catalog kind; Wrap/Ensure adapt arbitrary errors and
// FromGitHub translates failed go-github calls.
package error
