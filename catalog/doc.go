// Package catalog holds the human-readable descriptors reported when a GitHub
// release cannot proceed.
//
// Each Kind maps to a pure Formatter that renders a Descriptor from a caller
// supplied Context. The Message is a single-line summary; Details is Markdown
// that points back to the project documentation (see Linkify) and embeds
// offending option values through Stringify.
//
// The table is built once at init and never mutated, so every function in
// this package is safe for concurrent use.
package catalog
