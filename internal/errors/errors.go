// Package errors defines typed errors with categories for user-friendly reporting.
// Each error carries a machine-readable kind alongside a human-friendly message,
// so the command layer can decide how to present a failure (and which exit path
// to take) without string matching.
//
// The package supports wrapping underlying errors while maintaining error kind
// information.
package errors

import "fmt"

// Kind is a machine-readable error category.
type Kind string

const (
	// UsageError indicates malformed or conflicting command-line input.
	UsageError Kind = "usage_error"
	// ConnectionFailed indicates the database session could not be established.
	ConnectionFailed Kind = "connection_failed"
	// QueryFailed indicates a statement or query failed at the server or
	// transport level. The message carries the offending statement text.
	QueryFailed Kind = "query_failed"
	// NoAction indicates no action flag was supplied. Soft: reported but
	// does not force a non-zero exit on its own.
	NoAction Kind = "no_action"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying error to errors.Is/As.
func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// HasKind reports whether err is an *E of the given kind.
func HasKind(err error, kind Kind) bool {
	e, ok := err.(*E)
	return ok && e.Kind == kind
}
