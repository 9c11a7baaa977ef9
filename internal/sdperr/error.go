// Package sdperr defines the typed error kinds shared across the analysis
// pipeline and the RPC layer that exposes it.
package sdperr

import "fmt"

// Kind classifies the origin of an Error so that callers (in particular the
// RPC dispatcher) can map it to a stable error code without string matching.
type Kind string

const (
	Internal      Kind = "internal"
	IO            Kind = "io"
	Parse         Kind = "parse"
	Serialization Kind = "serialization"
	Analysis      Kind = "analysis"
)

// Error is the typed error returned throughout the analysis pipeline.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap allows errors.Is/errors.As to see through to the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// InternalErrorf builds an Internal-kind error.
func InternalErrorf(format string, args ...any) *Error {
	return newf(Internal, format, args...)
}

// IOErrorf builds an IO-kind error, wrapping the underlying cause.
func IOErrorf(cause error, format string, args ...any) *Error {
	e := newf(IO, format, args...)
	e.Cause = cause
	return e
}

// ParseErrorf builds a Parse-kind error.
func ParseErrorf(format string, args ...any) *Error {
	return newf(Parse, format, args...)
}

// SerializationErrorf builds a Serialization-kind error, wrapping the cause.
func SerializationErrorf(cause error, format string, args ...any) *Error {
	e := newf(Serialization, format, args...)
	e.Cause = cause
	return e
}

// AnalysisErrorf builds an Analysis-kind error.
func AnalysisErrorf(format string, args ...any) *Error {
	return newf(Analysis, format, args...)
}
