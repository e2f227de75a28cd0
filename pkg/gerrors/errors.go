// Package gerrors provides classified error types for Ghostline.
// Every failure crossing the engine boundary is a *Error carrying a Kind, so
// callers branch on a stable code instead of matching message text.
package gerrors

import (
	"errors"
	"fmt"
)

// Kind classifies an engine failure.
type Kind int

// The taxonomy. Codes are the negated iota values; None is 0.
const (
	// None means no error.
	None Kind = iota
	// NullPointer means a required argument was absent.
	NullPointer
	// InvalidEncoding means a text argument was not valid UTF-8.
	InvalidEncoding
	// ConfigLoadFailed means configuration could not be loaded or parsed.
	ConfigLoadFailed
	// Runtime is a generic backend or internal failure.
	Runtime
	// ContextFreed means the operation targeted a closed engine.
	ContextFreed
	// RuntimeCreateFailed means the suggestion backend could not be built.
	RuntimeCreateFailed
)

// Code returns the status code for the kind: 0 for None, negative otherwise.
func (k Kind) Code() int {
	return -int(k)
}

// String returns the stable name of the kind.
func (k Kind) String() string {
	switch k {
	case None:
		return "NONE"
	case NullPointer:
		return "NULL_POINTER"
	case InvalidEncoding:
		return "INVALID_ENCODING"
	case ConfigLoadFailed:
		return "CONFIG_LOAD_FAILED"
	case Runtime:
		return "RUNTIME"
	case ContextFreed:
		return "CONTEXT_FREED"
	case RuntimeCreateFailed:
		return "RUNTIME_CREATE_FAILED"
	default:
		return "UNKNOWN"
	}
}

// Error is a classified Ghostline error.
type Error struct {
	kind    Kind
	message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Kind returns the error classification.
func (e *Error) Kind() Kind {
	return e.kind
}

// Code returns the negative status code for the error.
func (e *Error) Code() int {
	return e.kind.Code()
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New creates a classified error.
func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

// Newf creates a classified error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...)}
}

// Wrap creates a classified error around a cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{kind: kind, message: message, cause: cause}
}

// KindOf returns the Kind of err, Runtime for unclassified non-nil errors,
// and None for nil.
func KindOf(err error) Kind {
	if err == nil {
		return None
	}
	var ge *Error
	if errors.As(err, &ge) {
		return ge.kind
	}
	return Runtime
}

// Code returns the status code for err: 0 for nil, negative otherwise.
func Code(err error) int {
	return KindOf(err).Code()
}
