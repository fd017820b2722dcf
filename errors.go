package carve

import (
	"fmt"
)

// Kind classifies the errors returned by the carving pipeline.
type Kind string

const (
	// KindShapeMismatch is returned when grids or seams of inconsistent dimensions meet.
	KindShapeMismatch Kind = "SHAPE_MISMATCH"
	// KindOutOfRange is returned when a request would narrow an image below one column.
	KindOutOfRange Kind = "OUT_OF_RANGE"
	// KindEmptyInput is returned for nil, zero-height or zero-width grids.
	KindEmptyInput Kind = "EMPTY_INPUT"
	// KindUnsupported is returned for unknown image formats or option values.
	KindUnsupported Kind = "UNSUPPORTED"
	// KindIO wraps decoding, encoding and file system failures.
	KindIO Kind = "IO"
)

// Error is the error type returned by every exported operation of this package.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

func wrapError(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsKind reports whether any *Error in err's tree has the given kind. Wrapped
// causes and errors.Join members are inspected, not only the outermost *Error.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == kind {
			return true
		}
		switch u := err.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				if IsKind(inner, kind) {
					return true
				}
			}
			return false
		case interface{ Unwrap() error }:
			err = u.Unwrap()
		default:
			return false
		}
	}
	return false
}
