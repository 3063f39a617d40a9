package internal

import "github.com/pkg/errors"

// Threading errors up and down the flip and legalization loops would add a ton
// of complexity to the code. Instead, deep helpers panic with a
// TriangulateError, and every exported method recovers to convert it back into
// an error.

type TriangulateError struct {
	error
}

func (e TriangulateError) Unwrap() error {
	return e.error
}

func (e TriangulateError) Cause() error {
	return e.error
}

// Panic with a TriangulateError wrapping err.
func throw(err error) {
	panic(TriangulateError{err})
}

// Panic with a TriangulateError built from a sentinel and a message.
func fatalf(cause error, format string, args ...interface{}) {
	throw(errors.Wrapf(cause, format, args...))
}

// Convert a recovered TriangulateError into an error. Anything else is a real
// panic and is re-raised.
func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError.error
		}
		panic(r)
	}
	return nil
}
