package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error is an error with a message describing what the executor or verifier
// was doing, optionally wrapping the cause.
type Error struct {
	Inner   error
	Message string
}

// WrapError annotates inner with a formatted message. The inner error keeps
// the stack trace of the call site.
func WrapError(inner error, messagef string, messageArgs ...interface{}) *Error {
	var wrapped error
	if inner != nil {
		wrapped = errors.WithStack(inner)
	}
	return &Error{
		Inner:   wrapped,
		Message: fmt.Sprintf(messagef, messageArgs...),
	}
}

// Unwrap exposes the inner error to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Inner
}

func (e *Error) Error() string {
	if e.Inner == nil {
		return e.Message
	}
	return e.Message + ": " + e.Inner.Error()
}
