package atomize

import (
	"fmt"
)

// AtomError is returned for every construction violation: a missing required
// field, a wrong or conflicting field combination, or malformed embedded
// content.
type AtomError struct {
	Message string
	Err     error
}

func (e *AtomError) Error() string {
	if e.Err != nil {
		return e.Message + ", " + e.Err.Error()
	}
	return e.Message
}

func (e *AtomError) Unwrap() error {
	return e.Err
}

func newError(format string, v ...interface{}) *AtomError {
	return &AtomError{Message: fmt.Sprintf(format, v...)}
}

func wrapError(err error, format string, v ...interface{}) *AtomError {
	return &AtomError{Message: fmt.Sprintf(format, v...), Err: err}
}
