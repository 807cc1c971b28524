package errors

import (
	"github.com/pkg/errors"
)

// stackTracer is implemented by errors created using github.com/pkg/errors
// helpers. It gives access to the call stack captured when the error was
// created.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the call stack attached to the given error or nil if no
// stack information is available anywhere in the cause chain.
func stackTrace(err error) errors.StackTrace {
	for {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return nil
		}
	}
}
