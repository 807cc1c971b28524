package errors

import (
	"fmt"
)

const (
	// SuccessABCICode declares an ABCI response use 0 to signal that the
	// processing was successful and no error is returned.
	SuccessABCICode = 0

	// All unclassified errors that do not provide an ABCI code are clubbed
	// under an internal error code and a generic message instead of
	// detailed error string.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the ABCI error information as consumed by the tendermint
// client. Returned code and log message should be used as an ABCI response.
// Any error that does not provide ABCICode information is categorized as an
// error with code 1.
// When not running in a debug mode all messages of errors that do not provide
// ABCICode information are replaced with a generic "internal error". Errors
// without an ABCICode are considered internal.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if isNilErr(err) {
		return SuccessABCICode, ""
	}

	// Only non-internal errors information can be exposed. Any error that
	// does not explicitly expose its state by providing an ABCI error
	// code must be silenced.
	if code := abciCode(err); code != internalABCICode {
		if debug {
			// Try to trigger full information formatting. This
			// might produce a stacktrace.
			return code, fmt.Sprintf("%+v", err)
		}
		return code, err.Error()
	}

	if debug {
		return internalABCICode, fmt.Sprintf("%+v", err)
	}

	// For internal errors hide the original error message and return
	// generic data.
	return internalABCICode, internalABCILog
}

type coder interface {
	ABCICode() uint32
}

// abciCode tests if given error contains an ABCI code and returns the value
// of it if available. This function is testing for the causer interface as
// well and unwraps the error.
func abciCode(err error) uint32 {
	if isNilErr(err) {
		return SuccessABCICode
	}

	for {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return internalABCICode
		}
	}
}

// Redact replaces any panic error with a generic one to not leak internal
// information over the ABCI interface. A redacted error reports the internal
// error code and a bare message.
func Redact(err error) error {
	if ErrPanic.Is(err) {
		return fmt.Errorf(internalABCILog)
	}
	return err
}
