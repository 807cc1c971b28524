package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If given a multi error instance, it is flattened so that the result is
// never a nested structure of multi errors.
func Append(errs ...error) error {
	var res multiError
	for _, e := range errs {
		switch e := e.(type) {
		case nil:
			continue
		case multiError:
			res = append(res, e...)
		default:
			res = append(res, e)
		}
	}

	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

// multiError represents a collection of errors that are not related to each
// other. Unlike wrapping, each member of a multi error is a separate failure.
type multiError []error

var _ unpacker = (multiError)(nil)

func (e multiError) Error() string {
	switch len(e) {
	case 0:
		return ""
	case 1:
		return e[0].Error()
	}

	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = fmt.Sprintf("\t* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n%s", len(e), strings.Join(msgs, "\n"))
}

// Unpack implements the unpacker interface and returns all members of this
// error collection.
func (e multiError) Unpack() []error {
	return e
}

// ABCICode returns the code of the first member carrying one. A multi error
// with no coded members is an internal error.
func (e multiError) ABCICode() uint32 {
	for _, err := range e {
		if code := abciCode(err); code != internalABCICode {
			return code
		}
	}
	return internalABCICode
}
