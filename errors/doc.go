/*
Package errors implements the coded error handling used across mart.

Reuse as many root errors from this package as possible and define custom
package errors only when necessary. Register a custom error with
Register(code, description) during package initialization.

Every error returned to the ABCI layer carries a numeric code so that
clients can distinguish failure conditions without parsing strings. Create
errors at the failure point with ErrXyz.New("...") or
errors.Wrap(err, "...") so that a stack trace is attached. Only the
innermost wrap records the trace.

Once you have an error you can use fmt verbs for more context:

	%s is just the error message
	%+v is the full stack trace
	%v appends a compressed [filename:line] where the error was created
*/
package errors
