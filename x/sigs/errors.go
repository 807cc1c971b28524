package sigs

import (
	"github.com/tokenmart/mart/errors"
)

// ABCI Response Codes
// x/sigs reserves 140 ~ 149.
var (
	// ErrInvalidSequence is returned whenever the sequence number of a
	// signature does not match the expected account nonce.
	ErrInvalidSequence = errors.Register(140, "invalid sequence")
)
