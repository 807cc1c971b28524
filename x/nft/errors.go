package nft

import (
	"github.com/tokenmart/mart/errors"
)

// x/nft reserves 120 ~ 129.
var (
	// ErrNotOwner is returned when an operation reserved for the token
	// owner is attempted by someone else.
	ErrNotOwner = errors.Register(120, "not token owner")

	// ErrIncorrectOwner is returned when the declared source of a
	// transfer does not match the current token owner.
	ErrIncorrectOwner = errors.Register(121, "incorrect owner")
)
