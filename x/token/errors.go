package token

import (
	"github.com/tokenmart/mart/errors"
)

// x/token reserves 110 ~ 119.
var (
	// ErrAlreadyClaimed is returned when an address tries to use the
	// faucet more than once.
	ErrAlreadyClaimed = errors.Register(110, "already claimed")

	// ErrInsufficientFunds is returned when the source wallet does not
	// hold enough funds for the transfer.
	ErrInsufficientFunds = errors.Register(111, "insufficient funds")

	// ErrInsufficientAllowance is returned when the spender allowance
	// does not cover the requested transfer.
	ErrInsufficientAllowance = errors.Register(112, "insufficient allowance")
)
