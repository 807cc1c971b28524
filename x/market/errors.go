package market

import (
	"github.com/tokenmart/mart/errors"
)

// x/market reserves 130 ~ 139.
var (
	// ErrUnapproved is returned when listing a token that the exchange
	// was not approved to transfer.
	ErrUnapproved = errors.Register(130, "exchange not approved")

	// ErrSelfPurchase is returned when the buyer of a listing is its
	// seller.
	ErrSelfPurchase = errors.Register(131, "cannot buy own listing")

	// ErrNotSeller is returned when a listing operation is attempted by
	// someone other than the seller.
	ErrNotSeller = errors.Register(132, "not the seller")
)
