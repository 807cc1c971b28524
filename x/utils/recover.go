package utils

import (
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ mart.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx mart.Context, store mart.KVStore, tx mart.Tx, next mart.Checker) (_ *mart.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx mart.Context, store mart.KVStore, tx mart.Tx, next mart.Deliverer) (_ *mart.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
