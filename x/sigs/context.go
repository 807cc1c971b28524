package sigs

import (
	"context"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/x"
)

type contextKey int // local to the sigs module

const (
	contextKeySigners contextKey = iota
)

// withSigners is a private method, as only this module
// can add a signer
func withSigners(ctx mart.Context, signers []mart.Condition) mart.Context {
	return context.WithValue(ctx, contextKeySigners, signers)
}

// Authenticate implements x.Authenticator and provides
// authentication based on signatures that were verified
// by this module's decorator.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns who signed the current Context.
// May be empty
func (a Authenticate) GetConditions(ctx mart.Context) []mart.Condition {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeySigners).([]mart.Condition)
	return val
}

// HasAddress returns true if the given address
// had signed in the current Context.
func (a Authenticate) HasAddress(ctx mart.Context, addr mart.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
