package utils

import (
	"context"
	"testing"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/store"
	"github.com/stretchr/testify/assert"
)

func TestRecovery(t *testing.T) {
	var h panicHandler
	r := NewRecovery()

	ctx := context.Background()
	s := store.MemStore()

	// Panic handler panics. Test the test tool.
	assert.Panics(t, func() { h.Check(ctx, s, nil) })
	assert.Panics(t, func() { h.Deliver(ctx, s, nil) })

	// Recovery wrapped handler returns an error.
	_, err := r.Check(ctx, s, nil, h)
	assert.True(t, errors.ErrPanic.Is(err))

	_, err = r.Deliver(ctx, s, nil, h)
	assert.True(t, errors.ErrPanic.Is(err))
}

type panicHandler struct{}

var _ mart.Handler = panicHandler{}

func (p panicHandler) Check(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	panic("check panic")
}

func (p panicHandler) Deliver(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	panic("deliver panic")
}
