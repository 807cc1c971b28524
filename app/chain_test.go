package app

import (
	"context"
	"testing"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/marttest"
	"github.com/tokenmart/mart/marttest/assert"
	"github.com/tokenmart/mart/x/utils"
)

func TestChain(t *testing.T) {
	c1 := &marttest.Decorator{}
	c2 := &marttest.Decorator{}
	c3 := &marttest.Decorator{}
	h := &marttest.Handler{}

	stack := ChainDecorators(
		c1,
		utils.NewLogging(),
		utils.NewRecovery(),
		c2,
		c3,
	).WithHandler(h)

	bg := context.Background()

	if _, err := stack.Check(bg, nil, nil); err != nil {
		t.Fatalf("check failed: %+v", err)
	}
	ctx := mart.WithHeight(bg, 4)
	if _, err := stack.Deliver(ctx, nil, nil); err != nil {
		t.Fatalf("deliver failed: %+v", err)
	}

	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())
}

func TestChainAbort(t *testing.T) {
	c1 := &marttest.Decorator{}
	c2 := &marttest.Decorator{
		CheckErr:   errors.ErrUnauthorized,
		DeliverErr: errors.ErrUnauthorized,
	}
	c3 := &marttest.Decorator{}
	h := &marttest.Handler{}

	stack := ChainDecorators(c1, c2, c3).WithHandler(h)

	bg := context.Background()
	if _, err := stack.Check(bg, nil, nil); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("expected unauthorized error, got %+v", err)
	}
	if _, err := stack.Deliver(bg, nil, nil); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("expected unauthorized error, got %+v", err)
	}

	// the chain is cut at the failing decorator
	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 0, c3.CallCount())
	assert.Equal(t, 0, h.CallCount())
}

func TestChainSkipsNil(t *testing.T) {
	c1 := &marttest.Decorator{}
	h := &marttest.Handler{}

	var nilDecorator *marttest.Decorator
	stack := ChainDecorators(nil, c1).Chain(nilDecorator).WithHandler(h)

	if _, err := stack.Check(context.Background(), nil, nil); err != nil {
		t.Fatalf("check failed: %+v", err)
	}
	assert.Equal(t, 1, c1.CallCount())
	assert.Equal(t, 1, h.CallCount())
}
