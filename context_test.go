package mart

import (
	"context"
	"testing"
	"time"

	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/tokenmart/mart/marttest/assert"
)

func TestContext(t *testing.T) {
	bg := context.Background()

	logger := log.NewNopLogger()
	ctx := WithLogger(bg, logger)
	assert.Equal(t, DefaultLogger, GetLogger(bg))
	assert.Equal(t, logger, GetLogger(ctx))

	val, ok := GetHeight(ctx)
	assert.Equal(t, int64(0), val)
	assert.Equal(t, false, ok)
	ctx = WithHeight(ctx, 7)
	val, ok = GetHeight(ctx)
	assert.Equal(t, int64(7), val)
	assert.Equal(t, true, ok)

	// extending log info must not touch the rest of the context
	ctx2 := WithLogInfo(ctx, "foo", "bar")
	val, _ = GetHeight(ctx2)
	assert.Equal(t, int64(7), val)

	assert.Panics(t, func() { GetChainID(ctx) })
	ctx = WithChainID(ctx, "my-chain")
	assert.Equal(t, "my-chain", GetChainID(ctx))
	assert.Panics(t, func() { WithChainID(ctx, "invalid;;chars") })

	header := abci.Header{Height: 7, ChainID: "my-chain"}
	_, ok = GetHeader(ctx)
	assert.Equal(t, false, ok)
	ctx = WithHeader(ctx, header)
	got, ok := GetHeader(ctx)
	assert.Equal(t, true, ok)
	assert.Equal(t, header, got)
}

func TestChainID(t *testing.T) {
	cases := []struct {
		chainID string
		valid   bool
	}{
		{"", false},
		{"foo", false},
		{"special", true},
		{"wish-YOU-88", true},
		{"invalid;;chars", false},
		{"this-chain-id-is-way-too-long", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.valid, IsValidChainID(tc.chainID))
	}
}

func TestBlockTime(t *testing.T) {
	bg := context.Background()
	if _, err := BlockTime(bg); err == nil {
		t.Fatal("expected a missing block time error")
	}

	now := time.Now()
	ctx := WithBlockTime(bg, now)
	got, err := BlockTime(ctx)
	assert.Nil(t, err)
	assert.Equal(t, now.UTC(), got)
}

func TestIsExpired(t *testing.T) {
	now := time.Now()
	ctx := WithBlockTime(context.Background(), now)

	past := AsUnixTime(now.Add(-time.Minute))
	future := AsUnixTime(now.Add(time.Minute))
	assert.Equal(t, true, IsExpired(ctx, past))
	assert.Equal(t, false, IsExpired(ctx, future))

	// expiration is inclusive of the current block time
	assert.Equal(t, true, IsExpired(ctx, AsUnixTime(now)))
}

func TestIsExpiredRequiresBlockTime(t *testing.T) {
	assert.Panics(t, func() {
		IsExpired(context.Background(), AsUnixTime(time.Now()))
	})
}
