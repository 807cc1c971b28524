package sigs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/crypto"
	"github.com/tokenmart/mart/store"
)

func TestDecorator(t *testing.T) {
	kv := store.MemStore()
	checkKv := kv.CacheWrap()
	signers := new(SigCheckHandler)
	d := NewDecorator()
	chainID := "deco-rate"
	ctx := mart.WithChainID(context.Background(), chainID)

	priv := crypto.GenPrivKeyEd25519()
	perms := []mart.Condition{priv.PublicKey().Condition()}

	bz := []byte("art")
	tx := NewStdTx(bz)
	sig, err := SignTx(priv, tx, chainID, 0)
	require.NoError(t, err)
	sig1, err := SignTx(priv, tx, chainID, 1)
	require.NoError(t, err)

	deliver := func(dec mart.Decorator, my mart.Tx) error {
		_, err := dec.Deliver(ctx, kv, my, signers)
		return err
	}
	check := func(dec mart.Decorator, my mart.Tx) error {
		_, err := dec.Check(ctx, checkKv, my, signers)
		return err
	}

	for i, fn := range []func(mart.Decorator, mart.Tx) error{check, deliver} {
		// test with no sigs
		tx.Signatures = nil
		err := fn(d, tx)
		assert.Error(t, err, "%d", i)

		// test with one
		tx.Signatures = []*StdSignature{sig}
		err = fn(d, tx)
		assert.NoError(t, err, "%d", i)
		assert.Equal(t, perms, signers.Signers)

		// test with replay
		err = fn(d, tx)
		assert.Error(t, err, "%d", i)

		// test allowing none
		ad := d.AllowMissingSigs()
		tx.Signatures = nil
		err = fn(ad, tx)
		assert.NoError(t, err, "%d", i)
		assert.Equal(t, []mart.Condition{}, signers.Signers)

		// test allowing, with next sequence
		tx.Signatures = []*StdSignature{sig1}
		err = fn(ad, tx)
		assert.NoError(t, err, "%d", i)
		assert.Equal(t, perms, signers.Signers)
	}
}

// SigCheckHandler stores the seen signers on each call
type SigCheckHandler struct {
	Signers []mart.Condition
}

var _ mart.Handler = (*SigCheckHandler)(nil)

func (s *SigCheckHandler) Check(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &mart.CheckResult{}, nil
}

func (s *SigCheckHandler) Deliver(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &mart.DeliverResult{}, nil
}
