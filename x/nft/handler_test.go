package nft

import (
	"bytes"
	"context"
	"testing"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/marttest"
	"github.com/tokenmart/mart/migration"
	"github.com/tokenmart/mart/store"
)

var (
	aliceCond = mart.NewCondition("sigs", "ed25519", []byte("alice-key"))
	bobCond   = mart.NewCondition("sigs", "ed25519", []byte("bob-key"))
	carlCond  = mart.NewCondition("sigs", "ed25519", []byte("carl-key"))
)

func TestIssueHandler(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "nft")

	auth := &marttest.CtxAuth{Key: "auth"}
	h := NewIssueHandler(auth)

	ctx := auth.SetConditions(context.Background(), aliceCond)
	tx := &marttest.Tx{Msg: &IssueMsg{
		Metadata: &mart.Metadata{Schema: 1},
		URI:      "ipfs://QmFirst",
	}}

	cache := db.CacheWrap()
	if _, err := h.Check(ctx, cache, tx); err != nil {
		t.Fatalf("check failed: %+v", err)
	}
	cache.Discard()

	res, err := h.Deliver(ctx, db, tx)
	if err != nil {
		t.Fatalf("deliver failed: %+v", err)
	}
	if want := []byte{0, 0, 0, 0, 0, 0, 0, 1}; !bytes.Equal(res.Data, want) {
		t.Fatalf("want first token id %x, got %x", want, res.Data)
	}
	if len(res.Tags) != 3 {
		t.Fatalf("want 3 tags, got %d", len(res.Tags))
	}

	token, err := NewController().Load(db, res.Data)
	if err != nil {
		t.Fatalf("cannot load token: %s", err)
	}
	if !token.Owner.Equals(aliceCond.Address()) {
		t.Fatalf("want owner %s, got %s", aliceCond.Address(), token.Owner)
	}
	if token.URI != "ipfs://QmFirst" {
		t.Fatalf("unexpected uri: %q", token.URI)
	}

	// Minting again must produce the next sequence value, even for a
	// different minter.
	ctx = auth.SetConditions(context.Background(), bobCond)
	tx = &marttest.Tx{Msg: &IssueMsg{
		Metadata: &mart.Metadata{Schema: 1},
		URI:      "ipfs://QmSecond",
	}}
	res, err = h.Deliver(ctx, db, tx)
	if err != nil {
		t.Fatalf("deliver failed: %+v", err)
	}
	if want := []byte{0, 0, 0, 0, 0, 0, 0, 2}; !bytes.Equal(res.Data, want) {
		t.Fatalf("want second token id %x, got %x", want, res.Data)
	}

	// Without a signer the mint must be rejected.
	tx = &marttest.Tx{Msg: &IssueMsg{
		Metadata: &mart.Metadata{Schema: 1},
		URI:      "ipfs://QmThird",
	}}
	if _, err := h.Deliver(context.Background(), db, tx); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %+v", err)
	}
}

func TestApproveHandler(t *testing.T) {
	cases := map[string]struct {
		Signers []mart.Condition
		Spender mart.Address
		WantErr *errors.Error
	}{
		"owner can approve a spender": {
			Signers: []mart.Condition{aliceCond},
			Spender: bobCond.Address(),
		},
		"owner can clear the approval": {
			Signers: []mart.Condition{aliceCond},
			Spender: nil,
		},
		"non owner cannot approve": {
			Signers: []mart.Condition{bobCond},
			Spender: bobCond.Address(),
			WantErr: ErrNotOwner,
		},
		"unsigned transaction is rejected": {
			Signers: nil,
			Spender: bobCond.Address(),
			WantErr: ErrNotOwner,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "nft")

			id, err := NewBucket().Put(db, nil, &Token{
				Metadata: &mart.Metadata{Schema: 1},
				Owner:    aliceCond.Address(),
				Approved: carlCond.Address(),
				URI:      "ipfs://QmExample",
			})
			if err != nil {
				t.Fatalf("cannot mint token: %s", err)
			}

			auth := &marttest.CtxAuth{Key: "auth"}
			h := NewApproveHandler(auth)

			ctx := auth.SetConditions(context.Background(), tc.Signers...)
			tx := &marttest.Tx{Msg: &ApproveMsg{
				Metadata: &mart.Metadata{Schema: 1},
				TokenID:  id,
				Spender:  tc.Spender,
			}}

			cache := db.CacheWrap()
			if _, err := h.Check(ctx, cache, tx); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			cache.Discard()

			res, err := h.Deliver(ctx, db, tx)
			if !tc.WantErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}
			if tc.WantErr != nil {
				return
			}
			if len(res.Tags) != 3 {
				t.Fatalf("want 3 tags, got %d", len(res.Tags))
			}

			token, err := NewController().Load(db, id)
			if err != nil {
				t.Fatalf("cannot load token: %s", err)
			}
			if !mart.Address(token.Approved).Equals(tc.Spender) {
				t.Fatalf("want approved %q, got %q", tc.Spender, token.Approved)
			}
		})
	}
}

func TestApproveHandlerUnmintedToken(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "nft")

	auth := &marttest.CtxAuth{Key: "auth"}
	h := NewApproveHandler(auth)

	ctx := auth.SetConditions(context.Background(), aliceCond)
	tx := &marttest.Tx{Msg: &ApproveMsg{
		Metadata: &mart.Metadata{Schema: 1},
		TokenID:  []byte{0, 0, 0, 0, 0, 0, 0, 9},
		Spender:  bobCond.Address(),
	}}
	if _, err := h.Deliver(ctx, db, tx); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}

func TestTransferHandler(t *testing.T) {
	cases := map[string]struct {
		Signers     []mart.Condition
		Source      mart.Address
		Destination mart.Address
		WantErr     *errors.Error
	}{
		"owner can transfer": {
			Signers:     []mart.Condition{aliceCond},
			Source:      aliceCond.Address(),
			Destination: bobCond.Address(),
		},
		"approved spender can transfer": {
			Signers:     []mart.Condition{carlCond},
			Source:      aliceCond.Address(),
			Destination: carlCond.Address(),
		},
		"source must be the current owner": {
			Signers:     []mart.Condition{aliceCond},
			Source:      bobCond.Address(),
			Destination: carlCond.Address(),
			WantErr:     ErrIncorrectOwner,
		},
		"a third party cannot transfer": {
			Signers:     []mart.Condition{bobCond},
			Source:      aliceCond.Address(),
			Destination: bobCond.Address(),
			WantErr:     errors.ErrUnauthorized,
		},
		"unsigned transaction is rejected": {
			Signers:     nil,
			Source:      aliceCond.Address(),
			Destination: bobCond.Address(),
			WantErr:     errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "nft")

			id, err := NewBucket().Put(db, nil, &Token{
				Metadata: &mart.Metadata{Schema: 1},
				Owner:    aliceCond.Address(),
				Approved: carlCond.Address(),
				URI:      "ipfs://QmExample",
			})
			if err != nil {
				t.Fatalf("cannot mint token: %s", err)
			}

			auth := &marttest.CtxAuth{Key: "auth"}
			h := NewTransferHandler(auth)

			ctx := auth.SetConditions(context.Background(), tc.Signers...)
			tx := &marttest.Tx{Msg: &TransferMsg{
				Metadata:    &mart.Metadata{Schema: 1},
				TokenID:     id,
				Source:      tc.Source,
				Destination: tc.Destination,
			}}

			cache := db.CacheWrap()
			if _, err := h.Check(ctx, cache, tx); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			cache.Discard()

			if _, err := h.Deliver(ctx, db, tx); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}
			if tc.WantErr != nil {
				return
			}

			token, err := NewController().Load(db, id)
			if err != nil {
				t.Fatalf("cannot load token: %s", err)
			}
			if !token.Owner.Equals(tc.Destination) {
				t.Fatalf("want owner %s, got %s", tc.Destination, token.Owner)
			}
			if len(token.Approved) != 0 {
				t.Fatalf("approval was not cleared: %s", mart.Address(token.Approved))
			}
		})
	}
}
