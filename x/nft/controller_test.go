package nft

import (
	"bytes"
	"testing"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/migration"
	"github.com/tokenmart/mart/store"
)

func TestControllerMove(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "nft")

	var (
		alice = mart.Address("aliceaddr-----------")
		bob   = mart.Address("bobaddr-------------")
		carl  = mart.Address("carladdr------------")
	)

	bucket := NewBucket()
	id, err := bucket.Put(db, nil, &Token{
		Metadata: &mart.Metadata{Schema: 1},
		Owner:    alice,
		Approved: carl,
		URI:      "ipfs://QmExample",
	})
	if err != nil {
		t.Fatalf("cannot mint token: %s", err)
	}

	control := NewController()

	// Only the current owner can be the source.
	if err := control.Move(db, id, bob, bob, carl); !ErrIncorrectOwner.Is(err) {
		t.Fatalf("want incorrect owner error, got %+v", err)
	}

	// Only the owner or the approved address can spend the token.
	if err := control.Move(db, id, bob, alice, bob); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized error, got %+v", err)
	}
	if err := control.Move(db, id, nil, alice, bob); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized error, got %+v", err)
	}

	if err := control.Move(db, id, alice, alice, bob); err != nil {
		t.Fatalf("cannot move token: %s", err)
	}

	token, err := control.Load(db, id)
	if err != nil {
		t.Fatalf("cannot load token: %s", err)
	}
	if !token.Owner.Equals(bob) {
		t.Fatalf("want owner %s, got %s", bob, token.Owner)
	}
	// A transfer must clear any approval.
	if len(token.Approved) != 0 {
		t.Fatalf("approval was not cleared: %s", mart.Address(token.Approved))
	}

	// A token that was never minted cannot be moved.
	missing := []byte{0, 0, 0, 0, 0, 0, 0, 99}
	if err := control.Move(db, missing, alice, alice, bob); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found error, got %+v", err)
	}
}

func TestControllerMoveByApproved(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "nft")

	var (
		alice = mart.Address("aliceaddr-----------")
		bob   = mart.Address("bobaddr-------------")
		carl  = mart.Address("carladdr------------")
	)

	bucket := NewBucket()
	id, err := bucket.Put(db, nil, &Token{
		Metadata: &mart.Metadata{Schema: 1},
		Owner:    alice,
		Approved: carl,
		URI:      "ipfs://QmExample",
	})
	if err != nil {
		t.Fatalf("cannot mint token: %s", err)
	}

	control := NewController()
	if err := control.Move(db, id, carl, alice, bob); err != nil {
		t.Fatalf("approved spender cannot move token: %+v", err)
	}
	token, err := control.Load(db, id)
	if err != nil {
		t.Fatalf("cannot load token: %s", err)
	}
	if !token.Owner.Equals(bob) {
		t.Fatalf("want owner %s, got %s", bob, token.Owner)
	}

	// The approval was cleared, carl cannot move the token again.
	if err := control.Move(db, id, carl, bob, alice); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized error, got %+v", err)
	}
}

func TestControllerTokensOfOwner(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "nft")

	var (
		alice = mart.Address("aliceaddr-----------")
		bob   = mart.Address("bobaddr-------------")
	)

	bucket := NewBucket()
	var aliceIDs [][]byte
	for i := 0; i < 3; i++ {
		id, err := bucket.Put(db, nil, &Token{
			Metadata: &mart.Metadata{Schema: 1},
			Owner:    alice,
			URI:      "ipfs://QmExample",
		})
		if err != nil {
			t.Fatalf("cannot mint token: %s", err)
		}
		aliceIDs = append(aliceIDs, id)
	}
	if _, err := bucket.Put(db, nil, &Token{
		Metadata: &mart.Metadata{Schema: 1},
		Owner:    bob,
		URI:      "ipfs://QmOther",
	}); err != nil {
		t.Fatalf("cannot mint token: %s", err)
	}

	control := NewController()

	ids, err := control.TokensOfOwner(db, alice)
	if err != nil {
		t.Fatalf("cannot list tokens: %s", err)
	}
	if len(ids) != 3 {
		t.Fatalf("want 3 tokens, got %d", len(ids))
	}
	for i, want := range aliceIDs {
		if !containsID(ids, want) {
			t.Fatalf("token #%d %x not listed", i, want)
		}
	}

	// After a transfer the index must follow the new owner.
	if err := control.Move(db, aliceIDs[0], alice, alice, bob); err != nil {
		t.Fatalf("cannot move token: %s", err)
	}
	ids, err = control.TokensOfOwner(db, alice)
	if err != nil {
		t.Fatalf("cannot list tokens: %s", err)
	}
	if len(ids) != 2 {
		t.Fatalf("want 2 tokens, got %d", len(ids))
	}
	ids, err = control.TokensOfOwner(db, bob)
	if err != nil {
		t.Fatalf("cannot list tokens: %s", err)
	}
	if len(ids) != 2 {
		t.Fatalf("want 2 tokens, got %d", len(ids))
	}
}

func containsID(ids [][]byte, want []byte) bool {
	for _, id := range ids {
		if bytes.Equal(id, want) {
			return true
		}
	}
	return false
}
