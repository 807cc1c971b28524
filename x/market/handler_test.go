package market

import (
	"context"
	"testing"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/coin"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/gconf"
	"github.com/tokenmart/mart/marttest"
	"github.com/tokenmart/mart/migration"
	"github.com/tokenmart/mart/store"
	"github.com/tokenmart/mart/x/nft"
	"github.com/tokenmart/mart/x/token"
)

var (
	sellerCond = mart.NewCondition("sigs", "ed25519", []byte("seller-key"))
	buyerCond  = mart.NewCondition("sigs", "ed25519", []byte("buyer-key"))
	adminCond  = mart.NewCondition("sigs", "ed25519", []byte("admin-key"))

	collectorAddr = mart.Address("collector-address---")
)

func TestCreateListingHandler(t *testing.T) {
	cases := map[string]struct {
		Signers      []mart.Condition
		Approved     mart.Address
		ListedBefore bool
		WantErr      *errors.Error
	}{
		"owner lists an approved token": {
			Signers:  []mart.Condition{sellerCond},
			Approved: Condition().Address(),
		},
		"non owner cannot list": {
			Signers:  []mart.Condition{buyerCond},
			Approved: Condition().Address(),
			WantErr:  nft.ErrNotOwner,
		},
		"exchange must be approved": {
			Signers:  []mart.Condition{sellerCond},
			Approved: buyerCond.Address(),
			WantErr:  ErrUnapproved,
		},
		"missing approval": {
			Signers: []mart.Condition{sellerCond},
			WantErr: ErrUnapproved,
		},
		"token can be listed only once": {
			Signers:      []mart.Condition{sellerCond},
			Approved:     Condition().Address(),
			ListedBefore: true,
			WantErr:      errors.ErrDuplicate,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "token", "nft", "market")

			id := mintToken(t, db, sellerCond.Address(), tc.Approved)
			if tc.ListedBefore {
				saveListing(t, db, id, sellerCond.Address(), coin.NewCoinp(10, 0, "MKT"))
			}

			auth := &marttest.CtxAuth{Key: "auth"}
			h := NewCreateListingHandler(auth, nft.NewController())

			ctx := auth.SetConditions(context.Background(), tc.Signers...)
			tx := &marttest.Tx{Msg: &CreateListingMsg{
				Metadata: &mart.Metadata{Schema: 1},
				TokenID:  id,
				Price:    coin.NewCoinp(10, 0, "MKT"),
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

			var listing Listing
			if err := NewListingBucket().One(db, res.Data, &listing); err != nil {
				t.Fatalf("cannot load listing: %s", err)
			}
			if !listing.Seller.Equals(sellerCond.Address()) {
				t.Fatalf("want seller %s, got %s", sellerCond.Address(), listing.Seller)
			}
			if want := coin.NewCoin(10, 0, "MKT"); !listing.Price.Equals(want) {
				t.Fatalf("unexpected price: %v", listing.Price)
			}
		})
	}
}

func TestCreateListingHandlerUnmintedToken(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "token", "nft", "market")

	auth := &marttest.CtxAuth{Key: "auth"}
	h := NewCreateListingHandler(auth, nft.NewController())

	ctx := auth.SetConditions(context.Background(), sellerCond)
	tx := &marttest.Tx{Msg: &CreateListingMsg{
		Metadata: &mart.Metadata{Schema: 1},
		TokenID:  []byte{0, 0, 0, 0, 0, 0, 0, 9},
		Price:    coin.NewCoinp(10, 0, "MKT"),
	}}
	if _, err := h.Deliver(ctx, db, tx); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}

func TestBuyHandler(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "token", "nft", "market")
	saveMarketConf(t, db, 2, collectorAddr)

	id := mintToken(t, db, sellerCond.Address(), Condition().Address())
	saveListing(t, db, id, sellerCond.Address(), coin.NewCoinp(100, 0, "MKT"))

	coins := token.NewController()
	if err := coins.IssueCoins(db, buyerCond.Address(), coin.NewCoin(150, 0, "MKT")); err != nil {
		t.Fatalf("cannot fund buyer: %s", err)
	}
	if err := coins.SetAllowance(db, buyerCond.Address(), Condition().Address(), coin.NewCoinp(100, 0, "MKT")); err != nil {
		t.Fatalf("cannot grant allowance: %s", err)
	}

	auth := &marttest.CtxAuth{Key: "auth"}
	h := NewBuyHandler(auth, coins, nft.NewController())

	ctx := auth.SetConditions(context.Background(), buyerCond)
	tx := &marttest.Tx{Msg: &BuyMsg{
		Metadata: &mart.Metadata{Schema: 1},
		TokenID:  id,
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
	if len(res.Tags) != 5 {
		t.Fatalf("want 5 tags, got %d", len(res.Tags))
	}

	// With a 2% fee the seller nets 98 and the collector keeps 2.
	assertBalance(t, coins, db, sellerCond.Address(), coin.NewCoin(98, 0, "MKT"))
	assertBalance(t, coins, db, collectorAddr, coin.NewCoin(2, 0, "MKT"))
	assertBalance(t, coins, db, buyerCond.Address(), coin.NewCoin(50, 0, "MKT"))

	// The allowance was fully consumed.
	a, err := coins.Allowance(db, buyerCond.Address(), Condition().Address())
	if err != nil {
		t.Fatalf("cannot get allowance: %s", err)
	}
	if a != nil {
		t.Fatalf("allowance was not consumed: %v", a)
	}

	tkn, err := nft.NewController().Load(db, id)
	if err != nil {
		t.Fatalf("cannot load token: %s", err)
	}
	if !tkn.Owner.Equals(buyerCond.Address()) {
		t.Fatalf("want owner %s, got %s", buyerCond.Address(), tkn.Owner)
	}
	if len(tkn.Approved) != 0 {
		t.Fatalf("approval was not cleared: %s", mart.Address(tkn.Approved))
	}

	// The listing is gone, buying again must fail.
	if _, err := h.Deliver(ctx, db, tx); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}

func TestBuyHandlerNoFee(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "token", "nft", "market")
	saveMarketConf(t, db, 0, nil)

	id := mintToken(t, db, sellerCond.Address(), Condition().Address())
	saveListing(t, db, id, sellerCond.Address(), coin.NewCoinp(100, 0, "MKT"))

	coins := token.NewController()
	if err := coins.IssueCoins(db, buyerCond.Address(), coin.NewCoin(100, 0, "MKT")); err != nil {
		t.Fatalf("cannot fund buyer: %s", err)
	}
	if err := coins.SetAllowance(db, buyerCond.Address(), Condition().Address(), coin.NewCoinp(100, 0, "MKT")); err != nil {
		t.Fatalf("cannot grant allowance: %s", err)
	}

	auth := &marttest.CtxAuth{Key: "auth"}
	h := NewBuyHandler(auth, coins, nft.NewController())

	ctx := auth.SetConditions(context.Background(), buyerCond)
	tx := &marttest.Tx{Msg: &BuyMsg{
		Metadata: &mart.Metadata{Schema: 1},
		TokenID:  id,
	}}
	if _, err := h.Deliver(ctx, db, tx); err != nil {
		t.Fatalf("deliver failed: %+v", err)
	}

	// Without a fee the seller receives the full price.
	assertBalance(t, coins, db, sellerCond.Address(), coin.NewCoin(100, 0, "MKT"))
}

func TestBuyHandlerRejections(t *testing.T) {
	cases := map[string]struct {
		Signers        []mart.Condition
		Funds          coin.Coin
		Allowance      *coin.Coin
		RevokeApproval bool
		WantErr        *errors.Error
	}{
		"seller cannot buy the own listing": {
			Signers:   []mart.Condition{sellerCond},
			Funds:     coin.NewCoin(150, 0, "MKT"),
			Allowance: coin.NewCoinp(100, 0, "MKT"),
			WantErr:   ErrSelfPurchase,
		},
		"unsigned transaction is rejected": {
			Signers:   nil,
			Funds:     coin.NewCoin(150, 0, "MKT"),
			Allowance: coin.NewCoinp(100, 0, "MKT"),
			WantErr:   errors.ErrUnauthorized,
		},
		"allowance must cover the price": {
			Signers:   []mart.Condition{buyerCond},
			Funds:     coin.NewCoin(150, 0, "MKT"),
			Allowance: coin.NewCoinp(99, 0, "MKT"),
			WantErr:   token.ErrInsufficientAllowance,
		},
		"missing allowance": {
			Signers: []mart.Condition{buyerCond},
			Funds:   coin.NewCoin(150, 0, "MKT"),
			WantErr: token.ErrInsufficientAllowance,
		},
		"balance must cover the price": {
			Signers:   []mart.Condition{buyerCond},
			Funds:     coin.NewCoin(50, 0, "MKT"),
			Allowance: coin.NewCoinp(100, 0, "MKT"),
			WantErr:   token.ErrInsufficientFunds,
		},
		"revoked exchange approval voids the sale": {
			Signers:        []mart.Condition{buyerCond},
			Funds:          coin.NewCoin(150, 0, "MKT"),
			Allowance:      coin.NewCoinp(100, 0, "MKT"),
			RevokeApproval: true,
			WantErr:        errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "token", "nft", "market")
			saveMarketConf(t, db, 2, collectorAddr)

			id := mintToken(t, db, sellerCond.Address(), Condition().Address())
			saveListing(t, db, id, sellerCond.Address(), coin.NewCoinp(100, 0, "MKT"))
			if tc.RevokeApproval {
				clearApproval(t, db, id)
			}

			coins := token.NewController()
			if err := coins.IssueCoins(db, buyerCond.Address(), tc.Funds); err != nil {
				t.Fatalf("cannot fund buyer: %s", err)
			}
			if tc.Allowance != nil {
				if err := coins.SetAllowance(db, buyerCond.Address(), Condition().Address(), tc.Allowance); err != nil {
					t.Fatalf("cannot grant allowance: %s", err)
				}
			}

			auth := &marttest.CtxAuth{Key: "auth"}
			h := NewBuyHandler(auth, coins, nft.NewController())

			ctx := auth.SetConditions(context.Background(), tc.Signers...)
			tx := &marttest.Tx{Msg: &BuyMsg{
				Metadata: &mart.Metadata{Schema: 1},
				TokenID:  id,
			}}
			if _, err := h.Deliver(ctx, db, tx); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}

			// A failed purchase must leave the listing and the token
			// ownership in place.
			var listing Listing
			if err := NewListingBucket().One(db, id, &listing); err != nil {
				t.Fatalf("cannot load listing: %s", err)
			}
			tkn, err := nft.NewController().Load(db, id)
			if err != nil {
				t.Fatalf("cannot load token: %s", err)
			}
			if !tkn.Owner.Equals(sellerCond.Address()) {
				t.Fatalf("token owner changed: %s", tkn.Owner)
			}
		})
	}
}

func TestCancelListingHandler(t *testing.T) {
	cases := map[string]struct {
		Signers []mart.Condition
		WantErr *errors.Error
	}{
		"seller can cancel": {
			Signers: []mart.Condition{sellerCond},
		},
		"non seller cannot cancel": {
			Signers: []mart.Condition{buyerCond},
			WantErr: ErrNotSeller,
		},
		"unsigned transaction is rejected": {
			Signers: nil,
			WantErr: ErrNotSeller,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "token", "nft", "market")

			id := mintToken(t, db, sellerCond.Address(), Condition().Address())
			saveListing(t, db, id, sellerCond.Address(), coin.NewCoinp(10, 0, "MKT"))

			auth := &marttest.CtxAuth{Key: "auth"}
			h := NewCancelListingHandler(auth)

			ctx := auth.SetConditions(context.Background(), tc.Signers...)
			tx := &marttest.Tx{Msg: &CancelListingMsg{
				Metadata: &mart.Metadata{Schema: 1},
				TokenID:  id,
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
			if tc.WantErr == nil && len(res.Tags) != 2 {
				t.Fatalf("want 2 tags, got %d", len(res.Tags))
			}

			err = NewListingBucket().One(db, id, &Listing{})
			if tc.WantErr == nil {
				if !errors.ErrNotFound.Is(err) {
					t.Fatalf("listing was not deleted: %+v", err)
				}
			} else if err != nil {
				t.Fatalf("listing is gone: %+v", err)
			}
		})
	}
}

func TestCancelListingHandlerMissingListing(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "token", "nft", "market")

	auth := &marttest.CtxAuth{Key: "auth"}
	h := NewCancelListingHandler(auth)

	ctx := auth.SetConditions(context.Background(), sellerCond)
	tx := &marttest.Tx{Msg: &CancelListingMsg{
		Metadata: &mart.Metadata{Schema: 1},
		TokenID:  []byte{0, 0, 0, 0, 0, 0, 0, 9},
	}}
	if _, err := h.Deliver(ctx, db, tx); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}

func TestUpdateConfigurationHandler(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "token", "nft", "market")
	saveMarketConf(t, db, 2, collectorAddr)

	auth := &marttest.CtxAuth{Key: "auth"}
	h := NewConfigHandler(auth)

	tx := &marttest.Tx{Msg: &UpdateConfigurationMsg{
		Metadata: &mart.Metadata{Schema: 1},
		Patch: &Configuration{
			FeePercent: 5,
		},
	}}

	// Only the configuration owner can update.
	ctx := auth.SetConditions(context.Background(), sellerCond)
	if _, err := h.Deliver(ctx, db, tx); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %+v", err)
	}

	ctx = auth.SetConditions(context.Background(), adminCond)
	if _, err := h.Deliver(ctx, db, tx); err != nil {
		t.Fatalf("deliver failed: %+v", err)
	}

	conf := mustLoadConf(db)
	if conf.FeePercent != 5 {
		t.Fatalf("unexpected fee percent: %d", conf.FeePercent)
	}
	// Attributes not present in the patch are preserved.
	if !conf.FeeCollector.Equals(collectorAddr) {
		t.Fatalf("unexpected fee collector: %s", conf.FeeCollector)
	}
}

func TestSaleFee(t *testing.T) {
	cases := map[string]struct {
		Price   coin.Coin
		Percent uint32
		Want    coin.Coin
	}{
		"no fee": {
			Price:   coin.NewCoin(100, 0, "MKT"),
			Percent: 0,
			Want:    coin.Coin{Ticker: "MKT"},
		},
		"two percent": {
			Price:   coin.NewCoin(100, 0, "MKT"),
			Percent: 2,
			Want:    coin.NewCoin(2, 0, "MKT"),
		},
		"fee smaller than a whole coin": {
			Price:   coin.NewCoin(1, 0, "MKT"),
			Percent: 50,
			Want:    coin.NewCoin(0, coin.FracUnit/2, "MKT"),
		},
		"full price": {
			Price:   coin.NewCoin(7, 0, "MKT"),
			Percent: 100,
			Want:    coin.NewCoin(7, 0, "MKT"),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			fee, err := saleFee(tc.Price, tc.Percent)
			if err != nil {
				t.Fatalf("cannot compute fee: %s", err)
			}
			if !fee.Equals(tc.Want) {
				t.Fatalf("want %v, got %v", tc.Want, fee)
			}
		})
	}
}

func mintToken(t testing.TB, db mart.KVStore, owner mart.Address, approved mart.Address) []byte {
	t.Helper()
	id, err := nft.NewBucket().Put(db, nil, &nft.Token{
		Metadata: &mart.Metadata{Schema: 1},
		Owner:    owner,
		Approved: approved,
		URI:      "ipfs://QmExample",
	})
	if err != nil {
		t.Fatalf("cannot mint token: %s", err)
	}
	return id
}

func clearApproval(t testing.TB, db mart.KVStore, id []byte) {
	t.Helper()
	bucket := nft.NewBucket()
	var tkn nft.Token
	if err := bucket.One(db, id, &tkn); err != nil {
		t.Fatalf("cannot load token: %s", err)
	}
	tkn.Approved = nil
	if _, err := bucket.Put(db, id, &tkn); err != nil {
		t.Fatalf("cannot save token: %s", err)
	}
}

func saveListing(t testing.TB, db mart.KVStore, id []byte, seller mart.Address, price *coin.Coin) {
	t.Helper()
	listing := Listing{
		Metadata: &mart.Metadata{Schema: 1},
		Seller:   seller,
		Price:    price,
	}
	if _, err := NewListingBucket().Put(db, id, &listing); err != nil {
		t.Fatalf("cannot save listing: %s", err)
	}
}

func saveMarketConf(t testing.TB, db mart.KVStore, feePercent uint32, collector mart.Address) {
	t.Helper()
	conf := Configuration{
		Metadata:     &mart.Metadata{Schema: 1},
		Owner:        adminCond.Address(),
		FeePercent:   feePercent,
		FeeCollector: collector,
	}
	if err := gconf.Save(db, "market", &conf); err != nil {
		t.Fatalf("cannot save configuration: %s", err)
	}
}

func assertBalance(t testing.TB, control token.Controller, db mart.KVStore, addr mart.Address, want coin.Coin) {
	t.Helper()
	cs, err := control.Balance(db, addr)
	if err != nil {
		t.Fatalf("cannot get %s balance: %s", addr, err)
	}
	if !cs.Contains(want) {
		t.Fatalf("want %s to hold %v, got %v", addr, want, cs)
	}
}
