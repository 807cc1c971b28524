package app

import (
	"fmt"
	"testing"
	"time"

	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/tokenmart/mart"
	baseapp "github.com/tokenmart/mart/app"
	"github.com/tokenmart/mart/coin"
	"github.com/tokenmart/mart/commands/server"
	"github.com/tokenmart/mart/crypto"
	"github.com/tokenmart/mart/marttest/assert"
	"github.com/tokenmart/mart/x/market"
	"github.com/tokenmart/mart/x/nft"
	"github.com/tokenmart/mart/x/sigs"
	"github.com/tokenmart/mart/x/token"
)

// TestApp runs a full marketplace trade through the ABCI interface. A
// seller mints a non fungible token, approves the exchange and lists
// it. A buyer claims coins from the faucet, grants the exchange an
// allowance and buys the token.
func TestApp(t *testing.T) {
	const chainID = "test-net-22"

	seller := crypto.GenPrivKeyEd25519()
	buyer := crypto.GenPrivKeyEd25519()
	collector := crypto.GenPrivKeyEd25519().PublicKey().Address()
	admin := crypto.GenPrivKeyEd25519().PublicKey().Address()

	myApp := startTestApp(t, chainID, seller.PublicKey().Address(), collector, admin)
	height := int64(1)
	testCommit(t, myApp, height, chainID)

	// the seller mints a token
	res := signAndDeliver(t, myApp, &height, chainID, seller, 0, &Tx{
		Sum: &Tx_NftIssueMsg{&nft.IssueMsg{
			Metadata: &mart.Metadata{Schema: 1},
			URI:      "https://tokens.example.com/1.json",
		}},
	})
	tokenID := res.Data
	assert.Equal(t, 8, len(tokenID))

	exchange := market.Condition().Address()

	// the seller allows the exchange to move the token
	signAndDeliver(t, myApp, &height, chainID, seller, 1, &Tx{
		Sum: &Tx_NftApproveMsg{&nft.ApproveMsg{
			Metadata: &mart.Metadata{Schema: 1},
			TokenID:  tokenID,
			Spender:  exchange,
		}},
	})

	// and lists it for sale
	signAndDeliver(t, myApp, &height, chainID, seller, 2, &Tx{
		Sum: &Tx_MarketCreateListingMsg{&market.CreateListingMsg{
			Metadata: &mart.Metadata{Schema: 1},
			TokenID:  tokenID,
			Price:    coin.NewCoinp(100, 0, "MRT"),
		}},
	})

	var listing market.Listing
	queryOne(t, myApp, "/listings", tokenID, &listing)
	assert.Equal(t, true, listing.Seller.Equals(seller.PublicKey().Address()))

	// the buyer claims coins from the faucet
	signAndDeliver(t, myApp, &height, chainID, buyer, 0, &Tx{
		Sum: &Tx_TokenClaimMsg{&token.ClaimMsg{
			Metadata: &mart.Metadata{Schema: 1},
		}},
	})

	var wallet token.Set
	queryOne(t, myApp, "/wallets", buyer.PublicKey().Address(), &wallet)
	assert.Equal(t, 1, len(wallet.Coins))
	assert.Equal(t, int64(100), wallet.Coins[0].Whole)

	// lets the exchange spend the sale price
	signAndDeliver(t, myApp, &height, chainID, buyer, 1, &Tx{
		Sum: &Tx_TokenApproveMsg{&token.ApproveMsg{
			Metadata: &mart.Metadata{Schema: 1},
			Spender:  exchange,
			Amount:   coin.NewCoinp(100, 0, "MRT"),
		}},
	})

	// and buys the token
	res = signAndDeliver(t, myApp, &height, chainID, buyer, 2, &Tx{
		Sum: &Tx_MarketBuyMsg{&market.BuyMsg{
			Metadata: &mart.Metadata{Schema: 1},
			TokenID:  tokenID,
		}},
	})
	// five tags from the exchange plus the action tag
	assert.Equal(t, 6, len(res.Tags))

	// the buyer now owns the token
	var traded nft.Token
	queryOne(t, myApp, "/nfts", tokenID, &traded)
	assert.Equal(t, true, mart.Address(traded.Owner).Equals(buyer.PublicKey().Address()))

	// with a 2% fee, the seller receives 98 and the collector 2
	var sellerWallet token.Set
	queryOne(t, myApp, "/wallets", seller.PublicKey().Address(), &sellerWallet)
	assert.Equal(t, int64(98), sellerWallet.Coins[0].Whole)

	var collectorWallet token.Set
	queryOne(t, myApp, "/wallets", collector, &collectorWallet)
	assert.Equal(t, int64(2), collectorWallet.Coins[0].Whole)

	// the listing is gone
	q := myApp.Query(abci.RequestQuery{Path: "/listings", Data: tokenID})
	assert.Equal(t, uint32(0), q.Code)
	var results baseapp.ResultSet
	assert.Nil(t, results.Unmarshal(q.Value))
	assert.Equal(t, 0, len(results.Results))
}

func TestAppRejectsUnsignedTx(t *testing.T) {
	const chainID = "test-net-23"

	seller := crypto.GenPrivKeyEd25519()
	collector := crypto.GenPrivKeyEd25519().PublicKey().Address()
	admin := crypto.GenPrivKeyEd25519().PublicKey().Address()

	myApp := startTestApp(t, chainID, seller.PublicKey().Address(), collector, admin)
	testCommit(t, myApp, 1, chainID)

	tx := &Tx{
		Sum: &Tx_NftIssueMsg{&nft.IssueMsg{
			Metadata: &mart.Metadata{Schema: 1},
			URI:      "https://tokens.example.com/1.json",
		}},
	}
	txBytes, err := tx.Marshal()
	assert.Nil(t, err)

	myApp.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{Height: 2, ChainID: chainID},
	})
	if res := myApp.CheckTx(txBytes); res.Code == 0 {
		t.Fatal("an unsigned transaction must be rejected")
	}
	if res := myApp.DeliverTx(txBytes); res.Code == 0 {
		t.Fatal("an unsigned transaction must be rejected")
	}
}

// startTestApp returns an in memory application initialized from a
// genesis with a funded seller wallet and a 2% market fee.
func startTestApp(t testing.TB, chainID string, seller, collector, admin mart.Address) baseapp.BaseApp {
	t.Helper()

	abciApp, err := GenerateApp(&server.Options{
		Home:   "",
		Logger: log.NewNopLogger(),
		Debug:  false,
	})
	assert.Nil(t, err)
	myApp := abciApp.(baseapp.BaseApp)

	appState := fmt.Sprintf(`{
		"wallets": [
			{"address": %q, "coins": [{"whole": 50000, "ticker": "MRT"}]}
		],
		"conf": {
			"token": {
				"metadata": {"schema": 1},
				"owner": %q,
				"ticker": "MRT",
				"faucet_amount": {"whole": 100, "ticker": "MRT"}
			},
			"market": {
				"metadata": {"schema": 1},
				"owner": %q,
				"fee_percent": 2,
				"fee_collector": %q
			},
			"migration": {"metadata": {"schema": 1}, "admin": %q}
		},
		"initialize_schema": [
			{"pkg": "token", "ver": 1},
			{"pkg": "nft", "ver": 1},
			{"pkg": "market", "ver": 1},
			{"pkg": "sigs", "ver": 1}
		]
	}`, seller, admin, admin, collector, admin)

	assert.Equal(t, "", myApp.GetChainID())
	myApp.InitChain(abci.RequestInitChain{
		AppStateBytes: []byte(appState),
		ChainId:       chainID,
	})
	assert.Equal(t, chainID, myApp.GetChainID())
	return myApp
}

// testCommit runs an empty block at the given height and commits it.
func testCommit(t testing.TB, myApp baseapp.BaseApp, height int64, chainID string) []byte {
	t.Helper()
	myApp.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{Height: height, ChainID: chainID},
	})
	myApp.EndBlock(abci.RequestEndBlock{})
	res := myApp.Commit()
	if len(res.Data) == 0 {
		t.Fatal("commit returned an empty hash")
	}
	return res.Data
}

// signAndDeliver runs the given transaction through CheckTx and
// DeliverTx in a fresh block and commits it.
func signAndDeliver(t testing.TB, myApp baseapp.BaseApp, height *int64, chainID string,
	signer crypto.Signer, seq int64, tx *Tx) abci.ResponseDeliverTx {
	t.Helper()

	sig, err := sigs.SignTx(signer, tx, chainID, seq)
	assert.Nil(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}
	txBytes, err := tx.Marshal()
	assert.Nil(t, err)

	*height++
	myApp.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{Height: *height, ChainID: chainID, Time: time.Now()},
	})
	if res := myApp.CheckTx(txBytes); res.Code != 0 {
		t.Fatalf("check failed: %s", res.Log)
	}
	res := myApp.DeliverTx(txBytes)
	if res.Code != 0 {
		t.Fatalf("deliver failed: %s", res.Log)
	}
	myApp.EndBlock(abci.RequestEndBlock{})
	if c := myApp.Commit(); len(c.Data) == 0 {
		t.Fatal("commit returned an empty hash")
	}
	return res
}

// queryOne loads a single entity from the application state.
func queryOne(t testing.TB, myApp baseapp.BaseApp, path string, key []byte, dest mart.Persistent) {
	t.Helper()

	q := myApp.Query(abci.RequestQuery{Path: path, Data: key})
	if q.Code != 0 {
		t.Fatalf("query failed: %s", q.Log)
	}
	if len(q.Value) == 0 {
		t.Fatalf("no result for %s %X", path, key)
	}
	if err := baseapp.UnmarshalOneResult(q.Value, dest); err != nil {
		t.Fatalf("cannot unmarshal result: %+v", err)
	}
}
