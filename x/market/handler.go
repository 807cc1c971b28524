package market

import (
	"github.com/tendermint/tendermint/libs/common"
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/coin"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/gconf"
	"github.com/tokenmart/mart/migration"
	"github.com/tokenmart/mart/orm"
	"github.com/tokenmart/mart/x"
	"github.com/tokenmart/mart/x/nft"
	"github.com/tokenmart/mart/x/token"
)

const (
	createListingCost int64 = 100
	buyCost           int64 = 300
	cancelCost        int64 = 50

	tagSeller = "market-seller"
	tagBuyer  = "market-buyer"
	tagToken  = "market-token"
	tagPrice  = "market-price"
	tagFee    = "market-fee"
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r mart.Registry, auth x.Authenticator, coins token.Controller, tokens nft.Controller) {
	r = migration.SchemaMigratingRegistry("market", r)

	r.Handle(&CreateListingMsg{}, NewCreateListingHandler(auth, tokens))
	r.Handle(&BuyMsg{}, NewBuyHandler(auth, coins, tokens))
	r.Handle(&CancelListingMsg{}, NewCancelListingHandler(auth))
	r.Handle(&UpdateConfigurationMsg{}, NewConfigHandler(auth))
}

// RegisterQuery will register the listing bucket as "/listings" and the
// seller index as "/listings/seller".
func RegisterQuery(qr mart.QueryRouter) {
	NewListingBucket().Register("listings", qr)
}

// CreateListingHandler puts tokens up for sale.
type CreateListingHandler struct {
	auth   x.Authenticator
	tokens nft.Controller
	bucket orm.ModelBucket
}

var _ mart.Handler = CreateListingHandler{}

// NewCreateListingHandler creates a handler for CreateListingMsg.
func NewCreateListingHandler(auth x.Authenticator, tokens nft.Controller) CreateListingHandler {
	return CreateListingHandler{
		auth:   auth,
		tokens: tokens,
		bucket: NewListingBucket(),
	}
}

func (h CreateListingHandler) Check(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	if _, _, err := h.validate(ctx, store, tx); err != nil {
		return nil, err
	}
	return &mart.CheckResult{GasAllocated: createListingCost}, nil
}

func (h CreateListingHandler) Deliver(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	msg, seller, err := h.validate(ctx, store, tx)
	if err != nil {
		return nil, err
	}

	listing := Listing{
		Metadata: &mart.Metadata{Schema: 1},
		Seller:   seller,
		Price:    msg.Price,
	}
	if _, err := h.bucket.Put(store, msg.TokenID, &listing); err != nil {
		return nil, errors.Wrap(err, "save listing")
	}

	res := &mart.DeliverResult{Data: msg.TokenID}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagSeller), Value: []byte(seller.String())},
		{Key: []byte(tagToken), Value: msg.TokenID},
		{Key: []byte(tagPrice), Value: []byte(msg.Price.String())},
	}...)
	return res, nil
}

func (h CreateListingHandler) validate(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*CreateListingMsg, mart.Address, error) {
	var msg CreateListingMsg
	if err := mart.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	t, err := h.tokens.Load(store, msg.TokenID)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, t.Owner) {
		return nil, nil, errors.Wrap(nft.ErrNotOwner, "only the owner can list")
	}
	if !Condition().Address().Equals(t.Approved) {
		return nil, nil, errors.Wrap(ErrUnapproved, "approve the exchange before listing")
	}
	if err := h.bucket.Has(store, msg.TokenID); !errors.ErrNotFound.Is(err) {
		if err != nil {
			return nil, nil, errors.Wrap(err, "check listing")
		}
		return nil, nil, errors.Wrap(errors.ErrDuplicate, "token is already listed")
	}
	return &msg, t.Owner, nil
}

// BuyHandler settles a sale. The payment, fee and token legs move
// together or not at all.
type BuyHandler struct {
	auth   x.Authenticator
	coins  token.Controller
	tokens nft.Controller
	bucket orm.ModelBucket
}

var _ mart.Handler = BuyHandler{}

// NewBuyHandler creates a handler for BuyMsg.
func NewBuyHandler(auth x.Authenticator, coins token.Controller, tokens nft.Controller) BuyHandler {
	return BuyHandler{
		auth:   auth,
		coins:  coins,
		tokens: tokens,
		bucket: NewListingBucket(),
	}
}

func (h BuyHandler) Check(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, store, tx); err != nil {
		return nil, err
	}
	return &mart.CheckResult{GasAllocated: buyCost}, nil
}

func (h BuyHandler) Deliver(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	msg, listing, buyer, err := h.validate(ctx, store, tx)
	if err != nil {
		return nil, err
	}

	conf := mustLoadConf(store)
	fee, err := saleFee(*listing.Price, conf.FeePercent)
	if err != nil {
		return nil, errors.Wrap(err, "compute fee")
	}
	payout, err := listing.Price.Subtract(fee)
	if err != nil {
		return nil, errors.Wrap(err, "compute payout")
	}

	// The payment is taken from the allowance the buyer granted to the
	// exchange. Crediting the seller before the fee collector means a
	// too small allowance fails on the bigger leg first.
	exchange := Condition().Address()
	if err := h.coins.MoveCoinsFrom(store, exchange, buyer, listing.Seller, payout); err != nil {
		return nil, errors.Wrap(err, "pay seller")
	}
	if fee.IsPositive() {
		if err := h.coins.MoveCoinsFrom(store, exchange, buyer, conf.FeeCollector, fee); err != nil {
			return nil, errors.Wrap(err, "pay fee")
		}
	}
	if err := h.tokens.Move(store, msg.TokenID, exchange, listing.Seller, buyer); err != nil {
		return nil, errors.Wrap(err, "move token")
	}
	if err := h.bucket.Delete(store, msg.TokenID); err != nil {
		return nil, errors.Wrap(err, "delete listing")
	}

	res := &mart.DeliverResult{}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagBuyer), Value: []byte(buyer.String())},
		{Key: []byte(tagSeller), Value: []byte(listing.Seller.String())},
		{Key: []byte(tagToken), Value: msg.TokenID},
		{Key: []byte(tagPrice), Value: []byte(listing.Price.String())},
		{Key: []byte(tagFee), Value: []byte(fee.String())},
	}...)
	return res, nil
}

func (h BuyHandler) validate(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*BuyMsg, *Listing, mart.Address, error) {
	var msg BuyMsg
	if err := mart.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	var listing Listing
	if err := h.bucket.One(store, msg.TokenID, &listing); err != nil {
		return nil, nil, nil, errors.Wrapf(err, "listing %x", msg.TokenID)
	}
	buyer := x.MainSigner(ctx, h.auth)
	if buyer == nil {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	if listing.Seller.Equals(buyer.Address()) {
		return nil, nil, nil, ErrSelfPurchase
	}
	return &msg, &listing, buyer.Address(), nil
}

// saleFee returns the fee cut of a sale, truncated towards zero.
func saleFee(price coin.Coin, percent uint32) (coin.Coin, error) {
	if percent == 0 {
		return coin.Coin{Ticker: price.Ticker}, nil
	}
	total, err := price.Multiply(int64(percent))
	if err != nil {
		return coin.Coin{}, err
	}
	fee, _, err := total.Divide(100)
	if err != nil {
		return coin.Coin{}, err
	}
	return fee, nil
}

// CancelListingHandler takes listings off the market.
type CancelListingHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

var _ mart.Handler = CancelListingHandler{}

// NewCancelListingHandler creates a handler for CancelListingMsg.
func NewCancelListingHandler(auth x.Authenticator) CancelListingHandler {
	return CancelListingHandler{
		auth:   auth,
		bucket: NewListingBucket(),
	}
}

func (h CancelListingHandler) Check(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	if _, _, err := h.validate(ctx, store, tx); err != nil {
		return nil, err
	}
	return &mart.CheckResult{GasAllocated: cancelCost}, nil
}

func (h CancelListingHandler) Deliver(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	msg, listing, err := h.validate(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	if err := h.bucket.Delete(store, msg.TokenID); err != nil {
		return nil, errors.Wrap(err, "delete listing")
	}

	res := &mart.DeliverResult{}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagSeller), Value: []byte(listing.Seller.String())},
		{Key: []byte(tagToken), Value: msg.TokenID},
	}...)
	return res, nil
}

func (h CancelListingHandler) validate(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*CancelListingMsg, *Listing, error) {
	var msg CancelListingMsg
	if err := mart.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var listing Listing
	if err := h.bucket.One(store, msg.TokenID, &listing); err != nil {
		return nil, nil, errors.Wrapf(err, "listing %x", msg.TokenID)
	}
	if !h.auth.HasAddress(ctx, listing.Seller) {
		return nil, nil, errors.Wrap(ErrNotSeller, "only the seller can cancel")
	}
	return &msg, &listing, nil
}

// NewConfigHandler returns a message handler processing the exchange
// configuration updates.
func NewConfigHandler(auth x.Authenticator) mart.Handler {
	var conf Configuration
	return gconf.NewUpdateConfigurationHandler("market", &conf, auth, CurrentConfOwner)
}
