package token

import (
	"github.com/tendermint/tendermint/libs/common"
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/gconf"
	"github.com/tokenmart/mart/migration"
	"github.com/tokenmart/mart/orm"
	"github.com/tokenmart/mart/x"
)

const (
	claimCost  int64 = 50
	sendTxCost int64 = 100

	tagClaimer     = "token-claimer"
	tagAmount      = "token-amount"
	tagSource      = "token-source"
	tagDestination = "token-destination"
	tagOwner       = "token-owner"
	tagSpender     = "token-spender"
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r mart.Registry, auth x.Authenticator, control Controller) {
	r = migration.SchemaMigratingRegistry("token", r)

	r.Handle(&ClaimMsg{}, NewClaimHandler(auth, control))
	r.Handle(&SendMsg{}, NewSendHandler(auth, control))
	r.Handle(&ApproveMsg{}, NewApproveHandler(auth, control))
	r.Handle(&TransferFromMsg{}, NewTransferFromHandler(auth, control))
	r.Handle(&UpdateConfigurationMsg{}, NewConfigHandler(auth))
}

// RegisterQuery will register the buckets as "/wallets", "/claims" and
// "/allowances".
func RegisterQuery(qr mart.QueryRouter) {
	NewWalletBucket().Register("wallets", qr)
	NewClaimBucket().Register("claims", qr)
	NewAllowanceBucket().Register("allowances", qr)
}

// ClaimHandler mints the faucet grant to the main signer.
type ClaimHandler struct {
	auth    x.Authenticator
	control Controller
	claims  orm.ModelBucket
}

var _ mart.Handler = ClaimHandler{}

// NewClaimHandler creates a handler for ClaimMsg.
func NewClaimHandler(auth x.Authenticator, control Controller) ClaimHandler {
	return ClaimHandler{
		auth:    auth,
		control: control,
		claims:  NewClaimBucket(),
	}
}

func (h ClaimHandler) Check(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	if _, _, err := h.validate(ctx, store, tx); err != nil {
		return nil, err
	}
	return &mart.CheckResult{GasAllocated: claimCost}, nil
}

func (h ClaimHandler) Deliver(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	_, claimer, err := h.validate(ctx, store, tx)
	if err != nil {
		return nil, err
	}

	conf := mustLoadConf(store)
	if err := h.control.IssueCoins(store, claimer, conf.FaucetAmount); err != nil {
		return nil, errors.Wrap(err, "issue coins")
	}

	now, err := mart.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	record := ClaimRecord{
		Metadata:  &mart.Metadata{Schema: 1},
		ClaimedAt: mart.AsUnixTime(now),
	}
	if _, err := h.claims.Put(store, claimer, &record); err != nil {
		return nil, errors.Wrap(err, "save claim record")
	}

	res := &mart.DeliverResult{Data: claimer}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagClaimer), Value: []byte(claimer.String())},
		{Key: []byte(tagAmount), Value: []byte(conf.FaucetAmount.String())},
	}...)
	return res, nil
}

// validate returns the message and the claiming address.
func (h ClaimHandler) validate(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*ClaimMsg, mart.Address, error) {
	var msg ClaimMsg
	if err := mart.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	claimer := signer.Address()
	switch err := h.claims.Has(store, claimer); {
	case err == nil:
		return nil, nil, errors.Wrapf(ErrAlreadyClaimed, "address %s", claimer)
	case errors.ErrNotFound.Is(err):
		// First claim, proceed.
	default:
		return nil, nil, errors.Wrap(err, "cannot check claim state")
	}
	return &msg, claimer, nil
}

// SendHandler will handle sending coins.
type SendHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ mart.Handler = SendHandler{}

// NewSendHandler creates a handler for SendMsg.
func NewSendHandler(auth x.Authenticator, control Controller) SendHandler {
	return SendHandler{
		auth:    auth,
		control: control,
	}
}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h SendHandler) Check(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	if _, err := h.validate(ctx, store, tx); err != nil {
		return nil, err
	}
	return &mart.CheckResult{GasAllocated: sendTxCost}, nil
}

// Deliver moves the tokens from source to destination if all
// preconditions are met.
func (h SendHandler) Deliver(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	msg, err := h.validate(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.MoveCoins(store, msg.Source, msg.Destination, *msg.Amount); err != nil {
		return nil, err
	}

	res := &mart.DeliverResult{}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagSource), Value: []byte(msg.Source.String())},
		{Key: []byte(tagDestination), Value: []byte(msg.Destination.String())},
		{Key: []byte(tagAmount), Value: []byte(msg.Amount.String())},
	}...)
	return res, nil
}

func (h SendHandler) validate(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*SendMsg, error) {
	var msg SendMsg
	if err := mart.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	out := &msg
	if len(msg.Source) == 0 {
		signer := x.MainSigner(ctx, h.auth)
		if signer == nil {
			return nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
		}
		out = msg.DefaultSource(signer.Address())
	}
	if !h.auth.HasAddress(ctx, out.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "wallet owner signature missing")
	}
	return out, nil
}

// ApproveHandler grants a spender allowance on the signer wallet.
type ApproveHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ mart.Handler = ApproveHandler{}

// NewApproveHandler creates a handler for ApproveMsg.
func NewApproveHandler(auth x.Authenticator, control Controller) ApproveHandler {
	return ApproveHandler{
		auth:    auth,
		control: control,
	}
}

func (h ApproveHandler) Check(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	if _, _, err := h.validate(ctx, store, tx); err != nil {
		return nil, err
	}
	return &mart.CheckResult{GasAllocated: sendTxCost}, nil
}

func (h ApproveHandler) Deliver(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.SetAllowance(store, owner, msg.Spender, msg.Amount); err != nil {
		return nil, err
	}

	res := &mart.DeliverResult{}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagOwner), Value: []byte(owner.String())},
		{Key: []byte(tagSpender), Value: []byte(msg.Spender.String())},
		{Key: []byte(tagAmount), Value: []byte(msg.Amount.String())},
	}...)
	return res, nil
}

func (h ApproveHandler) validate(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*ApproveMsg, mart.Address, error) {
	var msg ApproveMsg
	if err := mart.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return &msg, signer.Address(), nil
}

// TransferFromHandler moves funds using the allowance granted to the
// signer.
type TransferFromHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ mart.Handler = TransferFromHandler{}

// NewTransferFromHandler creates a handler for TransferFromMsg.
func NewTransferFromHandler(auth x.Authenticator, control Controller) TransferFromHandler {
	return TransferFromHandler{
		auth:    auth,
		control: control,
	}
}

func (h TransferFromHandler) Check(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	if _, _, err := h.validate(ctx, store, tx); err != nil {
		return nil, err
	}
	return &mart.CheckResult{GasAllocated: sendTxCost}, nil
}

func (h TransferFromHandler) Deliver(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	msg, spender, err := h.validate(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.MoveCoinsFrom(store, spender, msg.Source, msg.Destination, *msg.Amount); err != nil {
		return nil, err
	}

	res := &mart.DeliverResult{}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagSpender), Value: []byte(spender.String())},
		{Key: []byte(tagSource), Value: []byte(msg.Source.String())},
		{Key: []byte(tagDestination), Value: []byte(msg.Destination.String())},
		{Key: []byte(tagAmount), Value: []byte(msg.Amount.String())},
	}...)
	return res, nil
}

func (h TransferFromHandler) validate(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*TransferFromMsg, mart.Address, error) {
	var msg TransferFromMsg
	if err := mart.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return &msg, signer.Address(), nil
}

func NewConfigHandler(auth x.Authenticator) mart.Handler {
	var conf Configuration
	return gconf.NewUpdateConfigurationHandler("token", &conf, auth, CurrentConfOwner)
}
