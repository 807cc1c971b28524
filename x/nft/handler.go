package nft

import (
	"github.com/tendermint/tendermint/libs/common"
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/migration"
	"github.com/tokenmart/mart/orm"
	"github.com/tokenmart/mart/x"
)

const (
	issueCost    int64 = 200
	transferCost int64 = 100

	tagMinter  = "nft-minter"
	tagURI     = "nft-uri"
	tagID      = "nft-id"
	tagFrom    = "nft-from"
	tagTo      = "nft-to"
	tagOwner   = "nft-owner"
	tagSpender = "nft-spender"
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r mart.Registry, auth x.Authenticator) {
	r = migration.SchemaMigratingRegistry("nft", r)

	r.Handle(&IssueMsg{}, NewIssueHandler(auth))
	r.Handle(&ApproveMsg{}, NewApproveHandler(auth))
	r.Handle(&TransferMsg{}, NewTransferHandler(auth))
}

// RegisterQuery will register the token bucket as "/nfts" and the owner
// index as "/nfts/owner".
func RegisterQuery(qr mart.QueryRouter) {
	NewBucket().Register("nfts", qr)
}

// IssueHandler mints new tokens to the main signer.
type IssueHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

var _ mart.Handler = IssueHandler{}

// NewIssueHandler creates a handler for IssueMsg.
func NewIssueHandler(auth x.Authenticator) IssueHandler {
	return IssueHandler{
		auth:   auth,
		bucket: NewBucket(),
	}
}

func (h IssueHandler) Check(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	if _, _, err := h.validate(ctx, store, tx); err != nil {
		return nil, err
	}
	return &mart.CheckResult{GasAllocated: issueCost}, nil
}

func (h IssueHandler) Deliver(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	msg, minter, err := h.validate(ctx, store, tx)
	if err != nil {
		return nil, err
	}

	token := Token{
		Metadata: &mart.Metadata{Schema: 1},
		Owner:    minter,
		URI:      msg.URI,
	}
	id, err := h.bucket.Put(store, nil, &token)
	if err != nil {
		return nil, errors.Wrap(err, "save token")
	}

	res := &mart.DeliverResult{Data: id}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagMinter), Value: []byte(minter.String())},
		{Key: []byte(tagID), Value: id},
		{Key: []byte(tagURI), Value: []byte(msg.URI)},
	}...)
	return res, nil
}

func (h IssueHandler) validate(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*IssueMsg, mart.Address, error) {
	var msg IssueMsg
	if err := mart.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	// Minting is permissionless but somebody must claim ownership.
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return &msg, signer.Address(), nil
}

// ApproveHandler sets or clears the approved spender of a token.
type ApproveHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

var _ mart.Handler = ApproveHandler{}

// NewApproveHandler creates a handler for ApproveMsg.
func NewApproveHandler(auth x.Authenticator) ApproveHandler {
	return ApproveHandler{
		auth:   auth,
		bucket: NewBucket(),
	}
}

func (h ApproveHandler) Check(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	if _, _, err := h.validate(ctx, store, tx); err != nil {
		return nil, err
	}
	return &mart.CheckResult{GasAllocated: transferCost}, nil
}

func (h ApproveHandler) Deliver(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	msg, token, err := h.validate(ctx, store, tx)
	if err != nil {
		return nil, err
	}

	if len(msg.Spender) == 0 {
		token.Approved = nil
	} else {
		token.Approved = msg.Spender
	}
	if _, err := h.bucket.Put(store, msg.TokenID, token); err != nil {
		return nil, errors.Wrap(err, "save token")
	}

	res := &mart.DeliverResult{}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagOwner), Value: []byte(token.Owner.String())},
		{Key: []byte(tagSpender), Value: []byte(token.Approved.String())},
		{Key: []byte(tagID), Value: msg.TokenID},
	}...)
	return res, nil
}

func (h ApproveHandler) validate(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*ApproveMsg, *Token, error) {
	var msg ApproveMsg
	if err := mart.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var token Token
	if err := h.bucket.One(store, msg.TokenID, &token); err != nil {
		return nil, nil, errors.Wrapf(err, "token %x", msg.TokenID)
	}
	if !h.auth.HasAddress(ctx, token.Owner) {
		return nil, nil, errors.Wrap(ErrNotOwner, "only the owner can approve")
	}
	return &msg, &token, nil
}

// TransferHandler moves tokens between addresses.
type TransferHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ mart.Handler = TransferHandler{}

// NewTransferHandler creates a handler for TransferMsg.
func NewTransferHandler(auth x.Authenticator) TransferHandler {
	return TransferHandler{
		auth:    auth,
		control: NewController(),
	}
}

func (h TransferHandler) Check(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	if _, _, err := h.validate(ctx, store, tx); err != nil {
		return nil, err
	}
	return &mart.CheckResult{GasAllocated: transferCost}, nil
}

func (h TransferHandler) Deliver(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	msg, actor, err := h.validate(ctx, store, tx)
	if err != nil {
		return nil, err
	}

	if err := h.control.Move(store, msg.TokenID, actor, msg.Source, msg.Destination); err != nil {
		return nil, err
	}

	res := &mart.DeliverResult{}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagFrom), Value: []byte(msg.Source.String())},
		{Key: []byte(tagTo), Value: []byte(msg.Destination.String())},
		{Key: []byte(tagID), Value: msg.TokenID},
	}...)
	return res, nil
}

func (h TransferHandler) validate(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*TransferMsg, mart.Address, error) {
	var msg TransferMsg
	if err := mart.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	token, err := h.control.Load(store, msg.TokenID)
	if err != nil {
		return nil, nil, err
	}
	var actor mart.Address
	switch {
	case h.auth.HasAddress(ctx, token.Owner):
		actor = token.Owner
	case len(token.Approved) != 0 && h.auth.HasAddress(ctx, token.Approved):
		actor = token.Approved
	default:
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "neither owner nor approved")
	}
	if !token.Owner.Equals(msg.Source) {
		return nil, nil, errors.Wrapf(ErrIncorrectOwner, "token belongs to %s", token.Owner)
	}
	return &msg, actor, nil
}
