package app

import (
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
)

// BaseApp adds DeliverTx, CheckTx, and BeginBlock
// handlers to the storage and query functionality of StoreApp
type BaseApp struct {
	*StoreApp
	decoder mart.TxDecoder
	handler mart.Handler
	ticker  mart.Ticker
	debug   bool
}

var _ abci.Application = BaseApp{}

// NewBaseApp constructs a basic abci application
func NewBaseApp(store *StoreApp, decoder mart.TxDecoder,
	handler mart.Handler, ticker mart.Ticker, debug bool) BaseApp {
	return BaseApp{
		StoreApp: store,
		decoder:  decoder,
		handler:  handler,
		ticker:   ticker,
		debug:    debug,
	}
}

// DeliverTx - ABCI - dispatches to the handler
func (b BaseApp) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return mart.DeliverTxError(err, b.debug)
	}

	// ignore error here, allow it to be logged
	ctx := mart.WithLogInfo(b.BlockContext(),
		"call", "deliver_tx",
		"path", mart.GetPath(tx))
	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	if err == nil {
		b.AddValChange(res.Diff)
	}

	return mart.DeliverOrError(res, err, b.debug)
}

// CheckTx - ABCI - dispatches to the handler
func (b BaseApp) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return mart.CheckTxError(err, b.debug)
	}

	ctx := mart.WithLogInfo(b.BlockContext(),
		"call", "check_tx",
		"path", mart.GetPath(tx))
	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	return mart.CheckOrError(res, err, b.debug)
}

// BeginBlock - ABCI - sets up the block context and runs the ticker
func (b BaseApp) BeginBlock(req abci.RequestBeginBlock) (res abci.ResponseBeginBlock) {
	res = b.StoreApp.BeginBlock(req)

	if b.ticker != nil {
		ctx := mart.WithLogInfo(b.BlockContext(), "call", "begin_block")
		tr, err := b.ticker.Tick(ctx, b.DeliverStore())
		if err != nil {
			// Tick must be deterministic. There is no way to
			// continue with a partially applied block schedule.
			panic(err)
		}
		res.Tags = append(res.Tags, tr.Tags...)
		b.AddValChange(tr.Diff)
	}
	return res
}

// loadTx parses the tx bytes, recovering from any codec panic
func (b BaseApp) loadTx(txBytes []byte) (tx mart.Tx, err error) {
	defer errors.Recover(&err)
	tx, err = b.decoder(txBytes)
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse transaction")
	}
	return tx, nil
}
