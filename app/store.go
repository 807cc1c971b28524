package app

import (
	"encoding/json"
	"fmt"
	"strings"

	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
)

// StoreApp contains a data store and all info needed
// to perform queries and handshakes.
//
// It should be embedded in another struct for CheckTx,
// DeliverTx and initializing state from the genesis.
// Errors on ABCI steps are handled as panics, as there is no way the
// consensus engine can recover from a failed Info, InitChain, BeginBlock
// or Commit.
type StoreApp struct {
	logger log.Logger

	// name is what is returned from abci.Info
	name string

	// Database state (committed, check, deliver....)
	store *CommitStore

	// Code to initialize from a genesis file
	initializer mart.Initializer

	// How to handle queries
	queryRouter mart.QueryRouter

	// chainID is loaded from db in initialization
	// saved once in parseGenesis
	chainID string

	// cached validator changes from DeliverTx
	pending []abci.ValidatorUpdate

	// baseContext contains context info that is valid for
	// lifetime of this app (eg. chainID)
	baseContext mart.Context

	// blockContext contains context info that is valid for the
	// current block (eg. height, header), reset on BeginBlock
	blockContext mart.Context
}

// NewStoreApp initializes this app into a ready state with some defaults
//
// panics if unable to properly load the state from the given store
func NewStoreApp(name string, store mart.CommitKVStore,
	queryRouter mart.QueryRouter, baseContext mart.Context) *StoreApp {
	s := &StoreApp{
		name: name,
		// note: panics if trouble initializing from store
		store:       NewCommitStore(store),
		queryRouter: queryRouter,
		baseContext: baseContext,
	}
	s = s.WithLogger(log.NewNopLogger())

	// load the chainID from the db
	s.chainID = mustLoadChainID(s.DeliverStore())
	if s.chainID != "" {
		s.baseContext = mart.WithChainID(s.baseContext, s.chainID)
	}

	// get the most recent height
	info, err := s.store.CommitInfo()
	if err != nil {
		panic(err)
	}
	s.blockContext = mart.WithHeight(s.baseContext, info.Version)
	return s
}

// GetChainID returns the current chainID
func (s *StoreApp) GetChainID() string {
	return s.chainID
}

// WithInit is used to set the init function we call
func (s *StoreApp) WithInit(init mart.Initializer) *StoreApp {
	s.initializer = init
	return s
}

// parseAppState is called from InitChain, the first time the chain
// starts, and not on restarts.
func (s *StoreApp) parseAppState(data []byte, chainID string, init mart.Initializer) error {
	if s.chainID != "" {
		return errors.Wrapf(errors.ErrState, "appState previously loaded for chain: %s", s.chainID)
	}

	if len(data) == 0 {
		return errors.Wrap(errors.ErrState, "app_state not set in genesis.json, please initialize application before launching the blockchain")
	}

	var appState mart.Options
	if err := json.Unmarshal(data, &appState); err != nil {
		return errors.Wrap(err, "parse app_state")
	}

	if err := s.storeChainID(chainID); err != nil {
		return err
	}

	return init.FromGenesis(appState, s.DeliverStore())
}

// storeChainID stores the chain id in the db and updates the context
func (s *StoreApp) storeChainID(chainID string) error {
	s.chainID = chainID
	if err := saveChainID(s.DeliverStore(), s.chainID); err != nil {
		return err
	}
	s.baseContext = mart.WithChainID(s.baseContext, s.chainID)
	return nil
}

// WithLogger sets the logger on the StoreApp and returns it,
// to make it easy to chain in initialization
//
// also sets baseContext logger
func (s *StoreApp) WithLogger(logger log.Logger) *StoreApp {
	s.baseContext = mart.WithLogger(s.baseContext, logger)
	s.logger = logger
	return s
}

// Logger returns the application base logger
func (s *StoreApp) Logger() log.Logger {
	return s.logger
}

// BlockContext returns the block context for public use
func (s *StoreApp) BlockContext() mart.Context {
	return s.blockContext
}

// DeliverStore returns the current DeliverTx cache for methods
func (s *StoreApp) DeliverStore() mart.CacheableKVStore {
	return s.store.deliver
}

// CheckStore returns the current CheckTx cache for methods
func (s *StoreApp) CheckStore() mart.CacheableKVStore {
	return s.store.check
}

//----------------------- ABCI ---------------------

// Info implements abci.Application. It returns the height and hash,
// as well as the abci name and version.
//
// The height is the block that holds the transactions, not the apphash itself.
func (s *StoreApp) Info(req abci.RequestInfo) abci.ResponseInfo {
	info, err := s.store.CommitInfo()
	if err != nil {
		panic(err)
	}

	s.logger.Info("Info synced",
		"height", info.Version,
		"hash", fmt.Sprintf("%X", info.Hash))

	return abci.ResponseInfo{
		Data:             s.name,
		LastBlockHeight:  info.Version,
		LastBlockAppHash: info.Hash,
	}
}

// SetOption - ABCI
func (s *StoreApp) SetOption(res abci.RequestSetOption) abci.ResponseSetOption {
	return abci.ResponseSetOption{Log: "Not Implemented"}
}

/*
Query gets data from the app store.
A query request has the following elements:
* Path - the type of query
* Data - what to query, interpreted based on Path
* Height - the block height to query (if 0 most recent)
* Prove - if true, also return a proof

Path may be "/", "/<bucket>", or "/<bucket>/<index>"
It may be followed by "?prefix" to make a prefix query.

Key and Value in Results are always serialized ResultSet
objects, able to support 0 to N values. They must be the
same size. This makes things a little more difficult for
simple queries, but provides a consistent interface.
*/
func (s *StoreApp) Query(reqQuery abci.RequestQuery) (resQuery abci.ResponseQuery) {
	// find the handler
	path, mod := splitPath(reqQuery.Path)
	qh := s.queryRouter.Handler(path)
	if qh == nil {
		return queryError(errors.Wrapf(errors.ErrNotFound, "unexpected query path: %v", reqQuery.Path))
	}

	info, err := s.store.CommitInfo()
	if err != nil {
		return queryError(err)
	}
	resQuery.Height = info.Version
	db := s.store.committed.CacheWrap()

	// make the query
	models, err := qh.Query(db, mod, reqQuery.Data)
	if err != nil {
		return queryError(err)
	}

	// set the info as ResultSets....
	resQuery.Key, err = ResultsFromKeys(models).Marshal()
	if err != nil {
		return queryError(err)
	}
	resQuery.Value, err = ResultsFromValues(models).Marshal()
	if err != nil {
		return queryError(err)
	}

	return resQuery
}

// splitPath splits out the real path along with the query
// modifier (everything after the ?)
func splitPath(path string) (string, string) {
	var mod string
	chunks := strings.SplitN(path, "?", 2)
	if len(chunks) == 2 {
		path = chunks[0]
		mod = chunks[1]
	}
	return path, mod
}

func queryError(err error) abci.ResponseQuery {
	code, log := errors.ABCIInfo(err, false)
	return abci.ResponseQuery{
		Log:  log,
		Code: code,
	}
}

// Commit implements abci.Application
func (s *StoreApp) Commit() (res abci.ResponseCommit) {
	commitID, err := s.store.Commit()
	if err != nil {
		panic(err)
	}

	s.logger.Debug("Commit synced",
		"height", commitID.Version,
		"hash", fmt.Sprintf("%X", commitID.Hash),
	)

	return abci.ResponseCommit{Data: commitID.Hash}
}

// InitChain implements ABCI
// Loads the genesis state the first time the chain is started.
func (s *StoreApp) InitChain(req abci.RequestInitChain) (res abci.ResponseInitChain) {
	if err := s.parseAppState(req.AppStateBytes, req.ChainId, s.initializer); err != nil {
		// Read comment on type header
		panic(err)
	}

	return abci.ResponseInitChain{}
}

// BeginBlock implements ABCI
// Sets up blockContext
func (s *StoreApp) BeginBlock(req abci.RequestBeginBlock) (res abci.ResponseBeginBlock) {
	// set the begin block context
	ctx := mart.WithHeader(s.baseContext, req.Header)
	ctx = mart.WithHeight(ctx, req.Header.GetHeight())
	ctx = mart.WithBlockTime(ctx, req.Header.Time)
	s.blockContext = ctx

	return
}

// EndBlock - ABCI
// Returns a list of all validator changes made in this block
func (s *StoreApp) EndBlock(_ abci.RequestEndBlock) (res abci.ResponseEndBlock) {
	res.ValidatorUpdates = s.pending
	s.pending = nil
	return
}

// AddValChange is meant to be called by apps on DeliverTx
// results, this is added to the cache for the endblock changeset
func (s *StoreApp) AddValChange(diffs []abci.ValidatorUpdate) {
	// ensures multiple updates for one validator are combined into one slot
	for _, d := range diffs {
		idx := pubKeyIndex(d, s.pending)
		if idx >= 0 {
			s.pending[idx] = d
		} else {
			s.pending = append(s.pending, d)
		}
	}
}

// return index of list with validator of same Pubkey, or -1 if no match
func pubKeyIndex(val abci.ValidatorUpdate, list []abci.ValidatorUpdate) int {
	for i, v := range list {
		if val.PubKey.Type == v.PubKey.Type && bytesEqual(val.PubKey.Data, v.PubKey.Data) {
			return i
		}
	}
	return -1
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
