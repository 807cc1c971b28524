package mart

import (
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
)

// Ticker is a method that is called at the beginning of every block. It is
// wired into the application and can be used for erasing expired state or
// other maintenance work.
type Ticker interface {
	// Tick can read and write to the database and is not dispatched for
	// a transaction.
	Tick(ctx Context, store CacheableKVStore) (TickResult, error)
}

// TickResult is returned from a Ticker execution.
type TickResult struct {
	Tags []common.KVPair
	Diff []abci.ValidatorUpdate
}
