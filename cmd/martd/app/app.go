/*
Package app wires together all components of the marketplace
application into an ABCI server.

It is the place where the transaction codec, the decorator stack, the
message router and the persistence layer meet. Replace single pieces
here to customize a deployment.
*/
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/app"
	"github.com/tokenmart/mart/migration"
	"github.com/tokenmart/mart/store/iavl"
	"github.com/tokenmart/mart/x"
	"github.com/tokenmart/mart/x/market"
	"github.com/tokenmart/mart/x/nft"
	"github.com/tokenmart/mart/x/sigs"
	"github.com/tokenmart/mart/x/token"
	"github.com/tokenmart/mart/x/utils"
)

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return sigs.Authenticate{}
}

// CoinControl returns a controller for fungible token functions
func CoinControl() token.Controller {
	return token.NewController()
}

// TokenControl returns a controller for non fungible token functions
func TokenControl() nft.Controller {
	return nft.NewController()
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain(authFn x.Authenticator) app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		utils.NewActionTagger(),
		// on DeliverTx, bad tx will increment the nonce
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a default router, dispatching to all
// message handlers of this application
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()

	token.RegisterRoutes(r, authFn, CoinControl())
	nft.RegisterRoutes(r, authFn)
	market.RegisterRoutes(r, authFn, CoinControl(), TokenControl())
	sigs.RegisterRoutes(r, authFn)
	migration.RegisterRoutes(r, authFn)
	return r
}

// QueryRouter returns a default query router, allowing access
// to the buckets of every registered extension
func QueryRouter() mart.QueryRouter {
	r := mart.NewQueryRouter()
	r.RegisterAll(
		token.RegisterQuery,
		nft.RegisterQuery,
		market.RegisterQuery,
		sigs.RegisterQuery,
		migration.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() mart.Handler {
	authFn := Authenticator()
	return Chain(authFn).WithHandler(Router(authFn))
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h mart.Handler,
	tx mart.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {

	ctx := context.Background()
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), ctx)
	base := app.NewBaseApp(store, tx, h, nil, debug)
	return base, nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (mart.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, fmt.Errorf("invalid database name: %s", path)
	}

	// Some external calls accidentally add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}
