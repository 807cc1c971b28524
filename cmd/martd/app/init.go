package app

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/app"
	"github.com/tokenmart/mart/coin"
	"github.com/tokenmart/mart/commands/server"
	"github.com/tokenmart/mart/crypto"
	"github.com/tokenmart/mart/migration"
	"github.com/tokenmart/mart/x/market"
	"github.com/tokenmart/mart/x/nft"
	"github.com/tokenmart/mart/x/token"
)

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := "MRT"
	if len(args) > 0 {
		ticker = args[0]
	}

	var addr string
	if len(args) > 1 {
		addr = args[1]
	} else {
		// if no address provided, auto-generate one
		// and print out a recovery phrase
		bz, phrase, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = bz.String()
		fmt.Println(phrase)
	}

	type (
		dict  map[string]interface{}
		array []interface{}
	)
	return json.Marshal(dict{
		"wallets": array{
			dict{
				"address": addr,
				"coins": array{
					dict{
						"whole":  123456789,
						"ticker": ticker,
					},
				},
			},
		},
		"conf": dict{
			"token": dict{
				"metadata":      dict{"schema": 1},
				"ticker":        ticker,
				"faucet_amount": coin.Coin{Whole: 100, Ticker: ticker},
				"owner":         addr,
			},
			"market": dict{
				"metadata":      dict{"schema": 1},
				"fee_percent":   2,
				"fee_collector": addr,
				"owner":         addr,
			},
			"migration": dict{
				"metadata": dict{"schema": 1},
				"admin":    addr,
			},
		},
		"initialize_schema": []dict{
			{"pkg": "token", "ver": 1},
			{"pkg": "nft", "ver": 1},
			{"pkg": "market", "ver": 1},
			{"pkg": "sigs", "ver": 1},
		},
	})
}

// Initializer returns the combined genesis initializer of all
// extensions wired into this application.
func Initializer() mart.Initializer {
	return app.ChainInitializers(
		&migration.Initializer{},
		&token.Initializer{},
		&nft.Initializer{},
		&market.Initializer{},
	)
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(options *server.Options) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "abci.db")
	}

	stack := Stack()
	application, err := Application("mart", stack, TxDecoder, dbPath, options.Debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(Initializer())

	// set the logger and return
	application.WithLogger(options.Logger)
	return application, nil
}

// GenerateCoinKey returns the address of a public key,
// along with the secret phrase to recover the private key.
// You can give coins to this address and return the recovery
// phrase to the user to access them.
func GenerateCoinKey() (mart.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	addr := privKey.PublicKey().Address()
	return addr, "TODO: add a recovery phrase", nil
}
