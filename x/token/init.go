package token

import (
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/coin"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/gconf"
)

// GenesisAccount is used to parse the json from the genesis file. The
// address is in hex, not base64.
type GenesisAccount struct {
	Address mart.Address `json:"address"`
	Coins   coin.Coins   `json:"coins"`
}

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ mart.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial account info from genesis and save it to
// the database.
func (*Initializer) FromGenesis(opts mart.Options, kv mart.KVStore) error {
	if err := gconf.InitConfig(kv, opts, "token", &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}

	var accounts []GenesisAccount
	if err := opts.ReadOptions("wallets", &accounts); err != nil {
		return errors.Wrap(err, "read wallets")
	}
	bucket := NewWalletBucket()
	for i, a := range accounts {
		if err := a.Address.Validate(); err != nil {
			return errors.Wrapf(err, "wallet #%d address", i)
		}
		wallet := Set{
			Metadata: &mart.Metadata{Schema: 1},
			Coins:    a.Coins,
		}
		if _, err := bucket.Put(kv, a.Address, &wallet); err != nil {
			return errors.Wrapf(err, "save wallet #%d", i)
		}
	}
	return nil
}
