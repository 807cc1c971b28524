package market

import (
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/gconf"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ mart.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial configuration from genesis and save it
// to the database.
func (*Initializer) FromGenesis(opts mart.Options, kv mart.KVStore) error {
	if err := gconf.InitConfig(kv, opts, "market", &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}
	return nil
}
