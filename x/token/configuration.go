package token

import (
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/coin"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/gconf"
	"github.com/tokenmart/mart/migration"
)

func init() {
	migration.MustRegister(1, &Configuration{}, migration.NoModification)
}

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	if !coin.IsCC(c.Ticker) {
		errs = errors.AppendField(errs, "Ticker", errors.Wrapf(errors.ErrCurrency, "invalid ticker: %s", c.Ticker))
	}
	errs = errors.AppendField(errs, "FaucetAmount", c.FaucetAmount.Validate())
	if !c.FaucetAmount.IsPositive() {
		errs = errors.AppendField(errs, "FaucetAmount", errors.Wrap(errors.ErrAmount, "must be positive"))
	}
	if c.FaucetAmount.Ticker != c.Ticker {
		errs = errors.AppendField(errs, "FaucetAmount", errors.Wrap(errors.ErrCurrency, "ticker mismatch"))
	}
	return errs
}

func mustLoadConf(db gconf.Store) Configuration {
	var conf Configuration
	if err := gconf.Load(db, "token", &conf); err != nil {
		err = errors.Wrap(err, "load configuration")
		panic(err)
	}
	return conf
}

// CurrentConfOwner returns the current configuration owner address. It is a
// helper for the gconf.NewUpdateConfigurationHandler init admin argument.
func CurrentConfOwner(db mart.ReadOnlyKVStore) (mart.Address, error) {
	var conf Configuration
	if err := gconf.Load(db, "token", &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return conf.Owner, nil
}
