package market

import (
	"github.com/tokenmart/mart"
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
	if c.FeePercent > 100 {
		errs = errors.AppendField(errs, "FeePercent", errors.Wrap(errors.ErrInput, "more than 100"))
	}
	// The collector is optional only as long as no fee is charged.
	if len(c.FeeCollector) != 0 {
		errs = errors.AppendField(errs, "FeeCollector", c.FeeCollector.Validate())
	} else if c.FeePercent != 0 {
		errs = errors.AppendField(errs, "FeeCollector", errors.Wrap(errors.ErrEmpty, "required when a fee is charged"))
	}
	return errs
}

func mustLoadConf(db gconf.Store) Configuration {
	var conf Configuration
	if err := gconf.Load(db, "market", &conf); err != nil {
		err = errors.Wrap(err, "load configuration")
		panic(err)
	}
	return conf
}

// CurrentConfOwner returns the current configuration owner address. It is a
// helper for the gconf.NewUpdateConfigurationHandler init admin argument.
func CurrentConfOwner(db mart.ReadOnlyKVStore) (mart.Address, error) {
	var conf Configuration
	if err := gconf.Load(db, "market", &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return conf.Owner, nil
}
