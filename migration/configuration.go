package migration

import (
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/gconf"
)

func (c *Configuration) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := c.Admin.Validate(); err != nil {
		return errors.Wrap(err, "admin")
	}
	return nil
}

func mustLoadConf(db gconf.Store) Configuration {
	var conf Configuration
	if err := gconf.Load(db, "migration", &conf); err != nil {
		err = errors.Wrap(err, "load configuration")
		panic(err)
	}
	return conf
}

// CurrentAdmin returns the current migration admin address. It is a helper
// for the gconf.NewUpdateConfigurationHandler init admin argument.
func CurrentAdmin(db mart.ReadOnlyKVStore) (mart.Address, error) {
	var conf Configuration
	if err := gconf.Load(db, "migration", &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return conf.Admin, nil
}
