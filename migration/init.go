package migration

import (
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/gconf"
)

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ mart.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts mart.Options, kv mart.KVStore) error {
	if err := gconf.InitConfig(kv, opts, "migration", &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}

	var schema []struct {
		Pkg string `json:"pkg"`
		Ver uint32 `json:"ver"`
	}
	if err := opts.ReadOptions("initialize_schema", &schema); err != nil {
		return errors.Wrap(err, "initialize schema")
	}
	bucket := NewSchemaBucket()
	for _, s := range schema {
		if s.Pkg == "" {
			return errors.Wrap(errors.ErrEmpty, "initialize schema package name")
		}
		ver := s.Ver
		if ver < 1 {
			ver = 1
		}
		// Versions are registered one by one as the bucket enforces
		// sequential schema registration.
		for v := uint32(1); v <= ver; v++ {
			_, err := bucket.Create(kv, &Schema{
				Metadata: &mart.Metadata{Schema: 1},
				Pkg:      s.Pkg,
				Version:  v,
			})
			if err != nil && !errors.ErrDuplicate.Is(err) {
				return errors.Wrapf(err, "initialize schema %q version %d", s.Pkg, v)
			}
		}
	}
	// Schema versioning of this package is always initialized so that the
	// upgrade schema message can be processed.
	MustInitPkg(kv, "migration")
	return nil
}
