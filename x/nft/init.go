package nft

import (
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
)

// GenesisToken is used to parse a pre-minted token from the genesis
// file. The owner address is in hex, not base64.
type GenesisToken struct {
	Owner mart.Address `json:"owner"`
	URI   string       `json:"uri"`
}

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ mart.Initializer = (*Initializer)(nil)

// FromGenesis will mint any tokens declared in genesis, assigning them
// sequential ids the same way IssueMsg does.
func (*Initializer) FromGenesis(opts mart.Options, kv mart.KVStore) error {
	var tokens []GenesisToken
	if err := opts.ReadOptions("nfts", &tokens); err != nil {
		return errors.Wrap(err, "read nfts")
	}
	bucket := NewBucket()
	for i, t := range tokens {
		if err := t.Owner.Validate(); err != nil {
			return errors.Wrapf(err, "token #%d owner", i)
		}
		token := Token{
			Metadata: &mart.Metadata{Schema: 1},
			Owner:    t.Owner,
			URI:      t.URI,
		}
		if _, err := bucket.Put(kv, nil, &token); err != nil {
			return errors.Wrapf(err, "save token #%d", i)
		}
	}
	return nil
}
