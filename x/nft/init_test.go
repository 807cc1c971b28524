package nft

import (
	"encoding/json"
	"testing"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/marttest"
	"github.com/tokenmart/mart/migration"
	"github.com/tokenmart/mart/store"
)

func TestGenesisInitializer(t *testing.T) {
	const genesis = `
	{
		"nfts": [
			{
				"owner": "c869f396137d88e5e49bd7e2e17fb41f4eb77a25",
				"uri": "ipfs://QmFirst"
			},
			{
				"owner": "c869f396137d88e5e49bd7e2e17fb41f4eb77a25",
				"uri": "ipfs://QmSecond"
			}
		]
	}
	`

	var opts mart.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	migration.MustInitPkg(db, "nft")

	var ini Initializer
	if err := ini.FromGenesis(opts, db); err != nil {
		t.Fatalf("cannot load genesis: %s", err)
	}

	owner := marttest.DecodeAddr(t, "c869f396137d88e5e49bd7e2e17fb41f4eb77a25")
	control := NewController()

	ids, err := control.TokensOfOwner(db, owner)
	if err != nil {
		t.Fatalf("cannot list tokens: %s", err)
	}
	if len(ids) != 2 {
		t.Fatalf("want 2 tokens, got %d", len(ids))
	}

	token, err := control.Load(db, []byte{0, 0, 0, 0, 0, 0, 0, 1})
	if err != nil {
		t.Fatalf("cannot load token: %s", err)
	}
	if !token.Owner.Equals(owner) {
		t.Fatalf("want owner %s, got %s", owner, token.Owner)
	}
	if token.URI != "ipfs://QmFirst" {
		t.Fatalf("unexpected uri: %q", token.URI)
	}
}
