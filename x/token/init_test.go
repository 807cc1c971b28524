package token

import (
	"encoding/json"
	"testing"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/coin"
	"github.com/tokenmart/mart/marttest"
	"github.com/tokenmart/mart/migration"
	"github.com/tokenmart/mart/store"
)

func TestGenesisInitializer(t *testing.T) {
	const genesis = `
	{
		"conf": {
			"token": {
				"metadata": {"schema": 1},
				"owner": "6a4832947079b0a851ec4daa3dae69de1f7741eb",
				"ticker": "MKT",
				"faucet_amount": {"whole": 1000, "ticker": "MKT"}
			}
		},
		"wallets": [
			{
				"address": "c869f396137d88e5e49bd7e2e17fb41f4eb77a25",
				"coins": [{"whole": 50, "ticker": "MKT"}]
			}
		]
	}
	`

	var opts mart.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	migration.MustInitPkg(db, "token")

	var ini Initializer
	if err := ini.FromGenesis(opts, db); err != nil {
		t.Fatalf("cannot load genesis: %s", err)
	}

	conf := mustLoadConf(db)
	if conf.Ticker != "MKT" {
		t.Fatalf("unexpected ticker: %q", conf.Ticker)
	}
	if want := coin.NewCoin(1000, 0, "MKT"); !conf.FaucetAmount.Equals(want) {
		t.Fatalf("unexpected faucet amount: %v", conf.FaucetAmount)
	}

	addr := marttest.DecodeAddr(t, "c869f396137d88e5e49bd7e2e17fb41f4eb77a25")
	cs, err := NewController().Balance(db, addr)
	if err != nil {
		t.Fatalf("cannot get genesis wallet balance: %s", err)
	}
	if want := coin.NewCoin(50, 0, "MKT"); !cs.Contains(want) {
		t.Fatalf("unexpected genesis balance: %v", cs)
	}
}
