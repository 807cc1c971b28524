package app

import (
	"context"
	"testing"

	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/marttest/assert"
	"github.com/tokenmart/mart/store/iavl"
)

func TestAddValChange(t *testing.T) {
	pubKey := abci.PubKey{
		Type: "test",
		Data: []byte("someKey"),
	}
	pubKey2 := abci.PubKey{
		Type: "test",
		Data: []byte("someKey2"),
	}
	app := NewStoreApp("dummy", iavl.MockCommitStore(), mart.NewQueryRouter(), context.Background())

	t.Run("diff is equal to output with one update", func(t *testing.T) {
		diff := []abci.ValidatorUpdate{
			{PubKey: pubKey, Power: 10},
		}
		app.AddValChange(diff)
		res := app.EndBlock(abci.RequestEndBlock{})
		assert.Equal(t, diff, res.ValidatorUpdates)
	})

	t.Run("only produce last update to multiple validators", func(t *testing.T) {
		diff := []abci.ValidatorUpdate{
			{PubKey: pubKey, Power: 10},
			{PubKey: pubKey2, Power: 15},
			{PubKey: pubKey, Power: 1},
			{PubKey: pubKey2, Power: 2},
		}

		app.AddValChange(diff)
		res := app.EndBlock(abci.RequestEndBlock{})
		assert.Equal(t, diff[2:], res.ValidatorUpdates)
	})

	t.Run("a call with an empty diff does nothing", func(t *testing.T) {
		diff := []abci.ValidatorUpdate{
			{PubKey: pubKey, Power: 10},
			{PubKey: pubKey2, Power: 15},
		}
		app.AddValChange(diff)
		app.AddValChange(make([]abci.ValidatorUpdate, 0))

		res := app.EndBlock(abci.RequestEndBlock{})
		assert.Equal(t, diff, res.ValidatorUpdates)
	})
}

func TestSplitPath(t *testing.T) {
	cases := map[string]struct {
		path     string
		wantPath string
		wantMod  string
	}{
		"plain path":    {"/tokens", "/tokens", ""},
		"prefix query":  {"/tokens?prefix", "/tokens", "prefix"},
		"no path":       {"?prefix", "", "prefix"},
		"trailing only": {"/", "/", ""},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			path, mod := splitPath(tc.path)
			assert.Equal(t, tc.wantPath, path)
			assert.Equal(t, tc.wantMod, mod)
		})
	}
}
