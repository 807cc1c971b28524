package app

import (
	"context"
	"testing"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/marttest/assert"
	"github.com/tokenmart/mart/store/iavl"
)

type dummyInit struct {
	key string
}

func (d dummyInit) FromGenesis(opts mart.Options, kv mart.KVStore) error {
	var value string
	if err := opts.ReadOptions(d.key, &value); err != nil {
		return err
	}
	return kv.Set([]byte(d.key), []byte(value))
}

type countInit struct {
	called int
	err    error
}

func (c *countInit) FromGenesis(opts mart.Options, kv mart.KVStore) error {
	c.called++
	return c.err
}

func TestChainInitializers(t *testing.T) {
	c1 := &countInit{}
	c2 := &countInit{}
	init := ChainInitializers(nil, c1, dummyInit{key: "dummy"}, c2)

	db := mockStoreApp(t)

	opts := mart.Options{"dummy": []byte(`"secret"`)}
	if err := init.FromGenesis(opts, db.DeliverStore()); err != nil {
		t.Fatalf("init failed: %+v", err)
	}
	assert.Equal(t, 1, c1.called)
	assert.Equal(t, 1, c2.called)

	val, err := db.DeliverStore().Get([]byte("dummy"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("secret"), val)
}

func TestChainInitializersAbort(t *testing.T) {
	c1 := &countInit{err: errors.ErrState}
	c2 := &countInit{}
	init := ChainInitializers(c1, c2)

	db := mockStoreApp(t)

	err := init.FromGenesis(mart.Options{}, db.DeliverStore())
	if !errors.ErrState.Is(err) {
		t.Fatalf("expected state error, got %+v", err)
	}
	assert.Equal(t, 1, c1.called)
	assert.Equal(t, 0, c2.called)
}

func TestParseAppState(t *testing.T) {
	db := mockStoreApp(t)

	c := &countInit{}
	init := ChainInitializers(dummyInit{key: "dummy"}, c)

	appState := []byte(`{"dummy": "secret"}`)
	if err := db.parseAppState(appState, "test-chain-1", init); err != nil {
		t.Fatalf("cannot parse app state: %+v", err)
	}
	assert.Equal(t, "test-chain-1", db.GetChainID())
	assert.Equal(t, 1, c.called)

	// a second genesis must be rejected
	err := db.parseAppState(appState, "test-chain-2", init)
	if !errors.ErrState.Is(err) {
		t.Fatalf("expected state error, got %+v", err)
	}
}

func TestParseAppStateInvalid(t *testing.T) {
	db := mockStoreApp(t)

	cases := map[string][]byte{
		"empty state":  nil,
		"broken json":  []byte(`{"dummy": `),
		"not a object": []byte(`"dummy"`),
	}
	for testName, appState := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := db.parseAppState(appState, "test-chain-1", nil); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func mockStoreApp(t testing.TB) *StoreApp {
	t.Helper()
	return NewStoreApp("test", iavl.MockCommitStore(), mart.NewQueryRouter(), context.Background())
}
