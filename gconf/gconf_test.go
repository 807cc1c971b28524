package gconf

import (
	"encoding/json"
	"testing"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/marttest/assert"
	"github.com/tokenmart/mart/store"
)

type testConfig struct {
	Name  string `json:"name"`
	Limit int64  `json:"limit"`
}

func (c *testConfig) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

func (c *testConfig) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, c)
}

func (c *testConfig) Validate() error {
	if c.Name == "" {
		return errors.Wrap(errors.ErrEmpty, "name")
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	db := store.MemStore()

	conf := testConfig{Name: "foo", Limit: 42}
	assert.Nil(t, Save(db, "testpkg", &conf))

	var loaded testConfig
	assert.Nil(t, Load(db, "testpkg", &loaded))
	assert.Equal(t, conf, loaded)

	// Configurations are stored per package.
	var missing testConfig
	assert.IsErr(t, errors.ErrNotFound, Load(db, "otherpkg", &missing))
}

func TestSaveInvalid(t *testing.T) {
	db := store.MemStore()
	err := Save(db, "testpkg", &testConfig{Limit: 1})
	assert.IsErr(t, errors.ErrEmpty, err)
}

func TestInitConfig(t *testing.T) {
	const genesis = `
		{
			"conf": {
				"testpkg": {"name": "genesis", "limit": 7}
			}
		}
	`
	var opts mart.Options
	assert.Nil(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	var conf testConfig
	assert.Nil(t, InitConfig(db, opts, "testpkg", &conf))
	assert.Equal(t, testConfig{Name: "genesis", Limit: 7}, conf)

	var loaded testConfig
	assert.Nil(t, Load(db, "testpkg", &loaded))
	assert.Equal(t, conf, loaded)

	// Missing genesis declaration is an error.
	assert.IsErr(t, errors.ErrNotFound, InitConfig(db, opts, "missing", &testConfig{}))
}
