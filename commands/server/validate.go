package server

import (
	"encoding/json"
	"io/ioutil"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/store"
)

// ValidateGenesis loads every given genesis file and applies it to an
// in memory store. This provides a cheap way to catch most genesis
// configuration mistakes before starting a node.
func ValidateGenesis(ini mart.Initializer, genesisPaths []string) error {
	for _, path := range genesisPaths {
		if err := validateGenesis(ini, path); err != nil {
			return errors.Wrap(err, path)
		}
	}
	return nil
}

func validateGenesis(ini mart.Initializer, genesisPath string) error {
	b, err := ioutil.ReadFile(genesisPath)
	if err != nil {
		return errors.Wrap(err, "cannot read genesis file")
	}

	var genesis struct {
		State mart.Options `json:"app_state"`
	}
	if err := json.Unmarshal(b, &genesis); err != nil {
		return errors.Wrap(err, "cannot JSON deserialize genesis")
	}

	// Use in memory store because we want to discard the result.
	db := store.MemStore()

	if err := ini.FromGenesis(genesis.State, db); err != nil {
		return errors.Wrap(err, "cannot initialize from genesis")
	}

	return nil
}
