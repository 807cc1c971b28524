package sigs

import (
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/migration"
)

const (
	pathBumpSequenceMsg = "sigs/bump_sequence"

	maxSequenceIncrement = 1000
	minSequenceIncrement = 1
)

func init() {
	migration.MustRegister(1, &BumpSequenceMsg{}, migration.NoModification)
}

func (msg *BumpSequenceMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if msg.Increment < minSequenceIncrement {
		return errors.Wrapf(errors.ErrMsg, "increment must be at least %d", minSequenceIncrement)
	}
	if msg.Increment > maxSequenceIncrement {
		return errors.Wrapf(errors.ErrMsg, "increment must not be greater than %d", maxSequenceIncrement)
	}
	return nil
}

func (BumpSequenceMsg) Path() string {
	return pathBumpSequenceMsg
}
