package mart

import (
	"github.com/tokenmart/mart/errors"
)

// Copy returns a copy of this object. This method is helpful when
// implementing orm.CloneableData interface to make a copy of the header.
func (m *Metadata) Copy() *Metadata {
	cpy := *m
	return &cpy
}

// Validate returns an error if the metadata is not valid. Nil metadata is
// considered invalid as every persistent entity must declare its schema
// version.
func (m *Metadata) Validate() error {
	if m == nil {
		return errors.Wrap(errors.ErrMetadata, "missing metadata")
	}
	if m.Schema < 1 {
		return errors.Wrap(errors.ErrMetadata, "schema version must be greater than zero")
	}
	return nil
}
