package migration

import (
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
)

func init() {
	MustRegister(1, &UpgradeSchemaMsg{}, NoModification)
}

var _ mart.Msg = (*UpgradeSchemaMsg)(nil)

func (msg *UpgradeSchemaMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if msg.Pkg == "" {
		return errors.Wrap(errors.ErrEmpty, "pkg is required")
	}
	return nil
}

func (UpgradeSchemaMsg) Path() string {
	return "migration/upgrade_schema"
}
