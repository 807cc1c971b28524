package market

import (
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/migration"
)

func init() {
	migration.MustRegister(1, &CreateListingMsg{}, migration.NoModification)
	migration.MustRegister(1, &BuyMsg{}, migration.NoModification)
	migration.MustRegister(1, &CancelListingMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var (
	_ mart.Msg = (*CreateListingMsg)(nil)
	_ mart.Msg = (*BuyMsg)(nil)
	_ mart.Msg = (*CancelListingMsg)(nil)
	_ mart.Msg = (*UpdateConfigurationMsg)(nil)
)

// tokenIDSize is the length of an orm sequence value.
const tokenIDSize = 8

// Path returns the routing path for this message.
func (CreateListingMsg) Path() string {
	return "market/create_listing"
}

func (m *CreateListingMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "TokenID", validateTokenID(m.TokenID))
	if m.Price == nil {
		errs = errors.AppendField(errs, "Price", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "Price", m.Price.Validate())
		if !m.Price.IsPositive() {
			errs = errors.AppendField(errs, "Price", errors.Wrap(errors.ErrAmount, "must be positive"))
		}
	}
	return errs
}

// Path returns the routing path for this message.
func (BuyMsg) Path() string {
	return "market/buy"
}

func (m *BuyMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "TokenID", validateTokenID(m.TokenID))
	return errs
}

// Path returns the routing path for this message.
func (CancelListingMsg) Path() string {
	return "market/cancel_listing"
}

func (m *CancelListingMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "TokenID", validateTokenID(m.TokenID))
	return errs
}

// Path returns the routing path for this message.
func (UpdateConfigurationMsg) Path() string {
	return "market/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Patch == nil {
		errs = errors.AppendField(errs, "Patch", errors.ErrEmpty)
		return errs
	}
	// Zero attributes are not written by the update so they are not
	// validated either.
	if len(m.Patch.Owner) != 0 {
		errs = errors.AppendField(errs, "Patch.Owner", m.Patch.Owner.Validate())
	}
	if m.Patch.FeePercent > 100 {
		errs = errors.AppendField(errs, "Patch.FeePercent", errors.Wrap(errors.ErrInput, "more than 100"))
	}
	if len(m.Patch.FeeCollector) != 0 {
		errs = errors.AppendField(errs, "Patch.FeeCollector", m.Patch.FeeCollector.Validate())
	}
	return errs
}

func validateTokenID(id []byte) error {
	if len(id) == 0 {
		return errors.ErrEmpty
	}
	if len(id) != tokenIDSize {
		return errors.Wrapf(errors.ErrInput, "invalid length %d", len(id))
	}
	return nil
}
