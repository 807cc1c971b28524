package token

import (
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/coin"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/migration"
)

func init() {
	migration.MustRegister(1, &ClaimMsg{}, migration.NoModification)
	migration.MustRegister(1, &SendMsg{}, migration.NoModification)
	migration.MustRegister(1, &ApproveMsg{}, migration.NoModification)
	migration.MustRegister(1, &TransferFromMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var (
	_ mart.Msg = (*ClaimMsg)(nil)
	_ mart.Msg = (*SendMsg)(nil)
	_ mart.Msg = (*ApproveMsg)(nil)
	_ mart.Msg = (*TransferFromMsg)(nil)
	_ mart.Msg = (*UpdateConfigurationMsg)(nil)
)

const maxMemoSize = 128

// Path returns the routing path for this message.
func (ClaimMsg) Path() string {
	return "token/claim"
}

func (m *ClaimMsg) Validate() error {
	return errors.AppendField(nil, "Metadata", m.Metadata.Validate())
}

// Path returns the routing path for this message.
func (SendMsg) Path() string {
	return "token/send"
}

func (m *SendMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if coin.IsEmpty(m.Amount) || !m.Amount.IsPositive() {
		errs = errors.AppendField(errs, "Amount", errors.Wrapf(errors.ErrAmount, "non-positive amount: %v", m.Amount))
	} else {
		errs = errors.AppendField(errs, "Amount", m.Amount.Validate())
	}
	// Source is optional and defaults to the main signer.
	if len(m.Source) != 0 {
		errs = errors.AppendField(errs, "Source", m.Source.Validate())
	}
	if len(m.Destination) == 0 {
		errs = errors.AppendField(errs, "Destination", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	}
	if len(m.Memo) > maxMemoSize {
		errs = errors.AppendField(errs, "Memo", errors.Wrap(errors.ErrInput, "memo too long"))
	}
	return errs
}

// DefaultSource returns a message with the source set. If the source was
// already present the message is returned unchanged.
func (m *SendMsg) DefaultSource(addr []byte) *SendMsg {
	if len(m.Source) != 0 {
		return m
	}
	cpy := *m
	cpy.Source = addr
	return &cpy
}

// Path returns the routing path for this message.
func (ApproveMsg) Path() string {
	return "token/approve"
}

func (m *ApproveMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.Spender) == 0 {
		errs = errors.AppendField(errs, "Spender", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "Spender", m.Spender.Validate())
	}
	// A zero amount is allowed and revokes an existing allowance.
	if m.Amount == nil {
		errs = errors.AppendField(errs, "Amount", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "Amount", m.Amount.Validate())
		if !m.Amount.IsNonNegative() {
			errs = errors.AppendField(errs, "Amount", errors.Wrap(errors.ErrAmount, "cannot be negative"))
		}
	}
	return errs
}

// Path returns the routing path for this message.
func (TransferFromMsg) Path() string {
	return "token/transfer_from"
}

func (m *TransferFromMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.Source) == 0 {
		errs = errors.AppendField(errs, "Source", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "Source", m.Source.Validate())
	}
	if len(m.Destination) == 0 {
		errs = errors.AppendField(errs, "Destination", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	}
	if coin.IsEmpty(m.Amount) || !m.Amount.IsPositive() {
		errs = errors.AppendField(errs, "Amount", errors.Wrapf(errors.ErrAmount, "non-positive amount: %v", m.Amount))
	} else {
		errs = errors.AppendField(errs, "Amount", m.Amount.Validate())
	}
	return errs
}

// Path returns the routing path for this message.
func (UpdateConfigurationMsg) Path() string {
	return "token/update_configuration"
}

// Validate will skip any zero fields and validate the set ones.
func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Patch == nil {
		return errors.AppendField(errs, "Patch", errors.ErrEmpty)
	}
	c := m.Patch
	if len(c.Owner) != 0 {
		errs = errors.AppendField(errs, "Patch.Owner", c.Owner.Validate())
	}
	if len(c.Ticker) != 0 && !coin.IsCC(c.Ticker) {
		errs = errors.AppendField(errs, "Patch.Ticker", errors.Wrapf(errors.ErrCurrency, "invalid ticker: %s", c.Ticker))
	}
	if !c.FaucetAmount.IsZero() {
		errs = errors.AppendField(errs, "Patch.FaucetAmount", c.FaucetAmount.Validate())
		if !c.FaucetAmount.IsPositive() {
			errs = errors.AppendField(errs, "Patch.FaucetAmount", errors.Wrap(errors.ErrAmount, "must be positive"))
		}
	}
	return errs
}
