package nft

import (
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/migration"
)

func init() {
	migration.MustRegister(1, &IssueMsg{}, migration.NoModification)
	migration.MustRegister(1, &ApproveMsg{}, migration.NoModification)
	migration.MustRegister(1, &TransferMsg{}, migration.NoModification)
}

var (
	_ mart.Msg = (*IssueMsg)(nil)
	_ mart.Msg = (*ApproveMsg)(nil)
	_ mart.Msg = (*TransferMsg)(nil)
)

const (
	maxURISize = 256
	// tokenIDSize is the length of an orm sequence value.
	tokenIDSize = 8
)

// Path returns the routing path for this message.
func (IssueMsg) Path() string {
	return "nft/issue"
}

func (m *IssueMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.URI) == 0 {
		errs = errors.AppendField(errs, "URI", errors.ErrEmpty)
	} else if len(m.URI) > maxURISize {
		errs = errors.AppendField(errs, "URI", errors.Wrap(errors.ErrInput, "too long"))
	}
	return errs
}

// Path returns the routing path for this message.
func (ApproveMsg) Path() string {
	return "nft/approve"
}

func (m *ApproveMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "TokenID", validateTokenID(m.TokenID))
	// An empty spender clears the approval.
	if len(m.Spender) != 0 {
		errs = errors.AppendField(errs, "Spender", m.Spender.Validate())
	}
	return errs
}

// Path returns the routing path for this message.
func (TransferMsg) Path() string {
	return "nft/transfer"
}

func (m *TransferMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "TokenID", validateTokenID(m.TokenID))
	errs = errors.AppendField(errs, "Source", m.Source.Validate())
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
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
