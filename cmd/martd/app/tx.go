package app

import (
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/x/sigs"
)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (mart.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, err
	}
	return tx, nil
}

// make sure tx fulfills all interfaces
var _ mart.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// GetMsg switches over all types defined in the protobuf file
func (tx *Tx) GetMsg() (mart.Msg, error) {
	sum := tx.GetSum()
	if sum == nil {
		return nil, errors.Wrap(errors.ErrInput, "transaction without a message")
	}

	// make sure to cover all messages defined in protobuf
	switch t := sum.(type) {
	case *Tx_TokenClaimMsg:
		return t.TokenClaimMsg, nil
	case *Tx_TokenSendMsg:
		return t.TokenSendMsg, nil
	case *Tx_TokenApproveMsg:
		return t.TokenApproveMsg, nil
	case *Tx_TokenTransferFromMsg:
		return t.TokenTransferFromMsg, nil
	case *Tx_TokenUpdateConfigurationMsg:
		return t.TokenUpdateConfigurationMsg, nil
	case *Tx_NftIssueMsg:
		return t.NftIssueMsg, nil
	case *Tx_NftApproveMsg:
		return t.NftApproveMsg, nil
	case *Tx_NftTransferMsg:
		return t.NftTransferMsg, nil
	case *Tx_MarketCreateListingMsg:
		return t.MarketCreateListingMsg, nil
	case *Tx_MarketBuyMsg:
		return t.MarketBuyMsg, nil
	case *Tx_MarketCancelListingMsg:
		return t.MarketCancelListingMsg, nil
	case *Tx_MarketUpdateConfigurationMsg:
		return t.MarketUpdateConfigurationMsg, nil
	case *Tx_SigsBumpSequenceMsg:
		return t.SigsBumpSequenceMsg, nil
	case *Tx_MigrationUpgradeSchemaMsg:
		return t.MigrationUpgradeSchemaMsg, nil
	}
	return nil, errors.Wrapf(errors.ErrMsg, "unknown message type %T", sum)
}

// GetSignBytes returns the bytes to sign
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// temporarily unset the signatures, as the sign bytes
	// should only come from the data itself, not previous signatures
	sigs := tx.Signatures
	tx.Signatures = nil

	bz, err := tx.Marshal()

	// reset the signatures after calculating the bytes
	tx.Signatures = sigs
	return bz, err
}
