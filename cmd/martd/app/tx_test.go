package app

import (
	"bytes"
	"testing"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/marttest/assert"
	"github.com/tokenmart/mart/x/nft"
	"github.com/tokenmart/mart/x/sigs"
	"github.com/tokenmart/mart/x/token"
)

func TestTxDecoderRoundTrip(t *testing.T) {
	tx := &Tx{
		Sum: &Tx_TokenSendMsg{&token.SendMsg{
			Metadata:    &mart.Metadata{Schema: 1},
			Destination: mart.Address("destination-address-"),
			Memo:        "paid in full",
		}},
	}
	raw, err := tx.Marshal()
	assert.Nil(t, err)

	decoded, err := TxDecoder(raw)
	assert.Nil(t, err)
	msg, err := decoded.GetMsg()
	assert.Nil(t, err)
	send, ok := msg.(*token.SendMsg)
	if !ok {
		t.Fatalf("unexpected message type: %T", msg)
	}
	assert.Equal(t, "paid in full", send.Memo)
}

func TestGetMsgWithoutMessage(t *testing.T) {
	tx := &Tx{}
	if _, err := tx.GetMsg(); err == nil {
		t.Fatal("expected an error for a transaction without a message")
	}
}

func TestGetMsgPaths(t *testing.T) {
	cases := map[string]struct {
		sum      isTx_Sum
		wantPath string
	}{
		"claim":          {&Tx_TokenClaimMsg{&token.ClaimMsg{}}, "token/claim"},
		"issue":          {&Tx_NftIssueMsg{&nft.IssueMsg{}}, "nft/issue"},
		"bump sequence":  {&Tx_SigsBumpSequenceMsg{&sigs.BumpSequenceMsg{}}, "sigs/bump_sequence"},
		"token approve":  {&Tx_TokenApproveMsg{&token.ApproveMsg{}}, "token/approve"},
		"token transfer": {&Tx_TokenTransferFromMsg{&token.TransferFromMsg{}}, "token/transfer_from"},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			tx := &Tx{Sum: tc.sum}
			msg, err := tx.GetMsg()
			assert.Nil(t, err)
			assert.Equal(t, tc.wantPath, msg.Path())
		})
	}
}

func TestGetSignBytesIgnoresSignatures(t *testing.T) {
	tx := &Tx{
		Sum: &Tx_TokenClaimMsg{&token.ClaimMsg{
			Metadata: &mart.Metadata{Schema: 1},
		}},
	}
	plain, err := tx.GetSignBytes()
	assert.Nil(t, err)

	tx.Signatures = []*sigs.StdSignature{{Sequence: 17}}
	signed, err := tx.GetSignBytes()
	assert.Nil(t, err)

	if !bytes.Equal(plain, signed) {
		t.Fatal("sign bytes must not depend on attached signatures")
	}
	assert.Equal(t, 1, len(tx.Signatures))
}
