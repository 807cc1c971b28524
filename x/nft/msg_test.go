package nft

import (
	"strings"
	"testing"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
)

func TestIssueMsgValidate(t *testing.T) {
	cases := map[string]struct {
		Msg     IssueMsg
		WantErr *errors.Error
	}{
		"valid message": {
			Msg: IssueMsg{
				Metadata: &mart.Metadata{Schema: 1},
				URI:      "ipfs://QmExample",
			},
		},
		"missing metadata": {
			Msg: IssueMsg{
				URI: "ipfs://QmExample",
			},
			WantErr: errors.ErrMetadata,
		},
		"missing uri": {
			Msg: IssueMsg{
				Metadata: &mart.Metadata{Schema: 1},
			},
			WantErr: errors.ErrEmpty,
		},
		"uri too long": {
			Msg: IssueMsg{
				Metadata: &mart.Metadata{Schema: 1},
				URI:      strings.Repeat("x", maxURISize+1),
			},
			WantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.Msg.Validate(); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected validation error: %+v", err)
			}
		})
	}
}

func TestApproveMsgValidate(t *testing.T) {
	tokenID := []byte{0, 0, 0, 0, 0, 0, 0, 1}

	cases := map[string]struct {
		Msg     ApproveMsg
		WantErr *errors.Error
	}{
		"valid message": {
			Msg: ApproveMsg{
				Metadata: &mart.Metadata{Schema: 1},
				TokenID:  tokenID,
				Spender:  mart.Address("spender-address-----"),
			},
		},
		"empty spender clears the approval": {
			Msg: ApproveMsg{
				Metadata: &mart.Metadata{Schema: 1},
				TokenID:  tokenID,
			},
		},
		"missing token id": {
			Msg: ApproveMsg{
				Metadata: &mart.Metadata{Schema: 1},
				Spender:  mart.Address("spender-address-----"),
			},
			WantErr: errors.ErrEmpty,
		},
		"token id of the wrong length": {
			Msg: ApproveMsg{
				Metadata: &mart.Metadata{Schema: 1},
				TokenID:  []byte{1, 2, 3},
				Spender:  mart.Address("spender-address-----"),
			},
			WantErr: errors.ErrInput,
		},
		"invalid spender address": {
			Msg: ApproveMsg{
				Metadata: &mart.Metadata{Schema: 1},
				TokenID:  tokenID,
				Spender:  mart.Address("short"),
			},
			WantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.Msg.Validate(); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected validation error: %+v", err)
			}
		})
	}
}

func TestTransferMsgValidate(t *testing.T) {
	tokenID := []byte{0, 0, 0, 0, 0, 0, 0, 1}

	cases := map[string]struct {
		Msg     TransferMsg
		WantErr *errors.Error
	}{
		"valid message": {
			Msg: TransferMsg{
				Metadata:    &mart.Metadata{Schema: 1},
				TokenID:     tokenID,
				Source:      mart.Address("source-address------"),
				Destination: mart.Address("destination-address-"),
			},
		},
		"missing token id": {
			Msg: TransferMsg{
				Metadata:    &mart.Metadata{Schema: 1},
				Source:      mart.Address("source-address------"),
				Destination: mart.Address("destination-address-"),
			},
			WantErr: errors.ErrEmpty,
		},
		"missing source": {
			Msg: TransferMsg{
				Metadata:    &mart.Metadata{Schema: 1},
				TokenID:     tokenID,
				Destination: mart.Address("destination-address-"),
			},
			WantErr: errors.ErrEmpty,
		},
		"missing destination": {
			Msg: TransferMsg{
				Metadata: &mart.Metadata{Schema: 1},
				TokenID:  tokenID,
				Source:   mart.Address("source-address------"),
			},
			WantErr: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.Msg.Validate(); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected validation error: %+v", err)
			}
		})
	}
}
