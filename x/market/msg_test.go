package market

import (
	"testing"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/coin"
	"github.com/tokenmart/mart/errors"
)

func TestCreateListingMsgValidate(t *testing.T) {
	tokenID := []byte{0, 0, 0, 0, 0, 0, 0, 1}

	cases := map[string]struct {
		Msg     CreateListingMsg
		WantErr *errors.Error
	}{
		"valid message": {
			Msg: CreateListingMsg{
				Metadata: &mart.Metadata{Schema: 1},
				TokenID:  tokenID,
				Price:    coin.NewCoinp(10, 0, "MKT"),
			},
		},
		"missing metadata": {
			Msg: CreateListingMsg{
				TokenID: tokenID,
				Price:   coin.NewCoinp(10, 0, "MKT"),
			},
			WantErr: errors.ErrMetadata,
		},
		"missing token id": {
			Msg: CreateListingMsg{
				Metadata: &mart.Metadata{Schema: 1},
				Price:    coin.NewCoinp(10, 0, "MKT"),
			},
			WantErr: errors.ErrEmpty,
		},
		"token id of the wrong length": {
			Msg: CreateListingMsg{
				Metadata: &mart.Metadata{Schema: 1},
				TokenID:  []byte{1, 2, 3},
				Price:    coin.NewCoinp(10, 0, "MKT"),
			},
			WantErr: errors.ErrInput,
		},
		"missing price": {
			Msg: CreateListingMsg{
				Metadata: &mart.Metadata{Schema: 1},
				TokenID:  tokenID,
			},
			WantErr: errors.ErrEmpty,
		},
		"zero price": {
			Msg: CreateListingMsg{
				Metadata: &mart.Metadata{Schema: 1},
				TokenID:  tokenID,
				Price:    coin.NewCoinp(0, 0, "MKT"),
			},
			WantErr: errors.ErrAmount,
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

func TestBuyMsgValidate(t *testing.T) {
	cases := map[string]struct {
		Msg     BuyMsg
		WantErr *errors.Error
	}{
		"valid message": {
			Msg: BuyMsg{
				Metadata: &mart.Metadata{Schema: 1},
				TokenID:  []byte{0, 0, 0, 0, 0, 0, 0, 1},
			},
		},
		"missing token id": {
			Msg: BuyMsg{
				Metadata: &mart.Metadata{Schema: 1},
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

func TestUpdateConfigurationMsgValidate(t *testing.T) {
	cases := map[string]struct {
		Msg     UpdateConfigurationMsg
		WantErr *errors.Error
	}{
		"zero attributes are skipped": {
			Msg: UpdateConfigurationMsg{
				Metadata: &mart.Metadata{Schema: 1},
				Patch: &Configuration{
					FeePercent: 5,
				},
			},
		},
		"missing patch": {
			Msg: UpdateConfigurationMsg{
				Metadata: &mart.Metadata{Schema: 1},
			},
			WantErr: errors.ErrEmpty,
		},
		"fee above hundred percent": {
			Msg: UpdateConfigurationMsg{
				Metadata: &mart.Metadata{Schema: 1},
				Patch: &Configuration{
					FeePercent: 250,
				},
			},
			WantErr: errors.ErrInput,
		},
		"invalid owner address": {
			Msg: UpdateConfigurationMsg{
				Metadata: &mart.Metadata{Schema: 1},
				Patch: &Configuration{
					Owner: mart.Address("short"),
				},
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
