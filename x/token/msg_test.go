package token

import (
	"strings"
	"testing"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/coin"
	"github.com/tokenmart/mart/errors"
)

func TestSendMsgValidate(t *testing.T) {
	var (
		alice = mart.Address(strings.Repeat("1", 20))
		bob   = mart.Address(strings.Repeat("2", 20))
	)

	cases := map[string]struct {
		Msg     SendMsg
		WantErr *errors.Error
	}{
		"valid message": {
			Msg: SendMsg{
				Metadata:    &mart.Metadata{Schema: 1},
				Source:      alice,
				Destination: bob,
				Amount:      coin.NewCoinp(10, 0, "MKT"),
			},
		},
		"source is optional": {
			Msg: SendMsg{
				Metadata:    &mart.Metadata{Schema: 1},
				Destination: bob,
				Amount:      coin.NewCoinp(10, 0, "MKT"),
			},
		},
		"missing metadata": {
			Msg: SendMsg{
				Source:      alice,
				Destination: bob,
				Amount:      coin.NewCoinp(10, 0, "MKT"),
			},
			WantErr: errors.ErrMetadata,
		},
		"missing destination": {
			Msg: SendMsg{
				Metadata: &mart.Metadata{Schema: 1},
				Source:   alice,
				Amount:   coin.NewCoinp(10, 0, "MKT"),
			},
			WantErr: errors.ErrEmpty,
		},
		"missing amount": {
			Msg: SendMsg{
				Metadata:    &mart.Metadata{Schema: 1},
				Source:      alice,
				Destination: bob,
			},
			WantErr: errors.ErrAmount,
		},
		"non positive amount": {
			Msg: SendMsg{
				Metadata:    &mart.Metadata{Schema: 1},
				Source:      alice,
				Destination: bob,
				Amount:      coin.NewCoinp(0, 0, "MKT"),
			},
			WantErr: errors.ErrAmount,
		},
		"memo too long": {
			Msg: SendMsg{
				Metadata:    &mart.Metadata{Schema: 1},
				Source:      alice,
				Destination: bob,
				Amount:      coin.NewCoinp(10, 0, "MKT"),
				Memo:        strings.Repeat("x", maxMemoSize+1),
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
	spender := mart.Address(strings.Repeat("2", 20))

	cases := map[string]struct {
		Msg     ApproveMsg
		WantErr *errors.Error
	}{
		"valid message": {
			Msg: ApproveMsg{
				Metadata: &mart.Metadata{Schema: 1},
				Spender:  spender,
				Amount:   coin.NewCoinp(10, 0, "MKT"),
			},
		},
		"zero amount revokes and is valid": {
			Msg: ApproveMsg{
				Metadata: &mart.Metadata{Schema: 1},
				Spender:  spender,
				Amount:   coin.NewCoinp(0, 0, "MKT"),
			},
		},
		"missing metadata": {
			Msg: ApproveMsg{
				Spender: spender,
				Amount:  coin.NewCoinp(10, 0, "MKT"),
			},
			WantErr: errors.ErrMetadata,
		},
		"missing spender": {
			Msg: ApproveMsg{
				Metadata: &mart.Metadata{Schema: 1},
				Amount:   coin.NewCoinp(10, 0, "MKT"),
			},
			WantErr: errors.ErrEmpty,
		},
		"missing amount": {
			Msg: ApproveMsg{
				Metadata: &mart.Metadata{Schema: 1},
				Spender:  spender,
			},
			WantErr: errors.ErrEmpty,
		},
		"negative amount": {
			Msg: ApproveMsg{
				Metadata: &mart.Metadata{Schema: 1},
				Spender:  spender,
				Amount:   coin.NewCoinp(-4, 0, "MKT"),
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

func TestTransferFromMsgValidate(t *testing.T) {
	var (
		alice = mart.Address(strings.Repeat("1", 20))
		bob   = mart.Address(strings.Repeat("2", 20))
	)

	cases := map[string]struct {
		Msg     TransferFromMsg
		WantErr *errors.Error
	}{
		"valid message": {
			Msg: TransferFromMsg{
				Metadata:    &mart.Metadata{Schema: 1},
				Source:      alice,
				Destination: bob,
				Amount:      coin.NewCoinp(10, 0, "MKT"),
			},
		},
		"missing source": {
			Msg: TransferFromMsg{
				Metadata:    &mart.Metadata{Schema: 1},
				Destination: bob,
				Amount:      coin.NewCoinp(10, 0, "MKT"),
			},
			WantErr: errors.ErrEmpty,
		},
		"missing destination": {
			Msg: TransferFromMsg{
				Metadata: &mart.Metadata{Schema: 1},
				Source:   alice,
				Amount:   coin.NewCoinp(10, 0, "MKT"),
			},
			WantErr: errors.ErrEmpty,
		},
		"non positive amount": {
			Msg: TransferFromMsg{
				Metadata:    &mart.Metadata{Schema: 1},
				Source:      alice,
				Destination: bob,
				Amount:      coin.NewCoinp(0, 0, "MKT"),
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

func TestUpdateConfigurationMsgValidate(t *testing.T) {
	owner := mart.Address(strings.Repeat("1", 20))

	cases := map[string]struct {
		Msg     UpdateConfigurationMsg
		WantErr *errors.Error
	}{
		"valid full patch": {
			Msg: UpdateConfigurationMsg{
				Metadata: &mart.Metadata{Schema: 1},
				Patch: &Configuration{
					Metadata:     &mart.Metadata{Schema: 1},
					Owner:        owner,
					Ticker:       "MKT",
					FaucetAmount: coin.NewCoin(1000, 0, "MKT"),
				},
			},
		},
		"zero fields are skipped": {
			Msg: UpdateConfigurationMsg{
				Metadata: &mart.Metadata{Schema: 1},
				Patch: &Configuration{
					Ticker: "MKT",
				},
			},
		},
		"missing patch": {
			Msg: UpdateConfigurationMsg{
				Metadata: &mart.Metadata{Schema: 1},
			},
			WantErr: errors.ErrEmpty,
		},
		"invalid ticker": {
			Msg: UpdateConfigurationMsg{
				Metadata: &mart.Metadata{Schema: 1},
				Patch: &Configuration{
					Ticker: "this-is-not-a-ticker",
				},
			},
			WantErr: errors.ErrCurrency,
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
