package nft

import (
	"strings"
	"testing"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
)

func TestTokenValidate(t *testing.T) {
	cases := map[string]struct {
		Token   Token
		WantErr *errors.Error
	}{
		"valid token": {
			Token: Token{
				Metadata: &mart.Metadata{Schema: 1},
				Owner:    mart.Address("owner-address-------"),
				URI:      "ipfs://QmExample",
			},
		},
		"approved spender is allowed": {
			Token: Token{
				Metadata: &mart.Metadata{Schema: 1},
				Owner:    mart.Address("owner-address-------"),
				Approved: mart.Address("spender-address-----"),
				URI:      "ipfs://QmExample",
			},
		},
		"missing metadata": {
			Token: Token{
				Owner: mart.Address("owner-address-------"),
				URI:   "ipfs://QmExample",
			},
			WantErr: errors.ErrMetadata,
		},
		"missing owner": {
			Token: Token{
				Metadata: &mart.Metadata{Schema: 1},
				URI:      "ipfs://QmExample",
			},
			WantErr: errors.ErrEmpty,
		},
		"invalid approved address": {
			Token: Token{
				Metadata: &mart.Metadata{Schema: 1},
				Owner:    mart.Address("owner-address-------"),
				Approved: mart.Address("short"),
				URI:      "ipfs://QmExample",
			},
			WantErr: errors.ErrInput,
		},
		"uri too long": {
			Token: Token{
				Metadata: &mart.Metadata{Schema: 1},
				Owner:    mart.Address("owner-address-------"),
				URI:      strings.Repeat("x", maxURISize+1),
			},
			WantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.Token.Validate(); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected validation error: %+v", err)
			}
		})
	}
}
