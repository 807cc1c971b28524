package market

import (
	"testing"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/coin"
	"github.com/tokenmart/mart/errors"
)

func TestListingValidate(t *testing.T) {
	cases := map[string]struct {
		Listing Listing
		WantErr *errors.Error
	}{
		"valid listing": {
			Listing: Listing{
				Metadata: &mart.Metadata{Schema: 1},
				Seller:   mart.Address("seller-address------"),
				Price:    coin.NewCoinp(10, 0, "MKT"),
			},
		},
		"missing metadata": {
			Listing: Listing{
				Seller: mart.Address("seller-address------"),
				Price:  coin.NewCoinp(10, 0, "MKT"),
			},
			WantErr: errors.ErrMetadata,
		},
		"missing seller": {
			Listing: Listing{
				Metadata: &mart.Metadata{Schema: 1},
				Price:    coin.NewCoinp(10, 0, "MKT"),
			},
			WantErr: errors.ErrEmpty,
		},
		"missing price": {
			Listing: Listing{
				Metadata: &mart.Metadata{Schema: 1},
				Seller:   mart.Address("seller-address------"),
			},
			WantErr: errors.ErrEmpty,
		},
		"zero price": {
			Listing: Listing{
				Metadata: &mart.Metadata{Schema: 1},
				Seller:   mart.Address("seller-address------"),
				Price:    coin.NewCoinp(0, 0, "MKT"),
			},
			WantErr: errors.ErrAmount,
		},
		"negative price": {
			Listing: Listing{
				Metadata: &mart.Metadata{Schema: 1},
				Seller:   mart.Address("seller-address------"),
				Price:    coin.NewCoinp(-4, 0, "MKT"),
			},
			WantErr: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.Listing.Validate(); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected validation error: %+v", err)
			}
		})
	}
}

func TestConfigurationValidate(t *testing.T) {
	cases := map[string]struct {
		Conf    Configuration
		WantErr *errors.Error
	}{
		"valid configuration": {
			Conf: Configuration{
				Metadata:     &mart.Metadata{Schema: 1},
				Owner:        mart.Address("owner-address-------"),
				FeePercent:   2,
				FeeCollector: mart.Address("collector-address---"),
			},
		},
		"no fee needs no collector": {
			Conf: Configuration{
				Metadata: &mart.Metadata{Schema: 1},
				Owner:    mart.Address("owner-address-------"),
			},
		},
		"fee above hundred percent": {
			Conf: Configuration{
				Metadata:     &mart.Metadata{Schema: 1},
				Owner:        mart.Address("owner-address-------"),
				FeePercent:   101,
				FeeCollector: mart.Address("collector-address---"),
			},
			WantErr: errors.ErrInput,
		},
		"fee without a collector": {
			Conf: Configuration{
				Metadata:   &mart.Metadata{Schema: 1},
				Owner:      mart.Address("owner-address-------"),
				FeePercent: 2,
			},
			WantErr: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.Conf.Validate(); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected validation error: %+v", err)
			}
		})
	}
}
