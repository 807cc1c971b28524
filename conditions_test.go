package mart_test

import (
	"encoding/json"
	"testing"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/crypto/bech32"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/marttest/assert"
)

func TestConditionParse(t *testing.T) {
	cond := mart.NewCondition("market", "exchange", []byte("listings"))
	assert.Nil(t, cond.Validate())

	ext, typ, data, err := cond.Parse()
	assert.Nil(t, err)
	assert.Equal(t, "market", ext)
	assert.Equal(t, "exchange", typ)
	assert.Equal(t, []byte("listings"), data)

	var broken mart.Condition = []byte("no-separators-here")
	if err := broken.Validate(); !errors.ErrInput.Is(err) {
		t.Fatalf("unexpected validation error: %+v", err)
	}
	if _, _, _, err := broken.Parse(); !errors.ErrInput.Is(err) {
		t.Fatalf("unexpected parse error: %+v", err)
	}
}

func TestConditionAddress(t *testing.T) {
	a := mart.NewCondition("sigs", "ed25519", []byte("first")).Address()
	b := mart.NewCondition("sigs", "ed25519", []byte("second")).Address()

	assert.Nil(t, a.Validate())
	assert.Equal(t, mart.AddressLength, len(a))
	if a.Equals(b) {
		t.Fatal("different conditions must not share an address")
	}
}

func TestAddressUnmarshalJSON(t *testing.T) {
	bech, err := bech32.Encode("tio", []byte("12345678901234567890"))
	if err != nil {
		t.Fatalf("cannot encode bech32: %s", err)
	}

	cases := map[string]struct {
		json     string
		wantErr  *errors.Error
		wantAddr mart.Address
	}{
		"default decoding": {
			json:     `"3132333435363738393031323334353637383930"`,
			wantAddr: mart.Address("12345678901234567890"),
		},
		"hex decoding": {
			json:     `"hex:3132333435363738393031323334353637383930"`,
			wantAddr: mart.Address("12345678901234567890"),
		},
		"cond decoding": {
			json:     `"cond:foo/bar/636f6e646974696f6e64617461"`,
			wantAddr: mart.NewCondition("foo", "bar", []byte("conditiondata")).Address(),
		},
		"bech32 decoding": {
			json:     `"bech32:` + string(bech) + `"`,
			wantAddr: mart.Address("12345678901234567890"),
		},
		"invalid condition format": {
			json:    `"cond:foo/636f6e646974696f6e64617461"`,
			wantErr: errors.ErrInput,
		},
		"invalid condition data": {
			json:    `"cond:foo/bar/zzzzz"`,
			wantErr: errors.ErrInput,
		},
		"unknown format": {
			json:    `"foobar:xxx"`,
			wantErr: errors.ErrType,
		},
		"wrong length": {
			json:    `"616263"`,
			wantErr: errors.ErrInput,
		},
		"zero address": {
			json:     `""`,
			wantAddr: nil,
		},
		"zero hex address": {
			json:     `"hex:"`,
			wantAddr: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var a mart.Address
			err := json.Unmarshal([]byte(tc.json), &a)
			if tc.wantErr != nil {
				if !tc.wantErr.Is(err) {
					t.Fatalf("unexpected error: %+v", err)
				}
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.wantAddr, a)
		})
	}
}

func TestAddressMarshalJSONRoundTrip(t *testing.T) {
	addr := mart.NewCondition("token", "wallet", []byte("alice")).Address()
	raw, err := json.Marshal(addr)
	assert.Nil(t, err)

	var got mart.Address
	assert.Nil(t, json.Unmarshal(raw, &got))
	assert.Equal(t, addr, got)
}

func TestAddressValidate(t *testing.T) {
	if err := mart.Address(nil).Validate(); !errors.ErrEmpty.Is(err) {
		t.Fatalf("unexpected error for a missing address: %+v", err)
	}
	if err := mart.Address("too short").Validate(); !errors.ErrInput.Is(err) {
		t.Fatalf("unexpected error for a malformed address: %+v", err)
	}
	assert.Nil(t, mart.Address("12345678901234567890").Validate())
}

func TestNewAddress(t *testing.T) {
	if mart.NewAddress(nil) != nil {
		t.Fatal("nil data must produce a nil address")
	}
	addr := mart.NewAddress([]byte("some payload"))
	assert.Equal(t, mart.AddressLength, len(addr))
	assert.Nil(t, addr.Validate())
}
