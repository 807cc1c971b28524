package coin

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/marttest/assert"
)

func TestCompareCoin(t *testing.T) {
	cases := map[string]struct {
		a       Coin
		b       Coin
		wantRes int
	}{
		"a greater than b": {
			a:       NewCoin(20, 1234, "ABC"),
			b:       NewCoin(19, 999999999, "ABC"),
			wantRes: 1,
		},
		"a smaller than b": {
			a:       NewCoin(0, -2, "FOO"),
			b:       NewCoin(0, 1, "FOO"),
			wantRes: -1,
		},
		"a greater than b and both negative": {
			a:       NewCoin(-4, -2456, "BAR"),
			b:       NewCoin(-4, -4567, "BAR"),
			wantRes: 1,
		},
		"zero value coins": {
			a:       Coin{},
			b:       Coin{},
			wantRes: 0,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			res := tc.a.Compare(tc.b)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestCoinNegative(t *testing.T) {
	a := NewCoin(456, 985, "ABC")

	n := a.Negative()

	assert.Equal(t, a.Ticker, n.Ticker)
	assert.Equal(t, a.Whole, -n.Whole)
	assert.Equal(t, a.Fractional, -n.Fractional)

	if nn := a.Negative().Negative(); !a.Equals(nn) {
		t.Fatal("double negation malformed the coin")
	}
}

func TestValidCoin(t *testing.T) {
	cases := map[string]struct {
		coin    Coin
		wantErr *errors.Error
	}{
		"valid coin": {
			coin:    NewCoin(42, 1234567, "MKT"),
			wantErr: nil,
		},
		"missing ticker": {
			coin:    NewCoin(1, 0, ""),
			wantErr: errors.ErrCurrency,
		},
		"ticker too short": {
			coin:    NewCoin(1, 0, "AB"),
			wantErr: errors.ErrCurrency,
		},
		"whole out of range": {
			coin:    NewCoin(MaxInt+1, 0, "MKT"),
			wantErr: errors.ErrOverflow,
		},
		"fractional out of range": {
			coin:    NewCoin(0, FracUnit, "MKT"),
			wantErr: errors.ErrOverflow,
		},
		"mismatched sign": {
			coin:    Coin{Whole: 4, Fractional: -123, Ticker: "MKT"},
			wantErr: errors.ErrState,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.coin.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
			} else {
				assert.IsErr(t, tc.wantErr, err)
			}
		})
	}
}

func TestAddCoin(t *testing.T) {
	base := NewCoin(17, 2345566, "DEF")
	cases := map[string]struct {
		a, b    Coin
		wantRes Coin
		wantErr *errors.Error
	}{
		"plus and minus equals zero": {
			a:       base,
			b:       base.Negative(),
			wantRes: NewCoin(0, 0, "DEF"),
		},
		"wrong currencies": {
			a:       NewCoin(1, 2, "FOO"),
			b:       NewCoin(2, 3, "BAR"),
			wantErr: errors.ErrCurrency,
		},
		"normal math": {
			a:       NewCoin(7, 5000, "ABC"),
			b:       NewCoin(-4, -12000, "ABC"),
			wantRes: NewCoin(2, 999993000, "ABC"),
		},
		"carry over": {
			a:       NewCoin(1, 900000000, "ABC"),
			b:       NewCoin(1, 300000000, "ABC"),
			wantRes: NewCoin(3, 200000000, "ABC"),
		},
		"overflow": {
			a:       NewCoin(MaxInt, 0, "DIN"),
			b:       NewCoin(1, 0, "DIN"),
			wantErr: errors.ErrOverflow,
		},
		"adding to zero coin": {
			a:       NewCoin(0, 0, ""),
			b:       NewCoin(1, 2, "DIN"),
			wantRes: NewCoin(1, 2, "DIN"),
		},
		"adding a zero coin": {
			a:       NewCoin(1, 2, "DIN"),
			b:       NewCoin(0, 0, ""),
			wantRes: NewCoin(1, 2, "DIN"),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			res, err := tc.a.Add(tc.b)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestCoinGTE(t *testing.T) {
	cases := map[string]struct {
		coin    Coin
		other   Coin
		wantGte bool
	}{
		"greater by fraction": {
			coin:    NewCoin(1, 1, "DOGE"),
			other:   NewCoin(1, 0, "DOGE"),
			wantGte: true,
		},
		"equal": {
			coin:    NewCoin(1, 2, "DOGE"),
			other:   NewCoin(1, 2, "DOGE"),
			wantGte: true,
		},
		"different type": {
			coin:    NewCoin(1, 2, "DOGE"),
			other:   NewCoin(1, 2, "BTC"),
			wantGte: false,
		},
		"less than": {
			coin:    NewCoin(0, 2, "DOGE"),
			other:   NewCoin(1, 1, "DOGE"),
			wantGte: false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.wantGte, tc.coin.IsGTE(tc.other))
		})
	}
}

func TestCoinMultiply(t *testing.T) {
	cases := map[string]struct {
		coin    Coin
		times   int64
		want    Coin
		wantErr *errors.Error
	}{
		"zero value coin": {
			coin:  NewCoin(0, 0, "DOGE"),
			times: 666,
			want:  NewCoin(0, 0, "DOGE"),
		},
		"simple multiply": {
			coin:  NewCoin(1, 0, "DOGE"),
			times: 3,
			want:  NewCoin(3, 0, "DOGE"),
		},
		"multiply with normalization": {
			coin:  NewCoin(0, FracUnit/2, "DOGE"),
			times: 3,
			want:  NewCoin(1, FracUnit/2, "DOGE"),
		},
		"multiply zero times": {
			coin:  NewCoin(1, 1, "DOGE"),
			times: 0,
			want:  NewCoin(0, 0, "DOGE"),
		},
		"multiply negative times": {
			coin:  NewCoin(1, 1, "DOGE"),
			times: -2,
			want:  NewCoin(-2, -2, "DOGE"),
		},
		"overflow of a whole value": {
			coin:    NewCoin(math.MaxInt64/2, 0, "DOGE"),
			times:   3,
			wantErr: errors.ErrOverflow,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := tc.coin.Multiply(tc.times)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCoinDivide(t *testing.T) {
	cases := map[string]struct {
		total    Coin
		pieces   int64
		wantOne  Coin
		wantRest Coin
		wantErr  *errors.Error
	}{
		"split into equal pieces without rest": {
			total:    NewCoin(7, 11, "BTC"),
			pieces:   7,
			wantOne:  NewCoin(1, 1, "BTC"),
			wantRest: NewCoin(0, 4, "BTC"),
		},
		"split into one piece": {
			total:    NewCoin(7, 11, "BTC"),
			pieces:   1,
			wantOne:  NewCoin(7, 11, "BTC"),
			wantRest: NewCoin(0, 0, "BTC"),
		},
		"split whole with leftover": {
			total:    NewCoin(4, 0, "BTC"),
			pieces:   3,
			wantOne:  NewCoin(1, 333333333, "BTC"),
			wantRest: NewCoin(0, 1, "BTC"),
		},
		"zero pieces": {
			total:   NewCoin(4, 0, "BTC"),
			pieces:  0,
			wantErr: errors.ErrInput,
		},
		"negative pieces": {
			total:   NewCoin(4, 0, "BTC"),
			pieces:  -1,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			gotOne, gotRest, err := tc.total.Divide(tc.pieces)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.wantOne, gotOne)
			assert.Equal(t, tc.wantRest, gotRest)
		})
	}
}

func TestCoinUnmarshalJSON(t *testing.T) {
	cases := map[string]struct {
		json     string
		wantErr  bool
		wantCoin Coin
	}{
		"human readable format": {
			json:     `"4.000000002 DOGE"`,
			wantCoin: NewCoin(4, 2, "DOGE"),
		},
		"human readable format, negative": {
			json:     `"-4.5 DOGE"`,
			wantCoin: NewCoin(-4, -FracUnit/2, "DOGE"),
		},
		"human readable format, no fractional": {
			json:     `"1 DOGE"`,
			wantCoin: NewCoin(1, 0, "DOGE"),
		},
		"structure format": {
			json:     `{"whole": 4, "fractional": 2, "ticker": "DOGE"}`,
			wantCoin: NewCoin(4, 2, "DOGE"),
		},
		"invalid human readable ticker": {
			json:    `"4 dog"`,
			wantErr: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got Coin
			err := json.Unmarshal([]byte(tc.json), &got)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.wantCoin, got)
		})
	}
}

func TestCoinString(t *testing.T) {
	cases := map[string]struct {
		coin Coin
		want string
	}{
		"whole only": {
			coin: NewCoin(5, 0, "MKT"),
			want: "5 MKT",
		},
		"with fractional": {
			coin: NewCoin(5, FracUnit/2, "MKT"),
			want: "5.5 MKT",
		},
		"tiny fractional": {
			coin: NewCoin(0, 1, "MKT"),
			want: "0.000000001 MKT",
		},
		"no ticker": {
			coin: NewCoin(1, 0, ""),
			want: "1",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.coin.String())
		})
	}
}
