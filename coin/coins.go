package coin

import (
	"sort"
	"strings"

	"github.com/tokenmart/mart/errors"
)

// Coins is a set of coins. Most operations assume the set is normalized: at
// most one coin per ticker, sorted alphabetically by ticker, and no zero value
// coins.
type Coins []*Coin

// CombineCoins creates a Coins containing all given coins.
// It will sort them and combine duplicates to create a normalized form.
func CombineCoins(cs ...Coin) (Coins, error) {
	// Maybe more efficient...
	var err error
	s := make(Coins, 0)
	for _, c := range cs {
		s, err = s.Add(c)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Clone returns a copy that can be safely modified
func (cs Coins) Clone() Coins {
	res := make(Coins, len(cs))
	for i, c := range cs {
		res[i] = c.Clone()
	}
	return res
}

// Add modifies the set, to increase the holdings by c
func (cs Coins) Add(c Coin) (Coins, error) {
	// We ignore zero values
	if c.IsZero() {
		return cs, nil
	}

	has, i := cs.findCoin(c.Ticker)
	// add to existing coin
	if has != nil {
		sum, err := has.Add(c)
		if err != nil {
			return nil, err
		}
		// if the result is zero, remove this currency
		if sum.IsZero() {
			return append(cs[:i], cs[i+1:]...), nil
		}
		cs[i] = &sum
		return cs, nil
	}

	// special case append to end
	if i == len(cs) {
		return append(cs, &c), nil
	}

	// insert in beginning or middle (with one alloc)
	res := append(cs, nil)
	copy(res[i+1:], res[i:])
	res[i] = &c
	return res, nil
}

// Subtract modifies the set, to decrease the holdings by c.
// The set may contain negative amounts in individual currencies
// after this, which may be interpreted as debt.
func (cs Coins) Subtract(c Coin) (Coins, error) {
	return cs.Add(c.Negative())
}

// Combine will create a new Coins adding all the coins
// of s and o together.
func (cs Coins) Combine(o Coins) (Coins, error) {
	res := cs.Clone()
	for _, c := range o {
		var err error
		res, err = res.Add(*c)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Contains returns true if there is at least that much
// coin in the Coins. If it returns true, then:
//   cs.Remove(c).IsNonNegative() == true
func (cs Coins) Contains(c Coin) bool {
	has, _ := cs.findCoin(c.Ticker)
	if has == nil {
		return false
	}
	return has.IsGTE(c)
}

// findCoin returns a coin and the index it was found at.
// If there was no coin with this ticker, return nil, along with
// the index it should be inserted at to maintain order
func (cs Coins) findCoin(ticker string) (*Coin, int) {
	for i, c := range cs {
		switch strings.Compare(c.Ticker, ticker) {
		case -1:
			continue
		case 0:
			return c, i
		case 1:
			return nil, i
		}
	}
	// hit the end, must append
	return nil, len(cs)
}

// Count returns the number of unique currencies in the Coins
func (cs Coins) Count() int {
	return len(cs)
}

// IsEmpty returns if nothing is in the set
func (cs Coins) IsEmpty() bool {
	return len(cs) == 0
}

// IsPositive returns true there is at least one coin
// and all coins are positive
func (cs Coins) IsPositive() bool {
	return !cs.IsEmpty() && cs.IsNonNegative()
}

// IsNonNegative returns true if all coins are positive,
// but also accepts an empty set
func (cs Coins) IsNonNegative() bool {
	for _, c := range cs {
		if !c.IsPositive() {
			return false
		}
	}
	return true
}

// Equals returns true if both sets contain same coins
func (cs Coins) Equals(o Coins) bool {
	if len(cs) != len(o) {
		return false
	}
	for i := range cs {
		if !cs[i].Equals(*o[i]) {
			return false
		}
	}
	return true
}

// String provides a human readable representation of the set
func (cs Coins) String() string {
	if len(cs) == 0 {
		return "(empty)"
	}
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return strings.Join(out, ",")
}

// Validate requires that all coins are in alphabetical
// order and that each coin is valid in it's own right
//
// Zero amounts should not be present
func (cs Coins) Validate() error {
	last := ""
	for _, c := range cs {
		if err := c.Validate(); err != nil {
			return err
		}
		if c.IsZero() {
			return errors.Wrap(errors.ErrState, "zero coin")
		}
		if c.Ticker < last {
			return errors.Wrap(errors.ErrState, "not sorted")
		}
		if c.Ticker == last {
			return errors.Wrap(errors.ErrState, "duplicate ticker")
		}
		last = c.Ticker
	}
	return nil
}

// NormalizeCoins is a cleanup operation, to be used when dealing with user
// input, so that all the other functions can assume a normalized set.
// It sorts the coins, combines duplicates and removes zero values.
func NormalizeCoins(cs Coins) (Coins, error) {
	switch n := len(cs); n {
	case 0:
		return nil, nil
	case 1:
		if cs[0] == nil {
			return nil, errors.Wrap(errors.ErrState, "nil coin")
		}
		if cs[0].IsZero() {
			return nil, nil
		}
		return cs, nil
	case 2:
		if cs[0] == nil || cs[1] == nil {
			return nil, errors.Wrap(errors.ErrState, "nil coin")
		}
		switch n := strings.Compare(cs[0].Ticker, cs[1].Ticker); {
		case n == 0:
			sum, err := cs[0].Add(*cs[1])
			if err != nil {
				return nil, err
			}
			if sum.IsZero() {
				return nil, nil
			}
			return Coins{&sum}, nil
		case n > 0:
			cs[0], cs[1] = cs[1], cs[0]
		}
		return dropZeros(cs), nil
	default:
		res := cs.Clone()
		for _, c := range res {
			if c == nil {
				return nil, errors.Wrap(errors.ErrState, "nil coin")
			}
		}
		sort.Slice(res, func(i, j int) bool {
			return res[i].Ticker < res[j].Ticker
		})
		// combine duplicates
		for i := 0; i < len(res)-1; {
			if res[i].Ticker != res[i+1].Ticker {
				i++
				continue
			}
			sum, err := res[i].Add(*res[i+1])
			if err != nil {
				return nil, err
			}
			res[i] = &sum
			res = append(res[:i+1], res[i+2:]...)
		}
		return dropZeros(res), nil
	}
}

func dropZeros(cs Coins) Coins {
	res := cs[:0]
	for _, c := range cs {
		if !c.IsZero() {
			res = append(res, c)
		}
	}
	if len(res) == 0 {
		return nil
	}
	return res
}
