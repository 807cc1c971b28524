package orm

import (
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
)

// prefixRange turns a prefix into (start, end) to create
// and iterator
func prefixRange(prefix []byte) ([]byte, []byte) {
	// special case: no prefix is whole range
	if len(prefix) == 0 {
		return nil, nil
	}

	// copy the prefix and update last byte
	end := make([]byte, len(prefix))
	copy(end, prefix)
	l := len(end) - 1
	end[l]++

	// wait, what if that overflowed the last byte? then we need to carry it
	for end[l] == 0 {
		if l == 0 {
			// we overflowed the whole key, range is unbounded above
			return prefix, nil
		}
		l--
		end[l]++
		end = end[:l+1]
	}
	return prefix, end
}

// queryPrefix returns a list of all db key-value pairs that
// begin with the given prefix
func queryPrefix(db mart.ReadOnlyKVStore, prefix []byte) ([]mart.Model, error) {
	itr, err := db.Iterator(prefixRange(prefix))
	if err != nil {
		return nil, err
	}
	defer itr.Release()

	var res []mart.Model
	for {
		key, value, err := itr.Next()
		switch {
		case err == nil:
			res = append(res, mart.Model{Key: key, Value: value})
		case errors.ErrIteratorDone.Is(err):
			return res, nil
		default:
			return nil, err
		}
	}
}
