package app

import (
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
)

// ABCIStore exposes the abci.Query interface as a ReadOnlyKVStore
type ABCIStore struct {
	app abci.Application
}

var _ mart.ReadOnlyKVStore = (*ABCIStore)(nil)

func NewABCIStore(app abci.Application) *ABCIStore {
	return &ABCIStore{app: app}
}

// Get will query for exactly one value over the abci store.
// This can be wrapped with a bucket to reuse key/index/parse logic
func (a *ABCIStore) Get(key []byte) ([]byte, error) {
	query := a.app.Query(abci.RequestQuery{
		Path: "/",
		Data: key,
	})
	if query.Code != 0 {
		return nil, errors.Wrap(errors.ErrDatabase, query.Log)
	}
	var value ResultSet
	if err := value.Unmarshal(query.Value); err != nil {
		return nil, errors.Wrap(err, "unmarshal result set")
	}
	if len(value.Results) == 0 {
		return nil, nil
	}
	return value.Results[0], nil
}

// Has returns true if the given key is in the abci app store
func (a *ABCIStore) Has(key []byte) (bool, error) {
	value, err := a.Get(key)
	if err != nil {
		return false, err
	}
	return len(value) > 0, nil
}

// Iterator attempts to do a range iteration over the store.
// We only support prefix queries in the abci server for now.
// This client only supports listing everything...
func (a *ABCIStore) Iterator(start, end []byte) (mart.Iterator, error) {
	// TODO: support all prefix searches (later even more ranges)
	if start != nil || end != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "iterator only implemented for entire range")
	}

	query := a.app.Query(abci.RequestQuery{
		Path: "/?prefix",
		Data: nil,
	})
	if query.Code != 0 {
		return nil, errors.Wrap(errors.ErrDatabase, query.Log)
	}
	models, err := toModels(query.Key, query.Value)
	if err != nil {
		return nil, errors.Wrap(err, "cannot convert to model")
	}

	return NewSliceIterator(models), nil
}

func (a *ABCIStore) ReverseIterator(start, end []byte) (mart.Iterator, error) {
	// TODO: load normal iterator but then play it backwards?
	return nil, errors.Wrap(errors.ErrHuman, "not implemented")
}

func toModels(keys, values []byte) ([]mart.Model, error) {
	var k, v ResultSet
	if err := k.Unmarshal(keys); err != nil {
		return nil, errors.Wrap(err, "cannot unmarshal keys")
	}
	if err := v.Unmarshal(values); err != nil {
		return nil, errors.Wrap(err, "cannot unmarshal values")
	}
	return JoinResults(&k, &v)
}

// sliceIterator wraps an Iterator over a slice of models
type sliceIterator struct {
	data []mart.Model
	idx  int
}

// NewSliceIterator creates a new Iterator over this slice
func NewSliceIterator(data []mart.Model) mart.Iterator {
	return &sliceIterator{
		data: data,
	}
}

// Next moves the iterator to the next sequential key in the database, as
// defined by order of iteration. Returns ErrIteratorDone at the end.
func (s *sliceIterator) Next() ([]byte, []byte, error) {
	if s.idx >= len(s.data) {
		return nil, nil, errors.ErrIteratorDone
	}
	m := s.data[s.idx]
	s.idx++
	return m.Key, m.Value, nil
}

// Release releases the Iterator.
func (s *sliceIterator) Release() {
	s.data = nil
	s.idx = 0
}
