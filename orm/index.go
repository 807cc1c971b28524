package orm

import (
	"bytes"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
)

// Index maintains a secondary index on bucket data.
type Index interface {
	// Name returns the name of this index.
	Name() string

	// Update updates the index. It should be called when any of the bucket
	// entities has changed in the store.
	//
	// prev == nil means insert
	// save == nil means delete
	// both == nil is error
	// if both != nil and prev.Key() != save.Key() this is an error
	Update(db mart.KVStore, prev Object, save Object) error

	// Keys returns an iterator that returns all entity keys that were
	// indexed under given value.
	//
	// Values of returned iterator are always nil to optimize for a lazy
	// loading flows and avoid loading into memory values from the database
	// when they might not be needed.
	Keys(db mart.ReadOnlyKVStore, value []byte) mart.Iterator

	// Query handles queries from the QueryRouter.
	Query(db mart.ReadOnlyKVStore, mod string, data []byte) ([]mart.Model, error)
}

const compactIdxPrefix = "_i."

// Indexer calculates the secondary index key for a given object
type Indexer func(Object) ([]byte, error)

// MultiKeyIndexer calculates the secondary index keys for a given object
type MultiKeyIndexer func(Object) ([][]byte, error)

// compactIndex is an index implementation that stores all indexed entities as
// a set, serialized and stored under a single key.
//
// It is indexed by an arbitrary key returned by Indexer.
// The value is one primary key (unique),
// Or an array of primary keys (!unique).
type compactIndex struct {
	name   string
	id     []byte
	unique bool
	index  MultiKeyIndexer
	refKey func([]byte) []byte
}

var _ mart.QueryHandler = compactIndex{}

// NewMultiKeyIndex constructs an index with multi key indexer.
// Indexer calculates the index for an object
// unique enforces a unique constraint on the index
// refKey calculates the absolute dbkey for a ref
func NewMultiKeyIndex(name string, indexer MultiKeyIndexer, unique bool, refKey func([]byte) []byte) Index {
	return compactIndex{
		name:   name,
		id:     append([]byte(compactIdxPrefix), []byte(name+":")...),
		index:  indexer,
		unique: unique,
		refKey: refKey,
	}
}

func asMultiKeyIndexer(indexer Indexer) MultiKeyIndexer {
	return func(obj Object) ([][]byte, error) {
		key, err := indexer(obj)
		switch {
		case err != nil:
			return nil, err
		case key == nil:
			return nil, nil
		}
		return [][]byte{key}, nil
	}
}

func (i compactIndex) Name() string {
	return i.name
}

// indexKey is the full key we store in the db, including prefix
// We copy into a new array rather than use append, as we don't
// want consecutive calls to overwrite the same byte array.
func (i compactIndex) indexKey(key []byte) []byte {
	l := len(i.id)
	out := make([]byte, l+len(key))
	copy(out, i.id)
	copy(out[l:], key)
	return out
}

// Update handles updating the reference to the object in
// the secondary index.
//
// prev == nil means insert
// save == nil means delete
// both == nil is error
// if both != nil and prev.Key() != save.Key() this is an error
//
// Otherwise, it will check indexer(prev) and indexer(save)
// and make sure the key is now stored in the right location
func (i compactIndex) Update(db mart.KVStore, prev Object, save Object) error {
	type s struct{ a, b bool }
	sw := s{prev == nil, save == nil}
	switch sw {
	case s{true, true}:
		return errors.Wrap(errors.ErrHuman, "update requires at least one non-nil object")
	case s{true, false}:
		keys, err := i.index(save)
		if err != nil {
			return err
		}
		for _, key := range keys {
			if err := i.insert(db, key, save.Key()); err != nil {
				return err
			}
		}
		return nil
	case s{false, true}:
		keys, err := i.index(prev)
		if err != nil {
			return err
		}
		for _, key := range keys {
			if err := i.remove(db, key, prev.Key()); err != nil {
				return err
			}
		}
		return nil
	case s{false, false}:
		return i.move(db, prev, save)
	}
	return errors.Wrap(errors.ErrHuman, "you have violated the rules of boolean logic")
}

// Keys returns a list of all entity keys that were indexed under given value.
func (i compactIndex) Keys(db mart.ReadOnlyKVStore, index []byte) mart.Iterator {
	key := i.indexKey(index)
	val, err := db.Get(key)
	if err != nil {
		return &failedIterator{err: err}
	}
	if val == nil {
		return &failedIterator{err: errors.ErrIteratorDone}
	}
	if i.unique {
		return &keysIterator{keys: [][]byte{val}}
	}

	var data MultiRef
	if err := data.Unmarshal(val); err != nil {
		return &failedIterator{err: err}
	}
	return &keysIterator{keys: data.GetRefs()}
}

type failedIterator struct {
	err error
}

var _ mart.Iterator = (*failedIterator)(nil)

func (it *failedIterator) Next() ([]byte, []byte, error) {
	return nil, nil, it.err
}

func (failedIterator) Release() {}

type keysIterator struct {
	keys [][]byte
}

var _ mart.Iterator = (*keysIterator)(nil)

func (it *keysIterator) Next() ([]byte, []byte, error) {
	if len(it.keys) == 0 {
		return nil, nil, errors.ErrIteratorDone
	}
	key := it.keys[0]
	it.keys = it.keys[1:]
	return key, nil, nil
}

func (keysIterator) Release() {}

// consumeIteratorKeys returns a list of all keys that given iterator returns.
// This function should be used only for iterators when the result size is
// known to be small as all results are kept in memory.
// This function releases the iterator.
func consumeIteratorKeys(it mart.Iterator) ([][]byte, error) {
	defer it.Release()

	var keys [][]byte
	for {
		switch k, _, err := it.Next(); {
		case err == nil:
			keys = append(keys, k)
		case errors.ErrIteratorDone.Is(err):
			return keys, nil
		default:
			return keys, err
		}
	}
}

// getPrefix returns all references that have an index that
// begins with a given prefix
func (i compactIndex) getPrefix(db mart.ReadOnlyKVStore, prefix []byte) ([][]byte, error) {
	dbPrefix := i.indexKey(prefix)
	itr, err := db.Iterator(prefixRange(dbPrefix))
	if err != nil {
		return nil, err
	}
	defer itr.Release()

	var data [][]byte
	_, value, err := itr.Next()
	for err == nil {
		if i.unique {
			data = append(data, value)
		} else {
			tmp := new(MultiRef)
			if err := tmp.Unmarshal(value); err != nil {
				return nil, err
			}
			data = append(data, tmp.Refs...)
		}
		_, value, err = itr.Next()
	}
	if !errors.ErrIteratorDone.Is(err) {
		return nil, err
	}
	return data, nil
}

// Query handles queries from the QueryRouter
func (i compactIndex) Query(db mart.ReadOnlyKVStore, mod string, data []byte) ([]mart.Model, error) {
	switch mod {
	case mart.KeyQueryMod:
		refs, err := consumeIteratorKeys(i.Keys(db, data))
		if err != nil {
			return nil, err
		}
		return i.loadRefs(db, refs)
	case mart.PrefixQueryMod:
		refs, err := i.getPrefix(db, data)
		if err != nil {
			return nil, err
		}
		return i.loadRefs(db, refs)
	default:
		return nil, errors.Wrap(errors.ErrHuman, "not implemented: "+mod)
	}
}

func (i compactIndex) loadRefs(db mart.ReadOnlyKVStore, refs [][]byte) ([]mart.Model, error) {
	if len(refs) == 0 {
		return nil, nil
	}
	res := make([]mart.Model, len(refs))
	for j, ref := range refs {
		key := i.refKey(ref)
		value, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		res[j] = mart.Model{
			Key:   key,
			Value: value,
		}
	}
	return res, nil
}

func (i compactIndex) move(db mart.KVStore, prev Object, save Object) error {
	// if the primary key is not equal, we have a problem
	if !bytes.Equal(prev.Key(), save.Key()) {
		return errors.Wrap(errors.ErrImmutable, "cannot modify the primary key of an object")
	}

	oldKeys, err := i.index(prev)
	if err != nil {
		return err
	}
	newKeys, err := i.index(save)
	if err != nil {
		return err
	}
	keysToAdd := subtract(newKeys, oldKeys)
	keysToRemove := subtract(oldKeys, newKeys)

	// check unique constraints first
	for _, newKey := range keysToAdd {
		if i.unique {
			k := i.indexKey(newKey)
			val, err := db.Get(k)
			if err != nil {
				return err
			}
			if val != nil {
				return errors.Wrap(errors.ErrDuplicate, i.name)
			}
		}
	}

	// remove unused keys
	for _, oldKey := range keysToRemove {
		if err = i.remove(db, oldKey, prev.Key()); err != nil {
			return err
		}
	}

	// add new keys
	for _, newKey := range keysToAdd {
		if err = i.insert(db, newKey, prev.Key()); err != nil {
			return err
		}
	}
	return nil
}

// subtract returns all elements of minuend that are not in subtrahend.
func subtract(minuend [][]byte, subtrahend [][]byte) [][]byte {
	if minuend == nil {
		return nil
	}
	r := make([][]byte, 0)
OUTER:
	for _, m := range minuend {
		for _, s := range subtrahend {
			if bytes.Equal(m, s) {
				continue OUTER
			}
		}
		r = append(r, m)
	}
	return r
}

func (i compactIndex) remove(db mart.KVStore, index []byte, pk []byte) error {
	// don't deal with empty keys
	if len(index) == 0 {
		return nil
	}

	key := i.indexKey(index)
	cur, err := db.Get(key)
	if err != nil {
		return err
	}
	if cur == nil {
		return errors.Wrap(errors.ErrNotFound, "cannot remove index from nothing")
	}
	if i.unique {
		// if something else was here, don't delete
		if !bytes.Equal(cur, pk) {
			return errors.Wrap(errors.ErrNotFound, "cannot remove index from invalid object")
		}
		return db.Delete(key)
	}

	// otherwise, remove one from a list....
	var data = new(MultiRef)
	if err := data.Unmarshal(cur); err != nil {
		return err
	}
	if err := data.Remove(pk); err != nil {
		return err
	}
	// nothing left, delete this key
	if len(data.Refs) == 0 {
		return db.Delete(key)
	}
	// other left, just update state
	save, err := data.Marshal()
	if err != nil {
		return err
	}

	return db.Set(key, save)
}

func (i compactIndex) insert(db mart.KVStore, index []byte, pk []byte) error {
	// don't deal with empty keys
	if len(index) == 0 {
		return nil
	}

	key := i.indexKey(index)
	cur, err := db.Get(key)
	if err != nil {
		return err
	}

	if i.unique {
		if cur != nil {
			return errors.Wrap(errors.ErrDuplicate, i.name)
		}

		return db.Set(key, pk)
	}

	// otherwise, add one to a list....
	var data = new(MultiRef)
	if cur != nil {
		if err := data.Unmarshal(cur); err != nil {
			return err
		}
	}
	if err := data.Add(pk); err != nil {
		return err
	}

	// other left, just update state
	save, err := data.Marshal()
	if err != nil {
		return err
	}

	return db.Set(key, save)
}
