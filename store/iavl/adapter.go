package iavl

import (
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"

	"github.com/tokenmart/mart/store"
)

// DefaultCacheSize is the number of tree nodes to keep in memory
const DefaultCacheSize = 10000

// CommitStore manages an iavl committed state
type CommitStore struct {
	tree *iavl.MutableTree
}

var _ store.CommitKVStore = CommitStore{}

// NewCommitStore creates a new store with disk backing under the given
// directory. The name is used as the database file name.
func NewCommitStore(path, name string) CommitStore {
	db := dbm.NewDB(name, dbm.GoLevelDBBackend, path)
	return CommitStore{
		tree: iavl.NewMutableTree(db, DefaultCacheSize),
	}
}

// MockCommitStore returns a CommitStore backed by memory,
// useful for tests. There is no persistence here....
func MockCommitStore() CommitStore {
	return CommitStore{
		tree: iavl.NewMutableTree(dbm.NewMemDB(), DefaultCacheSize),
	}
}

// Get returns the value at the last committed state.
// Returns nil iff key doesn't exist.
func (s CommitStore) Get(key []byte) ([]byte, error) {
	_, value := s.tree.GetVersioned(key, s.tree.Version())
	return value, nil
}

// Commit the next version to disk, and returns info
func (s CommitStore) Commit() (store.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return store.CommitID{}, err
	}
	return store.CommitID{
		Version: version,
		Hash:    hash,
	}, nil
}

// LoadLatestVersion loads the latest persisted version.
// If there was a crash during the last commit, it is guaranteed
// to return a stable state, even if older.
func (s CommitStore) LoadLatestVersion() error {
	_, err := s.tree.Load()
	return err
}

// LatestVersion returns info on the latest version saved to disk
func (s CommitStore) LatestVersion() (store.CommitID, error) {
	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}, nil
}

// CacheWrap gives us a savepoint to perform actions on the working state.
// Write applies the changes to the tree, Commit must be called separately
// to persist them to disk.
func (s CommitStore) CacheWrap() store.KVCacheWrap {
	tr := treeStore{tree: s.tree}
	return store.NewBTreeCacheWrap(tr, tr.NewBatch(), nil)
}

// treeStore adapts the mutable working state of the iavl tree to the
// KVStore interface
type treeStore struct {
	tree *iavl.MutableTree
}

var _ store.KVStore = treeStore{}

// Get returns nil iff key doesn't exist. Panics on nil key.
func (t treeStore) Get(key []byte) ([]byte, error) {
	_, value := t.tree.Get(key)
	return value, nil
}

// Has checks if a key exists. Panics on nil key.
func (t treeStore) Has(key []byte) (bool, error) {
	return t.tree.Has(key), nil
}

// Set adds a new value to the working state
func (t treeStore) Set(key, value []byte) error {
	t.tree.Set(key, value)
	return nil
}

// Delete removes from the working state
func (t treeStore) Delete(key []byte) error {
	t.tree.Remove(key)
	return nil
}

// NewBatch returns a batch that can write multiple ops atomically
func (t treeStore) NewBatch() store.Batch {
	return store.NewNonAtomicBatch(t)
}

// Iterator over a domain of keys in ascending order. End is exclusive.
func (t treeStore) Iterator(start, end []byte) (store.Iterator, error) {
	return t.iterate(start, end, true), nil
}

// ReverseIterator over a domain of keys in descending order. End is
// exclusive.
func (t treeStore) ReverseIterator(start, end []byte) (store.Iterator, error) {
	return t.iterate(start, end, false), nil
}

// iterate preloads the whole range into memory. The iavl tree does not
// expose a cursor API, so this is the simplest correct implementation.
func (t treeStore) iterate(start, end []byte, ascending bool) store.Iterator {
	var res []store.Model
	add := func(key []byte, value []byte) bool {
		res = append(res, store.Model{Key: key, Value: value})
		return false
	}
	t.tree.IterateRange(start, end, ascending, add)
	return store.NewSliceIterator(res)
}
