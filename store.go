package mart

// ReadOnlyKVStore is a simple interface to read data.
type ReadOnlyKVStore interface {
	// Get returns nil iff key doesn't exist. Panics on nil key.
	Get(key []byte) ([]byte, error)

	// Has checks if a key exists. Panics on nil key.
	Has(key []byte) (bool, error)

	// Iterator over a domain of keys in ascending order. End is exclusive.
	// Start must be less than end, or the Iterator is invalid.
	// CONTRACT: No writes may happen within a domain while an iterator
	// exists over it.
	Iterator(start, end []byte) (Iterator, error)

	// ReverseIterator over a domain of keys in descending order. End is
	// exclusive. Start must be greater than end, or the Iterator is
	// invalid.
	// CONTRACT: No writes may happen within a domain while an iterator
	// exists over it.
	ReverseIterator(start, end []byte) (Iterator, error)
}

// KVStore is a simple interface to get/set data.
type KVStore interface {
	ReadOnlyKVStore

	// Set sets the key. Panics on nil key.
	Set(key, value []byte) error

	// Delete deletes the key. Panics on nil key.
	Delete(key []byte) error

	// NewBatch returns a batch that can write multiple ops atomically.
	NewBatch() Batch
}

// Batch groups writes to apply them in one call.
type Batch interface {
	SetDeleter
	Write() error
}

// SetDeleter is a minimal interface for writing data, used by Batch.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// Iterator allows us to access a set of items within a range of keys. These
// may all be preloaded, or loaded on demand.
//
//   Usage:
//
//   var itr Iterator = ...
//   defer itr.Release()
//
//   for {
//     k, v, err := itr.Next()
//     if err != nil { break }
//     ...
//   }
type Iterator interface {
	// Next moves the iterator to the next sequential key in the database,
	// as defined by order of iteration. It returns the key and value at
	// the new position, or errors.ErrIteratorDone when the end of the
	// range is reached.
	Next() (key, value []byte, err error)

	// Release releases the Iterator.
	Release()
}

// CacheableKVStore is a KVStore that supports CacheWrapping
//
// CacheWrap() should not return a Committer, since Commit() on cache-wraps
// makes no sense.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap allows us to maintain a scratch-pad of uncommitted data that we
// can view with all queries.
//
// At the end, call Write to use the cached data, or Discard to drop it.
type KVCacheWrap interface {
	// CacheableKVStore allows us to use this Cache recursively
	CacheableKVStore

	// Write syncs with the underlying store.
	Write() error

	// Discard invalidates this CacheWrap and releases all data
	Discard()
}

// CommitKVStore is a store that can persist state to disk, load on start up,
// and maintain some history.
type CommitKVStore interface {
	// Get returns the value at last committed state.
	// Returns nil iff key doesn't exist. Panics on nil key.
	Get(key []byte) ([]byte, error)

	// CacheWrap returns a scratch-pad to perform a set of actions on.
	CacheWrap() KVCacheWrap

	// Commit the next version to disk, and returns info
	Commit() (CommitID, error)

	// LoadLatestVersion loads the latest persisted version. If there was
	// a crash during the last commit, it is guaranteed to return a stable
	// state, even if older.
	LoadLatestVersion() error

	// LatestVersion returns info on the latest version saved to disk
	LatestVersion() (CommitID, error)
}

// CommitID contains the tree version number and its merkle root.
type CommitID struct {
	Version int64
	Hash    []byte
}
