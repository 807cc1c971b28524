//nolint
package store

import "github.com/tokenmart/mart"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = mart.ReadOnlyKVStore
type KVStore = mart.KVStore
type SetDeleter = mart.SetDeleter
type Batch = mart.Batch
type Iterator = mart.Iterator
type CacheableKVStore = mart.CacheableKVStore
type KVCacheWrap = mart.KVCacheWrap
type CommitKVStore = mart.CommitKVStore
type CommitID = mart.CommitID
type Model = mart.Model
