package store

import (
	"bytes"
	"crypto/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokenmart/mart/errors"
)

// TestBTreeCacheGetSet does basic sanity checks on our cache
//
// Other tests should handle deletes, setting same value,
// iterating over ranges, and general fuzzing
func TestBTreeCacheGetSet(t *testing.T) {
	// devnull is a black hole... just to keep our types proper
	devnull := BTreeCacheable{EmptyKVStore{}}

	// base is the root of our data, we can layer on top and
	// all queries should work
	base := devnull.CacheWrap()

	// make sure the btree is empty at start but returns results
	// that are writen to it
	k, v := []byte("french"), []byte("fry")
	mustGet(t, base, k, nil)
	mustHave(t, base, k, false)
	require.NoError(t, base.Set(k, v))
	mustGet(t, base, k, v)
	mustHave(t, base, k, true)

	// now layer another btree on top and make sure that we get
	// base data
	cache := base.CacheWrap()
	mustGet(t, cache, k, v)
	mustHave(t, cache, k, true)

	// writing more data is only visible in the cache
	k2, v2 := []byte("LA"), []byte("Dodgers")
	mustGet(t, cache, k2, nil)
	require.NoError(t, cache.Set(k2, v2))
	mustGet(t, cache, k2, v2)
	mustGet(t, base, k2, nil)
	mustHave(t, cache, k2, true)
	mustHave(t, base, k2, false)

	// we can write the cache to the base layer...
	require.NoError(t, cache.Write())
	mustGet(t, base, k, v)
	mustGet(t, base, k2, v2)

	// we can discard one
	k3, v3 := []byte("Bayern"), []byte("Munich")
	c2 := base.CacheWrap()
	mustGet(t, c2, k, v)
	mustGet(t, c2, k2, v2)
	require.NoError(t, c2.Set(k3, v3))
	c2.Discard()

	// and commit another
	c3 := base.CacheWrap()
	mustGet(t, c3, k, v)
	mustGet(t, c3, k2, v2)
	require.NoError(t, c3.Delete(k))
	require.NoError(t, c3.Write())

	// make sure it commits proper
	mustGet(t, base, k, nil)
	mustGet(t, base, k2, v2)
	mustGet(t, base, k3, nil)

	// and to test devnull....
	require.NoError(t, base.Write())
	mustGet(t, devnull, k2, nil)
}

// TestBTreeCacheConflicts checks that we can handle
// overwriting values and deleting underlying values
func TestBTreeCacheConflicts(t *testing.T) {
	// devnull is a black hole... just to keep our types proper
	devnull := BTreeCacheable{EmptyKVStore{}}

	// make 10 keys and 20 values....
	ks := randKeys(10, 16)
	vs := randKeys(20, 40)

	parent := devnull.CacheWrap()
	require.NoError(t, parent.Set(ks[1], vs[1]))
	require.NoError(t, parent.Set(ks[2], vs[2]))

	// overwrite one, delete another, add a third
	child := parent.CacheWrap()
	require.NoError(t, child.Set(ks[1], vs[11]))
	require.NoError(t, child.Set(ks[3], vs[7]))
	require.NoError(t, child.Delete(ks[2]))

	// now check the parent is unaffected
	mustGet(t, parent, ks[1], vs[1])
	mustGet(t, parent, ks[2], vs[2])
	mustGet(t, parent, ks[3], nil)

	// the child shows changes
	mustGet(t, child, ks[1], vs[11])
	mustGet(t, child, ks[2], nil)
	mustGet(t, child, ks[3], vs[7])
	mustHave(t, child, ks[2], false)

	// write child to parent and make sure it also shows proper data
	require.NoError(t, child.Write())
	mustGet(t, parent, ks[1], vs[11])
	mustGet(t, parent, ks[2], nil)
	mustGet(t, parent, ks[3], vs[7])
}

// TestSliceIterator makes sure the basic slice iterator works
func TestSliceIterator(t *testing.T) {
	const Size = 10

	ks := randKeys(Size, 8)
	vs := randKeys(Size, 40)

	models := make([]Model, Size)
	for i := 0; i < Size; i++ {
		models[i].Key = ks[i]
		models[i].Value = vs[i]
	}

	// make sure proper iteration works
	iter := NewSliceIterator(models)
	for i := 0; i < Size; i++ {
		key, value, err := iter.Next()
		require.NoError(t, err)
		assert.Equal(t, ks[i], key)
		assert.Equal(t, vs[i], value)
	}
	_, _, err := iter.Next()
	assert.True(t, errors.ErrIteratorDone.Is(err))

	// iterator is drained after release
	trash := NewSliceIterator(models)
	_, _, err = trash.Next()
	require.NoError(t, err)
	trash.Release()
	_, _, err = trash.Next()
	assert.True(t, errors.ErrIteratorDone.Is(err))
}

// TestBTreeCacheBasicIterator makes sure the basic iterator
// works. Includes random deletes, but not nested iterators.
func TestBTreeCacheBasicIterator(t *testing.T) {
	const Size = 50
	const DeleteCount = 20
	const TotalSize = Size + DeleteCount

	models := make([]Model, TotalSize)
	for i := 0; i < TotalSize; i++ {
		models[i].Key = randBytes(8)
		models[i].Value = randBytes(40)
	}

	devnull := BTreeCacheable{EmptyKVStore{}}
	base := devnull.CacheWrap()
	// add them all to the cache
	for i := 0; i < TotalSize; i++ {
		require.NoError(t, base.Set(models[i].Key, models[i].Value))
	}
	// delete the first chunk
	for i := 0; i < DeleteCount; i++ {
		require.NoError(t, base.Delete(models[i].Key))
	}
	models = models[DeleteCount:]

	// sort all remaining key/value pairs... this is our expected results
	sort.Slice(models, func(i, j int) bool {
		return bytes.Compare(models[i].Key, models[j].Key) < 0
	})

	// iterate over everything
	it, err := base.Iterator(nil, nil)
	verifyIterator(t, models, it, err)
	// iterate with lower end defined
	it, err = base.Iterator(models[10].Key, nil)
	verifyIterator(t, models[10:], it, err)
	// iterate with upper end defined
	it, err = base.Iterator(nil, models[Size-8].Key)
	verifyIterator(t, models[:Size-8], it, err)
	// iterate with both ends defined
	it, err = base.Iterator(models[17].Key, models[28].Key)
	verifyIterator(t, models[17:28], it, err)

	// and now in reverse....
	it, err = base.ReverseIterator(nil, nil)
	verifyIterator(t, reverse(models), it, err)
	// iterate with lower end defined
	it, err = base.ReverseIterator(models[34].Key, nil)
	verifyIterator(t, reverse(models[34:]), it, err)
	// iterate with upper end defined
	it, err = base.ReverseIterator(nil, models[19].Key)
	verifyIterator(t, reverse(models[:19]), it, err)
	// iterate with both ends defined
	it, err = base.ReverseIterator(models[6].Key, models[26].Key)
	verifyIterator(t, reverse(models[6:26]), it, err)
}

// TestBTreeCacheLayeredIterator iterates over ranges that span both the
// parent and child caches, combining values, overwrites, and deletes
func TestBTreeCacheLayeredIterator(t *testing.T) {
	devnull := BTreeCacheable{EmptyKVStore{}}
	parent := devnull.CacheWrap()

	pairs := []Model{
		{Key: []byte("a"), Value: []byte("1")},
		{Key: []byte("c"), Value: []byte("3")},
		{Key: []byte("e"), Value: []byte("5")},
	}
	for _, m := range pairs {
		require.NoError(t, parent.Set(m.Key, m.Value))
	}

	child := parent.CacheWrap()
	// overwrite c, delete e, insert b and f
	require.NoError(t, child.Set([]byte("c"), []byte("33")))
	require.NoError(t, child.Delete([]byte("e")))
	require.NoError(t, child.Set([]byte("b"), []byte("2")))
	require.NoError(t, child.Set([]byte("f"), []byte("6")))

	expect := []Model{
		{Key: []byte("a"), Value: []byte("1")},
		{Key: []byte("b"), Value: []byte("2")},
		{Key: []byte("c"), Value: []byte("33")},
		{Key: []byte("f"), Value: []byte("6")},
	}
	it, err := child.Iterator(nil, nil)
	verifyIterator(t, expect, it, err)
	it, err = child.ReverseIterator(nil, nil)
	verifyIterator(t, reverse(expect), it, err)

	// a bounded range over both layers
	it, err = child.Iterator([]byte("b"), []byte("e"))
	verifyIterator(t, expect[1:3], it, err)

	// the parent is untouched
	it, err = parent.Iterator(nil, nil)
	verifyIterator(t, pairs, it, err)
}

func verifyIterator(t *testing.T, models []Model, iter Iterator, err error) {
	t.Helper()
	require.NoError(t, err)
	// make sure proper iteration works
	for i := 0; i < len(models); i++ {
		key, value, err := iter.Next()
		require.NoError(t, err, "%d", i)
		assert.Equal(t, models[i].Key, key, "%d", i)
		assert.Equal(t, models[i].Value, value, "%d", i)
	}
	_, _, err = iter.Next()
	assert.True(t, errors.ErrIteratorDone.Is(err))
	iter.Release()
}

// reverse returns a copy of the slice with elements in reverse order
func reverse(models []Model) []Model {
	max := len(models)
	res := make([]Model, max)
	for i := 0; i < max; i++ {
		res[i] = models[max-1-i]
	}
	return res
}

// randKeys returns a slice of count keys, all of length
func randKeys(count, length int) [][]byte {
	res := make([][]byte, count)
	for i := 0; i < count; i++ {
		res[i] = randBytes(length)
	}
	return res
}

func randBytes(length int) []byte {
	res := make([]byte, length)
	rand.Read(res)
	return res
}

func mustGet(t *testing.T, db ReadOnlyKVStore, key, want []byte) {
	t.Helper()
	got, err := db.Get(key)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func mustHave(t *testing.T, db ReadOnlyKVStore, key []byte, want bool) {
	t.Helper()
	got, err := db.Has(key)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
