package orm

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/store"
)

func TestModelBucket(t *testing.T) {
	db := store.MemStore()

	b := NewModelBucket("cnts", &Counter{})

	if _, err := b.Put(db, []byte("c1"), &Counter{Count: 1}); err != nil {
		t.Fatalf("cannot save counter instance: %s", err)
	}

	var c1 Counter
	if err := b.One(db, []byte("c1"), &c1); err != nil {
		t.Fatalf("cannot get c1 counter: %s", err)
	}
	if c1.Count != 1 {
		t.Fatalf("unexpected counter state: %d", c1.Count)
	}

	if err := b.Has(db, []byte("c1")); err != nil {
		t.Fatalf("c1 must exist: %s", err)
	}
	if err := b.Has(db, []byte("unknown")); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error for an unknown key: %s", err)
	}
	if err := b.Has(db, nil); !errors.ErrNotFound.Is(err) {
		t.Fatalf("a nil key must never exist: %s", err)
	}

	if err := b.Delete(db, []byte("c1")); err != nil {
		t.Fatalf("cannot delete c1 counter: %s", err)
	}
	if err := b.Delete(db, []byte("unknown")); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error when deleting unexisting instance: %s", err)
	}
	if err := b.One(db, []byte("c1"), &c1); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error for an unknown model get: %s", err)
	}
}

func TestModelBucketPutSequence(t *testing.T) {
	db := store.MemStore()

	b := NewModelBucket("cnts", &Counter{})

	// Using a nil key should fallback to the sequence value.
	key, err := b.Put(db, nil, &Counter{Count: 111})
	if err != nil {
		t.Fatalf("cannot save counter instance: %s", err)
	}
	if !bytes.Equal(key, EncodeSequence(1)) {
		t.Fatalf("first sequence key should be 1, got %x", key)
	}

	key, err = b.Put(db, nil, &Counter{Count: 222})
	if err != nil {
		t.Fatalf("cannot save counter instance: %s", err)
	}
	if !bytes.Equal(key, EncodeSequence(2)) {
		t.Fatalf("second sequence key should be 2, got %x", key)
	}

	var c1 Counter
	if err := b.One(db, EncodeSequence(1), &c1); err != nil {
		t.Fatalf("cannot get first counter: %s", err)
	}
	if c1.Count != 111 {
		t.Fatalf("unexpected counter state: %d", c1.Count)
	}
}

func TestModelBucketByIndex(t *testing.T) {
	indexByValue := func(obj Object) ([]byte, error) {
		c, ok := obj.Value().(*Counter)
		if !ok {
			return nil, errors.Wrapf(errors.ErrType, "%T", obj.Value())
		}
		raw := strconv.FormatInt(c.Count, 10)
		return []byte(raw), nil
	}

	cases := map[string]struct {
		queryKey string
		wantKeys [][]byte
		wantRes  []*Counter
	}{
		"find none": {
			queryKey: "124089710947120",
			wantKeys: nil,
			wantRes:  nil,
		},
		"find one": {
			queryKey: "1",
			wantKeys: [][]byte{EncodeSequence(1)},
			wantRes:  []*Counter{{Count: 1}},
		},
		"find two": {
			queryKey: "4",
			wantKeys: [][]byte{EncodeSequence(3), EncodeSequence(4)},
			wantRes:  []*Counter{{Count: 4}, {Count: 4}},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()

			b := NewModelBucket("cnts", &Counter{},
				WithIndex("value", indexByValue, false))

			for _, c := range []int64{1, 2, 4, 4} {
				if _, err := b.Put(db, nil, &Counter{Count: c}); err != nil {
					t.Fatalf("cannot save counter instance: %s", err)
				}
			}

			var dest []*Counter
			keys, err := b.ByIndex(db, "value", []byte(tc.queryKey), &dest)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if len(keys) != len(tc.wantKeys) {
				t.Fatalf("unexpected keys: %v", keys)
			}
			for i := range keys {
				if !bytes.Equal(keys[i], tc.wantKeys[i]) {
					t.Fatalf("unexpected key %d: %x", i, keys[i])
				}
			}
			if len(dest) != len(tc.wantRes) {
				t.Fatalf("unexpected results: %+v", dest)
			}
			for i := range dest {
				if dest[i].Count != tc.wantRes[i].Count {
					t.Fatalf("unexpected result %d: %+v", i, dest[i])
				}
			}
		})
	}
}

func TestModelBucketPutWrongModelType(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &Counter{})

	if _, err := b.Put(db, nil, &MultiRef{Refs: [][]byte{[]byte("foo")}}); !errors.ErrType.Is(err) {
		t.Fatalf("cannot use a model of wrong type: %s", err)
	}
}

func TestModelBucketOneWrongModelType(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &Counter{})

	if _, err := b.Put(db, []byte("counter"), &Counter{Count: 1}); err != nil {
		t.Fatalf("cannot save counter instance: %s", err)
	}

	var ref MultiRef
	if err := b.One(db, []byte("counter"), &ref); !errors.ErrType.Is(err) {
		t.Fatalf("cannot get counter into a model of wrong type: %s", err)
	}
}
