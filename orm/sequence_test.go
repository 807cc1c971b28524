package orm

import (
	"bytes"
	"testing"

	"github.com/tokenmart/mart/store"
)

func TestSequenceIncrement(t *testing.T) {
	db := store.MemStore()

	s := NewSequence("some", "seq")

	for i := int64(1); i < 10; i++ {
		n, err := s.NextInt(db)
		if err != nil {
			t.Fatalf("cannot acquire %d sequence value: %s", i, err)
		}
		if n != i {
			t.Fatalf("expected %d, got %d", i, n)
		}
	}

	raw, err := s.NextVal(db)
	if err != nil {
		t.Fatalf("cannot acquire sequence value: %s", err)
	}
	if !bytes.Equal(raw, EncodeSequence(10)) {
		t.Fatalf("unexpected sequence state: %x", raw)
	}

	// Latest must not modify the counter.
	for i := 0; i < 3; i++ {
		n, latestRaw, err := s.Latest(db)
		if err != nil {
			t.Fatalf("cannot read latest sequence value: %s", err)
		}
		if n != 10 {
			t.Fatalf("expected 10, got %d", n)
		}
		if !bytes.Equal(latestRaw, raw) {
			t.Fatalf("unexpected raw value: %x", latestRaw)
		}
	}
}

func TestSequencesAreIndependent(t *testing.T) {
	db := store.MemStore()

	a := NewSequence("bucket", "aaa")
	b := NewSequence("bucket", "bbb")

	for i := 0; i < 5; i++ {
		if _, err := a.NextVal(db); err != nil {
			t.Fatalf("cannot acquire sequence value: %s", err)
		}
	}

	n, err := b.NextInt(db)
	if err != nil {
		t.Fatalf("cannot acquire sequence value: %s", err)
	}
	if n != 1 {
		t.Fatalf("sequences must be counted separately, got %d", n)
	}
}

func TestDecodeEncodeSequence(t *testing.T) {
	if DecodeSequence(nil) != 0 {
		t.Fatal("nil must decode to zero")
	}
	for _, v := range []int64{1, 255, 256, 1 << 40} {
		if got := DecodeSequence(EncodeSequence(v)); got != v {
			t.Fatalf("want %d, got %d", v, got)
		}
	}
}
