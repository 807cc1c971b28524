package app

import (
	"testing"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/marttest/assert"
)

func TestSliceIterator(t *testing.T) {
	models := []mart.Model{
		{Key: []byte("a"), Value: []byte{1}},
		{Key: []byte("b"), Value: []byte{2}},
		{Key: []byte("c"), Value: []byte{3}},
	}

	it := NewSliceIterator(models)
	for _, m := range models {
		key, value, err := it.Next()
		assert.Nil(t, err)
		assert.Equal(t, m.Key, key)
		assert.Equal(t, m.Value, value)
	}
	if _, _, err := it.Next(); !errors.ErrIteratorDone.Is(err) {
		t.Fatalf("expected iterator done, got %+v", err)
	}
}

func TestSliceIteratorRelease(t *testing.T) {
	it := NewSliceIterator([]mart.Model{
		{Key: []byte("a"), Value: []byte{1}},
	})
	it.Release()
	if _, _, err := it.Next(); !errors.ErrIteratorDone.Is(err) {
		t.Fatalf("expected iterator done, got %+v", err)
	}
}
