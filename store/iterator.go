package store

import (
	"bytes"
	"sync"

	"github.com/google/btree"
	"github.com/tokenmart/mart/errors"
)

///////////////////////////////////////////////////////
// From Items to Iterator

type btreeIter struct {
	data    btree.Item
	hasMore bool
	read    <-chan btree.Item
	stop    chan<- struct{}
	once    sync.Once
}

// source marks where the current item comes from
type source int32

const (
	us source = iota
	parent
	both
	none
)

func ascendBtree(bt *btree.BTree, start, end []byte) *btreeIter {
	read := make(chan btree.Item)
	// ensure we never block when we call close()
	stop := make(chan struct{}, 1)
	iter := &btreeIter{
		read: read,
		stop: stop,
	}

	insert := func(item btree.Item) bool {
		select {
		case read <- item:
			return true
		case <-stop:
			close(read)
			return false
		}
	}

	go func() {
		if start == nil && end == nil {
			bt.Ascend(insert)
		} else if start == nil { // end != nil
			bt.AscendLessThan(bkey{end}, insert)
		} else if end == nil { // start != nil
			bt.AscendGreaterOrEqual(bkey{start}, insert)
		} else { // both != nil
			bt.AscendRange(bkey{start}, bkey{end}, insert)
		}
		close(read)
	}()

	iter.next()
	return iter
}

func descendBtree(bt *btree.BTree, start, end []byte) *btreeIter {
	read := make(chan btree.Item)
	// ensure we never block when we call close()
	stop := make(chan struct{}, 1)
	iter := &btreeIter{
		read: read,
		stop: stop,
	}

	insert := func(item btree.Item) bool {
		select {
		case read <- item:
			return true
		case <-stop:
			close(read)
			return false
		}
	}

	go func() {
		if start == nil && end == nil {
			bt.Descend(insert)
		} else if start == nil { // end != nil
			bt.DescendLessOrEqual(bkeyLess{end}, insert)
		} else if end == nil { // start != nil
			bt.DescendGreaterThan(bkeyLess{start}, insert)
		} else { // both != nil
			bt.DescendRange(bkeyLess{end}, bkeyLess{start}, insert)
		}
		close(read)
	}()

	iter.next()
	return iter
}

func (b *btreeIter) wrap(parent Iterator, reverse bool) *itemIter {
	return &itemIter{
		wrap:    b,
		parent:  parent,
		reverse: reverse,
	}
}

func (b *btreeIter) next() {
	b.data, b.hasMore = <-b.read
}

func (b *btreeIter) close() {
	b.once.Do(func() {
		b.stop <- struct{}{}
	})
}

// get requires this is valid, gets what we are pointing at
func (b *btreeIter) get() keyer {
	return b.data.(keyer)
}

func (b *btreeIter) valid() bool {
	return b.hasMore
}

// itemIter combines the btree overlay with the parent iterator. Deletes in
// the overlay shadow parent entries, sets in the overlay replace them.
type itemIter struct {
	wrap *btreeIter
	// if we are iterating in a cache-wrap (and who isn't),
	// we need to combine this iterator with the parent
	parent Iterator

	// reverse flips the merge order for descending iteration
	reverse bool

	// buffer exactly one item pulled from the parent, as the parent
	// iterator is consuming
	parentKey    []byte
	parentValue  []byte
	parentLoaded bool
	parentDone   bool
}

var _ Iterator = (*itemIter)(nil)

// Next returns the next key/value pair in iteration order, merging the
// overlay and the parent. It returns ErrIteratorDone when both sources are
// exhausted.
func (i *itemIter) Next() ([]byte, []byte, error) {
	for {
		if err := i.loadParent(); err != nil {
			return nil, nil, err
		}
		switch i.firstKey() {
		case none:
			return nil, nil, errors.ErrIteratorDone
		case parent:
			i.parentLoaded = false
			return i.parentKey, i.parentValue, nil
		case us:
			item := i.wrap.get()
			i.wrap.next()
			if set, ok := item.(setItem); ok {
				return set.Key(), set.value, nil
			}
			// deleted in the overlay and not present below, skip
		case both:
			item := i.wrap.get()
			i.wrap.next()
			// the overlay shadows the parent entry for this key
			i.parentLoaded = false
			if set, ok := item.(setItem); ok {
				return set.Key(), set.value, nil
			}
			// deleted in the overlay, skip the parent entry too
		}
	}
}

// Release releases the Iterator.
func (i *itemIter) Release() {
	if i.parent != nil {
		i.parent.Release()
	}
	i.wrap.close()
}

// loadParent makes sure one parent item is buffered, unless the parent is
// already exhausted.
func (i *itemIter) loadParent() error {
	if i.parentLoaded || i.parentDone {
		return nil
	}
	if i.parent == nil {
		i.parentDone = true
		return nil
	}
	key, value, err := i.parent.Next()
	switch {
	case err == nil:
		i.parentKey, i.parentValue = key, value
		i.parentLoaded = true
	case errors.ErrIteratorDone.Is(err):
		i.parentDone = true
	default:
		return err
	}
	return nil
}

// firstKey selects the source with the lowest key, if any
func (i *itemIter) firstKey() source {
	if !i.parentLoaded {
		if !i.wrap.valid() {
			return none
		}
		return us
	}
	if !i.wrap.valid() {
		return parent
	}

	// both are valid... compare keys....
	cmp := bytes.Compare(i.parentKey, i.wrap.get().Key())
	if i.reverse {
		cmp = -cmp
	}
	switch {
	case cmp < 0:
		return parent
	case cmp > 0:
		return us
	default:
		return both
	}
}
