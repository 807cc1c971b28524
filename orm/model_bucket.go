package orm

import (
	"reflect"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
)

// ModelBucket is implemented by buckets that operates on Models rather than
// Objects.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is done
	// by the primary index key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	// If given model type cannot be used to contain stored entity, ErrType
	// is returned.
	One(db mart.ReadOnlyKVStore, key []byte, dest Model) error

	// ByIndex returns all objects that secondary index with given name and
	// given key points to. A destination model must be a non-nil pointer
	// to a slice of models, that will be filled with the results.
	// It returns the primary keys of all matched entities.
	ByIndex(db mart.ReadOnlyKVStore, indexName string, key []byte, dest ModelSlicePtr) ([][]byte, error)

	// Put saves given model in the database. Before inserting into
	// database, model is validated using its Validate method.
	// If the key is nil or zero length then a sequence generator is used
	// to create a unique key value.
	// Using a key that already exists in the database cause the value to
	// be overwritten.
	Put(db mart.KVStore, key []byte, m Model) ([]byte, error)

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db mart.KVStore, key []byte) error

	// Has returns nil if an entity with given primary key value exists. It
	// returns ErrNotFound if no entity can be found.
	Has(db mart.KVStore, key []byte) error

	// Register registers this buckets content to be accessible via query
	// requests under the given name.
	Register(name string, r mart.QueryRouter)
}

// ModelSlicePtr represents a pointer to a slice of models. Think of it as
// *[]Model Because of Go type system, using []Model would not work for us.
// Instead we use interface{} and cast it to the right type during runtime.
type ModelSlicePtr interface{}

// NewModelBucket returns a ModelBucket instance. This implementation relies
// on a bucket instance. Final implementation should operate directly on the
// KVStore instead.
func NewModelBucket(name string, m Model, opts ...ModelBucketOption) ModelBucket {
	b := NewBucket(name, NewSimpleObj(nil, m))

	tp := reflect.TypeOf(m)
	if tp.Kind() == reflect.Ptr {
		tp = tp.Elem()
	}

	mb := &modelBucket{
		b:     b,
		idSeq: b.Sequence("id"),
		model: tp,
	}

	for _, fn := range opts {
		fn(mb)
	}

	return mb
}

// ModelBucketOption is implemented by any function that can configure
// ModelBucket during creation.
type ModelBucketOption func(mb *modelBucket)

// WithIndex configures the bucket to build an index with given name. All
// entities stored in the bucket are indexed using value returned by the
// indexer function. If an index is unique, there can be only one entity
// referenced per index value.
func WithIndex(name string, indexer Indexer, unique bool) ModelBucketOption {
	return func(mb *modelBucket) {
		mb.b = mb.b.WithIndex(name, indexer, unique)
	}
}

// WithMultiKeyIndex is the same as the WithIndex function, but the indexer
// returns multiple keys per entity.
func WithMultiKeyIndex(name string, indexer MultiKeyIndexer, unique bool) ModelBucketOption {
	return func(mb *modelBucket) {
		mb.b = mb.b.WithMultiKeyIndex(name, indexer, unique)
	}
}

// WithIDSequence configures the bucket to use the given sequence instance for
// generating ID.
func WithIDSequence(s Sequence) ModelBucketOption {
	return func(mb *modelBucket) {
		mb.idSeq = s
	}
}

type modelBucket struct {
	b     Bucket
	idSeq Sequence

	// model is referencing the structure type. Event if the bucket is
	// operating on a pointer we always want to use the structure type
	// information.
	model reflect.Type
}

var _ ModelBucket = (*modelBucket)(nil)

func (mb *modelBucket) Register(name string, r mart.QueryRouter) {
	if name == "" {
		name = mb.b.Name()
	}
	mb.b.Register(name, r)
}

func (mb *modelBucket) One(db mart.ReadOnlyKVStore, key []byte, dest Model) error {
	obj, err := mb.b.Get(db, key)
	if err != nil {
		return err
	}
	if obj == nil || obj.Value() == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	res := obj.Value()

	if !reflect.TypeOf(res).AssignableTo(reflect.TypeOf(dest)) {
		return errors.Wrapf(errors.ErrType, "%T cannot be represented as %T", res, dest)
	}

	reflect.ValueOf(dest).Elem().Set(reflect.ValueOf(res).Elem())
	return nil
}

func (mb *modelBucket) ByIndex(db mart.ReadOnlyKVStore, indexName string, key []byte, destination ModelSlicePtr) ([][]byte, error) {
	objs, err := mb.b.GetIndexed(db, indexName, key)
	if err != nil {
		return nil, err
	}
	if len(objs) == 0 {
		return nil, nil
	}

	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr {
		return nil, errors.Wrap(errors.ErrType, "destination must be a pointer to slice of models")
	}
	if dest.Elem().Kind() != reflect.Slice {
		return nil, errors.Wrap(errors.ErrType, "destination must be a pointer to slice of models")
	}

	// It is allowed to pass destination as both []MyModel and []*MyModel
	sliceTyp := dest.Elem().Type().Elem()
	allowed := sliceTyp
	if allowed.Kind() == reflect.Ptr {
		allowed = allowed.Elem()
	}
	if allowed != mb.model {
		return nil, errors.Wrapf(errors.ErrType, "this bucket operates on %s model and cannot return %s", mb.model, allowed)
	}

	keys := make([][]byte, 0, len(objs))
	for _, obj := range objs {
		if obj == nil || obj.Value() == nil {
			continue
		}
		val := reflect.ValueOf(obj.Value())
		if sliceTyp.Kind() != reflect.Ptr {
			val = val.Elem()
		}
		dest.Elem().Set(reflect.Append(dest.Elem(), val))
		keys = append(keys, obj.Key())
	}
	return keys, nil
}

func (mb *modelBucket) Put(db mart.KVStore, key []byte, m Model) ([]byte, error) {
	mTp := reflect.TypeOf(m)
	if mTp.Kind() != reflect.Ptr {
		return nil, errors.Wrap(errors.ErrType, "model destination must be a pointer")
	}
	if mb.model != mTp.Elem() {
		return nil, errors.Wrapf(errors.ErrType, "cannot store %T type in this bucket", m)
	}

	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid model")
	}

	if len(key) == 0 {
		var err error
		key, err = mb.idSeq.NextVal(db)
		if err != nil {
			return nil, errors.Wrap(err, "ID sequence")
		}
	}

	obj := NewSimpleObj(key, m)
	if err := mb.b.Save(db, obj); err != nil {
		return nil, errors.Wrap(err, "cannot store in the database")
	}
	return key, nil
}

func (mb *modelBucket) Delete(db mart.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	return mb.b.Delete(db, key)
}

func (mb *modelBucket) Has(db mart.KVStore, key []byte) error {
	if key == nil {
		// nil key is a reserved key value and no entity can use it
		return errors.Wrap(errors.ErrNotFound, "nil key")
	}
	obj, err := mb.b.Get(db, key)
	if err != nil {
		return err
	}
	if obj == nil || obj.Value() == nil {
		return errors.ErrNotFound
	}
	return nil
}
