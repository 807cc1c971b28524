package migration

import (
	"reflect"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/orm"
)

// ModelBucket implements the orm.ModelBucket interface and provides the same
// functionality with additional model schema migration.
type ModelBucket struct {
	orm.ModelBucket
	packageName string
	schema      *SchemaBucket
	migrations  *register
}

var _ orm.ModelBucket = (*ModelBucket)(nil)

func NewModelBucket(packageName string, b orm.ModelBucket) *ModelBucket {
	return &ModelBucket{
		ModelBucket: b,
		packageName: packageName,
		schema:      NewSchemaBucket(),
		migrations:  reg,
	}
}

func (m *ModelBucket) One(db mart.ReadOnlyKVStore, key []byte, dest orm.Model) error {
	if err := m.ModelBucket.One(db, key, dest); err != nil {
		return err
	}
	if err := m.migrate(db, dest); err != nil {
		return errors.Wrap(err, "migrate")
	}
	return nil
}

func (m *ModelBucket) ByIndex(db mart.ReadOnlyKVStore, indexName string, key []byte, dest orm.ModelSlicePtr) ([][]byte, error) {
	keys, err := m.ModelBucket.ByIndex(db, indexName, key, dest)
	if err != nil {
		return nil, err
	}

	// The correct type of the dest was already validated by the
	// ModelBucket when getting data by index. We can safely skip checks -
	// dest is a slice of models.
	slice := reflect.ValueOf(dest).Elem()
	for i := 0; i < slice.Len(); i++ {
		item := slice.Index(i)

		// Slice can be both of values and pointer to values. This
		// method must support both notations.
		var model orm.Model
		if m, ok := item.Interface().(orm.Model); ok {
			model = m
		} else {
			model = item.Addr().Interface().(orm.Model)
		}

		if err := m.migrate(db, model); err != nil {
			return nil, errors.Wrapf(err, "migrate %d element", i)
		}
	}
	return keys, nil
}

func (m *ModelBucket) Put(db mart.KVStore, key []byte, model orm.Model) ([]byte, error) {
	if err := m.migrate(db, model); err != nil {
		return nil, errors.Wrap(err, "migrate")
	}
	return m.ModelBucket.Put(db, key, model)
}

// useRegister will update this bucket to use a custom register instance
// instead of the global one. This is a private method meant to be used for
// tests only.
func (m *ModelBucket) useRegister(r *register) {
	m.migrations = r
}

func (m *ModelBucket) migrate(db mart.ReadOnlyKVStore, model orm.Model) error {
	return migrate(m.migrations, m.schema, m.packageName, db, model)
}

func migrate(
	migrations *register,
	schema *SchemaBucket,
	packageName string,
	db mart.ReadOnlyKVStore,
	value interface{},
) error {
	m, ok := value.(Migratable)
	if !ok {
		return errors.Wrap(errors.ErrModel, "model cannot be migrated")
	}
	currSchemaVer, err := schema.CurrentSchema(db, packageName)
	if err != nil {
		return errors.Wrapf(err, "current schema version of package %q", packageName)
	}

	meta := m.GetMetadata()
	if meta == nil {
		return errors.Wrapf(errors.ErrMetadata, "%T metadata is nil", m)
	}

	// In case of schema not being set we assume the code is expecting the
	// current version. We can therefore set the default to current schema
	// version.
	if meta.Schema == 0 {
		meta.Schema = currSchemaVer
		return nil
	}

	if meta.Schema > currSchemaVer {
		return errors.Wrapf(errors.ErrSchema, "model schema higher than %d", currSchemaVer)
	}

	// Migration is applied in place, directly modifying the instance.
	if err := migrations.Apply(db, m, currSchemaVer); err != nil {
		return errors.Wrap(err, "schema migration")
	}
	return nil
}

// Migrate will query the current schema of the named package and attempt
// to migrate the passed value up to the current version.
//
// Returns an error if the passed value is not Migratable,
// not registered with migrations, missing Metadata, has a Schema
// higher than currentSchema, if the final migrated value is invalid,
// or other such conditions.
//
// If this returns no error, you can safely use the contents of value in
// code working with the current schema.
func Migrate(
	db mart.ReadOnlyKVStore,
	packageName string,
	value interface{},
) error {
	return migrate(reg, NewSchemaBucket(), packageName, db, value)
}
