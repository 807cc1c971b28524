package migration

import (
	"encoding/json"
	"testing"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/marttest/assert"
	"github.com/tokenmart/mart/orm"
	"github.com/tokenmart/mart/store"
)

func TestSchemaVersionedModelBucket(t *testing.T) {
	const thisPkgName = "testpkg"

	reg := newRegister()

	reg.MustRegister(1, &MyModel{}, NoModification)
	reg.MustRegister(2, &MyModel{}, func(db mart.ReadOnlyKVStore, m Migratable) error {
		msg := m.(*MyModel)
		msg.Cnt += 2
		return msg.err
	})

	db := store.MemStore()

	ensureSchemaVersion(t, db, thisPkgName, 1)

	b := NewModelBucket(thisPkgName, orm.NewModelBucket("mymodel", &MyModel{}))

	// Use custom register instead of the global one to avoid pollution
	// from the application during tests.
	b.useRegister(reg)

	m1 := MyModel{
		Metadata: &mart.Metadata{Schema: 1},
		Cnt:      5,
	}
	_, err := b.Put(db, []byte("schema_one"), &m1)
	assert.Nil(t, err)

	var res MyModel
	assert.Nil(t, b.One(db, []byte("schema_one"), &res))
	assert.Equal(t, uint32(1), res.Metadata.Schema)
	assert.Equal(t, 5, res.Cnt)

	// Storing a model with a schema version higher than currently active
	// is not allowed.
	m2 := MyModel{
		Metadata: &mart.Metadata{Schema: 2},
		Cnt:      11,
	}
	if _, err := b.Put(db, []byte("schema_two"), &m2); !errors.ErrSchema.Is(err) {
		t.Fatalf("storing an object with a future schema version: %s", err)
	}

	// Bumping the schema unlocks saving entities with a higher schema
	// version.
	ensureSchemaVersion(t, db, thisPkgName, 2)

	_, err = b.Put(db, []byte("schema_two"), &m2)
	assert.Nil(t, err)

	// Now that the schema was upgraded, all returned models must use it.
	// This means that returned models metadata schema must be set to two
	// and the payload must be migrated.
	assert.Nil(t, b.One(db, []byte("schema_one"), &res))
	assert.Equal(t, uint32(2), res.Metadata.Schema)
	assert.Equal(t, 5+2, res.Cnt)

	assert.Nil(t, b.One(db, []byte("schema_two"), &res))
	assert.Equal(t, uint32(2), res.Metadata.Schema)
	assert.Equal(t, 11, res.Cnt)

	// Saving a model with an outdated schema must call the migration
	// before writing to the database.
	m3 := MyModel{
		Metadata: &mart.Metadata{Schema: 1},
		Cnt:      17,
	}
	_, err = b.Put(db, []byte("schema_one_2"), &m3)
	assert.Nil(t, err)
	assert.Nil(t, b.One(db, []byte("schema_one_2"), &res))
	assert.Equal(t, uint32(2), res.Metadata.Schema)
	assert.Equal(t, 17+2, res.Cnt)
}

func TestSchemaZeroDefaultsToCurrent(t *testing.T) {
	const thisPkgName = "testpkg"

	reg := newRegister()
	reg.MustRegister(1, &MyModel{}, NoModification)

	db := store.MemStore()
	ensureSchemaVersion(t, db, thisPkgName, 1)

	b := NewModelBucket(thisPkgName, orm.NewModelBucket("mymodel", &MyModel{}))
	b.useRegister(reg)

	// A zero schema version is interpreted as the current one.
	m := MyModel{
		Metadata: &mart.Metadata{},
		Cnt:      3,
	}
	_, err := b.Put(db, []byte("zero"), &m)
	assert.Nil(t, err)
	assert.Equal(t, uint32(1), m.Metadata.Schema)
}

type MyModel struct {
	Metadata *mart.Metadata
	Cnt      int

	err error
}

func (m *MyModel) GetMetadata() *mart.Metadata {
	return m.Metadata
}

func (m *MyModel) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return err
	}
	return m.err
}

func (m *MyModel) Copy() orm.CloneableData {
	return &MyModel{
		Metadata: m.Metadata.Copy(),
		Cnt:      m.Cnt,
		err:      m.err,
	}
}

func (m *MyModel) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *MyModel) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

var _ Migratable = (*MyModel)(nil)
var _ orm.Model = (*MyModel)(nil)
