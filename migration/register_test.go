package migration

import (
	"testing"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/marttest/assert"
)

func TestRegisterDuplicate(t *testing.T) {
	reg := newRegister()

	assert.Nil(t, reg.Register(1, &MyModel{}, NoModification))
	if err := reg.Register(1, &MyModel{}, NoModification); !errors.ErrDuplicate.Is(err) {
		t.Fatalf("unexpected duplicate registration error: %s", err)
	}
}

func TestRegisterNonStruct(t *testing.T) {
	reg := newRegister()

	if err := reg.Register(1, notAStruct("x"), NoModification); !errors.ErrInput.Is(err) {
		t.Fatalf("unexpected non struct registration error: %s", err)
	}
}

func TestApply(t *testing.T) {
	reg := newRegister()
	reg.MustRegister(1, &MyModel{}, NoModification)
	reg.MustRegister(2, &MyModel{}, func(db mart.ReadOnlyKVStore, m Migratable) error {
		msg := m.(*MyModel)
		msg.Cnt += 2
		return nil
	})
	reg.MustRegister(3, &MyModel{}, NoModification)
	reg.MustRegister(4, &MyModel{}, func(db mart.ReadOnlyKVStore, m Migratable) error {
		msg := m.(*MyModel)
		msg.Cnt += 4
		return nil
	})

	m := &MyModel{
		Metadata: &mart.Metadata{Schema: 1},
		Cnt:      1,
	}

	// Running a migration can bring the payload up to any registered
	// version in the future.
	assert.Nil(t, reg.Apply(nil, m, 3))
	assert.Equal(t, m.Metadata.Schema, uint32(3))
	assert.Equal(t, m.Cnt, 3)

	assert.Nil(t, reg.Apply(nil, m, 4))
	assert.Equal(t, m.Metadata.Schema, uint32(4))
	assert.Equal(t, m.Cnt, 7)
}

func TestApplyNoMetadata(t *testing.T) {
	reg := newRegister()
	reg.MustRegister(1, &MyModel{}, NoModification)

	if err := reg.Apply(nil, &MyModel{}, 1); !errors.ErrState.Is(err) {
		t.Fatalf("unexpected migration of a payload without metadata: %s", err)
	}
}

func TestApplyUnknownVersion(t *testing.T) {
	reg := newRegister()
	reg.MustRegister(1, &MyModel{}, NoModification)
	reg.MustRegister(2, &MyModel{}, NoModification)
	reg.MustRegister(3, &MyModel{}, NoModification)

	m := &MyModel{
		Metadata: &mart.Metadata{Schema: 1},
	}

	// Migration attempt to a non existing version must fail. All
	// migrations up to the highest available state are applied.
	if err := reg.Apply(nil, m, 999); !errors.ErrState.Is(err) {
		t.Fatalf("unexpected migration failure: %s", err)
	}
	assert.Equal(t, m.Metadata.Schema, uint32(3))
}

// notAStruct implements Migratable on a non struct type. Only structures can
// be registered for migrations.
type notAStruct string

func (notAStruct) GetMetadata() *mart.Metadata { return nil }
func (notAStruct) Validate() error             { return nil }
