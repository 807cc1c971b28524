package migration

import (
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/x"
)

// SchemaMigratingHandler returns a handler that will ensure incoming
// messages are in the current schema version format. If a message in older
// schema is handled then it is first being migrated. Messages that cannot be
// migrated to current schema version are returning migration error. This
// functionality is executed before the decorated handler and it is completely
// transparent to the wrapped handler.
func SchemaMigratingHandler(packageName string, h mart.Handler) mart.Handler {
	return &schemaMigratingHandler{
		handler:     h,
		packageName: packageName,
		schema:      NewSchemaBucket(),
		migrations:  reg,
	}
}

type schemaMigratingHandler struct {
	handler     mart.Handler
	packageName string
	schema      *SchemaBucket
	migrations  *register
}

func (h *schemaMigratingHandler) Check(ctx mart.Context, db mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	if err := h.migrate(db, tx); err != nil {
		return nil, errors.Wrap(err, "migration")
	}
	return h.handler.Check(ctx, db, tx)
}

func (h *schemaMigratingHandler) Deliver(ctx mart.Context, db mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	if err := h.migrate(db, tx); err != nil {
		return nil, errors.Wrap(err, "migration")
	}
	return h.handler.Deliver(ctx, db, tx)
}

func (h *schemaMigratingHandler) migrate(db mart.ReadOnlyKVStore, tx mart.Tx) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "get msg")
	}

	m, ok := msg.(Migratable)
	if !ok {
		return errors.Wrap(errors.ErrMsg, "message cannot be migrated")
	}
	currSchemaVer, err := h.schema.CurrentSchema(db, h.packageName)
	if err != nil {
		return errors.Wrap(err, "current message schema")
	}

	// Migration is applied in place, directly modifying the instance.
	if err := h.migrations.Apply(db, m, currSchemaVer); err != nil {
		return errors.Wrap(err, "schema migration")
	}
	return nil
}

// SchemaMigratingRegistry decorates given registry to always wrap registered
// handlers with SchemaMigratingHandler for the given package.
func SchemaMigratingRegistry(packageName string, r mart.Registry) mart.Registry {
	return &schemaMigratingRegistry{
		reg:         r,
		packageName: packageName,
	}
}

type schemaMigratingRegistry struct {
	reg         mart.Registry
	packageName string
}

func (r *schemaMigratingRegistry) Handle(m mart.Msg, h mart.Handler) {
	r.reg.Handle(m, SchemaMigratingHandler(r.packageName, h))
}

// RegisterRoutes registers handlers for schema migration message processing.
func RegisterRoutes(r mart.Registry, auth x.Authenticator) {
	bucket := NewSchemaBucket()
	r.Handle(&UpgradeSchemaMsg{}, &upgradeSchemaHandler{
		bucket: bucket,
		auth:   auth,
	})
}

type upgradeSchemaHandler struct {
	bucket *SchemaBucket
	auth   x.Authenticator
}

func (h *upgradeSchemaHandler) Check(ctx mart.Context, db mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &mart.CheckResult{}, nil
}

func (h *upgradeSchemaHandler) Deliver(ctx mart.Context, db mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	ver, err := h.bucket.CurrentSchema(db, msg.Pkg)
	if err != nil && !errors.ErrNotFound.Is(err) {
		return nil, errors.Wrap(err, "current schema version")
	}
	if msg.ToVersion != 0 && msg.ToVersion != ver+1 {
		return nil, errors.Wrapf(errors.ErrInput, "current schema version is %d", ver)
	}

	schema := Schema{
		Metadata: &mart.Metadata{Schema: 1},
		Pkg:      msg.Pkg,
		Version:  ver + 1,
	}
	obj, err := h.bucket.Create(db, &schema)
	if err != nil {
		return nil, errors.Wrap(err, "create schema version")
	}

	return &mart.DeliverResult{Data: obj.Key()}, nil
}

func (h *upgradeSchemaHandler) validate(ctx mart.Context, db mart.KVStore, tx mart.Tx) (*UpgradeSchemaMsg, error) {
	var msg UpgradeSchemaMsg
	if err := mart.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	conf := mustLoadConf(db)
	if !h.auth.HasAddress(ctx, conf.Admin) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "admin signature required")
	}

	return &msg, nil
}
