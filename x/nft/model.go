package nft

import (
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/migration"
	"github.com/tokenmart/mart/orm"
)

func init() {
	migration.MustRegister(1, &Token{}, migration.NoModification)
}

var _ orm.Model = (*Token)(nil)

func (t *Token) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", t.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", t.Owner.Validate())
	// Approved is optional. Empty means nobody is approved.
	if len(t.Approved) != 0 {
		errs = errors.AppendField(errs, "Approved", t.Approved.Validate())
	}
	if len(t.URI) > maxURISize {
		errs = errors.AppendField(errs, "URI", errors.Wrap(errors.ErrInput, "too long"))
	}
	return errs
}

func (t *Token) Copy() orm.CloneableData {
	return &Token{
		Metadata: t.Metadata.Copy(),
		Owner:    t.Owner,
		Approved: t.Approved,
		URI:      t.URI,
	}
}

// NewBucket returns a bucket for keeping tokens. Token keys are 8 byte
// sequence values, assigned at mint time.
func NewBucket() orm.ModelBucket {
	b := orm.NewModelBucket("nft", &Token{},
		orm.WithIDSequence(tokenSeq),
		orm.WithIndex("owner", idxOwner, false),
	)
	return migration.NewModelBucket("nft", b)
}

var tokenSeq = orm.NewSequence("nft", "id")

func idxOwner(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	t, ok := obj.Value().(*Token)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Token")
	}
	return t.Owner, nil
}
