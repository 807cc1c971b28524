package market

import (
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/migration"
	"github.com/tokenmart/mart/orm"
)

func init() {
	migration.MustRegister(1, &Listing{}, migration.NoModification)
}

var _ orm.Model = (*Listing)(nil)

func (l *Listing) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", l.Metadata.Validate())
	errs = errors.AppendField(errs, "Seller", l.Seller.Validate())
	if l.Price == nil {
		errs = errors.AppendField(errs, "Price", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "Price", l.Price.Validate())
		if !l.Price.IsPositive() {
			errs = errors.AppendField(errs, "Price", errors.Wrap(errors.ErrAmount, "must be positive"))
		}
	}
	return errs
}

func (l *Listing) Copy() orm.CloneableData {
	return &Listing{
		Metadata: l.Metadata.Copy(),
		Seller:   l.Seller,
		Price:    l.Price.Clone(),
	}
}

// NewListingBucket returns a bucket for keeping listings. Listings are
// keyed by the token id, so a token can be listed at most once.
func NewListingBucket() orm.ModelBucket {
	b := orm.NewModelBucket("lst", &Listing{},
		orm.WithIndex("seller", idxSeller, false),
	)
	return migration.NewModelBucket("market", b)
}

func idxSeller(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	l, ok := obj.Value().(*Listing)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Listing")
	}
	return l.Seller, nil
}

// Condition returns the condition the exchange operates under. Sellers
// approve its address on their token before listing and buyers grant it
// a coin allowance before buying.
func Condition() mart.Condition {
	return mart.NewCondition("market", "exchange", []byte("listings"))
}
