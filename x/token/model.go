package token

import (
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/coin"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/migration"
	"github.com/tokenmart/mart/orm"
)

func init() {
	migration.MustRegister(1, &Set{}, migration.NoModification)
	migration.MustRegister(1, &ClaimRecord{}, migration.NoModification)
	migration.MustRegister(1, &Allowance{}, migration.NoModification)
}

const (
	// WalletBucketName is where the wallet balances are stored.
	WalletBucketName = "wlt"
	// ClaimBucketName is where the faucet claim records are stored.
	ClaimBucketName = "claim"
	// AllowanceBucketName is where the spender allowances are stored.
	AllowanceBucketName = "allow"
)

var _ orm.Model = (*Set)(nil)

// Validate requires that all coins are sorted with no duplicates.
func (s *Set) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", s.Metadata.Validate())
	errs = errors.AppendField(errs, "Coins", coin.Coins(s.Coins).Validate())
	return errs
}

func (s *Set) Copy() orm.CloneableData {
	return &Set{
		Metadata: s.Metadata.Copy(),
		Coins:    coin.Coins(s.Coins).Clone(),
	}
}

var _ orm.Model = (*ClaimRecord)(nil)

func (c *ClaimRecord) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	if c.ClaimedAt <= 0 {
		errs = errors.AppendField(errs, "ClaimedAt", errors.ErrEmpty)
	}
	return errs
}

func (c *ClaimRecord) Copy() orm.CloneableData {
	return &ClaimRecord{
		Metadata:  c.Metadata.Copy(),
		ClaimedAt: c.ClaimedAt,
	}
}

var _ orm.Model = (*Allowance)(nil)

func (a *Allowance) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", a.Metadata.Validate())
	if a.Amount == nil {
		errs = errors.AppendField(errs, "Amount", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "Amount", a.Amount.Validate())
		if !a.Amount.IsPositive() {
			errs = errors.AppendField(errs, "Amount", errors.Wrap(errors.ErrAmount, "must be positive"))
		}
	}
	return errs
}

func (a *Allowance) Copy() orm.CloneableData {
	return &Allowance{
		Metadata: a.Metadata.Copy(),
		Amount:   a.Amount.Clone(),
	}
}

// NewWalletBucket returns a bucket for keeping wallets, keyed by the owner
// address.
func NewWalletBucket() orm.ModelBucket {
	b := orm.NewModelBucket(WalletBucketName, &Set{})
	return migration.NewModelBucket("token", b)
}

// NewClaimBucket returns a bucket for keeping faucet claim records, keyed
// by the claimer address. Existence of a record means the claim was made.
func NewClaimBucket() orm.ModelBucket {
	b := orm.NewModelBucket(ClaimBucketName, &ClaimRecord{})
	return migration.NewModelBucket("token", b)
}

// NewAllowanceBucket returns a bucket for keeping allowances, keyed by the
// owner and spender addresses combined.
func NewAllowanceBucket() orm.ModelBucket {
	b := orm.NewModelBucket(AllowanceBucketName, &Allowance{})
	return migration.NewModelBucket("token", b)
}

// allowanceKey returns the primary key of the allowance granted by the
// owner to the spender.
func allowanceKey(owner, spender mart.Address) []byte {
	key := make([]byte, 0, len(owner)+len(spender))
	key = append(key, owner...)
	return append(key, spender...)
}
