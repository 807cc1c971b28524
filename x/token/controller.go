package token

import (
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/coin"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/orm"
)

// Controller is the functionality needed by the handlers and by other
// extensions that move funds. BaseController should be used as the
// implementation, the interface exists to allow mocking it out in tests.
type Controller interface {
	// Balance returns the coins held by the given account. It returns
	// ErrEmpty if the account has no wallet.
	Balance(store mart.KVStore, src mart.Address) (coin.Coins, error)

	// MoveCoins removes funds from the source wallet and adds them to
	// the destination wallet.
	MoveCoins(store mart.KVStore, src mart.Address, dest mart.Address, amount coin.Coin) error

	// IssueCoins creates new funds in the destination wallet out of
	// thin air.
	IssueCoins(store mart.KVStore, dest mart.Address, amount coin.Coin) error

	// Allowance returns the amount the spender may transfer out of the
	// owner wallet. It returns nil if no allowance was granted.
	Allowance(store mart.KVStore, owner mart.Address, spender mart.Address) (*coin.Coin, error)

	// SetAllowance overwrites the allowance the spender may transfer
	// out of the owner wallet. A nil or zero amount removes the grant.
	SetAllowance(store mart.KVStore, owner mart.Address, spender mart.Address, amount *coin.Coin) error

	// MoveCoinsFrom removes funds from the source wallet using the
	// allowance granted to the spender. The allowance is decreased by
	// the moved amount.
	MoveCoinsFrom(store mart.KVStore, spender mart.Address, src mart.Address, dest mart.Address, amount coin.Coin) error
}

// BaseController implements the Controller interface on top of the wallet
// and allowance buckets.
type BaseController struct {
	wallets    orm.ModelBucket
	allowances orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a controller using the default buckets.
func NewController() BaseController {
	return BaseController{
		wallets:    NewWalletBucket(),
		allowances: NewAllowanceBucket(),
	}
}

func (c BaseController) Balance(store mart.KVStore, src mart.Address) (coin.Coins, error) {
	var wallet Set
	switch err := c.wallets.One(store, src, &wallet); {
	case err == nil:
		return coin.Coins(wallet.Coins), nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(errors.ErrEmpty, "account %s", src)
	default:
		return nil, errors.Wrap(err, "cannot get account state")
	}
}

func (c BaseController) MoveCoins(store mart.KVStore, src mart.Address, dest mart.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount: %v", amount)
	}

	var sender Set
	switch err := c.wallets.One(store, src, &sender); {
	case err == nil:
		// All good.
	case errors.ErrNotFound.Is(err):
		return errors.Wrapf(errors.ErrEmpty, "account %s", src)
	default:
		return errors.Wrap(err, "cannot get source account")
	}

	if !coin.Coins(sender.Coins).Contains(amount) {
		return errors.Wrapf(ErrInsufficientFunds, "wallet %s", src)
	}

	left, err := coin.Coins(sender.Coins).Subtract(amount)
	if err != nil {
		return errors.Wrap(err, "subtract from source")
	}
	sender.Coins = left
	if _, err := c.wallets.Put(store, src, &sender); err != nil {
		return errors.Wrap(err, "save source account")
	}

	return c.add(store, dest, amount)
}

func (c BaseController) IssueCoins(store mart.KVStore, dest mart.Address, amount coin.Coin) error {
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	return c.add(store, dest, amount)
}

// add credits the destination wallet, creating it when missing.
func (c BaseController) add(store mart.KVStore, dest mart.Address, amount coin.Coin) error {
	var recipient Set
	switch err := c.wallets.One(store, dest, &recipient); {
	case err == nil:
		// All good.
	case errors.ErrNotFound.Is(err):
		recipient = Set{Metadata: &mart.Metadata{Schema: 1}}
	default:
		return errors.Wrap(err, "cannot get destination account")
	}
	total, err := coin.Coins(recipient.Coins).Add(amount)
	if err != nil {
		return errors.Wrap(err, "add to destination")
	}
	recipient.Coins = total
	if _, err := c.wallets.Put(store, dest, &recipient); err != nil {
		return errors.Wrap(err, "save destination account")
	}
	return nil
}

func (c BaseController) Allowance(store mart.KVStore, owner mart.Address, spender mart.Address) (*coin.Coin, error) {
	var a Allowance
	switch err := c.allowances.One(store, allowanceKey(owner, spender), &a); {
	case err == nil:
		return a.Amount, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, errors.Wrap(err, "cannot get allowance")
	}
}

func (c BaseController) SetAllowance(store mart.KVStore, owner mart.Address, spender mart.Address, amount *coin.Coin) error {
	key := allowanceKey(owner, spender)

	if coin.IsEmpty(amount) || amount.IsZero() {
		switch err := c.allowances.Delete(store, key); {
		case err == nil, errors.ErrNotFound.Is(err):
			return nil
		default:
			return errors.Wrap(err, "delete allowance")
		}
	}

	a := Allowance{
		Metadata: &mart.Metadata{Schema: 1},
		Amount:   amount.Clone(),
	}
	if _, err := c.allowances.Put(store, key, &a); err != nil {
		return errors.Wrap(err, "save allowance")
	}
	return nil
}

func (c BaseController) MoveCoinsFrom(store mart.KVStore, spender mart.Address, src mart.Address, dest mart.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount: %v", amount)
	}

	key := allowanceKey(src, spender)
	var a Allowance
	switch err := c.allowances.One(store, key, &a); {
	case err == nil:
		// All good.
	case errors.ErrNotFound.Is(err):
		return errors.Wrapf(ErrInsufficientAllowance, "no allowance for %s", spender)
	default:
		return errors.Wrap(err, "cannot get allowance")
	}

	if !a.Amount.SameType(amount) || !a.Amount.IsGTE(amount) {
		return errors.Wrapf(ErrInsufficientAllowance, "allowance is %v", a.Amount)
	}

	left, err := a.Amount.Subtract(amount)
	if err != nil {
		return errors.Wrap(err, "subtract from allowance")
	}
	if left.IsZero() {
		if err := c.allowances.Delete(store, key); err != nil {
			return errors.Wrap(err, "delete allowance")
		}
	} else {
		a.Amount = &left
		if _, err := c.allowances.Put(store, key, &a); err != nil {
			return errors.Wrap(err, "save allowance")
		}
	}

	return c.MoveCoins(store, src, dest, amount)
}
