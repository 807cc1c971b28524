package nft

import (
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
	"github.com/tokenmart/mart/orm"
)

// Controller is the functionality needed by other extensions that operate
// on tokens. BaseController should be used as the implementation, the
// interface exists to allow mocking it out in tests.
type Controller interface {
	// Load returns the token with the given id. It returns ErrNotFound
	// if the token was never minted.
	Load(store mart.ReadOnlyKVStore, tokenID []byte) (*Token, error)

	// Move transfers the token to the destination address. The source
	// must be the current owner and the spender must be the owner or
	// the approved address. Any approval is cleared.
	Move(store mart.KVStore, tokenID []byte, spender mart.Address, src mart.Address, dest mart.Address) error

	// TokensOfOwner returns the ids of all tokens held by the owner.
	TokensOfOwner(store mart.ReadOnlyKVStore, owner mart.Address) ([][]byte, error)
}

// BaseController implements the Controller interface on top of the token
// bucket.
type BaseController struct {
	bucket orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a controller using the default bucket.
func NewController() BaseController {
	return BaseController{bucket: NewBucket()}
}

func (c BaseController) Load(store mart.ReadOnlyKVStore, tokenID []byte) (*Token, error) {
	var t Token
	if err := c.bucket.One(store, tokenID, &t); err != nil {
		return nil, errors.Wrapf(err, "token %x", tokenID)
	}
	return &t, nil
}

func (c BaseController) Move(store mart.KVStore, tokenID []byte, spender mart.Address, src mart.Address, dest mart.Address) error {
	t, err := c.Load(store, tokenID)
	if err != nil {
		return err
	}
	if !t.Owner.Equals(src) {
		return errors.Wrapf(ErrIncorrectOwner, "token belongs to %s", t.Owner)
	}
	authorized := len(spender) != 0 && spender.Equals(t.Owner)
	if !authorized && len(t.Approved) != 0 {
		authorized = spender.Equals(t.Approved)
	}
	if !authorized {
		return errors.Wrap(errors.ErrUnauthorized, "spender is neither owner nor approved")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	t.Owner = dest
	t.Approved = nil
	if _, err := c.bucket.Put(store, tokenID, t); err != nil {
		return errors.Wrap(err, "save token")
	}
	return nil
}

func (c BaseController) TokensOfOwner(store mart.ReadOnlyKVStore, owner mart.Address) ([][]byte, error) {
	var tokens []Token
	keys, err := c.bucket.ByIndex(store, "owner", owner, &tokens)
	if err != nil {
		return nil, errors.Wrap(err, "owner index")
	}
	return keys, nil
}
