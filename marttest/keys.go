package marttest

import (
	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/crypto"
)

func NewKey() crypto.Signer {
	return crypto.GenPrivKeyEd25519()
}

func NewCondition() mart.Condition {
	return NewKey().PublicKey().Condition()
}
