package mart

import (
	"reflect"

	"github.com/tokenmart/mart/errors"
)

// Msg is a message for the application to take an action (make a state
// transition). It is just the request, and must be validated by the
// Handlers. All authentication information is in the wrapping Tx.
type Msg interface {
	Persistent

	// Validate performs a sanity check on the message content. It does
	// not have access to any state, so only stateless checks belong
	// here.
	Validate() error

	// Path returns the message path.
	// This is used by the Router to locate the proper Handler. Msg should
	// be created alongside the Handler that corresponds to it.
	//
	// Must be alphanumeric [0-9A-Za-z_/]+
	Path() string
}

// Marshaller is anything that can be represented in binary.
//
// Marshal may validate the data before serializing it and unless you
// previously validated the struct, errors should be expected.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal.
//
// This is separated from Marshal, as this almost always requires a pointer,
// and functions that only need to marshal bytes can use the Marshaller
// interface to access non-pointers.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx represents the data sent from the user to the chain. It includes the
// actual message, along with information needed to authenticate the sender
// (cryptographic signatures), and anything else needed to pass through
// middleware.
//
// Each application must define its own tx type, which embeds all the
// middlewares that we wish to use. sigs.SignedTx is a common interface that
// many apps will wish to support.
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate
	GetMsg() (Msg, error)
}

// TxDecoder can parse bytes into a Tx
type TxDecoder func(txBytes []byte) (Tx, error)

// GetPath returns the path of the message, or (missing) if no message
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// LoadMsg extracts the message from the transaction, ensures that it is
// valid and loads it into the destination. Destination must be a non-nil
// pointer to a message of exactly the type carried by the transaction.
func LoadMsg(tx Tx, destination Msg) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	dv := reflect.ValueOf(destination)
	if dv.Kind() != reflect.Ptr || dv.IsNil() {
		return errors.Wrapf(errors.ErrType, "destination must be a non-nil pointer, got %T", destination)
	}

	mv := reflect.ValueOf(msg)
	if mv.Kind() != reflect.Ptr || mv.IsNil() {
		return errors.Wrapf(errors.ErrType, "message must be a non-nil pointer, got %T", msg)
	}

	if dv.Type() != mv.Type() {
		return errors.Wrapf(errors.ErrType, "cannot load %T message into %T", msg, destination)
	}

	dv.Elem().Set(mv.Elem())
	return nil
}
