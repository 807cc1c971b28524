package mart

import (
	"context"
	"regexp"
	"time"

	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/tokenmart/mart/errors"
)

// Context is just an alias for the standard implementation. We use functions
// to extend it to our domain.
type Context = context.Context

// DefaultLogger is used for all context that have not set anything
// themselves.
var DefaultLogger = log.NewNopLogger()

// IsValidChainID is the RegExp to ensure valid chain IDs
var IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString

type contextKey int // local to the mart module

const (
	contextKeyHeight contextKey = iota
	contextKeyChainID
	contextKeyLogger
	contextKeyTime
	contextKeyHeader
)

// WithHeight sets the block height for the Context.
// Must only be set once in the lifetime of a block.
func WithHeight(ctx Context, height int64) Context {
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight returns the current block height, ok is false if not set.
func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// WithChainID sets the chain id for the Context.
// Panics on an invalid chain id.
func WithChainID(ctx Context, chainID string) Context {
	if !IsValidChainID(chainID) {
		panic("invalid chain id: " + chainID)
	}
	return context.WithValue(ctx, contextKeyChainID, chainID)
}

// GetChainID returns the chain id from the context. It panics if the chain
// id was not set, as this indicates an application setup error.
func GetChainID(ctx Context) string {
	if ctx.Value(contextKeyChainID) == nil {
		panic("chain id not set in the context")
	}
	return ctx.Value(contextKeyChainID).(string)
}

// WithBlockTime sets the block time for the Context. Block time is always
// given in UTC.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, contextKeyTime, t.UTC())
}

// BlockTime returns the block time as declared in this context.
func BlockTime(ctx Context) (time.Time, error) {
	val, ok := ctx.Value(contextKeyTime).(time.Time)
	if !ok {
		return time.Time{}, errors.Wrap(errors.ErrHuman, "block time not present in the context")
	}
	return val, nil
}

// WithHeader sets the block header for the Context.
// Must only be set once in the lifetime of a block.
func WithHeader(ctx Context, header abci.Header) Context {
	return context.WithValue(ctx, contextKeyHeader, header)
}

// GetHeader returns the current block header, ok is false if not set.
func GetHeader(ctx Context) (abci.Header, bool) {
	val, ok := ctx.Value(contextKeyHeader).(abci.Header)
	return val, ok
}

// WithLogger sets the logger for this Context.
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the logger from this context, or DefaultLogger if none
// was set.
func GetLogger(ctx Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}

// WithLogInfo accepts keyvalue pairs, and returns another context like this,
// after passing all the keyvals to the Logger.
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	logger := GetLogger(ctx).With(keyvals...)
	return WithLogger(ctx, logger)
}

// IsExpired returns true if given time is in the past as compared to the
// "now" as declared for the block. Expiration is inclusive, meaning that if
// current time is equal to the expiration time then this function returns
// true.
//
// This function panics if the block time is not provided in the context.
// This must never happen. The block time presence is guaranteed by the
// application during the block processing.
func IsExpired(ctx Context, t UnixTime) bool {
	blockNow, err := BlockNow(ctx)
	if err != nil {
		panic("block time is not present")
	}
	return t <= AsUnixTime(blockNow)
}

// BlockNow returns the block time as declared in the context.
func BlockNow(ctx Context) (time.Time, error) {
	return BlockTime(ctx)
}
