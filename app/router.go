package app

import (
	"fmt"
	"regexp"

	"github.com/tokenmart/mart"
	"github.com/tokenmart/mart/errors"
)

// isPath ensures a message path does not contain surprising characters.
var isPath = regexp.MustCompile(`^[a-z0-9_/]+$`).MatchString

// Router allows us to register many handlers with different paths and then
// direct each message to the proper handler.
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	handlers map[string]mart.Handler
}

var _ mart.Registry = (*Router)(nil)
var _ mart.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes
func NewRouter() *Router {
	return &Router{
		handlers: make(map[string]mart.Handler),
	}
}

// Handle implements mart.Registry interface. Path of the message is used as
// the routing destination.
func (r *Router) Handle(m mart.Msg, h mart.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path %q", path))
	}
	if _, ok := r.handlers[path]; ok {
		panic(fmt.Sprintf("re-registering route %q", path))
	}
	r.handlers[path] = h
}

// handler returns the registered Handler for this message, or a
// not-found handler when no route matches.
func (r *Router) handler(m mart.Msg) mart.Handler {
	path := m.Path()
	if h, ok := r.handlers[path]; ok {
		return h
	}
	return notFoundHandler(path)
}

// Check dispatches to the proper handler based on path
func (r *Router) Check(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	h := r.handler(msg)
	return h.Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on path
func (r *Router) Deliver(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	h := r.handler(msg)
	return h.Deliver(ctx, store, tx)
}

// notFoundHandler always returns ErrNotFound error regardless of the request
// made.
type notFoundHandler string

func (path notFoundHandler) Check(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}

func (path notFoundHandler) Deliver(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}
