package marttest

import "github.com/tokenmart/mart"

// Handler is a mock implementation of the mart.Handler interface.
//
// Each method call is counted and the configured result returned.
type Handler struct {
	checkCall   int
	CheckResult mart.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult mart.DeliverResult
	DeliverErr    error
}

var _ mart.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx mart.Context, db mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	h.checkCall++
	return &h.CheckResult, h.CheckErr
}

func (h *Handler) Deliver(ctx mart.Context, db mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	h.deliverCall++
	return &h.DeliverResult, h.DeliverErr
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
