package marttest

import "github.com/tokenmart/mart"

// Decorator is a mock implementation of the mart.Decorator interface.
//
// Set CheckErr or DeliverErr to force error response for corresponding method.
// If error attributes are not set then wrapped handler method is called and
// its result returned.
// Each method call is counted. Regardless of the method call result the
// counter is incremented.
type Decorator struct {
	checkCall int
	// CheckErr if set is returned by the Check method before calling
	// the wrapped handler.
	CheckErr error

	deliverCall int
	// DeliverErr if set is returned by the Deliver method before calling
	// the wrapped handler.
	DeliverErr error
}

var _ mart.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx mart.Context, db mart.KVStore, tx mart.Tx, next mart.Checker) (*mart.CheckResult, error) {
	d.checkCall++

	if d.CheckErr != nil {
		return &mart.CheckResult{}, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx mart.Context, db mart.KVStore, tx mart.Tx, next mart.Deliverer) (*mart.DeliverResult, error) {
	d.deliverCall++

	if d.DeliverErr != nil {
		return &mart.DeliverResult{}, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}

// Decorate wraps the handler with a single decorator and returns them
// as a combined handler.
func Decorate(h mart.Handler, d mart.Decorator) mart.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn mart.Handler
	dc mart.Decorator
}

var _ mart.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Check(ctx mart.Context, db mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	return d.dc.Check(ctx, db, tx, d.hn)
}

func (d *decoratedHandler) Deliver(ctx mart.Context, db mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}
