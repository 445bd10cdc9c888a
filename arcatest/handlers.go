package arcatest

import "github.com/iov-one/arca"

// Handler is a mock implementation of the arca.Handler interface that
// counts calls and returns declared results.
type Handler struct {
	checkCall   int
	CheckResult arca.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult arca.DeliverResult
	DeliverErr    error
}

var _ arca.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx arca.Context, db arca.KVStore, tx arca.Tx) (*arca.CheckResult, error) {
	h.checkCall++
	return &h.CheckResult, h.CheckErr
}

func (h *Handler) Deliver(ctx arca.Context, db arca.KVStore, tx arca.Tx) (*arca.DeliverResult, error) {
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

// Decorator is a mock implementation of the arca.Decorator interface
// that counts calls and delegates to the next handler.
type Decorator struct {
	checkCall   int
	deliverCall int
}

var _ arca.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx arca.Context, db arca.KVStore, tx arca.Tx, next arca.Checker) (*arca.CheckResult, error) {
	d.checkCall++
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx arca.Context, db arca.KVStore, tx arca.Tx, next arca.Deliverer) (*arca.DeliverResult, error) {
	d.deliverCall++
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
