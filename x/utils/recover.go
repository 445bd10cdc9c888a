package utils

import (
	"github.com/iov-one/arca"
	"github.com/iov-one/arca/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ arca.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx arca.Context, store arca.KVStore, tx arca.Tx, next arca.Checker) (_ *arca.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx arca.Context, store arca.KVStore, tx arca.Tx, next arca.Deliverer) (_ *arca.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
