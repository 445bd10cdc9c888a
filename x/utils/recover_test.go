package utils

import (
	"context"
	"testing"

	"github.com/iov-one/arca"
	"github.com/iov-one/arca/arcatest"
	"github.com/iov-one/arca/errors"
	"github.com/iov-one/arca/store"
	"github.com/stretchr/testify/assert"
)

type panicHandler struct{}

func (panicHandler) Check(ctx arca.Context, db arca.KVStore, tx arca.Tx) (*arca.CheckResult, error) {
	panic("check panic")
}

func (panicHandler) Deliver(ctx arca.Context, db arca.KVStore, tx arca.Tx) (*arca.DeliverResult, error) {
	panic("deliver panic")
}

func TestRecoveryTurnsPanicIntoError(t *testing.T) {
	r := NewRecovery()
	db := store.MemStore()
	ctx := context.Background()

	_, err := r.Check(ctx, db, &arcatest.Tx{}, panicHandler{})
	assert.True(t, errors.ErrPanic.Is(err), "got %+v", err)

	_, err = r.Deliver(ctx, db, &arcatest.Tx{}, panicHandler{})
	assert.True(t, errors.ErrPanic.Is(err), "got %+v", err)
}

func TestRecoveryPassesThroughResults(t *testing.T) {
	r := NewRecovery()
	db := store.MemStore()
	ctx := context.Background()

	h := &arcatest.Handler{CheckResult: arca.CheckResult{Log: "ok"}}
	res, err := r.Check(ctx, db, &arcatest.Tx{}, h)
	assert.NoError(t, err)
	assert.Equal(t, "ok", res.Log)
	assert.Equal(t, 1, h.CheckCallCount())
}
