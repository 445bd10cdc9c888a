package app

import (
	"context"
	"testing"

	"github.com/iov-one/arca"
	"github.com/iov-one/arca/arcatest"
	"github.com/iov-one/arca/errors"
	"github.com/iov-one/arca/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterDispatch(t *testing.T) {
	r := NewRouter()
	good := &arcatest.Handler{}
	other := &arcatest.Handler{}
	r.Handle("test/good", good)
	r.Handle("test/other", other)

	ctx := context.Background()
	db := store.MemStore()
	tx := &arcatest.Tx{Msg: &arcatest.Msg{RoutePath: "test/good"}}

	_, err := r.Check(ctx, db, tx)
	require.NoError(t, err)
	_, err = r.Deliver(ctx, db, tx)
	require.NoError(t, err)

	assert.Equal(t, 2, good.CallCount())
	assert.Equal(t, 0, other.CallCount())
}

func TestRouterNoHandler(t *testing.T) {
	r := NewRouter()
	ctx := context.Background()
	db := store.MemStore()
	tx := &arcatest.Tx{Msg: &arcatest.Msg{RoutePath: "test/secret"}}

	_, err := r.Check(ctx, db, tx)
	assert.True(t, errors.ErrNotFound.Is(err), "unexpected error: %+v", err)
	_, err = r.Deliver(ctx, db, tx)
	assert.True(t, errors.ErrNotFound.Is(err), "unexpected error: %+v", err)
}

func TestRouterInvalidPath(t *testing.T) {
	r := NewRouter()
	assert.Panics(t, func() { r.Handle("no-separator", &arcatest.Handler{}) })
	assert.Panics(t, func() { r.Handle("UPPER/case", &arcatest.Handler{}) })
}

func TestRouterDuplicateRoute(t *testing.T) {
	r := NewRouter()
	r.Handle("test/good", &arcatest.Handler{})
	assert.Panics(t, func() { r.Handle("test/good", &arcatest.Handler{}) })
}

var _ arca.Registry = (*Router)(nil)
