package app

import (
	"context"
	"testing"

	"github.com/iov-one/arca"
	"github.com/iov-one/arca/arcatest"
	"github.com/iov-one/arca/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainDecorators(t *testing.T) {
	d1 := &arcatest.Decorator{}
	d2 := &arcatest.Decorator{}
	h := &arcatest.Handler{}

	stack := ChainDecorators(d1, nil, d2).WithHandler(h)

	ctx := context.Background()
	db := store.MemStore()
	tx := &arcatest.Tx{Msg: &arcatest.Msg{RoutePath: "test/good"}}

	_, err := stack.Check(ctx, db, tx)
	require.NoError(t, err)
	_, err = stack.Deliver(ctx, db, tx)
	require.NoError(t, err)

	assert.Equal(t, 2, d1.CallCount())
	assert.Equal(t, 2, d2.CallCount())
	assert.Equal(t, 2, h.CallCount())
}

func TestChainNilDecorators(t *testing.T) {
	var typedNil *arcatest.Decorator
	h := &arcatest.Handler{}

	// both untyped and typed nils are cut off
	stack := ChainDecorators(nil, typedNil).Chain(nil).WithHandler(h)

	_, err := stack.Check(context.Background(), store.MemStore(),
		&arcatest.Tx{Msg: &arcatest.Msg{RoutePath: "test/good"}})
	require.NoError(t, err)
	assert.Equal(t, 1, h.CheckCallCount())
}

var _ arca.Handler = step{}
