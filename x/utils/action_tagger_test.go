package utils

import (
	"context"
	"testing"

	"github.com/iov-one/arca"
	"github.com/iov-one/arca/arcatest"
	"github.com/iov-one/arca/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionTagger(t *testing.T) {
	tagger := NewActionTagger()
	db := store.MemStore()
	ctx := context.Background()

	tx := &arcatest.Tx{Msg: &arcatest.Msg{RoutePath: "deposit/create"}}
	h := &arcatest.Handler{}

	res, err := tagger.Deliver(ctx, db, tx, h)
	require.NoError(t, err)
	require.Len(t, res.Tags, 1)
	assert.Equal(t, ActionKey, res.Tags[0].Key)
	assert.Equal(t, "deposit/create", res.Tags[0].Value)

	// check path adds no tags
	cres, err := tagger.Check(ctx, db, tx, h)
	require.NoError(t, err)
	assert.NotNil(t, cres)
}

func TestActionTaggerAppends(t *testing.T) {
	tagger := NewActionTagger()
	db := store.MemStore()

	tx := &arcatest.Tx{Msg: &arcatest.Msg{RoutePath: "deposit/release"}}
	h := &arcatest.Handler{DeliverResult: arca.DeliverResult{
		Tags: []arca.Tag{arca.NewTag("deposit", "7")},
	}}

	res, err := tagger.Deliver(context.Background(), db, tx, h)
	require.NoError(t, err)
	require.Len(t, res.Tags, 2)
	assert.Equal(t, "deposit", res.Tags[0].Key)
	assert.Equal(t, ActionKey, res.Tags[1].Key)
}
