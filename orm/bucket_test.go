package orm

import (
	"testing"

	"github.com/iov-one/arca/errors"
	"github.com/iov-one/arca/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketGetSave(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("cnts", NewCounter(0))

	// getting a missing value returns nil, nil
	obj, err := bucket.Get(db, []byte("missing"))
	require.NoError(t, err)
	assert.Nil(t, obj)

	obj = NewSimpleObj([]byte("first"), &Counter{Count: 55})
	require.NoError(t, bucket.Save(db, obj))

	loaded, err := bucket.Get(db, []byte("first"))
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, []byte("first"), loaded.Key())
	assert.Equal(t, int64(55), loaded.Value().(*Counter).Count)

	has, err := bucket.Has(db, []byte("first"))
	require.NoError(t, err)
	assert.True(t, has)
}

func TestBucketDelete(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("cnts", NewCounter(0))

	obj := NewSimpleObj([]byte("gone"), &Counter{Count: 1})
	require.NoError(t, bucket.Save(db, obj))
	require.NoError(t, bucket.Delete(db, []byte("gone")))

	loaded, err := bucket.Get(db, []byte("gone"))
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestBucketSaveInvalid(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("cnts", NewCounter(0))

	// no key
	err := bucket.Save(db, NewSimpleObj(nil, &Counter{Count: 1}))
	assert.True(t, errors.ErrEmpty.Is(err))

	// invalid value
	err = bucket.Save(db, NewSimpleObj([]byte("key"), &Counter{Count: -5}))
	assert.True(t, errors.ErrState.Is(err))
}

func TestBucketPrefixesDoNotCollide(t *testing.T) {
	db := store.MemStore()
	one := NewBucket("alpha", NewCounter(0))
	two := NewBucket("beta", NewCounter(0))

	key := []byte("shared")
	require.NoError(t, one.Save(db, NewSimpleObj(key, &Counter{Count: 1})))
	require.NoError(t, two.Save(db, NewSimpleObj(key, &Counter{Count: 2})))

	first, err := one.Get(db, key)
	require.NoError(t, err)
	second, err := two.Get(db, key)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.Value().(*Counter).Count)
	assert.Equal(t, int64(2), second.Value().(*Counter).Count)
}

func TestBucketNameValidation(t *testing.T) {
	assert.Panics(t, func() {
		NewBucket("Bad Name", NewCounter(0))
	})
	assert.Panics(t, func() {
		NewBucket("wayyyy_too_long_name", NewCounter(0))
	})
}

func TestSimpleObjClone(t *testing.T) {
	obj := NewSimpleObj([]byte("key"), &Counter{Count: 5})
	clone := obj.Clone()

	// clone keeps the key but starts with a fresh zero value
	assert.Equal(t, []byte("key"), clone.Key())
	assert.Equal(t, int64(0), clone.Value().(*Counter).Count)
	assert.Equal(t, int64(5), obj.Value().(*Counter).Count)
}
