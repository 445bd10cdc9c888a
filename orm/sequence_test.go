package orm

import (
	"bytes"
	"testing"

	"github.com/iov-one/arca/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceIncrements(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("dep", SeqID)

	for i := int64(1); i <= 10; i++ {
		val, err := s.NextInt(db)
		require.NoError(t, err)
		assert.Equal(t, i, val)
	}

	latest, raw, err := s.Latest(db)
	require.NoError(t, err)
	assert.Equal(t, int64(10), latest)
	assert.Equal(t, EncodeSequence(10), raw)
}

func TestSequenceBytesAreOrdered(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("dep", SeqID)

	last, err := s.NextVal(db)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		next, err := s.NextVal(db)
		require.NoError(t, err)
		require.Len(t, next, 8)
		require.True(t, bytes.Compare(last, next) < 0, "sequence keys must be strictly increasing")
		last = next
	}
}

func TestSequencesAreIndependent(t *testing.T) {
	db := store.MemStore()
	one := NewSequence("dep", SeqID)
	two := NewSequence("rvl", SeqID)

	val, err := one.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), val)

	val, err = two.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), val)
}

func TestDecodeNilSequence(t *testing.T) {
	assert.Equal(t, int64(0), DecodeSequence(nil))
}
