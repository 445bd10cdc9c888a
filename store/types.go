package store

import "github.com/iov-one/arca"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = arca.ReadOnlyKVStore
type KVStore = arca.KVStore
type CacheableKVStore = arca.CacheableKVStore
type KVCacheWrap = arca.KVCacheWrap

// SetDeleter is a minimal interface for writing. Both KVStore and
// Batch satisfy it.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// Batch can write multiple times and
// later be written in one call to the backing store.
type Batch interface {
	SetDeleter
	Write() error
}
