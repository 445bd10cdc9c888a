package arcatest

import (
	"context"
	"time"

	"github.com/iov-one/arca"
	"github.com/iov-one/arca/crypto"
)

// NewCondition returns a newly generated ed25519 signature condition,
// unique for every call.
func NewCondition() arca.Condition {
	return crypto.GenPrivKeyEd25519().PublicKey().Condition()
}

// NewKey returns a newly generated private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// CtxWithTime returns a context with the block time set.
func CtxWithTime(t time.Time) arca.Context {
	return arca.WithBlockTime(context.Background(), t)
}

// SequenceID returns an ID encoded as if it was generated by a bucket
// sequence. This is a helper to avoid the confusion of how an integer
// value is binary represented.
func SequenceID(n int64) []byte {
	b := make([]byte, 8)
	// big endian, the same as orm sequence encoding
	for i := 7; i >= 0; i-- {
		b[i] = byte(n)
		n >>= 8
	}
	return b
}
