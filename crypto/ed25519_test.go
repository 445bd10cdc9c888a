package crypto

import (
	"bytes"
	"testing"

	"github.com/iov-one/arca"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	priv := GenPrivKeyEd25519()
	pub := priv.PublicKey()

	msg := []byte("the message to sign")
	sig, err := priv.Sign(msg)
	require.NoError(t, err)

	assert.True(t, pub.Verify(msg, sig))
	assert.False(t, pub.Verify([]byte("other message"), sig))

	// signature from another key must not verify
	otherSig, err := GenPrivKeyEd25519().Sign(msg)
	require.NoError(t, err)
	assert.False(t, pub.Verify(msg, otherSig))
}

func TestVerifyMalformedInput(t *testing.T) {
	priv := GenPrivKeyEd25519()
	pub := priv.PublicKey()

	msg := []byte("payload")
	sig, err := priv.Sign(msg)
	require.NoError(t, err)

	assert.False(t, pub.Verify(msg, nil))
	assert.False(t, pub.Verify(msg, &Signature{Ed25519: []byte("short")}))
	assert.False(t, (&PublicKey{Ed25519: []byte("short")}).Verify(msg, sig))

	var nilKey *PublicKey
	assert.False(t, nilKey.Verify(msg, sig))
}

func TestDeterministicKeyFromSeed(t *testing.T) {
	seed := bytes.Repeat([]byte{7}, 32)
	one := PrivKeyEd25519FromSeed(seed)
	two := PrivKeyEd25519FromSeed(seed)

	assert.Equal(t, one.Ed25519, two.Ed25519)
	assert.Equal(t, one.PublicKey().Ed25519, two.PublicKey().Ed25519)
}

func TestCondition(t *testing.T) {
	pub := GenPrivKeyEd25519().PublicKey()

	cond := pub.Condition()
	require.NoError(t, cond.Validate())

	addr := pub.Address()
	require.NoError(t, addr.Validate())
	assert.Len(t, []byte(addr), arca.AddressLength)

	// the same key always produces the same address
	assert.True(t, addr.Equals(pub.Condition().Address()))

	var nilKey *PublicKey
	assert.Nil(t, nilKey.Condition())
}

func TestKeySerialization(t *testing.T) {
	pub := GenPrivKeyEd25519().PublicKey()
	raw, err := pub.Marshal()
	require.NoError(t, err)

	var got PublicKey
	require.NoError(t, got.Unmarshal(raw))
	assert.Equal(t, pub.Ed25519, got.Ed25519)
}
