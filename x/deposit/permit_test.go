package deposit

import (
	"testing"

	"github.com/iov-one/arca/arcatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermitSignAndVerify(t *testing.T) {
	key := arcatest.NewKey()
	permit := &Permit{
		DepositID: arcatest.SequenceID(5),
		Deadline:  1234567890,
		Receiver:  arcatest.NewCondition().Address(),
	}

	sig, err := SignPermit(key, permit, "test-chain-1")
	require.NoError(t, err)

	signer, err := VerifyPermit(permit, "test-chain-1", key.PublicKey(), sig)
	require.NoError(t, err)
	assert.Equal(t, key.PublicKey().Address(), signer)
}

func TestPermitSignatureBoundToContent(t *testing.T) {
	key := arcatest.NewKey()
	permit := &Permit{
		DepositID: arcatest.SequenceID(5),
		Deadline:  1234567890,
		Receiver:  arcatest.NewCondition().Address(),
	}
	sig, err := SignPermit(key, permit, "test-chain-1")
	require.NoError(t, err)

	// changed deposit id
	tampered := &Permit{
		DepositID: arcatest.SequenceID(6),
		Deadline:  permit.Deadline,
		Receiver:  permit.Receiver,
	}
	_, err = VerifyPermit(tampered, "test-chain-1", key.PublicKey(), sig)
	assert.True(t, ErrSignatureMismatch.Is(err))

	// changed receiver
	tampered = &Permit{
		DepositID: permit.DepositID,
		Deadline:  permit.Deadline,
		Receiver:  arcatest.NewCondition().Address(),
	}
	_, err = VerifyPermit(tampered, "test-chain-1", key.PublicKey(), sig)
	assert.True(t, ErrSignatureMismatch.Is(err))

	// changed deadline
	tampered = &Permit{
		DepositID: permit.DepositID,
		Deadline:  permit.Deadline + 1,
		Receiver:  permit.Receiver,
	}
	_, err = VerifyPermit(tampered, "test-chain-1", key.PublicKey(), sig)
	assert.True(t, ErrSignatureMismatch.Is(err))
}

func TestPermitSignatureBoundToChain(t *testing.T) {
	key := arcatest.NewKey()
	permit := &Permit{
		DepositID: arcatest.SequenceID(0),
		Deadline:  1234567890,
		Receiver:  arcatest.NewCondition().Address(),
	}
	sig, err := SignPermit(key, permit, "test-chain-1")
	require.NoError(t, err)

	// a permit for one network must not verify on another
	_, err = VerifyPermit(permit, "test-chain-2", key.PublicKey(), sig)
	assert.True(t, ErrSignatureMismatch.Is(err))

	a, err := BuildPermitSignBytes(permit, "test-chain-1")
	require.NoError(t, err)
	b, err := BuildPermitSignBytes(permit, "test-chain-2")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestPermitWrongKey(t *testing.T) {
	key := arcatest.NewKey()
	other := arcatest.NewKey()
	permit := &Permit{
		DepositID: arcatest.SequenceID(0),
		Deadline:  1234567890,
		Receiver:  arcatest.NewCondition().Address(),
	}
	sig, err := SignPermit(key, permit, "test-chain-1")
	require.NoError(t, err)

	_, err = VerifyPermit(permit, "test-chain-1", other.PublicKey(), sig)
	assert.True(t, ErrSignatureMismatch.Is(err))
}

func TestPermitSignBytesRejectsBadChainID(t *testing.T) {
	permit := &Permit{
		DepositID: arcatest.SequenceID(0),
		Deadline:  1234567890,
		Receiver:  arcatest.NewCondition().Address(),
	}
	_, err := BuildPermitSignBytes(permit, "x")
	assert.Error(t, err)
	_, err = BuildPermitSignBytes(nil, "test-chain-1")
	assert.Error(t, err)
}
