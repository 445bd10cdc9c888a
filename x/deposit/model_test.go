package deposit

import (
	"testing"

	"github.com/iov-one/arca/arcatest"
	"github.com/iov-one/arca/coin"
	"github.com/iov-one/arca/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepositValidate(t *testing.T) {
	commitment := Commit(arcatest.NewCondition().Address())

	cases := map[string]struct {
		deposit Deposit
		wantErr bool
	}{
		"valid pending": {
			deposit: Deposit{Amount: coin.NewCoinp(7, 0, "TKN"), Commitment: commitment},
		},
		"valid released": {
			deposit: Deposit{Amount: coin.NewCoinp(0, 0, "TKN"), Commitment: commitment, Released: true},
		},
		"released with value": {
			deposit: Deposit{Amount: coin.NewCoinp(7, 0, "TKN"), Commitment: commitment, Released: true},
			wantErr: true,
		},
		"pending without value": {
			deposit: Deposit{Amount: coin.NewCoinp(0, 0, "TKN"), Commitment: commitment},
			wantErr: true,
		},
		"missing amount": {
			deposit: Deposit{Commitment: commitment},
			wantErr: true,
		},
		"missing commitment": {
			deposit: Deposit{Amount: coin.NewCoinp(7, 0, "TKN")},
			wantErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if tc.wantErr {
				assert.Error(t, tc.deposit.Validate())
			} else {
				assert.NoError(t, tc.deposit.Validate())
			}
		})
	}
}

func TestDepositBucketIDsStartAtZero(t *testing.T) {
	db := store.MemStore()
	bucket := NewDepositBucket()
	commitment := Commit(arcatest.NewCondition().Address())

	for i := int64(0); i < 3; i++ {
		obj, err := bucket.Create(db, &Deposit{
			Amount:     coin.NewCoinp(10+i, 0, "TKN"),
			Commitment: commitment,
		})
		require.NoError(t, err)
		assert.Equal(t, arcatest.SequenceID(i), obj.Key())
	}

	count, err := bucket.Count(db)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestDepositBucketRoundTrip(t *testing.T) {
	db := store.MemStore()
	bucket := NewDepositBucket()
	commitment := Commit(arcatest.NewCondition().Address())

	obj, err := bucket.Create(db, &Deposit{
		Amount:     coin.NewCoinp(42, 7, "TKN"),
		Commitment: commitment,
		IsNative:   false,
	})
	require.NoError(t, err)

	loaded, err := bucket.Get(db, obj.Key())
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.True(t, loaded.Amount.Equals(coin.NewCoin(42, 7, "TKN")))
	assert.Equal(t, commitment, loaded.Commitment)
	assert.False(t, loaded.Released)

	missing, err := bucket.Get(db, arcatest.SequenceID(99))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRevealBucket(t *testing.T) {
	db := store.MemStore()
	bucket := NewRevealBucket()
	id := arcatest.SequenceID(0)

	// nothing revealed yet
	reveal, err := bucket.Get(db, id)
	require.NoError(t, err)
	assert.Nil(t, reveal)

	beneficiary := arcatest.NewCondition().Address()
	require.NoError(t, bucket.Save(db, id, &Reveal{Beneficiary: beneficiary}))

	reveal, err = bucket.Get(db, id)
	require.NoError(t, err)
	require.NotNil(t, reveal)
	assert.Equal(t, beneficiary, reveal.Beneficiary)

	got, err := RevealedBeneficiary(db, id)
	require.NoError(t, err)
	assert.Equal(t, beneficiary, got)
}

func TestCommitmentMatches(t *testing.T) {
	addr := arcatest.NewCondition().Address()
	other := arcatest.NewCondition().Address()

	assert.True(t, commitmentMatches(Commit(addr), addr))
	assert.False(t, commitmentMatches(Commit(addr), other))
	assert.False(t, commitmentMatches(Commit(addr), nil))
}
