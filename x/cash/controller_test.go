package cash

import (
	"testing"

	"github.com/iov-one/arca/arcatest"
	"github.com/iov-one/arca/coin"
	"github.com/iov-one/arca/errors"
	"github.com/iov-one/arca/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndBalance(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())
	addr := arcatest.NewCondition().Address()

	require.NoError(t, ctrl.IssueCoins(db, addr, coin.NewCoin(100, 0, "ARC")))

	balance, err := ctrl.Balance(db, addr)
	require.NoError(t, err)
	assert.True(t, balance.Contains(coin.NewCoin(100, 0, "ARC")))
}

func TestBalanceMissingWallet(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())

	_, err := ctrl.Balance(db, arcatest.NewCondition().Address())
	assert.True(t, errors.ErrEmpty.Is(err))
}

func TestMoveCoins(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())
	src := arcatest.NewCondition().Address()
	dest := arcatest.NewCondition().Address()

	require.NoError(t, ctrl.IssueCoins(db, src, coin.NewCoin(100, 0, "ARC")))
	require.NoError(t, ctrl.MoveCoins(db, src, dest, coin.NewCoin(40, 0, "ARC")))

	srcBalance, err := ctrl.Balance(db, src)
	require.NoError(t, err)
	assert.True(t, srcBalance.Contains(coin.NewCoin(60, 0, "ARC")))
	assert.False(t, srcBalance.Contains(coin.NewCoin(61, 0, "ARC")))

	destBalance, err := ctrl.Balance(db, dest)
	require.NoError(t, err)
	assert.True(t, destBalance.Contains(coin.NewCoin(40, 0, "ARC")))
}

func TestMoveCoinsRejected(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())
	src := arcatest.NewCondition().Address()
	dest := arcatest.NewCondition().Address()

	// missing source wallet
	err := ctrl.MoveCoins(db, src, dest, coin.NewCoin(10, 0, "ARC"))
	assert.True(t, errors.ErrEmpty.Is(err))

	require.NoError(t, ctrl.IssueCoins(db, src, coin.NewCoin(5, 0, "ARC")))

	// insufficient funds
	err = ctrl.MoveCoins(db, src, dest, coin.NewCoin(10, 0, "ARC"))
	assert.True(t, errors.ErrAmount.Is(err))

	// wrong currency
	err = ctrl.MoveCoins(db, src, dest, coin.NewCoin(1, 0, "BTC"))
	assert.True(t, errors.ErrAmount.Is(err))

	// non-positive amount
	err = ctrl.MoveCoins(db, src, dest, coin.NewCoin(0, 0, "ARC"))
	assert.True(t, errors.ErrAmount.Is(err))
	err = ctrl.MoveCoins(db, src, dest, coin.NewCoin(-3, 0, "ARC"))
	assert.True(t, errors.ErrAmount.Is(err))
}

func TestIssueNegative(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())
	addr := arcatest.NewCondition().Address()

	require.NoError(t, ctrl.IssueCoins(db, addr, coin.NewCoin(10, 0, "ARC")))
	require.NoError(t, ctrl.IssueCoins(db, addr, coin.NewCoin(-4, 0, "ARC")))

	balance, err := ctrl.Balance(db, addr)
	require.NoError(t, err)
	assert.True(t, balance.Contains(coin.NewCoin(6, 0, "ARC")))

	// cannot take the wallet below zero
	err = ctrl.IssueCoins(db, addr, coin.NewCoin(-100, 0, "ARC"))
	assert.True(t, errors.ErrAmount.Is(err))
}

func TestWalletSerialization(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket()
	addr := arcatest.NewCondition().Address()

	wallet, err := WalletWith(addr, coin.NewCoinp(7, 500, "ARC"))
	require.NoError(t, err)
	require.NoError(t, bucket.Save(db, wallet))

	loaded, err := bucket.Get(db, addr)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.True(t, loaded.Coins().Contains(coin.NewCoin(7, 500, "ARC")))
}
