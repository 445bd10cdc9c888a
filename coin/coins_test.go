package coin

import (
	"testing"

	"github.com/iov-one/arca/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineCoins(t *testing.T) {
	cs, err := CombineCoins(
		NewCoin(2, 0, "FOO"),
		NewCoin(1, 0, "BAR"),
		NewCoin(3, 0, "FOO"),
	)
	require.NoError(t, err)
	require.Equal(t, 2, cs.Count())
	// sorted alphabetically, duplicates merged
	assert.True(t, cs[0].Equals(NewCoin(1, 0, "BAR")))
	assert.True(t, cs[1].Equals(NewCoin(5, 0, "FOO")))
}

func TestCoinsAddRemovesZero(t *testing.T) {
	cs, err := CombineCoins(NewCoin(5, 0, "FOO"))
	require.NoError(t, err)

	cs, err = cs.Subtract(NewCoin(5, 0, "FOO"))
	require.NoError(t, err)
	assert.True(t, cs.IsEmpty())
}

func TestCoinsContains(t *testing.T) {
	cs, err := CombineCoins(NewCoin(5, 0, "FOO"), NewCoin(1, 0, "BAR"))
	require.NoError(t, err)

	assert.True(t, cs.Contains(NewCoin(5, 0, "FOO")))
	assert.True(t, cs.Contains(NewCoin(4, 999999999, "FOO")))
	assert.False(t, cs.Contains(NewCoin(5, 1, "FOO")))
	assert.False(t, cs.Contains(NewCoin(1, 0, "MISS")))
}

func TestCoinsAmount(t *testing.T) {
	cs, err := CombineCoins(NewCoin(5, 0, "FOO"))
	require.NoError(t, err)

	assert.True(t, cs.Amount("FOO").Equals(NewCoin(5, 0, "FOO")))
	// missing ticker yields a zero coin of that currency
	zero := cs.Amount("BAR")
	assert.True(t, zero.IsZero())
	assert.Equal(t, "BAR", zero.Ticker)
}

func TestCoinsValidate(t *testing.T) {
	// manually built unsorted set must fail
	bad := Coins{NewCoinp(1, 0, "FOO"), NewCoinp(1, 0, "BAR")}
	assert.True(t, errors.ErrState.Is(bad.Validate()))

	// zero coin must fail
	zero := Coins{NewCoinp(0, 0, "FOO")}
	assert.True(t, errors.ErrState.Is(zero.Validate()))

	good := Coins{NewCoinp(1, 0, "BAR"), NewCoinp(1, 0, "FOO")}
	assert.NoError(t, good.Validate())
}
