package cash

import (
	"github.com/iov-one/arca"
	"github.com/iov-one/arca/coin"
	"github.com/iov-one/arca/errors"
)

// Controller is the functionality needed by other extensions to move
// funds around. This is implemented by CashController and allows
// decoupling the business logic from the storage layout.
type Controller interface {
	// MoveCoins removes funds from the source wallet and adds them to
	// the destination wallet.
	MoveCoins(store arca.KVStore, src arca.Address, dest arca.Address, amount coin.Coin) error

	// IssueCoins adds funds to a wallet out of thin air.
	IssueCoins(store arca.KVStore, dest arca.Address, amount coin.Coin) error

	// Balance returns the coins held in the wallet with given address.
	// A missing wallet is an ErrEmpty error.
	Balance(store arca.KVStore, src arca.Address) (coin.Coins, error)
}

// CashController implements Controller interface and provides
// methods for transfer of coins.
type CashController struct {
	bucket Bucket
}

var _ Controller = CashController{}

// NewController returns a base controller implementation.
func NewController(bucket Bucket) CashController {
	return CashController{bucket: bucket}
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c CashController) MoveCoins(store arca.KVStore,
	src arca.Address, dest arca.Address, amount coin.Coin) error {

	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer: %#v", &amount)
	}

	sender, err := c.bucket.Get(store, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrEmpty, "empty account %s", src)
	}

	if !sender.Coins().Contains(amount) {
		return errors.Wrap(errors.ErrAmount, "insufficient funds")
	}

	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return err
	}
	if err := sender.Subtract(amount); err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}

	// save them and return
	if err := c.bucket.Save(store, sender); err != nil {
		return err
	}
	return c.bucket.Save(store, recipient)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (c CashController) IssueCoins(store arca.KVStore,
	dest arca.Address, amount coin.Coin) error {

	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	if !recipient.Coins().IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative balance")
	}

	return c.bucket.Save(store, recipient)
}

// Balance returns the amount of funds stored in the wallet with the
// given address. A missing wallet is an error.
func (c CashController) Balance(store arca.KVStore, src arca.Address) (coin.Coins, error) {
	wallet, err := c.bucket.Get(store, src)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get wallet")
	}
	if wallet == nil {
		return nil, errors.Wrapf(errors.ErrEmpty, "empty account %s", src)
	}
	return wallet.Coins(), nil
}
