package deposit

import (
	"github.com/iov-one/arca"
	"github.com/iov-one/arca/errors"
	"github.com/iov-one/arca/x/cash"
)

// PoolCondition is the singleton condition guarding the custody pool
// wallet. No transaction can ever sign for it.
func PoolCondition() arca.Condition {
	return arca.NewCondition("deposit", "pool", []byte("custody"))
}

// PoolAddress is the wallet address holding all custodied funds.
func PoolAddress() arca.Address {
	return PoolCondition().Address()
}

// guard serializes the release entry points. The handlers of a block
// run sequentially, so a plain flag is sufficient.
type guard struct {
	busy bool
}

func (g *guard) enter() error {
	if g.busy {
		return errors.Wrap(ErrReentrantCall, "release in progress")
	}
	g.busy = true
	return nil
}

func (g *guard) exit() {
	g.busy = false
}

// controller implements the custody state transitions shared by the
// release protocols.
type controller struct {
	deposits DepositBucket
	reveals  RevealBucket
	cash     cash.Controller
}

func newController(cashCtrl cash.Controller) controller {
	return controller{
		deposits: NewDepositBucket(),
		reveals:  NewRevealBucket(),
		cash:     cashCtrl,
	}
}

// authorizeRelease loads the deposit and checks that the given identity
// is the concealed beneficiary. The identity is whoever authorized the
// release: the caller for a direct release, the signer for a permit.
func (c controller) authorizeRelease(db arca.KVStore, id []byte, identity arca.Address, authErr *errors.Error) (*Deposit, error) {
	dep, err := c.deposits.Get(db, id)
	if err != nil {
		return nil, err
	}
	if dep == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "deposit %x", id)
	}
	if dep.Released {
		return nil, errors.Wrapf(ErrAlreadyReleased, "deposit %x", id)
	}
	if !commitmentMatches(dep.Commitment, identity) {
		return nil, errors.Wrapf(authErr, "deposit %x", id)
	}
	return dep, nil
}

// release pays out the deposit and records the revealed identity. The
// deposit is marked released and zeroed before the funds move, so a
// failed transfer aborts the whole transaction and a nested release
// attempt would observe the released state.
func (c controller) release(db arca.KVStore, id []byte, dep *Deposit, identity, receiver arca.Address) error {
	amount := *dep.Amount

	dep.Released = true
	zero := dep.Amount.Clone()
	zero.Whole = 0
	zero.Fractional = 0
	dep.Amount = zero
	if err := c.deposits.Save(db, id, dep); err != nil {
		return err
	}
	if err := c.reveals.Save(db, id, &Reveal{Beneficiary: identity}); err != nil {
		return err
	}

	if err := c.cash.MoveCoins(db, PoolAddress(), receiver, amount); err != nil {
		if dep.IsNative {
			return errors.Wrap(ErrNativeTransferFailed, err.Error())
		}
		return errors.Wrap(ErrTransferFailed, err.Error())
	}
	return nil
}

