package deposit

import (
	"github.com/iov-one/arca"
	"github.com/iov-one/arca/coin"
	"github.com/iov-one/arca/errors"
)

const (
	pathCreateDeposit = "deposit/create"
	pathRelease       = "deposit/release"
	pathPermitRelease = "deposit/permit_release"
	pathSweepNative   = "deposit/sweep_native"
	pathSweepToken    = "deposit/sweep_token"
	pathNominateOwner = "deposit/nominate_owner"
	pathAcceptOwner   = "deposit/accept_owner"

	// depositIDSize is the length of a deposit id on the wire.
	depositIDSize = 8
)

var (
	_ arca.Msg = (*CreateDepositMsg)(nil)
	_ arca.Msg = (*ReleaseMsg)(nil)
	_ arca.Msg = (*PermitReleaseMsg)(nil)
	_ arca.Msg = (*SweepNativeMsg)(nil)
	_ arca.Msg = (*SweepTokenMsg)(nil)
	_ arca.Msg = (*NominateOwnerMsg)(nil)
	_ arca.Msg = (*AcceptOwnerMsg)(nil)
)

// Path returns the routing path for this message.
func (CreateDepositMsg) Path() string {
	return pathCreateDeposit
}

// Validate makes sure that this is sensible.
func (m *CreateDepositMsg) Validate() error {
	if err := validateCommitment(m.Commitment); err != nil {
		return err
	}
	if m.Amount == nil {
		return errors.Wrap(ErrZeroAmount, "missing amount")
	}
	if err := m.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !m.Amount.IsPositive() {
		return errors.Wrap(ErrZeroAmount, "amount must be positive")
	}
	if m.NativeValue != nil {
		if err := m.NativeValue.Validate(); err != nil {
			return errors.Wrap(err, "native value")
		}
		if !m.NativeValue.IsNonNegative() {
			return errors.Wrap(errors.ErrAmount, "negative native value")
		}
	}
	return nil
}

// Path returns the routing path for this message.
func (ReleaseMsg) Path() string {
	return pathRelease
}

// Validate makes sure that this is sensible.
func (m *ReleaseMsg) Validate() error {
	if err := validateDepositID(m.DepositID); err != nil {
		return err
	}
	if len(m.Receiver) == 0 {
		return errors.Wrap(ErrEmptyReceiver, "missing receiver")
	}
	if err := m.Receiver.Validate(); err != nil {
		return errors.Wrap(err, "receiver")
	}
	return nil
}

// Validate makes sure the permit content is sensible. The deadline and
// the signature are checked against the chain state by the handler.
func (p *Permit) Validate() error {
	if err := validateDepositID(p.DepositID); err != nil {
		return err
	}
	if p.Deadline == 0 {
		return errors.Wrap(errors.ErrInput, "missing deadline")
	}
	if len(p.Receiver) == 0 {
		return errors.Wrap(ErrEmptyReceiver, "missing receiver")
	}
	if err := p.Receiver.Validate(); err != nil {
		return errors.Wrap(err, "receiver")
	}
	return nil
}

// Path returns the routing path for this message.
func (PermitReleaseMsg) Path() string {
	return pathPermitRelease
}

// Validate makes sure that this is sensible.
func (m *PermitReleaseMsg) Validate() error {
	if m.Permit == nil {
		return errors.Wrap(errors.ErrInput, "missing permit")
	}
	if err := m.Permit.Validate(); err != nil {
		return err
	}
	if m.Pubkey == nil {
		return errors.Wrap(errors.ErrInput, "missing public key")
	}
	if err := m.Pubkey.Validate(); err != nil {
		return errors.Wrap(err, "public key")
	}
	if m.Signature == nil {
		return errors.Wrap(errors.ErrInput, "missing signature")
	}
	if err := m.Signature.Validate(); err != nil {
		return errors.Wrap(err, "signature")
	}
	return nil
}

// Path returns the routing path for this message.
func (SweepNativeMsg) Path() string {
	return pathSweepNative
}

// Validate makes sure that this is sensible.
func (m *SweepNativeMsg) Validate() error {
	return nil
}

// Path returns the routing path for this message.
func (SweepTokenMsg) Path() string {
	return pathSweepToken
}

// Validate makes sure that this is sensible.
func (m *SweepTokenMsg) Validate() error {
	if !coin.IsCC(m.Ticker) {
		return errors.Wrapf(errors.ErrCurrency, "invalid ticker: %s", m.Ticker)
	}
	return nil
}

// Path returns the routing path for this message.
func (NominateOwnerMsg) Path() string {
	return pathNominateOwner
}

// Validate makes sure that this is sensible.
func (m *NominateOwnerMsg) Validate() error {
	if len(m.Successor) == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing successor")
	}
	return m.Successor.Validate()
}

// Path returns the routing path for this message.
func (AcceptOwnerMsg) Path() string {
	return pathAcceptOwner
}

// Validate makes sure that this is sensible.
func (m *AcceptOwnerMsg) Validate() error {
	return nil
}

func validateDepositID(id []byte) error {
	if len(id) != depositIDSize {
		return errors.Wrapf(errors.ErrInput, "deposit id must be %d bytes", depositIDSize)
	}
	return nil
}
