package deposit

import (
	"encoding/hex"
	"strconv"

	"github.com/iov-one/arca"
	"github.com/iov-one/arca/errors"
	"github.com/iov-one/arca/x"
	"github.com/iov-one/arca/x/cash"
)

const (
	// pay deposit creation cost up-front
	createDepositCost int64 = 300
	releaseCost       int64 = 100
	sweepCost         int64 = 0
	ownershipCost     int64 = 0
)

// RegisterRoutes will instantiate and register all handlers in this
// package. Both release protocols share one reentrancy guard.
func RegisterRoutes(r arca.Registry, auth x.Authenticator, cashctrl cash.Controller) {
	ctrl := newController(cashctrl)
	g := &guard{}

	r.Handle(pathCreateDeposit, CreateDepositHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathRelease, ReleaseHandler{auth: auth, ctrl: ctrl, guard: g})
	r.Handle(pathPermitRelease, PermitReleaseHandler{auth: auth, ctrl: ctrl, guard: g})
	r.Handle(pathSweepNative, SweepNativeHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathSweepToken, SweepTokenHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathNominateOwner, NominateOwnerHandler{auth: auth})
	r.Handle(pathAcceptOwner, AcceptOwnerHandler{auth: auth})
}

//---- create

// CreateDepositHandler takes funds into custody bound to a concealed
// beneficiary.
type CreateDepositHandler struct {
	auth x.Authenticator
	ctrl controller
}

var _ arca.Handler = CreateDepositHandler{}

// Check does the validation and sets the cost of the transaction.
func (h CreateDepositHandler) Check(ctx arca.Context, db arca.KVStore, tx arca.Tx) (*arca.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &arca.CheckResult{GasAllocated: createDepositCost}, nil
}

// Deliver pulls the funds into the pool wallet and persists the new
// deposit record.
func (h CreateDepositHandler) Deliver(ctx arca.Context, db arca.KVStore, tx arca.Tx) (*arca.DeliverResult, error) {
	msg, depositor, isNative, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	dep := &Deposit{
		Amount:     msg.Amount.Clone(),
		Commitment: msg.Commitment,
		IsNative:   isNative,
	}
	obj, err := h.ctrl.deposits.Create(db, dep)
	if err != nil {
		return nil, err
	}

	if err := h.ctrl.cash.MoveCoins(db, depositor, PoolAddress(), *msg.Amount); err != nil {
		if isNative {
			return nil, errors.Wrap(ErrNativeTransferFailed, err.Error())
		}
		return nil, errors.Wrap(ErrTransferFailed, err.Error())
	}

	// return id of the deposit to use in future calls
	res := &arca.DeliverResult{Data: obj.Key()}
	return res.WithTags(
		arca.NewTag("deposit_id", hex.EncodeToString(obj.Key())),
		arca.NewTag("depositor", depositor.String()),
		arca.NewTag("asset", msg.Amount.Ticker),
		arca.NewTag("native", strconv.FormatBool(isNative)),
		arca.NewTag("amount", msg.Amount.String()),
	), nil
}

// validate does all common pre-processing between Check and Deliver. It
// resolves the funding path of the deposit.
func (h CreateDepositHandler) validate(ctx arca.Context, db arca.KVStore, tx arca.Tx) (*CreateDepositMsg, arca.Address, bool, error) {
	var msg CreateDepositMsg
	if err := arca.LoadMsg(tx, &msg); err != nil {
		return nil, nil, false, errors.Wrap(err, "load msg")
	}

	depositor := x.MainSigner(ctx, h.auth).Address()
	if depositor == nil {
		return nil, nil, false, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}

	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, false, err
	}

	isNative := msg.NativeValue != nil && msg.NativeValue.IsPositive()
	if isNative {
		if msg.NativeValue.Compare(*msg.Amount) != 0 {
			return nil, nil, false, errors.Wrap(ErrAmountMismatch, "bundled value must equal amount")
		}
		if msg.Amount.Ticker != conf.NativeTicker {
			return nil, nil, false, errors.Wrapf(ErrAssetReference, "native deposit with ticker %s", msg.Amount.Ticker)
		}
		if msg.NativeValue.Ticker != "" && msg.NativeValue.Ticker != conf.NativeTicker {
			return nil, nil, false, errors.Wrapf(ErrAssetReference, "bundled value in %s", msg.NativeValue.Ticker)
		}
	} else {
		if msg.Amount.Ticker == conf.NativeTicker {
			return nil, nil, false, errors.Wrapf(ErrAssetReference, "token deposit with native ticker %s", msg.Amount.Ticker)
		}
	}
	return &msg, depositor, isNative, nil
}

//---- release

// ReleaseHandler is the direct release protocol: the concealed
// beneficiary claims the deposit itself.
type ReleaseHandler struct {
	auth  x.Authenticator
	ctrl  controller
	guard *guard
}

var _ arca.Handler = ReleaseHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h ReleaseHandler) Check(ctx arca.Context, db arca.KVStore, tx arca.Tx) (*arca.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &arca.CheckResult{GasAllocated: releaseCost}, nil
}

// Deliver pays out the deposit to the receiver named by the caller.
func (h ReleaseHandler) Deliver(ctx arca.Context, db arca.KVStore, tx arca.Tx) (*arca.DeliverResult, error) {
	if err := h.guard.enter(); err != nil {
		return nil, err
	}
	defer h.guard.exit()

	msg, dep, caller, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	asset := dep.Amount.Ticker
	amount := dep.Amount.String()
	if err := h.ctrl.release(db, msg.DepositID, dep, caller, msg.Receiver); err != nil {
		return nil, err
	}

	res := &arca.DeliverResult{}
	return res.WithTags(
		arca.NewTag("deposit_id", hex.EncodeToString(msg.DepositID)),
		arca.NewTag("beneficiary", caller.String()),
		arca.NewTag("receiver", msg.Receiver.String()),
		arca.NewTag("asset", asset),
		arca.NewTag("amount", amount),
	), nil
}

// validate does all common pre-processing between Check and Deliver.
// The caller must be the concealed beneficiary.
func (h ReleaseHandler) validate(ctx arca.Context, db arca.KVStore, tx arca.Tx) (*ReleaseMsg, *Deposit, arca.Address, error) {
	var msg ReleaseMsg
	if err := arca.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}

	caller := x.MainSigner(ctx, h.auth).Address()
	if caller == nil {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}

	dep, err := h.ctrl.authorizeRelease(db, msg.DepositID, caller, ErrUnauthorizedBeneficiary)
	if err != nil {
		return nil, nil, nil, err
	}
	return &msg, dep, caller, nil
}

// PermitReleaseHandler is the permit release protocol: any relayer may
// submit a release signed by the concealed beneficiary.
type PermitReleaseHandler struct {
	auth  x.Authenticator
	ctrl  controller
	guard *guard
}

var _ arca.Handler = PermitReleaseHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h PermitReleaseHandler) Check(ctx arca.Context, db arca.KVStore, tx arca.Tx) (*arca.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &arca.CheckResult{GasAllocated: releaseCost}, nil
}

// Deliver pays out the deposit to the receiver named in the permit.
func (h PermitReleaseHandler) Deliver(ctx arca.Context, db arca.KVStore, tx arca.Tx) (*arca.DeliverResult, error) {
	if err := h.guard.enter(); err != nil {
		return nil, err
	}
	defer h.guard.exit()

	permit, dep, signer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	asset := dep.Amount.Ticker
	amount := dep.Amount.String()
	if err := h.ctrl.release(db, permit.DepositID, dep, signer, permit.Receiver); err != nil {
		return nil, err
	}

	res := &arca.DeliverResult{}
	return res.WithTags(
		arca.NewTag("deposit_id", hex.EncodeToString(permit.DepositID)),
		arca.NewTag("beneficiary", signer.String()),
		arca.NewTag("receiver", permit.Receiver.String()),
		arca.NewTag("asset", asset),
		arca.NewTag("amount", amount),
	), nil
}

// validate does all common pre-processing between Check and Deliver.
// The permit signer must be the concealed beneficiary. The deadline is
// inclusive.
func (h PermitReleaseHandler) validate(ctx arca.Context, db arca.KVStore, tx arca.Tx) (*Permit, *Deposit, arca.Address, error) {
	var msg PermitReleaseMsg
	if err := arca.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}

	if arca.IsExpired(ctx, msg.Permit.Deadline) {
		return nil, nil, nil, errors.Wrapf(ErrSignatureExpired, "deadline %s", msg.Permit.Deadline)
	}

	signer, err := VerifyPermit(msg.Permit, arca.GetChainID(ctx), msg.Pubkey, msg.Signature)
	if err != nil {
		return nil, nil, nil, err
	}

	dep, err := h.ctrl.authorizeRelease(db, msg.Permit.DepositID, signer, ErrSignatureMismatch)
	if err != nil {
		return nil, nil, nil, err
	}
	return msg.Permit, dep, signer, nil
}

//---- sweep

// SweepNativeHandler drains the pool balance of the native currency to
// the owner.
type SweepNativeHandler struct {
	auth x.Authenticator
	ctrl controller
}

var _ arca.Handler = SweepNativeHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h SweepNativeHandler) Check(ctx arca.Context, db arca.KVStore, tx arca.Tx) (*arca.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &arca.CheckResult{GasAllocated: sweepCost}, nil
}

// Deliver moves the native pool balance to the owner. A zero balance is
// a silent no-op.
func (h SweepNativeHandler) Deliver(ctx arca.Context, db arca.KVStore, tx arca.Tx) (*arca.DeliverResult, error) {
	conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return sweepToOwner(db, h.ctrl, conf.Owner, conf.NativeTicker)
}

func (h SweepNativeHandler) validate(ctx arca.Context, db arca.KVStore, tx arca.Tx) (*Configuration, error) {
	var msg SweepNativeMsg
	if err := arca.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return requireOwner(ctx, db, h.auth)
}

// SweepTokenHandler drains the pool balance of one token to the owner.
type SweepTokenHandler struct {
	auth x.Authenticator
	ctrl controller
}

var _ arca.Handler = SweepTokenHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h SweepTokenHandler) Check(ctx arca.Context, db arca.KVStore, tx arca.Tx) (*arca.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &arca.CheckResult{GasAllocated: sweepCost}, nil
}

// Deliver moves the token pool balance to the owner. A zero balance is
// a silent no-op.
func (h SweepTokenHandler) Deliver(ctx arca.Context, db arca.KVStore, tx arca.Tx) (*arca.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return sweepToOwner(db, h.ctrl, conf.Owner, msg.Ticker)
}

func (h SweepTokenHandler) validate(ctx arca.Context, db arca.KVStore, tx arca.Tx) (*SweepTokenMsg, *Configuration, error) {
	var msg SweepTokenMsg
	if err := arca.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := requireOwner(ctx, db, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return &msg, conf, nil
}

func sweepToOwner(db arca.KVStore, ctrl controller, owner arca.Address, ticker string) (*arca.DeliverResult, error) {
	balance, err := ctrl.cash.Balance(db, PoolAddress())
	switch {
	case errors.ErrEmpty.Is(err):
		return &arca.DeliverResult{}, nil
	case err != nil:
		return nil, err
	}
	held := balance.Amount(ticker)
	if !held.IsPositive() {
		return &arca.DeliverResult{}, nil
	}
	if err := ctrl.cash.MoveCoins(db, PoolAddress(), owner, held); err != nil {
		return nil, err
	}
	res := &arca.DeliverResult{}
	return res.WithTags(
		arca.NewTag("receiver", owner.String()),
		arca.NewTag("amount", held.String()),
	), nil
}

func requireOwner(ctx arca.Context, db arca.KVStore, auth x.Authenticator) (*Configuration, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !auth.HasAddress(ctx, conf.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner authority required")
	}
	return conf, nil
}

//---- ownership

// NominateOwnerHandler starts the two-phase ownership handover.
type NominateOwnerHandler struct {
	auth x.Authenticator
}

var _ arca.Handler = NominateOwnerHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h NominateOwnerHandler) Check(ctx arca.Context, db arca.KVStore, tx arca.Tx) (*arca.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &arca.CheckResult{GasAllocated: ownershipCost}, nil
}

// Deliver records the nominated successor. Ownership does not change
// until the successor accepts.
func (h NominateOwnerHandler) Deliver(ctx arca.Context, db arca.KVStore, tx arca.Tx) (*arca.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf.PendingOwner = msg.Successor
	if err := saveConf(db, conf); err != nil {
		return nil, err
	}
	res := &arca.DeliverResult{}
	return res.WithTags(arca.NewTag("pending_owner", msg.Successor.String())), nil
}

func (h NominateOwnerHandler) validate(ctx arca.Context, db arca.KVStore, tx arca.Tx) (*NominateOwnerMsg, *Configuration, error) {
	var msg NominateOwnerMsg
	if err := arca.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := requireOwner(ctx, db, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return &msg, conf, nil
}

// AcceptOwnerHandler completes the two-phase ownership handover.
type AcceptOwnerHandler struct {
	auth x.Authenticator
}

var _ arca.Handler = AcceptOwnerHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h AcceptOwnerHandler) Check(ctx arca.Context, db arca.KVStore, tx arca.Tx) (*arca.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &arca.CheckResult{GasAllocated: ownershipCost}, nil
}

// Deliver transfers ownership to the nominated successor.
func (h AcceptOwnerHandler) Deliver(ctx arca.Context, db arca.KVStore, tx arca.Tx) (*arca.DeliverResult, error) {
	conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf.Owner = conf.PendingOwner
	conf.PendingOwner = nil
	if err := saveConf(db, conf); err != nil {
		return nil, err
	}
	res := &arca.DeliverResult{}
	return res.WithTags(arca.NewTag("owner", conf.Owner.String())), nil
}

// validate requires the nominee's own authority.
func (h AcceptOwnerHandler) validate(ctx arca.Context, db arca.KVStore, tx arca.Tx) (*Configuration, error) {
	var msg AcceptOwnerMsg
	if err := arca.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if len(conf.PendingOwner) == 0 {
		return nil, errors.Wrap(errors.ErrState, "no pending owner")
	}
	if !h.auth.HasAddress(ctx, conf.PendingOwner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "nominee authority required")
	}
	return conf, nil
}
