package deposit

import (
	"github.com/iov-one/arca/errors"
)

var (
	// ErrZeroAmount is returned when a deposit without value is
	// attempted.
	ErrZeroAmount = errors.Register(1000, "zero value not allowed")

	// ErrInvalidCommitment is returned when the beneficiary commitment
	// is missing, malformed, or conceals the null identity.
	ErrInvalidCommitment = errors.Register(1001, "invalid beneficiary commitment")

	// ErrAmountMismatch is returned when the bundled native value does
	// not equal the declared deposit amount.
	ErrAmountMismatch = errors.Register(1002, "input amount mismatch")

	// ErrAssetReference is returned when the asset reference does not
	// agree with the funding path.
	ErrAssetReference = errors.Register(1003, "incorrect asset reference")

	// ErrEmptyReceiver is returned when a release names the null
	// identity as payout receiver.
	ErrEmptyReceiver = errors.Register(1004, "empty receiver")

	// ErrUnauthorizedBeneficiary is returned when a direct release
	// caller is not the concealed beneficiary.
	ErrUnauthorizedBeneficiary = errors.Register(1005, "unauthorized beneficiary")

	// ErrSignatureMismatch is returned when the permit signer is not
	// the concealed beneficiary, or the signature does not verify.
	ErrSignatureMismatch = errors.Register(1006, "signature mismatch")

	// ErrSignatureExpired is returned when a permit is submitted after
	// its deadline.
	ErrSignatureExpired = errors.Register(1007, "signature expired")

	// ErrAlreadyReleased is returned on any second release attempt.
	ErrAlreadyReleased = errors.Register(1008, "funds already released")

	// ErrReentrantCall is returned when a release entry point is
	// entered while another release is in progress.
	ErrReentrantCall = errors.Register(1009, "reentrant call")

	// ErrTransferFailed is returned when a token transfer through the
	// cash controller fails.
	ErrTransferFailed = errors.Register(1010, "transfer failed")

	// ErrNativeTransferFailed is returned when a native currency
	// transfer through the cash controller fails.
	ErrNativeTransferFailed = errors.Register(1011, "native transfer failed")
)
