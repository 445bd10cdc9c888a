package deposit

import (
	"bytes"
	"crypto/sha256"

	"github.com/iov-one/arca"
	"github.com/iov-one/arca/errors"
)

// commitmentSize is the length of a beneficiary commitment digest.
const commitmentSize = sha256.Size

// Commit produces the one-way commitment of an address. The same
// function is applied at deposit time and at release time, so the
// beneficiary stays concealed until a release reveals it.
func Commit(addr arca.Address) []byte {
	digest := sha256.Sum256(addr)
	return digest[:]
}

// nullCommitment is the digest of the null identity. A deposit bound to
// it could never be released, so it is rejected at creation.
var nullCommitment = Commit(nil)

// commitmentMatches reports whether the identity is the one concealed
// by the commitment.
func commitmentMatches(commitment []byte, identity arca.Address) bool {
	if len(identity) == 0 {
		return false
	}
	return bytes.Equal(commitment, Commit(identity))
}

// validateCommitment enforces the creation rules on a commitment: it
// must have the digest size, must not be all zero, and must not conceal
// the null identity.
func validateCommitment(commitment []byte) error {
	if len(commitment) != commitmentSize {
		return errors.Wrapf(ErrInvalidCommitment, "commitment must be %d bytes", commitmentSize)
	}
	if bytes.Equal(commitment, make([]byte, commitmentSize)) {
		return errors.Wrap(ErrInvalidCommitment, "commitment is all zero")
	}
	if bytes.Equal(commitment, nullCommitment) {
		return errors.Wrap(ErrInvalidCommitment, "commitment conceals the null identity")
	}
	return nil
}
