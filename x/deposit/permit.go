package deposit

import (
	"crypto/sha512"

	"github.com/iov-one/arca"
	"github.com/iov-one/arca/crypto"
	"github.com/iov-one/arca/errors"
)

// permitCodeV1 is the domain separation marker for release permits.
// Signatures over any other payload can never verify as a permit.
var permitCodeV1 = []byte{0, 0xDE, 0xB0, 1}

// BuildPermitSignBytes creates the canonical digest a beneficiary signs
// to authorize a release on the given chain. Including the chain id
// binds the permit to one network.
func BuildPermitSignBytes(permit *Permit, chainID string) ([]byte, error) {
	if permit == nil {
		return nil, errors.Wrap(errors.ErrInput, "missing permit")
	}
	if !arca.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id is invalid: %s", chainID)
	}
	raw, err := permit.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal permit")
	}

	// concatenate marker, chain id with length prefix, and payload
	msg := make([]byte, 0, len(permitCodeV1)+1+len(chainID)+len(raw))
	msg = append(msg, permitCodeV1...)
	msg = append(msg, uint8(len(chainID)))
	msg = append(msg, chainID...)
	msg = append(msg, raw...)

	// prehash, as ed25519 signs arbitrary length messages slowly
	hashed := sha512.Sum512(msg)
	return hashed[:], nil
}

// SignPermit produces the beneficiary authorization over a permit for
// the given chain.
func SignPermit(privKey *crypto.PrivateKey, permit *Permit, chainID string) (*crypto.Signature, error) {
	signBytes, err := BuildPermitSignBytes(permit, chainID)
	if err != nil {
		return nil, err
	}
	return privKey.Sign(signBytes)
}

// VerifyPermit checks the signature over the permit and returns the
// address of the signer. Fails with ErrSignatureMismatch when the
// signature does not verify.
func VerifyPermit(permit *Permit, chainID string, pubkey *crypto.PublicKey, sig *crypto.Signature) (arca.Address, error) {
	signBytes, err := BuildPermitSignBytes(permit, chainID)
	if err != nil {
		return nil, err
	}
	if !pubkey.Verify(signBytes, sig) {
		return nil, errors.Wrap(ErrSignatureMismatch, "permit signature does not verify")
	}
	return pubkey.Address(), nil
}
