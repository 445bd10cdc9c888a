package deposit

import (
	"github.com/iov-one/arca"
	"github.com/iov-one/arca/coin"
	"github.com/iov-one/arca/errors"
	"github.com/iov-one/arca/orm"
)

const (
	// depositBucketName holds all deposit records, keyed by the 8 byte
	// big endian id.
	depositBucketName = "dep"
	// revealBucketName holds the revealed beneficiary per deposit id.
	revealBucketName = "rvl"
)

var _ orm.Model = (*Deposit)(nil)

// Validate enforces the deposit record invariants.
func (d *Deposit) Validate() error {
	if err := validateCommitment(d.Commitment); err != nil {
		return err
	}
	if d.Amount == nil {
		return errors.Wrap(errors.ErrAmount, "missing amount")
	}
	if err := d.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !d.Amount.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative amount")
	}
	// a released deposit holds no value
	if d.Released && !d.Amount.IsZero() {
		return errors.Wrap(errors.ErrState, "released deposit with value")
	}
	if !d.Released && !d.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "deposit without value")
	}
	return nil
}

// Copy produces an independent copy of the deposit.
func (d *Deposit) Copy() orm.Model {
	return &Deposit{
		Amount:     d.Amount.Clone(),
		Commitment: append([]byte(nil), d.Commitment...),
		IsNative:   d.IsNative,
		Released:   d.Released,
	}
}

var _ orm.Model = (*Reveal)(nil)

// Validate requires a proper beneficiary address.
func (r *Reveal) Validate() error {
	return r.Beneficiary.Validate()
}

// Copy produces an independent copy of the reveal record.
func (r *Reveal) Copy() orm.Model {
	return &Reveal{
		Beneficiary: r.Beneficiary.Clone(),
	}
}

// DepositBucket is the type-safe bucket of deposit records. It owns the
// monotonic id allocator.
type DepositBucket struct {
	orm.Bucket
	idSeq orm.Sequence
}

// NewDepositBucket creates the deposit ledger bucket.
func NewDepositBucket() DepositBucket {
	b := orm.NewBucket(depositBucketName,
		orm.NewSimpleObj(nil, &Deposit{Amount: &coin.Coin{}}))
	return DepositBucket{
		Bucket: b,
		idSeq:  b.Sequence(orm.SeqID),
	}
}

// Create allocates the next deposit id and stores the record under it.
// Ids are assigned in strictly increasing order starting at 0 and are
// never reused.
func (b DepositBucket) Create(db arca.KVStore, d *Deposit) (orm.Object, error) {
	n, err := b.idSeq.NextInt(db)
	if err != nil {
		return nil, err
	}
	// the sequence starts counting at 1
	key := orm.EncodeSequence(n - 1)
	obj := orm.NewSimpleObj(key, d)
	if err := b.Bucket.Save(db, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// Get loads the deposit with the given id, or nil when absent.
func (b DepositBucket) Get(db arca.ReadOnlyKVStore, id []byte) (*Deposit, error) {
	obj, err := b.Bucket.Get(db, id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return obj.Value().(*Deposit), nil
}

// Save persists an updated deposit record under its id.
func (b DepositBucket) Save(db arca.KVStore, id []byte, d *Deposit) error {
	return b.Bucket.Save(db, orm.NewSimpleObj(id, d))
}

// Count returns the allocator counter, which equals the number of
// deposits ever created.
func (b DepositBucket) Count(db arca.ReadOnlyKVStore) (int64, error) {
	n, _, err := b.idSeq.Latest(db)
	return n, err
}

// RevealBucket is the type-safe bucket of revealed beneficiaries.
type RevealBucket struct {
	orm.Bucket
}

// NewRevealBucket creates the reveal side mapping bucket.
func NewRevealBucket() RevealBucket {
	return RevealBucket{
		Bucket: orm.NewBucket(revealBucketName,
			orm.NewSimpleObj(nil, &Reveal{})),
	}
}

// Get loads the reveal record for a deposit id, or nil before release.
func (b RevealBucket) Get(db arca.ReadOnlyKVStore, id []byte) (*Reveal, error) {
	obj, err := b.Bucket.Get(db, id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return obj.Value().(*Reveal), nil
}

// Save records the revealed beneficiary for a deposit id.
func (b RevealBucket) Save(db arca.KVStore, id []byte, r *Reveal) error {
	return b.Bucket.Save(db, orm.NewSimpleObj(id, r))
}

// GetDeposit is the read accessor for a deposit by id.
func GetDeposit(db arca.ReadOnlyKVStore, id []byte) (*Deposit, error) {
	return NewDepositBucket().Get(db, id)
}

// RevealedBeneficiary returns the identity that authorized the release
// of the deposit, or nil while the deposit is still concealed.
func RevealedBeneficiary(db arca.ReadOnlyKVStore, id []byte) (arca.Address, error) {
	reveal, err := NewRevealBucket().Get(db, id)
	if err != nil {
		return nil, err
	}
	if reveal == nil {
		return nil, nil
	}
	return reveal.Beneficiary, nil
}

// DepositCount returns the current id allocator counter.
func DepositCount(db arca.ReadOnlyKVStore) (int64, error) {
	return NewDepositBucket().Count(db)
}
