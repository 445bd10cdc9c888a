package deposit

import (
	"github.com/gogo/protobuf/proto"

	"github.com/iov-one/arca"
	"github.com/iov-one/arca/coin"
	"github.com/iov-one/arca/crypto"
)

// Deposit is a single custodied unit of asset value bound to one
// concealed beneficiary. It is mutated exactly once, by the release
// operation, and never deleted.
type Deposit struct {
	// Amount is the value held in custody. Positive at creation,
	// zeroed atomically with release. The coin ticker doubles as the
	// asset reference.
	Amount *coin.Coin `protobuf:"bytes,1,opt,name=amount" json:"amount,omitempty"`
	// Commitment is the one-way digest of the beneficiary address.
	// Immutable after creation.
	Commitment []byte `protobuf:"bytes,2,opt,name=commitment,proto3" json:"commitment,omitempty"`
	// IsNative is true when the deposit holds the configured native
	// currency rather than a token.
	IsNative bool `protobuf:"varint,3,opt,name=is_native,json=isNative,proto3" json:"is_native,omitempty"`
	// Released is false at creation and set true exactly once.
	Released bool `protobuf:"varint,4,opt,name=released,proto3" json:"released,omitempty"`
}

// Reveal records the identity that successfully authorized the release
// of a deposit. Written exactly once, at release.
type Reveal struct {
	Beneficiary arca.Address `protobuf:"bytes,1,opt,name=beneficiary,proto3,casttype=github.com/iov-one/arca.Address" json:"beneficiary,omitempty"`
}

// Configuration is the deposit extension state kept as a gconf
// singleton. Owner is set at initialization from the genesis file.
type Configuration struct {
	// Owner is the only identity allowed to sweep and to nominate a
	// successor.
	Owner arca.Address `protobuf:"bytes,1,opt,name=owner,proto3,casttype=github.com/iov-one/arca.Address" json:"owner,omitempty"`
	// PendingOwner is the nominated successor, empty unless a handover
	// is in progress.
	PendingOwner arca.Address `protobuf:"bytes,2,opt,name=pending_owner,json=pendingOwner,proto3,casttype=github.com/iov-one/arca.Address" json:"pending_owner,omitempty"`
	// NativeTicker names the currency treated as the native asset.
	NativeTicker string `protobuf:"bytes,3,opt,name=native_ticker,json=nativeTicker,proto3" json:"native_ticker,omitempty"`
}

// CreateDepositMsg places funds in custody bound to a concealed
// beneficiary.
type CreateDepositMsg struct {
	// Commitment conceals the beneficiary identity.
	Commitment []byte `protobuf:"bytes,1,opt,name=commitment,proto3" json:"commitment,omitempty"`
	// Amount to take in custody.
	Amount *coin.Coin `protobuf:"bytes,2,opt,name=amount" json:"amount,omitempty"`
	// NativeValue, when positive, is the bundled native currency that
	// funds the deposit. It must equal Amount.
	NativeValue *coin.Coin `protobuf:"bytes,3,opt,name=native_value,json=nativeValue" json:"native_value,omitempty"`
}

// ReleaseMsg is the direct release protocol. The caller must be the
// concealed beneficiary.
type ReleaseMsg struct {
	DepositID []byte       `protobuf:"bytes,1,opt,name=deposit_id,json=depositId,proto3" json:"deposit_id,omitempty"`
	Receiver  arca.Address `protobuf:"bytes,2,opt,name=receiver,proto3,casttype=github.com/iov-one/arca.Address" json:"receiver,omitempty"`
}

// Permit is the structured message signed by the beneficiary to
// authorize a release through any relayer.
type Permit struct {
	DepositID []byte        `protobuf:"bytes,1,opt,name=deposit_id,json=depositId,proto3" json:"deposit_id,omitempty"`
	Deadline  arca.UnixTime `protobuf:"varint,2,opt,name=deadline,proto3,casttype=github.com/iov-one/arca.UnixTime" json:"deadline,omitempty"`
	Receiver  arca.Address  `protobuf:"bytes,3,opt,name=receiver,proto3,casttype=github.com/iov-one/arca.Address" json:"receiver,omitempty"`
}

// PermitReleaseMsg is the permit release protocol. Any relayer may
// submit it together with the beneficiary signature.
type PermitReleaseMsg struct {
	Permit    *Permit           `protobuf:"bytes,1,opt,name=permit" json:"permit,omitempty"`
	Pubkey    *crypto.PublicKey `protobuf:"bytes,2,opt,name=pubkey" json:"pubkey,omitempty"`
	Signature *crypto.Signature `protobuf:"bytes,3,opt,name=signature" json:"signature,omitempty"`
}

// SweepNativeMsg drains the pool balance of the native currency to the
// owner. Owner only.
type SweepNativeMsg struct {
}

// SweepTokenMsg drains the pool balance of the given token to the
// owner. Owner only.
type SweepTokenMsg struct {
	Ticker string `protobuf:"bytes,1,opt,name=ticker,proto3" json:"ticker,omitempty"`
}

// NominateOwnerMsg starts the two-phase ownership handover. Owner only.
type NominateOwnerMsg struct {
	Successor arca.Address `protobuf:"bytes,1,opt,name=successor,proto3,casttype=github.com/iov-one/arca.Address" json:"successor,omitempty"`
}

// AcceptOwnerMsg completes the handover. Only the nominated successor
// may send it.
type AcceptOwnerMsg struct {
}

type depositWire Deposit

func (m *depositWire) Reset()         { *m = depositWire{} }
func (m *depositWire) String() string { return proto.CompactTextString(m) }
func (*depositWire) ProtoMessage()    {}

func (d *Deposit) Marshal() ([]byte, error) {
	return proto.Marshal((*depositWire)(d))
}

func (d *Deposit) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, (*depositWire)(d))
}

type revealWire Reveal

func (m *revealWire) Reset()         { *m = revealWire{} }
func (m *revealWire) String() string { return proto.CompactTextString(m) }
func (*revealWire) ProtoMessage()    {}

func (r *Reveal) Marshal() ([]byte, error) {
	return proto.Marshal((*revealWire)(r))
}

func (r *Reveal) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, (*revealWire)(r))
}

type configurationWire Configuration

func (m *configurationWire) Reset()         { *m = configurationWire{} }
func (m *configurationWire) String() string { return proto.CompactTextString(m) }
func (*configurationWire) ProtoMessage()    {}

func (c *Configuration) Marshal() ([]byte, error) {
	return proto.Marshal((*configurationWire)(c))
}

func (c *Configuration) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, (*configurationWire)(c))
}

type createDepositMsgWire CreateDepositMsg

func (m *createDepositMsgWire) Reset()         { *m = createDepositMsgWire{} }
func (m *createDepositMsgWire) String() string { return proto.CompactTextString(m) }
func (*createDepositMsgWire) ProtoMessage()    {}

func (m *CreateDepositMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*createDepositMsgWire)(m))
}

func (m *CreateDepositMsg) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, (*createDepositMsgWire)(m))
}

type releaseMsgWire ReleaseMsg

func (m *releaseMsgWire) Reset()         { *m = releaseMsgWire{} }
func (m *releaseMsgWire) String() string { return proto.CompactTextString(m) }
func (*releaseMsgWire) ProtoMessage()    {}

func (m *ReleaseMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*releaseMsgWire)(m))
}

func (m *ReleaseMsg) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, (*releaseMsgWire)(m))
}

type permitWire Permit

func (m *permitWire) Reset()         { *m = permitWire{} }
func (m *permitWire) String() string { return proto.CompactTextString(m) }
func (*permitWire) ProtoMessage()    {}

func (p *Permit) Marshal() ([]byte, error) {
	return proto.Marshal((*permitWire)(p))
}

func (p *Permit) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, (*permitWire)(p))
}

type permitReleaseMsgWire PermitReleaseMsg

func (m *permitReleaseMsgWire) Reset()         { *m = permitReleaseMsgWire{} }
func (m *permitReleaseMsgWire) String() string { return proto.CompactTextString(m) }
func (*permitReleaseMsgWire) ProtoMessage()    {}

func (m *PermitReleaseMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*permitReleaseMsgWire)(m))
}

func (m *PermitReleaseMsg) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, (*permitReleaseMsgWire)(m))
}

type sweepNativeMsgWire SweepNativeMsg

func (m *sweepNativeMsgWire) Reset()         { *m = sweepNativeMsgWire{} }
func (m *sweepNativeMsgWire) String() string { return proto.CompactTextString(m) }
func (*sweepNativeMsgWire) ProtoMessage()    {}

func (m *SweepNativeMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*sweepNativeMsgWire)(m))
}

func (m *SweepNativeMsg) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, (*sweepNativeMsgWire)(m))
}

type sweepTokenMsgWire SweepTokenMsg

func (m *sweepTokenMsgWire) Reset()         { *m = sweepTokenMsgWire{} }
func (m *sweepTokenMsgWire) String() string { return proto.CompactTextString(m) }
func (*sweepTokenMsgWire) ProtoMessage()    {}

func (m *SweepTokenMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*sweepTokenMsgWire)(m))
}

func (m *SweepTokenMsg) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, (*sweepTokenMsgWire)(m))
}

type nominateOwnerMsgWire NominateOwnerMsg

func (m *nominateOwnerMsgWire) Reset()         { *m = nominateOwnerMsgWire{} }
func (m *nominateOwnerMsgWire) String() string { return proto.CompactTextString(m) }
func (*nominateOwnerMsgWire) ProtoMessage()    {}

func (m *NominateOwnerMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*nominateOwnerMsgWire)(m))
}

func (m *NominateOwnerMsg) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, (*nominateOwnerMsgWire)(m))
}

type acceptOwnerMsgWire AcceptOwnerMsg

func (m *acceptOwnerMsgWire) Reset()         { *m = acceptOwnerMsgWire{} }
func (m *acceptOwnerMsgWire) String() string { return proto.CompactTextString(m) }
func (*acceptOwnerMsgWire) ProtoMessage()    {}

func (m *AcceptOwnerMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*acceptOwnerMsgWire)(m))
}

func (m *AcceptOwnerMsg) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, (*acceptOwnerMsgWire)(m))
}
