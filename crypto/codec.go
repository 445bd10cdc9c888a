package crypto

import (
	"github.com/gogo/protobuf/proto"
)

// PublicKey holds a raw ed25519 public key.
type PublicKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

// PrivateKey holds a raw ed25519 private key.
type PrivateKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

// Signature holds a raw ed25519 signature.
type Signature struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

type publicKeyWire PublicKey

func (m *publicKeyWire) Reset()         { *m = publicKeyWire{} }
func (m *publicKeyWire) String() string { return proto.CompactTextString(m) }
func (*publicKeyWire) ProtoMessage()    {}

func (p *PublicKey) Marshal() ([]byte, error) {
	return proto.Marshal((*publicKeyWire)(p))
}

func (p *PublicKey) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, (*publicKeyWire)(p))
}

type privateKeyWire PrivateKey

func (m *privateKeyWire) Reset()         { *m = privateKeyWire{} }
func (m *privateKeyWire) String() string { return proto.CompactTextString(m) }
func (*privateKeyWire) ProtoMessage()    {}

func (p *PrivateKey) Marshal() ([]byte, error) {
	return proto.Marshal((*privateKeyWire)(p))
}

func (p *PrivateKey) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, (*privateKeyWire)(p))
}

type signatureWire Signature

func (m *signatureWire) Reset()         { *m = signatureWire{} }
func (m *signatureWire) String() string { return proto.CompactTextString(m) }
func (*signatureWire) ProtoMessage()    {}

func (s *Signature) Marshal() ([]byte, error) {
	return proto.Marshal((*signatureWire)(s))
}

func (s *Signature) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, (*signatureWire)(s))
}
