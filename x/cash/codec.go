package cash

import (
	"github.com/gogo/protobuf/proto"

	"github.com/iov-one/arca/coin"
)

// Set keeps the balance of a wallet. It is the value persisted in the
// wallet bucket.
type Set struct {
	Coins []*coin.Coin `protobuf:"bytes,1,rep,name=coins" json:"coins,omitempty"`
}

type setWire Set

func (m *setWire) Reset()         { *m = setWire{} }
func (m *setWire) String() string { return proto.CompactTextString(m) }
func (*setWire) ProtoMessage()    {}

func (s *Set) Marshal() ([]byte, error) {
	return proto.Marshal((*setWire)(s))
}

func (s *Set) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, (*setWire)(s))
}

// GetCoins returns the raw coin listing.
func (s *Set) GetCoins() []*coin.Coin {
	if s == nil {
		return nil
	}
	return s.Coins
}
