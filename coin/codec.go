package coin

import (
	"github.com/gogo/protobuf/proto"
)

// Coin can hold any amount between -1 billion and +1 billion at steps
// of 10^-9. It is a fixed-point decimal representation and it equals
// Whole + Fractional/FracUnit.
type Coin struct {
	// Whole coins, -10^15 < whole < 10^15
	Whole int64 `protobuf:"varint,1,opt,name=whole,proto3" json:"whole,omitempty"`
	// Billionth of coins. 0 <= abs(fractional) < 10^9
	// If fractional != 0, must have same sign as whole
	Fractional int64 `protobuf:"varint,2,opt,name=fractional,proto3" json:"fractional,omitempty"`
	// Ticker is 3-4 upper-case letters and all Coins of the same
	// currency can be combined
	Ticker string `protobuf:"bytes,3,opt,name=ticker,proto3" json:"ticker,omitempty"`
}

// coinWire strips the custom methods so gogo falls back to the tag
// driven reflection codec.
type coinWire Coin

func (m *coinWire) Reset()         { *m = coinWire{} }
func (m *coinWire) String() string { return proto.CompactTextString(m) }
func (*coinWire) ProtoMessage()    {}

// Marshal encodes the coin using the protobuf wire format.
func (c *Coin) Marshal() ([]byte, error) {
	return proto.Marshal((*coinWire)(c))
}

// Unmarshal decodes protobuf wire format data into this coin.
func (c *Coin) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, (*coinWire)(c))
}
