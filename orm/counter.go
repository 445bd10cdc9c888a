package orm

import (
	"github.com/iov-one/arca/errors"
)

// Counter could be used for sequence, but mainly just for test
type Counter struct {
	Count int64
}

var _ Model = (*Counter)(nil)

// Marshal encodes the counter as 8 big endian bytes.
func (c *Counter) Marshal() ([]byte, error) {
	return EncodeSequence(c.Count), nil
}

// Unmarshal parses 8 big endian bytes into the counter.
func (c *Counter) Unmarshal(data []byte) error {
	if data != nil && len(data) != 8 {
		return errors.Wrap(errors.ErrInput, "invalid counter encoding")
	}
	c.Count = DecodeSequence(data)
	return nil
}

// Validate requires a non-negative count.
func (c *Counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrState, "negative count")
	}
	return nil
}

// Copy produces a new copy of the counter.
func (c *Counter) Copy() Model {
	return &Counter{Count: c.Count}
}

// NewCounter wraps the given count in a storable object.
func NewCounter(count int64) Object {
	return NewSimpleObj(nil, &Counter{Count: count})
}
