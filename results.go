package arca

import (
	"fmt"
)

// Tag is a key-value pair attached to a DeliverResult. Tags are the
// notifications of the state machine: an external observer can follow
// what happened inside a transaction without parsing the state.
type Tag struct {
	Key   string
	Value string
}

// NewTag is a convenience constructor.
func NewTag(key, value string) Tag {
	return Tag{Key: key, Value: value}
}

// CheckResult captures any non-error abci result to make sure people
// use error for error cases.
type CheckResult struct {
	// Log contains a human readable summary.
	Log string
	// GasAllocated is the maximum units of work we allow this tx to
	// perform.
	GasAllocated int64
}

// DeliverResult captures any non-error abci result to make sure people
// use error for error cases.
type DeliverResult struct {
	// Data is a machine-parseable return value, like the id of a newly
	// created entity.
	Data []byte
	// Log contains a human readable summary.
	Log string
	// Tags are the notifications emitted by the handlers.
	Tags []Tag
	// GasUsed is the units of work performed.
	GasUsed int64
}

// WithTags appends the given tags to the result.
func (d *DeliverResult) WithTags(tags ...Tag) *DeliverResult {
	d.Tags = append(d.Tags, tags...)
	return d
}

// String returns a short representation for logging.
func (d *DeliverResult) String() string {
	return fmt.Sprintf("DeliverResult data=%X log=%q tags=%d", d.Data, d.Log, len(d.Tags))
}
