package models

import (
	"encoding/json"
	"fmt"
)

// UnassignedSentinel is the wire representation of an item that has never been
// claimed into a production batch. It is a marker value on the HTTP surface,
// not a real batch id; internally the unassigned state is the zero BatchRef.
const UnassignedSentinel = "-1"

// BatchRef is an item's batch assignment. The zero value means the item has
// never been claimed. Once assigned, an item stays in that batch permanently —
// no re-batching operation exists.
type BatchRef string

// NewBatchRef constructs an assigned BatchRef. The id must be non-empty and
// must not collide with the unassigned sentinel.
func NewBatchRef(id string) (BatchRef, error) {
	if id == "" {
		return "", fmt.Errorf("batch id must not be empty")
	}
	if id == UnassignedSentinel {
		return "", fmt.Errorf("batch id %q is reserved for unassigned items", UnassignedSentinel)
	}
	return BatchRef(id), nil
}

// Assigned reports whether the item has been claimed into a batch.
func (b BatchRef) Assigned() bool {
	return b != ""
}

// String renders the batch id, using the sentinel for unassigned items so the
// wire contract matches what downstream consumers expect.
func (b BatchRef) String() string {
	if !b.Assigned() {
		return UnassignedSentinel
	}
	return string(b)
}

// MarshalJSON renders unassigned refs as the sentinel string.
func (b BatchRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON accepts the sentinel string as the unassigned state.
func (b *BatchRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == UnassignedSentinel || s == "" {
		*b = ""
		return nil
	}
	*b = BatchRef(s)
	return nil
}
