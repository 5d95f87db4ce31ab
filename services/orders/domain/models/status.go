package models

// Status is an item's production status. The set of values is open by design:
// status names and their order are defined by the shop floor and change over
// time, so no transition table is enforced here. Validation, if ever wanted,
// belongs in a separate policy layer.
type Status string

// Statuses the pipeline itself assigns. Anything else comes from operators.
const (
	// StatusBatched is set on every item claimed into a batch.
	StatusBatched Status = "batched"

	// StatusSorting is set on a whole batch after its manifest is exported.
	StatusSorting Status = "sorting"
)

// String returns the underlying string value.
func (s Status) String() string {
	return string(s)
}
