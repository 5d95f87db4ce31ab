package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicMergeRequested carries document merge jobs to the worker process.
// Merges are fire-and-forget: the request that publishes this event gets no
// artifact handle and no completion signal, and merge failures are only logged.
const TopicMergeRequested = "merge.requested"

// MergeRequestedEvent names a set of print-ready documents to combine into a
// single PDF. Documents are opaque URLs; Output is the artifact file name.
type MergeRequestedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	Documents  []string  `json:"documents"`
	Output     string    `json:"output"`
	OccurredAt time.Time `json:"occurred_at"`
}
