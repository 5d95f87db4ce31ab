package events

import (
	"time"

	"github.com/google/uuid"
)

// Topics published by the batch lifecycle operations. Both feed the webhook
// notifier in the worker process.
const (
	TopicBatchClaimed       = "batch.claimed"
	TopicBatchStatusChanged = "batch.status_changed"
)

// BatchClaimedEvent is published after unbatched items matching a template are
// claimed into a batch.
type BatchClaimedEvent struct {
	EventID      uuid.UUID `json:"event_id"`
	Version      int       `json:"version"`
	BatchID      string    `json:"batch_id"`
	ItemTemplate string    `json:"item_template"`
	ItemCount    int64     `json:"item_count"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// BatchStatusChangedEvent is published after a batch-wide status propagation.
type BatchStatusChangedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	BatchID    string    `json:"batch_id"`
	ItemStatus string    `json:"item_status"`
	OccurredAt time.Time `json:"occurred_at"`
}
