package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicOrderCreated is the Watermill topic published when an Order is created.
const TopicOrderCreated = "order.created"

// OrderCreatedEvent is published after a new Order and its items are persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicOrderCreated).
type OrderCreatedEvent struct {
	EventID       uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version       int       `json:"version"`  // Schema version; increment on breaking changes
	OrderID       uuid.UUID `json:"order_id"`
	SourceOrderID string    `json:"source_order_id"`
	AccountRef    string    `json:"account_ref"`
	ItemCount     int       `json:"item_count"`
	OccurredAt    time.Time `json:"occurred_at"`
}
