package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is the intake aggregate. SourceOrderID is caller-supplied and assumed
// unique per upstream system, but this service does not enforce uniqueness.
// Orders are immutable after creation except for their items' batch/status
// fields; items never move between orders.
type Order struct {
	ID            uuid.UUID
	SourceOrderID string
	AccountRef    string
	Items         []*Item
	CreatedAt     time.Time
}

// NewOrder constructs an Order with a generated id and current timestamp.
func NewOrder(sourceOrderID, accountRef string) *Order {
	return &Order{
		ID:            uuid.New(),
		SourceOrderID: sourceOrderID,
		AccountRef:    accountRef,
		CreatedAt:     time.Now().UTC(),
	}
}

// AddItem appends a new unbatched item to the order.
func (o *Order) AddItem(sourceItemID, template, artFront, artBack string, shipping ShippingAddress) *Item {
	item := NewItem(o.ID, sourceItemID, template, artFront, artBack, shipping)
	o.Items = append(o.Items, item)
	return item
}
