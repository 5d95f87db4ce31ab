package models

import (
	"github.com/google/uuid"
)

// ShippingAddress is the destination an item ships to.
type ShippingAddress struct {
	Name    string
	Line1   string
	Line2   string
	Town    string
	State   string
	Country string
	ZipCode string
}

// Item is the unit of production work. Template is the batching key; Batch and
// Status are the only fields ever mutated after creation, and only by the batch
// claim and export operations.
type Item struct {
	ID           uuid.UUID
	OrderID      uuid.UUID
	SourceItemID string
	Template     string
	ArtFrontURL  string
	ArtBackURL   string
	Shipping     ShippingAddress
	Batch        BatchRef
	Status       Status
}

// NewItem constructs an unbatched Item for the given order.
func NewItem(orderID uuid.UUID, sourceItemID, template, artFront, artBack string, shipping ShippingAddress) *Item {
	return &Item{
		ID:           uuid.New(),
		OrderID:      orderID,
		SourceItemID: sourceItemID,
		Template:     template,
		ArtFrontURL:  artFront,
		ArtBackURL:   artBack,
		Shipping:     shipping,
	}
}
