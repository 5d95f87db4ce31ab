package repositories

import (
	"context"

	"github.com/ghuser/pressroom/services/orders/domain/models"
)

// OrderRepository is the persistence interface for orders and their items.
// The domain layer owns this interface; infrastructure implements it.
//
// ClaimUnbatched is the one operation whose correctness depends on the store:
// the predicate check and the write must happen as one indivisible step per
// matching row, so two concurrent claims for the same template can never both
// take the same item.
type OrderRepository interface {
	// CreateOrder persists an order and all of its items in one transaction.
	CreateOrder(ctx context.Context, order *models.Order) error

	// FindOrders returns all order headers (items not loaded).
	FindOrders(ctx context.Context) ([]*models.Order, error)

	// GetBySourceOrderID returns the first order header with the given
	// caller-supplied id. Returns ErrOrderNotFound when none exists.
	GetBySourceOrderID(ctx context.Context, sourceOrderID string) (*models.Order, error)

	// FindItems returns every item in the store.
	FindItems(ctx context.Context) ([]*models.Item, error)

	// FindItemsBySourceOrderID returns the items belonging to the first order
	// with the given source id.
	FindItemsBySourceOrderID(ctx context.Context, sourceOrderID string) ([]*models.Item, error)

	// FindUnbatchedItems returns items that have never been claimed.
	FindUnbatchedItems(ctx context.Context) ([]*models.Item, error)

	// FindItemsByBatch returns the items currently carrying the given batch id.
	FindItemsByBatch(ctx context.Context, batch models.BatchRef) ([]*models.Item, error)

	// ClaimUnbatched atomically assigns every unbatched item matching template
	// to the batch and marks it batched, as a single conditional bulk update.
	// Returns the number of items claimed; zero is a valid outcome.
	ClaimUnbatched(ctx context.Context, template string, batch models.BatchRef) (int64, error)

	// UpdateBatchStatus sets the status on every item in the batch in one bulk
	// update. Unconditional on current status; batch ids are never altered.
	UpdateBatchStatus(ctx context.Context, batch models.BatchRef, status models.Status) error
}

// TrackingRepository appends carrier tracking payloads to durable storage.
type TrackingRepository interface {
	// Append stores the payload verbatim and returns the archived event.
	Append(ctx context.Context, payload []byte) (*models.TrackingEvent, error)
}
