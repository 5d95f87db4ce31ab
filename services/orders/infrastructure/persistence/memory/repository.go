// Package memory provides in-memory implementations of the orders repositories,
// useful for local development and service-level tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	ordersdomain "github.com/ghuser/pressroom/services/orders/domain"
	"github.com/ghuser/pressroom/services/orders/domain/models"
)

// Repository holds orders and items behind a single mutex, so the claim
// operation's check-and-set is atomic over the whole item set — the same
// guarantee the SQL implementation gets from a single conditional UPDATE.
type Repository struct {
	mu     sync.RWMutex
	orders []*models.Order
	items  map[uuid.UUID]*models.Item
}

// NewRepository constructs an empty in-memory repository.
func NewRepository() *Repository {
	return &Repository{items: make(map[uuid.UUID]*models.Item)}
}

// CreateOrder stores the order header and its items.
func (r *Repository) CreateOrder(_ context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	header := *order
	header.Items = nil
	r.orders = append(r.orders, &header)
	for _, item := range order.Items {
		copied := *item
		r.items[item.ID] = &copied
	}
	return nil
}

// FindOrders returns all order headers, newest first.
func (r *Repository) FindOrders(_ context.Context) ([]*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Order, len(r.orders))
	for i, o := range r.orders {
		copied := *o
		out[i] = &copied
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetBySourceOrderID returns the earliest order header with the given source id.
func (r *Repository) GetBySourceOrderID(_ context.Context, sourceOrderID string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *models.Order
	for _, o := range r.orders {
		if o.SourceOrderID != sourceOrderID {
			continue
		}
		if found == nil || o.CreatedAt.Before(found.CreatedAt) {
			found = o
		}
	}
	if found == nil {
		return nil, ordersdomain.ErrOrderNotFound
	}
	copied := *found
	return &copied, nil
}

// FindItems returns every stored item.
func (r *Repository) FindItems(_ context.Context) ([]*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(*models.Item) bool { return true }), nil
}

// FindItemsBySourceOrderID returns the items of the earliest order with the
// given source id; an unknown id yields an empty set.
func (r *Repository) FindItemsBySourceOrderID(ctx context.Context, sourceOrderID string) ([]*models.Item, error) {
	order, err := r.GetBySourceOrderID(ctx, sourceOrderID)
	if err != nil {
		if err == ordersdomain.ErrOrderNotFound {
			return []*models.Item{}, nil
		}
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(it *models.Item) bool { return it.OrderID == order.ID }), nil
}

// FindUnbatchedItems returns items that have never been claimed.
func (r *Repository) FindUnbatchedItems(_ context.Context) ([]*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(it *models.Item) bool { return !it.Batch.Assigned() }), nil
}

// FindItemsByBatch returns the items carrying the given batch id.
func (r *Repository) FindItemsByBatch(_ context.Context, batch models.BatchRef) ([]*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(it *models.Item) bool { return it.Batch == batch }), nil
}

// ClaimUnbatched assigns every unbatched item matching template to the batch
// under the write lock, mirroring the atomicity of the SQL bulk update.
func (r *Repository) ClaimUnbatched(_ context.Context, template string, batch models.BatchRef) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var claimed int64
	for _, item := range r.items {
		if item.Batch.Assigned() || item.Template != template {
			continue
		}
		item.Batch = batch
		item.Status = models.StatusBatched
		claimed++
	}
	return claimed, nil
}

// UpdateBatchStatus sets the status on every item in the batch.
func (r *Repository) UpdateBatchStatus(_ context.Context, batch models.BatchRef, status models.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.Batch == batch {
			item.Status = status
		}
	}
	return nil
}

// collect copies matching items into a slice sorted by id for stable output.
// Callers must hold at least the read lock.
func (r *Repository) collect(match func(*models.Item) bool) []*models.Item {
	out := []*models.Item{}
	for _, item := range r.items {
		if match(item) {
			copied := *item
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

// TrackingRepository is an in-memory append-only tracking sink.
type TrackingRepository struct {
	mu     sync.Mutex
	events []*models.TrackingEvent
}

// NewTrackingRepository constructs an empty in-memory tracking sink.
func NewTrackingRepository() *TrackingRepository {
	return &TrackingRepository{}
}

// Append archives the payload verbatim.
func (r *TrackingRepository) Append(_ context.Context, payload []byte) (*models.TrackingEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event := models.NewTrackingEvent(payload)
	r.events = append(r.events, event)
	return event, nil
}

// Events returns the archived payloads in arrival order.
func (r *TrackingRepository) Events() []*models.TrackingEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.TrackingEvent, len(r.events))
	copy(out, r.events)
	return out
}
