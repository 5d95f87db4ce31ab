package services

import (
	"context"
	"fmt"

	pkgcache "github.com/ghuser/pressroom/pkg/cache"
	"github.com/ghuser/pressroom/services/orders/domain/models"
	"github.com/ghuser/pressroom/services/orders/domain/repositories"
)

// NewItemInput carries one item of an intake request.
type NewItemInput struct {
	SourceItemID string
	Template     string
	ArtFrontURL  string
	ArtBackURL   string
	Shipping     models.ShippingAddress
}

// NewOrderInput carries an intake request.
type NewOrderInput struct {
	SourceOrderID string
	AccountRef    string
	Items         []NewItemInput
}

// OrderService handles order intake and the read-side queries.
// Order headers are immutable after intake, so GetBySourceOrderID is served
// read-through from Redis when available.
type OrderService struct {
	repo  repositories.OrderRepository
	cache *pkgcache.OrderCache
}

// NewOrderService returns an OrderService wired with the given repository and
// cache. A nil cache disables the read-through path.
func NewOrderService(repo repositories.OrderRepository, orderCache *pkgcache.OrderCache) *OrderService {
	return &OrderService{repo: repo, cache: orderCache}
}

// Create persists a new order with its items. Items start unbatched.
// The repository publishes OrderCreatedEvent (outbox pattern).
func (s *OrderService) Create(ctx context.Context, input NewOrderInput) (*models.Order, error) {
	order := models.NewOrder(input.SourceOrderID, input.AccountRef)
	for _, it := range input.Items {
		order.AddItem(it.SourceItemID, it.Template, it.ArtFrontURL, it.ArtBackURL, it.Shipping)
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// List returns all order headers.
func (s *OrderService) List(ctx context.Context) ([]*models.Order, error) {
	orders, err := s.repo.FindOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// GetBySourceOrderID retrieves an order header using a read-through cache:
//  1. Check Redis first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *OrderService) GetBySourceOrderID(ctx context.Context, sourceOrderID string) (*models.Order, error) {
	// Cache misses and cache errors both fall through to Postgres.
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, sourceOrderID); err == nil {
			return &models.Order{
				ID:            cached.ID,
				SourceOrderID: cached.SourceOrderID,
				AccountRef:    cached.AccountRef,
				CreatedAt:     cached.CreatedAt,
			}, nil
		}
	}

	order, err := s.repo.GetBySourceOrderID(ctx, sourceOrderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), &pkgcache.CachedOrder{
				ID:            order.ID,
				SourceOrderID: order.SourceOrderID,
				AccountRef:    order.AccountRef,
				CreatedAt:     order.CreatedAt,
			})
		}()
	}

	return order, nil
}

// ListItems returns every item in the store.
func (s *OrderService) ListItems(ctx context.Context) ([]*models.Item, error) {
	items, err := s.repo.FindItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// ListOrderItems returns the items of the order with the given source id.
func (s *OrderService) ListOrderItems(ctx context.Context, sourceOrderID string) ([]*models.Item, error) {
	items, err := s.repo.FindItemsBySourceOrderID(ctx, sourceOrderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	return items, nil
}

// ListUnbatched returns items that have never been claimed into a batch.
func (s *OrderService) ListUnbatched(ctx context.Context) ([]*models.Item, error) {
	items, err := s.repo.FindUnbatchedItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unbatched items: %w", err)
	}
	return items, nil
}
