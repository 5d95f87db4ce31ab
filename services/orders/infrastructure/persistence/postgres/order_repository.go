package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/pressroom/pkg/database"
	"github.com/ghuser/pressroom/pkg/events"
	ordersdomain "github.com/ghuser/pressroom/services/orders/domain"
	domainevents "github.com/ghuser/pressroom/services/orders/domain/events"
	"github.com/ghuser/pressroom/services/orders/domain/models"
)

const itemColumns = `id, order_id, source_item_id, item_template, art_front_url, art_back_url,
	shipping_name, shipping_line1, shipping_line2, shipping_town, shipping_state,
	shipping_country, shipping_zip, batch_id, item_status`

// OrderRepository implements repositories.OrderRepository against PostgreSQL.
// Lifecycle events are published through the Watermill tx publisher inside the
// same transaction as the business write (outbox pattern).
type OrderRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewOrderRepository returns an OrderRepository backed by the given pool and
// event bus. A nil bus disables event publishing (used by tests).
func NewOrderRepository(db *database.Database, bus *events.EventBus) *OrderRepository {
	return &OrderRepository{db: db, bus: bus}
}

// CreateOrder persists the order and its items in one transaction and
// publishes an OrderCreatedEvent within that transaction.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO orders (id, source_order_id, account_ref, created_at)
			 VALUES ($1, $2, $3, $4)`,
			order.ID, order.SourceOrderID, order.AccountRef, order.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		for _, item := range order.Items {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO items (`+itemColumns+`)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
				item.ID, item.OrderID, item.SourceItemID, item.Template,
				item.ArtFrontURL, item.ArtBackURL,
				item.Shipping.Name, item.Shipping.Line1, item.Shipping.Line2,
				item.Shipping.Town, item.Shipping.State, item.Shipping.Country,
				item.Shipping.ZipCode,
				batchRefToSQL(item.Batch), item.Status.String(),
			); err != nil {
				return fmt.Errorf("insert item: %w", err)
			}
		}

		if r.bus != nil {
			evt := domainevents.OrderCreatedEvent{
				EventID:       uuid.New(),
				Version:       1,
				OrderID:       order.ID,
				SourceOrderID: order.SourceOrderID,
				AccountRef:    order.AccountRef,
				ItemCount:     len(order.Items),
				OccurredAt:    order.CreatedAt,
			}
			if err := r.publish(tx, domainevents.TopicOrderCreated, evt, evt.EventID); err != nil {
				return fmt.Errorf("publish order created: %w", err)
			}
		}
		return nil
	})
}

// FindOrders returns all order headers, newest first. Items are not loaded.
func (r *OrderRepository) FindOrders(ctx context.Context) ([]*models.Order, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, source_order_id, account_ref, created_at
		 FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.SourceOrderID, &o.AccountRef, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}

// GetBySourceOrderID returns the first order header with the given source id.
func (r *OrderRepository) GetBySourceOrderID(ctx context.Context, sourceOrderID string) (*models.Order, error) {
	var o models.Order
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT id, source_order_id, account_ref, created_at
		 FROM orders WHERE source_order_id = $1
		 ORDER BY created_at ASC LIMIT 1`,
		sourceOrderID,
	).Scan(&o.ID, &o.SourceOrderID, &o.AccountRef, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ordersdomain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("query order: %w", err)
	}
	return &o, nil
}

// FindItems returns every item in the store.
func (r *OrderRepository) FindItems(ctx context.Context) ([]*models.Item, error) {
	return r.queryItems(ctx, `SELECT `+itemColumns+` FROM items ORDER BY order_id, id`)
}

// FindItemsBySourceOrderID returns the items of the first order carrying the
// given source id. An unknown source id yields an empty set, not an error.
func (r *OrderRepository) FindItemsBySourceOrderID(ctx context.Context, sourceOrderID string) ([]*models.Item, error) {
	return r.queryItems(ctx,
		`SELECT `+itemColumns+` FROM items
		 WHERE order_id = (
			SELECT id FROM orders WHERE source_order_id = $1
			ORDER BY created_at ASC LIMIT 1
		 )
		 ORDER BY id`,
		sourceOrderID)
}

// FindUnbatchedItems returns items that have never been claimed into a batch.
func (r *OrderRepository) FindUnbatchedItems(ctx context.Context) ([]*models.Item, error) {
	return r.queryItems(ctx,
		`SELECT `+itemColumns+` FROM items WHERE batch_id IS NULL ORDER BY id`)
}

// FindItemsByBatch returns the items currently carrying the given batch id.
func (r *OrderRepository) FindItemsByBatch(ctx context.Context, batch models.BatchRef) ([]*models.Item, error) {
	return r.queryItems(ctx,
		`SELECT `+itemColumns+` FROM items WHERE batch_id = $1 ORDER BY id`,
		string(batch))
}

// ClaimUnbatched assigns every unbatched item matching template to the batch
// in a single conditional bulk UPDATE. Postgres evaluates the predicate and
// applies the write atomically per row, so two concurrent claims for the same
// template partition the matching items disjointly — no double claiming, no
// lost rows. A BatchClaimedEvent is published in the same transaction.
func (r *OrderRepository) ClaimUnbatched(ctx context.Context, template string, batch models.BatchRef) (int64, error) {
	var claimed int64
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE items SET batch_id = $1, item_status = $2
			 WHERE batch_id IS NULL AND item_template = $3`,
			string(batch), models.StatusBatched.String(), template,
		)
		if err != nil {
			return fmt.Errorf("claim items: %w", err)
		}
		claimed, err = res.RowsAffected()
		if err != nil {
			return fmt.Errorf("claimed rows: %w", err)
		}

		if r.bus != nil {
			evt := domainevents.BatchClaimedEvent{
				EventID:      uuid.New(),
				Version:      1,
				BatchID:      string(batch),
				ItemTemplate: template,
				ItemCount:    claimed,
				OccurredAt:   time.Now().UTC(),
			}
			if err := r.publish(tx, domainevents.TopicBatchClaimed, evt, evt.EventID); err != nil {
				return fmt.Errorf("publish batch claimed: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return claimed, nil
}

// UpdateBatchStatus sets the status on every item in the batch with one bulk
// UPDATE, unconditional on current status, and publishes a
// BatchStatusChangedEvent in the same transaction. Batch ids are untouched.
func (r *OrderRepository) UpdateBatchStatus(ctx context.Context, batch models.BatchRef, status models.Status) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`UPDATE items SET item_status = $1 WHERE batch_id = $2`,
			status.String(), string(batch),
		); err != nil {
			return fmt.Errorf("update batch status: %w", err)
		}

		if r.bus != nil {
			evt := domainevents.BatchStatusChangedEvent{
				EventID:    uuid.New(),
				Version:    1,
				BatchID:    string(batch),
				ItemStatus: status.String(),
				OccurredAt: time.Now().UTC(),
			}
			if err := r.publish(tx, domainevents.TopicBatchStatusChanged, evt, evt.EventID); err != nil {
				return fmt.Errorf("publish batch status changed: %w", err)
			}
		}
		return nil
	})
}

func (r *OrderRepository) queryItems(ctx context.Context, query string, args ...any) ([]*models.Item, error) {
	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	items := []*models.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

func (r *OrderRepository) publish(tx *sql.Tx, topic string, evt any, eventID uuid.UUID) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

func scanItem(rows *sql.Rows) (*models.Item, error) {
	var (
		item    models.Item
		batchID sql.NullString
	)
	if err := rows.Scan(
		&item.ID, &item.OrderID, &item.SourceItemID, &item.Template,
		&item.ArtFrontURL, &item.ArtBackURL,
		&item.Shipping.Name, &item.Shipping.Line1, &item.Shipping.Line2,
		&item.Shipping.Town, &item.Shipping.State, &item.Shipping.Country,
		&item.Shipping.ZipCode,
		&batchID, &item.Status,
	); err != nil {
		return nil, fmt.Errorf("scan item: %w", err)
	}
	if batchID.Valid {
		item.Batch = models.BatchRef(batchID.String)
	}
	return &item, nil
}

// batchRefToSQL maps the unassigned zero BatchRef to NULL.
func batchRefToSQL(b models.BatchRef) sql.NullString {
	if !b.Assigned() {
		return sql.NullString{}
	}
	return sql.NullString{String: string(b), Valid: true}
}
