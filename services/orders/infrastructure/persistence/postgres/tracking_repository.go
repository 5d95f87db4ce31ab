package postgres

import (
	"context"
	"fmt"

	"github.com/ghuser/pressroom/pkg/database"
	"github.com/ghuser/pressroom/services/orders/domain/models"
)

// TrackingRepository appends carrier payloads to the tracking_events table.
// Payloads are stored verbatim as bytea; nothing is parsed or joined.
type TrackingRepository struct {
	db *database.Database
}

// NewTrackingRepository returns a TrackingRepository backed by the given pool.
func NewTrackingRepository(db *database.Database) *TrackingRepository {
	return &TrackingRepository{db: db}
}

// Append stores the payload and returns the archived event.
func (r *TrackingRepository) Append(ctx context.Context, payload []byte) (*models.TrackingEvent, error) {
	event := models.NewTrackingEvent(payload)
	if _, err := r.db.DB().ExecContext(ctx,
		`INSERT INTO tracking_events (id, payload, received_at) VALUES ($1, $2, $3)`,
		event.ID, event.Payload, event.ReceivedAt,
	); err != nil {
		return nil, fmt.Errorf("append tracking event: %w", err)
	}
	return event, nil
}
