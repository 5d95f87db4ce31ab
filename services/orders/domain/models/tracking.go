package models

import (
	"time"

	"github.com/google/uuid"
)

// TrackingEvent is a carrier payload archived verbatim. The carrier's schema is
// not finalized, so payloads are never parsed, never joined against items, and
// never mutate order state. Accept anything, lose nothing, mutate nothing.
type TrackingEvent struct {
	ID         uuid.UUID
	Payload    []byte
	ReceivedAt time.Time
}

// NewTrackingEvent wraps a raw carrier payload with an id and receipt time.
func NewTrackingEvent(payload []byte) *TrackingEvent {
	return &TrackingEvent{
		ID:         uuid.New(),
		Payload:    payload,
		ReceivedAt: time.Now().UTC(),
	}
}
