package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	ordersdomain "github.com/ghuser/pressroom/services/orders/domain"
	domainevents "github.com/ghuser/pressroom/services/orders/domain/events"
)

// MergePublisher publishes merge jobs onto the event bus.
type MergePublisher interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// MergeService dispatches document merge jobs to the worker process.
// Dispatch is the whole contract: the caller gets an acknowledgement that the
// job was queued, never an artifact handle or a completion signal. Merge
// failures stay in the worker's logs.
type MergeService struct {
	bus MergePublisher
}

// NewMergeService returns a MergeService publishing on the given bus.
func NewMergeService(bus MergePublisher) *MergeService {
	return &MergeService{bus: bus}
}

// Dispatch queues a merge of the named documents. Returns the job's event id.
func (s *MergeService) Dispatch(ctx context.Context, documents []string, output string) (uuid.UUID, error) {
	if len(documents) == 0 {
		return uuid.Nil, ordersdomain.ErrNoDocuments
	}

	evt := domainevents.MergeRequestedEvent{
		EventID:    uuid.New(),
		Version:    1,
		Documents:  documents,
		Output:     output,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal merge request: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", evt.EventID.String())
	msg.Metadata.Set("event_version", "1")

	if err := s.bus.Publish(ctx, domainevents.TopicMergeRequested, msg); err != nil {
		return uuid.Nil, fmt.Errorf("dispatch merge: %w", err)
	}
	return evt.EventID, nil
}
