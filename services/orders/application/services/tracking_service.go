package services

import (
	"context"
	"fmt"

	"github.com/ghuser/pressroom/services/orders/domain/models"
	"github.com/ghuser/pressroom/services/orders/domain/repositories"
)

// TrackingService archives carrier tracking payloads. The carrier's schema is
// not finalized, so payloads are accepted as-is: nothing is parsed, nothing is
// joined against items, and no order state is touched.
type TrackingService struct {
	repo repositories.TrackingRepository
}

// NewTrackingService returns a TrackingService wired with the given repository.
func NewTrackingService(repo repositories.TrackingRepository) *TrackingService {
	return &TrackingService{repo: repo}
}

// Ingest appends the payload verbatim. The only failure mode is the append
// itself failing.
func (s *TrackingService) Ingest(ctx context.Context, payload []byte) (*models.TrackingEvent, error) {
	event, err := s.repo.Append(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("ingest tracking payload: %w", err)
	}
	return event, nil
}
