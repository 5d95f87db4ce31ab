package services

import (
	"context"
	"fmt"

	"github.com/ghuser/pressroom/pkg/logger"
	ordersdomain "github.com/ghuser/pressroom/services/orders/domain"
	"github.com/ghuser/pressroom/services/orders/domain/models"
	"github.com/ghuser/pressroom/services/orders/domain/repositories"
	domainsvcs "github.com/ghuser/pressroom/services/orders/domain/services"
)

// ManifestWriter renders a batch manifest artifact. One artifact per batch id;
// re-exports overwrite.
type ManifestWriter interface {
	Write(ctx context.Context, batch models.BatchRef, items []*models.Item) (string, error)
}

// BatchService runs the batch lifecycle: claiming unbatched items, propagating
// batch-wide status, and exporting manifests.
type BatchService struct {
	repo      repositories.OrderRepository
	manifests ManifestWriter
	log       logger.Logger
}

// NewBatchService returns a BatchService wired with the given repository,
// manifest writer, and logger.
func NewBatchService(repo repositories.OrderRepository, manifests ManifestWriter, log logger.Logger) *BatchService {
	return &BatchService{repo: repo, manifests: manifests, log: log}
}

// Claim atomically assigns every unbatched item matching template to the
// batch and marks it batched. Zero items claimed is a valid outcome — the
// caller decides whether that matters. Store failures are reported, not retried.
func (s *BatchService) Claim(ctx context.Context, template, batchID string) (int64, error) {
	ref, err := domainsvcs.ValidateClaim(template, batchID)
	if err != nil {
		return 0, err
	}

	claimed, err := s.repo.ClaimUnbatched(ctx, template, ref)
	if err != nil {
		return 0, fmt.Errorf("claim batch: %w", err)
	}

	s.log.InfoContext(ctx, "batch claimed",
		"batch_id", batchID, "item_template", template, "items_claimed", claimed)
	return claimed, nil
}

// Items returns the batch's current item set without side effects.
func (s *BatchService) Items(ctx context.Context, ref models.BatchRef) ([]*models.Item, error) {
	items, err := s.repo.FindItemsByBatch(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("read batch: %w", err)
	}
	return items, nil
}

// Propagate sets the given status on every item in the batch. Any status may
// follow any status — transitions are operationally defined and not validated
// here.
func (s *BatchService) Propagate(ctx context.Context, batchID, status string) error {
	ref, st, err := domainsvcs.ValidatePropagation(batchID, status)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateBatchStatus(ctx, ref, st); err != nil {
		return fmt.Errorf("propagate status: %w", err)
	}

	s.log.InfoContext(ctx, "batch status propagated", "batch_id", batchID, "item_status", status)
	return nil
}

// Export reads the batch's items, writes the manifest artifact, and only then
// propagates status "sorting" across the batch. The returned item set always
// reflects state before the status change.
//
// If propagation fails after the manifest was written, the artifact stands and
// the stale status is left for an operator to reconcile — the item set is
// still returned. Nothing is rolled back.
func (s *BatchService) Export(ctx context.Context, batchID string) ([]*models.Item, error) {
	ref, err := models.NewBatchRef(batchID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ordersdomain.ErrInvalidBatchID, err)
	}

	items, err := s.repo.FindItemsByBatch(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("read batch: %w", err)
	}

	path, err := s.manifests.Write(ctx, ref, items)
	if err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}
	s.log.InfoContext(ctx, "manifest exported", "batch_id", batchID, "path", path, "items", len(items))

	if err := s.repo.UpdateBatchStatus(ctx, ref, models.StatusSorting); err != nil {
		s.log.WarnContext(ctx, "manifest written but status propagation failed; batch status is stale",
			"batch_id", batchID, "error", err)
	}

	return items, nil
}

// Download returns the batch's items and propagates "sorting" without
// regenerating the manifest, mirroring Export's failure handling.
func (s *BatchService) Download(ctx context.Context, batchID string) ([]*models.Item, error) {
	ref, err := models.NewBatchRef(batchID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ordersdomain.ErrInvalidBatchID, err)
	}

	items, err := s.repo.FindItemsByBatch(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("read batch: %w", err)
	}

	if err := s.repo.UpdateBatchStatus(ctx, ref, models.StatusSorting); err != nil {
		s.log.WarnContext(ctx, "status propagation failed on batch download",
			"batch_id", batchID, "error", err)
	}

	return items, nil
}
