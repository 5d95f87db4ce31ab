package services

import (
	"fmt"

	"github.com/ghuser/pressroom/pkg/app"
	"github.com/ghuser/pressroom/pkg/cache"
	"github.com/ghuser/pressroom/services/orders/infrastructure/export"
	"github.com/ghuser/pressroom/services/orders/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Orders   *OrderService
	Batches  *BatchService
	Tracking *TrackingService
	Merges   *MergeService
}

// New wires all orders application services with infrastructure from the
// Application container.
func New(a *app.Application) (*Services, error) {
	repo := postgres.NewOrderRepository(a.Db, a.EventBus)
	trackingRepo := postgres.NewTrackingRepository(a.Db)
	orderCache := cache.NewOrderCache(a.Redis)

	manifests, err := export.NewManifestWriter(a.Config.ManifestDir)
	if err != nil {
		return nil, fmt.Errorf("manifest writer: %w", err)
	}

	return &Services{
		Orders:   NewOrderService(repo, orderCache),
		Batches:  NewBatchService(repo, manifests, a.Logger),
		Tracking: NewTrackingService(trackingRepo),
		Merges:   NewMergeService(a.EventBus),
	}, nil
}
