package api

import (
	"fmt"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/pressroom/pkg/app"
	"github.com/ghuser/pressroom/pkg/auth"
	"github.com/ghuser/pressroom/services/orders/application/handlers"
	appsvcs "github.com/ghuser/pressroom/services/orders/application/services"
)

// OrderRoutes registers the order, batch, merge, and tracking endpoints on the
// provided chi router.
//
// The order routes sit behind the shared API secret. The batch, merge, and
// tracking routes are open: they are called by shop-floor tooling and carrier
// webhooks that cannot carry the secret.
func OrderRoutes(r chi.Router, a *app.Application) error {
	svcs, err := appsvcs.New(a)
	if err != nil {
		return fmt.Errorf("wire order services: %w", err)
	}

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAPIKey(a.Config.APIKey, a.Logger))

		r.Post("/order", handlers.NewPostOrderHandler(svcs).Execute)
		r.Get("/orders", handlers.NewGetOrdersHandler(svcs).Execute)
		r.Get("/order/{sourceOrderId}", handlers.NewGetOrderHandler(svcs).Execute)
		r.Get("/items", handlers.NewGetItemsHandler(svcs).Execute)
		r.Get("/order-items/{sourceOrderId}", handlers.NewGetOrderItemsHandler(svcs).Execute)
	})

	r.Get("/unbatched-items", handlers.NewGetUnbatchedItemsHandler(svcs).Execute)

	r.Route("/batch", func(r chi.Router) {
		r.Get("/{batchId}", handlers.NewGetBatchHandler(svcs).Execute)
		r.Put("/assign/{itemTemplate}/{batchId}", handlers.NewPutBatchAssignHandler(svcs).Execute)
		r.Put("/update/{itemStatus}/{batchId}", handlers.NewPutBatchUpdateHandler(svcs).Execute)
		r.Get("/export/{batchId}", handlers.NewGetBatchExportHandler(svcs).Execute)
		r.Get("/download/{batchId}", handlers.NewGetBatchDownloadHandler(svcs).Execute)
	})

	r.Post("/merge-pdfs", handlers.NewPostMergeHandler(svcs).Execute)
	r.Post("/tracking/update", handlers.NewPostTrackingHandler(svcs).Execute)

	return nil
}
