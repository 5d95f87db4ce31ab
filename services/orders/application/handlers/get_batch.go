package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/pressroom/pkg/errhttp"
	"github.com/ghuser/pressroom/pkg/httpx"
	appsvcs "github.com/ghuser/pressroom/services/orders/application/services"
	ordersdomain "github.com/ghuser/pressroom/services/orders/domain"
	"github.com/ghuser/pressroom/services/orders/domain/models"
)

// GetBatchHandler handles GET /batch/{batchId} requests.
type GetBatchHandler struct {
	svc *appsvcs.Services
}

func NewGetBatchHandler(svc *appsvcs.Services) *GetBatchHandler {
	return &GetBatchHandler{svc: svc}
}

// Execute returns the items assigned to the given batch. An unknown batch id
// yields an empty list.
func (h *GetBatchHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ref, err := models.NewBatchRef(chi.URLParam(r, "batchId"))
	if err != nil {
		errhttp.WriteError(w, fmt.Errorf("%w: %w", ordersdomain.ErrInvalidBatchID, err))
		return
	}

	items, err := h.svc.Batches.Items(r.Context(), ref)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponses(items))
}
