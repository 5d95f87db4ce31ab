package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/pressroom/pkg/errhttp"
	"github.com/ghuser/pressroom/pkg/httpx"
	appsvcs "github.com/ghuser/pressroom/services/orders/application/services"
)

// PutBatchUpdateHandler handles PUT /batch/update/{itemStatus}/{batchId}.
type PutBatchUpdateHandler struct {
	svc *appsvcs.Services
}

func NewPutBatchUpdateHandler(svc *appsvcs.Services) *PutBatchUpdateHandler {
	return &PutBatchUpdateHandler{svc: svc}
}

// Execute sets the given status on every item in the batch. The status value
// is an open set; the floor decides what the strings mean.
func (h *PutBatchUpdateHandler) Execute(w http.ResponseWriter, r *http.Request) {
	status := chi.URLParam(r, "itemStatus")
	batchID := chi.URLParam(r, "batchId")

	if err := h.svc.Batches.Propagate(r.Context(), batchID, status); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Batch %s updated to %s", batchID, status),
	})
}
