package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/pressroom/pkg/errhttp"
	"github.com/ghuser/pressroom/pkg/httpx"
	appsvcs "github.com/ghuser/pressroom/services/orders/application/services"
)

// ClaimResponse confirms a batch claim.
type ClaimResponse struct {
	Message      string `json:"message" example:"Batch B1 created"`
	ItemsClaimed int64  `json:"itemsClaimed" example:"3"`
} // @name ClaimResponse

// PutBatchAssignHandler handles PUT /batch/assign/{itemTemplate}/{batchId}.
type PutBatchAssignHandler struct {
	svc *appsvcs.Services
}

func NewPutBatchAssignHandler(svc *appsvcs.Services) *PutBatchAssignHandler {
	return &PutBatchAssignHandler{svc: svc}
}

// Execute claims every unbatched item of the given template into the batch in
// one shot. Claiming nothing is still a 200: the batch exists only as a label
// on items, and zero matches is a legitimate state of the store.
func (h *PutBatchAssignHandler) Execute(w http.ResponseWriter, r *http.Request) {
	template := chi.URLParam(r, "itemTemplate")
	batchID := chi.URLParam(r, "batchId")

	claimed, err := h.svc.Batches.Claim(r.Context(), template, batchID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ClaimResponse{
		Message:      fmt.Sprintf("Batch %s created", batchID),
		ItemsClaimed: claimed,
	})
}
