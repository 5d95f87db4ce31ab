package handlers

import (
	"io"
	"net/http"

	"github.com/ghuser/pressroom/pkg/errhttp"
	"github.com/ghuser/pressroom/pkg/httpx"
	appsvcs "github.com/ghuser/pressroom/services/orders/application/services"
)

// maxTrackingPayload caps carrier webhook bodies at 1 MiB.
const maxTrackingPayload = 1 << 20

// PostTrackingHandler handles POST /tracking/update.
type PostTrackingHandler struct {
	svc *appsvcs.Services
}

func NewPostTrackingHandler(svc *appsvcs.Services) *PostTrackingHandler {
	return &PostTrackingHandler{svc: svc}
}

// Execute archives the carrier payload byte-for-byte. No parsing, no schema,
// no joins against items — the carrier's format is still in flux and the sink
// must never reject a delivery over it.
func (h *PostTrackingHandler) Execute(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxTrackingPayload))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if _, err := h.svc.Tracking.Ingest(r.Context(), payload); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, MessageResponse{Message: "received"})
}
