package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/pressroom/pkg/errhttp"
	"github.com/ghuser/pressroom/pkg/httpx"
	appsvcs "github.com/ghuser/pressroom/services/orders/application/services"
)

// GetBatchExportHandler handles GET /batch/export/{batchId}.
type GetBatchExportHandler struct {
	svc *appsvcs.Services
}

func NewGetBatchExportHandler(svc *appsvcs.Services) *GetBatchExportHandler {
	return &GetBatchExportHandler{svc: svc}
}

// Execute writes the batch manifest and flips the batch to "sorting". The
// response body is the item set as it stood before the flip.
func (h *GetBatchExportHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Batches.Export(r.Context(), chi.URLParam(r, "batchId"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponses(items))
}

// GetBatchDownloadHandler handles GET /batch/download/{batchId}.
type GetBatchDownloadHandler struct {
	svc *appsvcs.Services
}

func NewGetBatchDownloadHandler(svc *appsvcs.Services) *GetBatchDownloadHandler {
	return &GetBatchDownloadHandler{svc: svc}
}

// Execute behaves like export minus the manifest write: the batch still flips
// to "sorting" and the pre-flip item set comes back.
func (h *GetBatchDownloadHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Batches.Download(r.Context(), chi.URLParam(r, "batchId"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponses(items))
}
