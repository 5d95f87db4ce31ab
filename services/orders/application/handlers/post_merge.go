package handlers

import (
	"net/http"

	"github.com/ghuser/pressroom/pkg/errhttp"
	"github.com/ghuser/pressroom/pkg/httpx"
	pkgvalidator "github.com/ghuser/pressroom/pkg/validator"
	appsvcs "github.com/ghuser/pressroom/services/orders/application/services"
)

// MergeRequest is the request body for POST /merge-pdfs.
type MergeRequest struct {
	Documents []string `json:"documents" validate:"required,min=1,dive,url"`
	Output    string   `json:"output" validate:"omitempty"`
} // @name MergeRequest

// MergeAcceptedResponse acknowledges a dispatched merge job.
type MergeAcceptedResponse struct {
	Message string `json:"message" example:"PDF merge has begun"`
	JobID   string `json:"jobId" example:"7d8f0d2a-1f2b-4c5d-9e6f-0a1b2c3d4e5f"`
} // @name MergeAcceptedResponse

// PostMergeHandler handles POST /merge-pdfs.
type PostMergeHandler struct {
	svc *appsvcs.Services
}

func NewPostMergeHandler(svc *appsvcs.Services) *PostMergeHandler {
	return &PostMergeHandler{svc: svc}
}

// Execute queues the merge and returns immediately. The caller gets a job id
// for log correlation, nothing more: no artifact handle, no completion signal.
func (h *PostMergeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[MergeRequest](w, r)
	if !ok {
		return
	}

	jobID, err := h.svc.Merges.Dispatch(r.Context(), req.Documents, req.Output)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, MergeAcceptedResponse{
		Message: "PDF merge has begun",
		JobID:   jobID.String(),
	})
}
