package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/pressroom/pkg/errhttp"
	"github.com/ghuser/pressroom/pkg/httpx"
	appsvcs "github.com/ghuser/pressroom/services/orders/application/services"
)

// GetItemsHandler handles GET /items requests.
type GetItemsHandler struct {
	svc *appsvcs.Services
}

func NewGetItemsHandler(svc *appsvcs.Services) *GetItemsHandler {
	return &GetItemsHandler{svc: svc}
}

// Execute returns every item in the store, batched or not.
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Orders.ListItems(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponses(items))
}

// GetOrderItemsHandler handles GET /order-items/{sourceOrderId} requests.
type GetOrderItemsHandler struct {
	svc *appsvcs.Services
}

func NewGetOrderItemsHandler(svc *appsvcs.Services) *GetOrderItemsHandler {
	return &GetOrderItemsHandler{svc: svc}
}

// Execute returns the items belonging to the order with the given source
// order id. An unknown id yields an empty list, not an error.
func (h *GetOrderItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	sourceOrderID := chi.URLParam(r, "sourceOrderId")

	items, err := h.svc.Orders.ListOrderItems(r.Context(), sourceOrderID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponses(items))
}

// GetUnbatchedItemsHandler handles GET /unbatched-items requests.
type GetUnbatchedItemsHandler struct {
	svc *appsvcs.Services
}

func NewGetUnbatchedItemsHandler(svc *appsvcs.Services) *GetUnbatchedItemsHandler {
	return &GetUnbatchedItemsHandler{svc: svc}
}

// Execute returns items that have never been claimed into a batch.
func (h *GetUnbatchedItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Orders.ListUnbatched(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponses(items))
}
