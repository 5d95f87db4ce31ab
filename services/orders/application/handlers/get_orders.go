package handlers

import (
	"net/http"

	"github.com/ghuser/pressroom/pkg/errhttp"
	"github.com/ghuser/pressroom/pkg/httpx"
	appsvcs "github.com/ghuser/pressroom/services/orders/application/services"
)

// GetOrdersHandler handles GET /orders requests.
type GetOrdersHandler struct {
	svc *appsvcs.Services
}

func NewGetOrdersHandler(svc *appsvcs.Services) *GetOrdersHandler {
	return &GetOrdersHandler{svc: svc}
}

// Execute returns every order header in the store.
func (h *GetOrdersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.Orders.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toOrderResponses(orders))
}
