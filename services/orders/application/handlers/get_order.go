package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/pressroom/pkg/errhttp"
	"github.com/ghuser/pressroom/pkg/httpx"
	appsvcs "github.com/ghuser/pressroom/services/orders/application/services"
	ordersdomain "github.com/ghuser/pressroom/services/orders/domain"
)

// GetOrderHandler handles GET /order/{sourceOrderId} requests.
type GetOrderHandler struct {
	svc *appsvcs.Services
}

func NewGetOrderHandler(svc *appsvcs.Services) *GetOrderHandler {
	return &GetOrderHandler{svc: svc}
}

// Execute returns the order with the given source order id. An unknown id is
// not an error on this route: callers poll it and expect 200 with a null body
// until the order lands.
func (h *GetOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	sourceOrderID := chi.URLParam(r, "sourceOrderId")

	order, err := h.svc.Orders.GetBySourceOrderID(r.Context(), sourceOrderID)
	if err != nil {
		if errors.Is(err, ordersdomain.ErrOrderNotFound) {
			httpx.JSON(w, http.StatusOK, nil)
			return
		}
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toOrderResponse(order))
}
