package handlers

import (
	"net/http"

	"github.com/ghuser/pressroom/pkg/errhttp"
	"github.com/ghuser/pressroom/pkg/httpx"
	pkgvalidator "github.com/ghuser/pressroom/pkg/validator"
	appsvcs "github.com/ghuser/pressroom/services/orders/application/services"
	"github.com/ghuser/pressroom/services/orders/domain/models"
)

// CreateItemRequest is one item of an order intake request.
type CreateItemRequest struct {
	ItemTemplate           string `json:"itemTemplate" validate:"required" example:"mug"`
	ArtFrontURL            string `json:"artFrontUrl" validate:"omitempty,url"`
	ArtBackURL             string `json:"artBackUrl" validate:"omitempty,url"`
	ShippingAddressName    string `json:"shippingAddressName"`
	ShippingAddressLine1   string `json:"shippingAddressLine1"`
	ShippingAddressLine2   string `json:"shippingAddressLine2"`
	ShippingAddressTown    string `json:"shippingAddressTown"`
	ShippingAddressState   string `json:"shippingAddressState"`
	ShippingAddressCountry string `json:"shippingAddressCountry"`
	ShippingAddressZipCode string `json:"shippingAddressZipCode"`
	SourceItemID           string `json:"sourceItemId"`
} // @name CreateItemRequest

// CreateOrderRequest is the request body for POST /order.
type CreateOrderRequest struct {
	SourceOrderID string              `json:"sourceOrderId" validate:"required" example:"SO-1042"`
	AccountRef    string              `json:"accountRef" validate:"required" example:"ACCT-7"`
	Items         []CreateItemRequest `json:"items" validate:"required,min=1,dive"`
} // @name CreateOrderRequest

// PostOrderHandler handles POST /order requests.
type PostOrderHandler struct {
	svc *appsvcs.Services
}

// NewPostOrderHandler returns a PostOrderHandler backed by the given services.
func NewPostOrderHandler(svc *appsvcs.Services) *PostOrderHandler {
	return &PostOrderHandler{svc: svc}
}

// Execute creates a new order with its items. Items enter the store unbatched.
func (h *PostOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateOrderRequest](w, r)
	if !ok {
		return
	}

	input := appsvcs.NewOrderInput{
		SourceOrderID: req.SourceOrderID,
		AccountRef:    req.AccountRef,
	}
	for _, it := range req.Items {
		input.Items = append(input.Items, appsvcs.NewItemInput{
			SourceItemID: it.SourceItemID,
			Template:     it.ItemTemplate,
			ArtFrontURL:  it.ArtFrontURL,
			ArtBackURL:   it.ArtBackURL,
			Shipping: models.ShippingAddress{
				Name:    it.ShippingAddressName,
				Line1:   it.ShippingAddressLine1,
				Line2:   it.ShippingAddressLine2,
				Town:    it.ShippingAddressTown,
				State:   it.ShippingAddressState,
				Country: it.ShippingAddressCountry,
				ZipCode: it.ShippingAddressZipCode,
			},
		})
	}

	order, err := h.svc.Orders.Create(r.Context(), input)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toOrderResponse(order))
}
