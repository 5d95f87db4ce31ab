package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/pressroom/services/orders/domain/models"
)

// ItemResponse is the wire representation of an item. Field names follow the
// contract downstream consumers already parse; unassigned items render their
// batchId as the "-1" sentinel.
type ItemResponse struct {
	ID                     uuid.UUID       `json:"id"`
	OrderID                uuid.UUID       `json:"orderId"`
	SourceItemID           string          `json:"sourceItemId"`
	ItemTemplate           string          `json:"itemTemplate"`
	ArtFrontURL            string          `json:"artFrontUrl"`
	ArtBackURL             string          `json:"artBackUrl"`
	ShippingAddressName    string          `json:"shippingAddressName"`
	ShippingAddressLine1   string          `json:"shippingAddressLine1"`
	ShippingAddressLine2   string          `json:"shippingAddressLine2"`
	ShippingAddressTown    string          `json:"shippingAddressTown"`
	ShippingAddressState   string          `json:"shippingAddressState"`
	ShippingAddressCountry string          `json:"shippingAddressCountry"`
	ShippingAddressZipCode string          `json:"shippingAddressZipCode"`
	BatchID                models.BatchRef `json:"batchId"`
	ItemStatus             string          `json:"itemStatus"`
} // @name ItemResponse

// OrderResponse is the wire representation of an order.
type OrderResponse struct {
	ID            uuid.UUID      `json:"id"`
	SourceOrderID string         `json:"sourceOrderId"`
	AccountRef    string         `json:"accountRef"`
	CreatedAt     time.Time      `json:"createdAt"`
	Items         []ItemResponse `json:"items,omitempty"`
} // @name OrderResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"error retrieving batch"`
} // @name ErrorResponse

// MessageResponse carries confirmation messages.
type MessageResponse struct {
	Message string `json:"message" example:"Batch B1 created"`
} // @name MessageResponse

func toItemResponse(it *models.Item) ItemResponse {
	return ItemResponse{
		ID:                     it.ID,
		OrderID:                it.OrderID,
		SourceItemID:           it.SourceItemID,
		ItemTemplate:           it.Template,
		ArtFrontURL:            it.ArtFrontURL,
		ArtBackURL:             it.ArtBackURL,
		ShippingAddressName:    it.Shipping.Name,
		ShippingAddressLine1:   it.Shipping.Line1,
		ShippingAddressLine2:   it.Shipping.Line2,
		ShippingAddressTown:    it.Shipping.Town,
		ShippingAddressState:   it.Shipping.State,
		ShippingAddressCountry: it.Shipping.Country,
		ShippingAddressZipCode: it.Shipping.ZipCode,
		BatchID:                it.Batch,
		ItemStatus:             it.Status.String(),
	}
}

func toItemResponses(items []*models.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = toItemResponse(it)
	}
	return out
}

func toOrderResponse(o *models.Order) OrderResponse {
	resp := OrderResponse{
		ID:            o.ID,
		SourceOrderID: o.SourceOrderID,
		AccountRef:    o.AccountRef,
		CreatedAt:     o.CreatedAt,
	}
	if len(o.Items) > 0 {
		resp.Items = toItemResponses(o.Items)
	}
	return resp
}

func toOrderResponses(orders []*models.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o)
	}
	return out
}
