// Package http is the inbound HTTP adapter. It binds JSON requests to
// commands and queries, extracts the acting identity from request headers,
// and maps the error taxonomy to status codes. Monetary amounts travel as
// decimal strings on the wire.
package http

import (
	"time"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/order"
)

// Error is the JSON error envelope.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItem is one requested line of a new order or a quote.
type NewOrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// NewOrder is the request body for order creation.
type NewOrder struct {
	CustomerID      string         `json:"customer_id"`
	RestaurantID    string         `json:"restaurant_id"`
	DeliveryAddress string         `json:"delivery_address"`
	Notes           string         `json:"notes"`
	Items           []NewOrderItem `json:"items"`
}

// StatusUpdate is the request body for a status transition.
type StatusUpdate struct {
	Status string `json:"status"`
}

// QuoteRequest is the request body for a standalone quote.
type QuoteRequest struct {
	Items []NewOrderItem `json:"items"`
}

// QuoteResponse is the priced outcome of a quote.
type QuoteResponse struct {
	Subtotal            string `json:"subtotal"`
	Total               string `json:"total"`
	IncludesDeliveryFee bool   `json:"includes_delivery_fee"`
}

// OrderItem is one order line in a response.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

// Order is the full order representation.
type Order struct {
	ID              string      `json:"id"`
	OrderNumber     string      `json:"order_number"`
	CustomerID      string      `json:"customer_id"`
	RestaurantID    string      `json:"restaurant_id"`
	Status          string      `json:"status"`
	Items           []OrderItem `json:"items"`
	Subtotal        string      `json:"subtotal"`
	DeliveryFee     string      `json:"delivery_fee"`
	Total           string      `json:"total"`
	DeliveryAddress string      `json:"delivery_address"`
	Notes           string      `json:"notes,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	DeliveredAt     *time.Time  `json:"delivered_at,omitempty"`
}

// OrderSummary is one row of an order listing.
type OrderSummary struct {
	ID           string    `json:"id"`
	OrderNumber  string    `json:"order_number"`
	CustomerID   string    `json:"customer_id"`
	RestaurantID string    `json:"restaurant_id"`
	Status       string    `json:"status"`
	Total        string    `json:"total"`
	CreatedAt    time.Time `json:"created_at"`
}

func orderFromAggregate(aggregate *order.Order) Order {
	items := make([]OrderItem, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItem{
			ProductID: item.ProductID().String(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().StringFixed(2),
			Subtotal:  item.Subtotal().StringFixed(2),
		})
	}

	return Order{
		ID:              aggregate.ID().String(),
		OrderNumber:     aggregate.OrderNumber(),
		CustomerID:      aggregate.CustomerID().String(),
		RestaurantID:    aggregate.RestaurantID().String(),
		Status:          aggregate.Status().String(),
		Items:           items,
		Subtotal:        aggregate.Subtotal().StringFixed(2),
		DeliveryFee:     aggregate.DeliveryFee().StringFixed(2),
		Total:           aggregate.Total().StringFixed(2),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Notes:           aggregate.Notes(),
		CreatedAt:       aggregate.CreatedAt(),
		DeliveredAt:     aggregate.DeliveredAt(),
	}
}

func orderFromResponse(resp queries.OrderResponse) Order {
	items := make([]OrderItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, OrderItem{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
			Subtotal:  item.Subtotal.StringFixed(2),
		})
	}

	return Order{
		ID:              resp.ID.String(),
		OrderNumber:     resp.OrderNumber,
		CustomerID:      resp.CustomerID.String(),
		RestaurantID:    resp.RestaurantID.String(),
		Status:          resp.Status,
		Items:           items,
		Subtotal:        resp.Subtotal.StringFixed(2),
		DeliveryFee:     resp.DeliveryFee.StringFixed(2),
		Total:           resp.Total.StringFixed(2),
		DeliveryAddress: resp.DeliveryAddress,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt,
		DeliveredAt:     resp.DeliveredAt,
	}
}

func summaryFromResponse(resp queries.OrderSummaryResponse) OrderSummary {
	return OrderSummary{
		ID:           resp.ID.String(),
		OrderNumber:  resp.OrderNumber,
		CustomerID:   resp.CustomerID.String(),
		RestaurantID: resp.RestaurantID.String(),
		Status:       resp.Status,
		Total:        resp.Total.StringFixed(2),
		CreatedAt:    resp.CreatedAt,
	}
}
