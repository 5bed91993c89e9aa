package queries

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderItemResponse is one order line as exposed to read callers. The unit
// price is the one captured when the order was created, not the product's
// current price.
type OrderItemResponse struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// OrderResponse is the full read model of an order.
type OrderResponse struct {
	ID              kernel.UUID
	OrderNumber     string
	CustomerID      kernel.UUID
	RestaurantID    kernel.UUID
	Status          string
	Items           []OrderItemResponse
	Subtotal        decimal.Decimal
	DeliveryFee     decimal.Decimal
	Total           decimal.Decimal
	DeliveryAddress string
	Notes           string
	CreatedAt       time.Time
	DeliveredAt     *time.Time
}

func newOrderResponse(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Subtotal:  item.Subtotal(),
		})
	}

	return OrderResponse{
		ID:              aggregate.ID(),
		OrderNumber:     aggregate.OrderNumber(),
		CustomerID:      aggregate.CustomerID(),
		RestaurantID:    aggregate.RestaurantID(),
		Status:          aggregate.Status().String(),
		Items:           items,
		Subtotal:        aggregate.Subtotal(),
		DeliveryFee:     aggregate.DeliveryFee(),
		Total:           aggregate.Total(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Notes:           aggregate.Notes(),
		CreatedAt:       aggregate.CreatedAt(),
		DeliveredAt:     aggregate.DeliveredAt(),
	}
}
