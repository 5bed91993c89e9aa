// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// rows. The order and its items map to two tables written as one unit.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Monetary figures are stored as numeric columns; the status is
// stored as its integer code and indexed for the stale-order scan.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderNumber     string          `gorm:"uniqueIndex"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;index"`
	RestaurantID    uuid.UUID       `gorm:"type:uuid;index"`
	Status          int             `gorm:"index"`
	Subtotal        decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryFee     decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total           decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryAddress string
	Notes           string
	CreatedAt       time.Time
	DeliveredAt     *time.Time
	Version         int
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line. The unit price and subtotal are
// the values captured at order-creation time, never the product's current
// price.
type OrderItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database
// representation, items included.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Subtotal:  item.Subtotal(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OrderNumber:     aggregate.OrderNumber(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		RestaurantID:    aggregate.RestaurantID().Bytes(),
		Status:          int(aggregate.Status()),
		Subtotal:        aggregate.Subtotal(),
		DeliveryFee:     aggregate.DeliveryFee(),
		Total:           aggregate.Total(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Notes:           aggregate.Notes(),
		CreatedAt:       aggregate.CreatedAt(),
		DeliveredAt:     aggregate.DeliveredAt(),
		Version:         aggregate.Version(),
		Items:           items,
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, keeping the stored monetary figures as-is.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(productID, itemDTO.Quantity, itemDTO.UnitPrice, itemDTO.Subtotal)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		customerID,
		restaurantID,
		dto.DeliveryAddress,
		dto.Notes,
		items,
		order.Status(dto.Status),
		dto.Subtotal,
		dto.DeliveryFee,
		dto.Total,
		dto.CreatedAt,
		dto.DeliveredAt,
		dto.Version,
	)
}
