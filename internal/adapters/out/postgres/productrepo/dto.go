// Package productrepo provides persistence for product records. Orders
// snapshot a product's price at creation time, so this repository only ever
// serves the current menu state.
package productrepo

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for product records.
type ProductDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;index"`
	Name         string
	Price        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Available    bool
}

// TableName specifies the database table name for product records.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(entity *product.Product) ProductDTO {
	return ProductDTO{
		ID:           entity.ID().Bytes(),
		RestaurantID: entity.RestaurantID().Bytes(),
		Name:         entity.Name(),
		Price:        entity.Price(),
		Available:    entity.IsAvailable(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, restaurantID, dto.Name, dto.Price, dto.Available)
}
