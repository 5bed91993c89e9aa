// Package restaurantrepo provides persistence for restaurant records,
// including the per-restaurant delivery fee the pricing engine reads.
package restaurantrepo

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RestaurantDTO represents the database structure for restaurant records.
type RestaurantDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string
	DeliveryFee decimal.Decimal `gorm:"type:numeric(12,2)"`
	Active      bool
}

// TableName specifies the database table name for restaurant records.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

func fromDomain(entity *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:          entity.ID().Bytes(),
		Name:        entity.Name(),
		DeliveryFee: entity.DeliveryFee(),
		Active:      entity.IsActive(),
	}
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(id, dto.Name, dto.DeliveryFee, dto.Active)
}
