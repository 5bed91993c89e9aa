// Package customerrepo provides persistence for customer records. The order
// engine reads customers to validate order creation; writes exist for the
// surrounding CRUD plumbing and for seeding.
package customerrepo

import (
	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for customer records.
type CustomerDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Email  string `gorm:"uniqueIndex"`
	Active bool
}

// TableName specifies the database table name for customer records.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(entity *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:     entity.ID().Bytes(),
		Name:   entity.Name(),
		Email:  entity.Email(),
		Active: entity.IsActive(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Email, dto.Active)
}
