package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/core/domain/model/restaurant"
)

// The entity repositories are the order engine's read-only view of the CRUD
// plumbing around it. Each Get returns an error unwrapping to
// errs.ErrObjectNotFound when the entity does not exist, distinct from any
// infrastructure failure. Together they satisfy services.EntitySnapshots.

// CustomerRepository looks up customer records.
type CustomerRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}

// RestaurantRepository looks up restaurant records.
type RestaurantRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
}

// ProductRepository looks up product records.
type ProductRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
