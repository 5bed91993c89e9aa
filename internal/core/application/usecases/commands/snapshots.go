package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/core/domain/model/restaurant"
)

// uowSnapshots adapts a unit of work's entity repositories to the
// services.EntitySnapshots interface, so validation reads happen inside the
// same transaction as the subsequent write.
type uowSnapshots struct {
	uow EntityRepoFactory
}

func (s uowSnapshots) CustomerByID(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	return s.uow.CustomerRepository().Get(ctx, id)
}

func (s uowSnapshots) RestaurantByID(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	return s.uow.RestaurantRepository().Get(ctx, id)
}

func (s uowSnapshots) ProductByID(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	return s.uow.ProductRepository().Get(ctx, id)
}
