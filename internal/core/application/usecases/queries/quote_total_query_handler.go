package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// QuoteTotalQueryHandler prices a basket against current product state. It
// reuses the item checks of order creation (existence, availability,
// quantity) but skips customer, restaurant, and ownership checks, which
// need context a quote does not have.
type QuoteTotalQueryHandler struct {
	products ports.ProductRepository
	pricing  services.PricingEngine
}

// NewQuoteTotalQueryHandler creates a handler for standalone quotes.
func NewQuoteTotalQueryHandler(products ports.ProductRepository) QuoteTotalQueryHandler {
	return QuoteTotalQueryHandler{
		products: products,
		pricing:  services.NewPricingEngine(),
	}
}

// Handle resolves the basket's products at their current prices and returns
// the subtotal. Nothing is persisted and no order comes into existence.
func (h QuoteTotalQueryHandler) Handle(
	ctx context.Context,
	query QuoteTotalQuery,
) (QuoteTotalQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuoteTotalQueryResponse{}, err
	}

	validator := services.NewOrderValidator(productOnlySnapshots{products: h.products})
	resolved, err := validator.ValidateItems(ctx, query.Items())
	if err != nil {
		return QuoteTotalQueryResponse{}, err
	}

	quote := h.pricing.Quote(resolved)
	return QuoteTotalQueryResponse{
		Subtotal:            quote.Subtotal,
		Total:               quote.Total,
		IncludesDeliveryFee: quote.IncludesDeliveryFee,
	}, nil
}

// productOnlySnapshots serves the quote path, which resolves products only.
// The customer and restaurant lookups exist to satisfy the snapshot
// contract and are never reached by the item checks.
type productOnlySnapshots struct {
	products ports.ProductRepository
}

func (s productOnlySnapshots) CustomerByID(_ context.Context, id kernel.UUID) (*customer.Customer, error) {
	return nil, errs.NewObjectNotFoundError("customerID", id)
}

func (s productOnlySnapshots) RestaurantByID(_ context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	return nil, errs.NewObjectNotFoundError("restaurantID", id)
}

func (s productOnlySnapshots) ProductByID(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	return s.products.Get(ctx, id)
}
