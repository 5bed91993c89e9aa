package services

import (
	"strings"

	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/shopspring/decimal"
)

// FreeDeliveryStreetPrefix is the literal address prefix that waives the
// delivery fee. The rule is an exact prefix match applied once, at
// order-creation time; it is never re-evaluated on later status changes.
const FreeDeliveryStreetPrefix = "Rua A"

// ResolvedItem pairs a resolved product with the requested quantity. It is
// produced by the OrderValidator so the pricing engine and the persistence
// step never re-fetch entities.
type ResolvedItem struct {
	Product  *product.Product
	Quantity int
}

// PriceQuote is the monetary outcome of pricing a candidate order.
// IncludesDeliveryFee tells the caller whether Total covers the fee: a
// standalone quote computed without restaurant context omits it.
type PriceQuote struct {
	Subtotal            decimal.Decimal
	DeliveryFee         decimal.Decimal
	Total               decimal.Decimal
	IncludesDeliveryFee bool
}

// PricingEngine computes order totals. It is a stateless domain service:
// pure, deterministic for a given input set, and free of side effects. All
// arithmetic is exact decimal arithmetic; binary floating point would drift
// across repeated additions and money never tolerates that.
type PricingEngine struct{}

// NewPricingEngine creates a PricingEngine instance.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// Price computes subtotal, delivery fee, and total for a candidate order.
// The fee defaults to the restaurant's configured fee and is waived when the
// delivery address starts with FreeDeliveryStreetPrefix.
//
// Quantities are assumed validated upstream (the validator rejects anything
// below 1 before pricing runs).
func (PricingEngine) Price(
	rest *restaurant.Restaurant,
	deliveryAddress string,
	items []ResolvedItem,
) (PriceQuote, error) {
	if err := rest.Validate(); err != nil {
		return PriceQuote{}, err
	}

	subtotal := Subtotal(items)

	fee := rest.DeliveryFee()
	if strings.HasPrefix(deliveryAddress, FreeDeliveryStreetPrefix) {
		fee = decimal.Zero
	}

	return PriceQuote{
		Subtotal:            subtotal,
		DeliveryFee:         fee,
		Total:               subtotal.Add(fee),
		IncludesDeliveryFee: true,
	}, nil
}

// Quote computes the subtotal for a set of items without restaurant or
// address context. The returned quote carries no delivery fee and says so
// via IncludesDeliveryFee.
func (PricingEngine) Quote(items []ResolvedItem) PriceQuote {
	subtotal := Subtotal(items)
	return PriceQuote{
		Subtotal:            subtotal,
		DeliveryFee:         decimal.Zero,
		Total:               subtotal,
		IncludesDeliveryFee: false,
	}
}

// Subtotal is the single subtotal computation shared by order creation and
// standalone quotes, which keeps the two paths bit-for-bit identical.
func Subtotal(items []ResolvedItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Product.Price().Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return sum
}
