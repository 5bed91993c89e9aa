// Package restaurant provides the Restaurant entity of the food-delivery
// domain. The order engine reads the restaurant's active flag and its
// configured delivery fee; it never mutates restaurants.
package restaurant

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was
// not created through NewRestaurant or RestoreRestaurant.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant or RestoreRestaurant")

// Restaurant represents a restaurant that receives orders. Invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Delivery fee is a non-negative decimal, applied per order at creation
//     time unless a pricing rule waives it
//   - Inactive restaurants cannot receive new orders
type Restaurant struct {
	id            kernel.UUID
	name          string
	deliveryFee   decimal.Decimal
	active        bool
	isConstructed bool
}

// NewRestaurant creates an active Restaurant with validation.
func NewRestaurant(id kernel.UUID, name string, deliveryFee decimal.Decimal) (*Restaurant, error) {
	restaurant := &Restaurant{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		restaurant.setID(id),
		restaurant.setName(name),
		restaurant.setDeliveryFee(deliveryFee),
	); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// RestoreRestaurant rebuilds a Restaurant from persisted state.
func RestoreRestaurant(id kernel.UUID, name string, deliveryFee decimal.Decimal, active bool) (*Restaurant, error) {
	restaurant, err := NewRestaurant(id, name, deliveryFee)
	if err != nil {
		return nil, err
	}

	restaurant.active = active
	return restaurant, nil
}

// Validate ensures the Restaurant was created through a constructor.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// DeliveryFee returns the restaurant-scoped delivery fee.
func (r *Restaurant) DeliveryFee() decimal.Decimal {
	return r.deliveryFee
}

// IsActive reports whether the restaurant may receive new orders.
func (r *Restaurant) IsActive() bool {
	return r.active
}

// Deactivate blocks new orders for the restaurant.
func (r *Restaurant) Deactivate() {
	r.active = false
}

// Activate re-enables new orders for the restaurant.
func (r *Restaurant) Activate() {
	r.active = true
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setDeliveryFee(fee decimal.Decimal) error {
	if fee.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("deliveryFee",
			errors.New(fee.String()+" is negative"))
	}
	r.deliveryFee = fee
	return nil
}
