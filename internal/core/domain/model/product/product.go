// Package product provides the Product entity of the food-delivery domain.
// Products belong to exactly one restaurant; that ownership is fixed at
// creation and never changes.
package product

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product represents a menu item offered by a restaurant. Invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Price is a positive decimal
//   - The owning restaurant identifier is immutable after creation
//   - Unavailable products cannot be added to new orders
type Product struct {
	id            kernel.UUID
	restaurantID  kernel.UUID
	name          string
	price         decimal.Decimal
	available     bool
	isConstructed bool
}

// NewProduct creates an available Product with validation.
func NewProduct(id, restaurantID kernel.UUID, name string, price decimal.Decimal) (*Product, error) {
	product := &Product{
		available:     true,
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setRestaurantID(restaurantID),
		product.setName(name),
		product.setPrice(price),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct rebuilds a Product from persisted state.
func RestoreProduct(id, restaurantID kernel.UUID, name string, price decimal.Decimal, available bool) (*Product, error) {
	product, err := NewProduct(id, restaurantID, name, price)
	if err != nil {
		return nil, err
	}

	product.available = available
	return product, nil
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// RestaurantID returns the identifier of the owning restaurant.
func (p *Product) RestaurantID() kernel.UUID {
	return p.restaurantID
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the product's current price. Orders snapshot this value at
// creation time, so later price changes never rewrite order history.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// IsAvailable reports whether the product may be added to new orders.
func (p *Product) IsAvailable() bool {
	return p.available
}

// MarkUnavailable removes the product from sale without deleting it.
func (p *Product) MarkUnavailable() {
	p.available = false
}

// MarkAvailable puts the product back on sale.
func (p *Product) MarkAvailable() {
	p.available = true
}

// BelongsTo reports whether the product is owned by the given restaurant.
func (p *Product) BelongsTo(restaurantID kernel.UUID) bool {
	return p.restaurantID.IsEqual(restaurantID)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantID", err)
	}
	p.restaurantID = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			errors.New(price.String()+" is not greater than 0"))
	}
	p.price = price
	return nil
}
