package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is a line within an order. It binds a product and a quantity with the
// unit price captured at order-creation time: a point-in-time copy, not a
// live reference, so historical orders stay accurate when product prices
// change later.
//
// Invariants:
//   - Quantity is an integer >= 1
//   - Unit price is a positive decimal
//   - Subtotal equals quantity x unit price, computed once at construction
//
// Item is a value object owned exclusively by its Order; it holds only a
// non-owning reference to the product it snapshots.
type Item struct {
	productID     kernel.UUID
	quantity      int
	unitPrice     decimal.Decimal
	subtotal      decimal.Decimal
	isConstructed bool
}

// NewItem creates an order line with the given captured unit price. The
// subtotal is derived here and never recomputed.
func NewItem(productID kernel.UUID, quantity int, unitPrice decimal.Decimal) (Item, error) {
	item := Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	item.subtotal = item.unitPrice.Mul(decimal.NewFromInt(int64(item.quantity)))
	return item, nil
}

// RestoreItem rebuilds an order line from persisted state, keeping the
// stored subtotal rather than recomputing it.
func RestoreItem(productID kernel.UUID, quantity int, unitPrice, subtotal decimal.Decimal) (Item, error) {
	item, err := NewItem(productID, quantity, unitPrice)
	if err != nil {
		return Item{}, err
	}

	item.subtotal = subtotal
	return item, nil
}

// Validate ensures the Item was created through a constructor.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the identifier of the snapshotted product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the product price captured at order-creation time.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Subtotal returns quantity x captured unit price.
func (i Item) Subtotal() decimal.Decimal {
	return i.subtotal
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice decimal.Decimal) error {
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			errors.New(unitPrice.String()+" is not greater than 0"))
	}
	i.unitPrice = unitPrice
	return nil
}
