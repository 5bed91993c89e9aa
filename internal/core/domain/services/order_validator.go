package services

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"
)

// EntitySnapshots supplies current customer, restaurant, and product records
// by identifier. Implementations return an error unwrapping to
// errs.ErrObjectNotFound when the entity does not exist; any other error is
// treated as a collaborator failure. The validator only reads through this
// interface, never writes.
type EntitySnapshots interface {
	CustomerByID(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
	RestaurantByID(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
	ProductByID(ctx context.Context, id kernel.UUID) (*product.Product, error)
}

// ItemRequest is a raw (product, quantity) pair as submitted by a caller,
// before any resolution against current entity state.
type ItemRequest struct {
	ProductID kernel.UUID
	Quantity  int
}

// ValidatedOrder is the resolved context a successful validation returns:
// the customer, the restaurant, and every product paired with its quantity.
// Downstream steps (pricing, persistence) work from this context and never
// re-fetch.
type ValidatedOrder struct {
	Customer   *customer.Customer
	Restaurant *restaurant.Restaurant
	Items      []ResolvedItem
}

// OrderValidator checks referential and business preconditions before an
// order may be created. Validation is read-only and fails fast: the first
// violated check wins and nothing is mutated.
type OrderValidator struct {
	snapshots EntitySnapshots
}

// NewOrderValidator creates a validator reading through the given snapshot
// provider.
func NewOrderValidator(snapshots EntitySnapshots) OrderValidator {
	return OrderValidator{snapshots: snapshots}
}

// Validate runs the creation preconditions in their fixed order:
//
//  1. Customer exists
//  2. Customer is active
//  3. Restaurant exists
//  4. Restaurant is active
//  5. Items list is non-empty
//  6. Per item: product exists, is available, belongs to the target
//     restaurant, and quantity >= 1
//
// On success it returns the resolved order context; on the first failure it
// returns the corresponding typed error from the errs package.
func (v OrderValidator) Validate(
	ctx context.Context,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []ItemRequest,
) (*ValidatedOrder, error) {
	cust, err := v.snapshots.CustomerByID(ctx, customerID)
	if err != nil {
		return nil, classifyLookupError("customer", err)
	}
	if !cust.IsActive() {
		return nil, errs.NewBusinessRuleViolationError("inactive customer cannot order")
	}

	rest, err := v.snapshots.RestaurantByID(ctx, restaurantID)
	if err != nil {
		return nil, classifyLookupError("restaurant", err)
	}
	if !rest.IsActive() {
		return nil, errs.NewBusinessRuleViolationError("inactive restaurant cannot receive orders")
	}

	resolved, err := v.resolveItems(ctx, items, &restaurantID)
	if err != nil {
		return nil, err
	}

	return &ValidatedOrder{
		Customer:   cust,
		Restaurant: rest,
		Items:      resolved,
	}, nil
}

// ValidateItems runs only the item-level checks (existence, availability,
// quantity), without customer or restaurant context. This serves the quote
// path, where no restaurant is supplied and ownership cannot be checked.
func (v OrderValidator) ValidateItems(ctx context.Context, items []ItemRequest) ([]ResolvedItem, error) {
	return v.resolveItems(ctx, items, nil)
}

func (v OrderValidator) resolveItems(
	ctx context.Context,
	items []ItemRequest,
	restaurantID *kernel.UUID,
) ([]ResolvedItem, error) {
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	resolved := make([]ResolvedItem, 0, len(items))
	for _, item := range items {
		prod, err := v.snapshots.ProductByID(ctx, item.ProductID)
		if err != nil {
			return nil, classifyLookupError("product", err)
		}
		if !prod.IsAvailable() {
			return nil, errs.NewBusinessRuleViolationError("product unavailable: " + prod.Name())
		}
		if restaurantID != nil && !prod.BelongsTo(*restaurantID) {
			return nil, errs.NewBusinessRuleViolationError(
				"product " + prod.Name() + " belongs to a different restaurant")
		}
		if item.Quantity < 1 {
			return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
				errors.New("quantity must be at least 1"))
		}

		resolved = append(resolved, ResolvedItem{Product: prod, Quantity: item.Quantity})
	}

	return resolved, nil
}

// classifyLookupError keeps not-found conditions as they are and wraps every
// other collaborator failure as DependencyUnavailable, so callers never see
// an unclassified storage error.
func classifyLookupError(collaborator string, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	return errs.NewDependencyUnavailableError(collaborator+" lookup", err)
}
