package services_test

import (
	"context"
	"errors"
	"testing"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSnapshots is an in-memory snapshot provider backed by maps. A lookup
// of an unknown ID yields a not-found error; a non-nil failure simulates a
// collaborator outage.
type fakeSnapshots struct {
	customers   map[kernel.UUID]*customer.Customer
	restaurants map[kernel.UUID]*restaurant.Restaurant
	products    map[kernel.UUID]*product.Product
	failure     error
}

func newFakeSnapshots() *fakeSnapshots {
	return &fakeSnapshots{
		customers:   make(map[kernel.UUID]*customer.Customer),
		restaurants: make(map[kernel.UUID]*restaurant.Restaurant),
		products:    make(map[kernel.UUID]*product.Product),
	}
}

func (f *fakeSnapshots) CustomerByID(_ context.Context, id kernel.UUID) (*customer.Customer, error) {
	if f.failure != nil {
		return nil, f.failure
	}
	if cust, ok := f.customers[id]; ok {
		return cust, nil
	}
	return nil, errs.NewObjectNotFoundError("customer", id.String())
}

func (f *fakeSnapshots) RestaurantByID(_ context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if f.failure != nil {
		return nil, f.failure
	}
	if rest, ok := f.restaurants[id]; ok {
		return rest, nil
	}
	return nil, errs.NewObjectNotFoundError("restaurant", id.String())
}

func (f *fakeSnapshots) ProductByID(_ context.Context, id kernel.UUID) (*product.Product, error) {
	if f.failure != nil {
		return nil, f.failure
	}
	if prod, ok := f.products[id]; ok {
		return prod, nil
	}
	return nil, errs.NewObjectNotFoundError("product", id.String())
}

type validatorFixture struct {
	snapshots  *fakeSnapshots
	customer   *customer.Customer
	restaurant *restaurant.Restaurant
	product    *product.Product
}

func newValidatorFixture(t *testing.T) validatorFixture {
	t.Helper()

	snapshots := newFakeSnapshots()

	cust, err := customer.NewCustomer(kernel.NewUUID(), "Joana Prado", "joana@example.com")
	require.NoError(t, err)
	snapshots.customers[cust.ID()] = cust

	rest, err := restaurant.NewRestaurant(kernel.NewUUID(), "Cantina da Praca", decimal.RequireFromString("10.00"))
	require.NoError(t, err)
	snapshots.restaurants[rest.ID()] = rest

	prod, err := product.NewProduct(kernel.NewUUID(), rest.ID(), "Pizza Margherita", decimal.RequireFromString("50.00"))
	require.NoError(t, err)
	snapshots.products[prod.ID()] = prod

	return validatorFixture{snapshots: snapshots, customer: cust, restaurant: rest, product: prod}
}

func TestOrderValidator_Validate_Success(t *testing.T) {
	fx := newValidatorFixture(t)
	validator := services.NewOrderValidator(fx.snapshots)

	validated, err := validator.Validate(t.Context(), fx.customer.ID(), fx.restaurant.ID(),
		[]services.ItemRequest{{ProductID: fx.product.ID(), Quantity: 2}})
	require.NoError(t, err)

	assert.Equal(t, fx.customer, validated.Customer)
	assert.Equal(t, fx.restaurant, validated.Restaurant)
	require.Len(t, validated.Items, 1)
	assert.Equal(t, fx.product, validated.Items[0].Product)
	assert.Equal(t, 2, validated.Items[0].Quantity)
}

func TestOrderValidator_Validate_CustomerNotFound(t *testing.T) {
	fx := newValidatorFixture(t)
	validator := services.NewOrderValidator(fx.snapshots)

	_, err := validator.Validate(t.Context(), kernel.NewUUID(), fx.restaurant.ID(),
		[]services.ItemRequest{{ProductID: fx.product.ID(), Quantity: 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestOrderValidator_Validate_InactiveCustomer(t *testing.T) {
	fx := newValidatorFixture(t)
	fx.customer.Deactivate()
	validator := services.NewOrderValidator(fx.snapshots)

	_, err := validator.Validate(t.Context(), fx.customer.ID(), fx.restaurant.ID(),
		[]services.ItemRequest{{ProductID: fx.product.ID(), Quantity: 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Contains(t, err.Error(), "customer")
}

func TestOrderValidator_Validate_RestaurantNotFound(t *testing.T) {
	fx := newValidatorFixture(t)
	validator := services.NewOrderValidator(fx.snapshots)

	_, err := validator.Validate(t.Context(), fx.customer.ID(), kernel.NewUUID(),
		[]services.ItemRequest{{ProductID: fx.product.ID(), Quantity: 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestOrderValidator_Validate_InactiveRestaurant(t *testing.T) {
	fx := newValidatorFixture(t)
	fx.restaurant.Deactivate()
	validator := services.NewOrderValidator(fx.snapshots)

	_, err := validator.Validate(t.Context(), fx.customer.ID(), fx.restaurant.ID(),
		[]services.ItemRequest{{ProductID: fx.product.ID(), Quantity: 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Contains(t, err.Error(), "restaurant")
}

func TestOrderValidator_Validate_InactiveCustomerCheckedBeforeRestaurant(t *testing.T) {
	fx := newValidatorFixture(t)
	fx.customer.Deactivate()
	fx.restaurant.Deactivate()
	validator := services.NewOrderValidator(fx.snapshots)

	_, err := validator.Validate(t.Context(), fx.customer.ID(), fx.restaurant.ID(),
		[]services.ItemRequest{{ProductID: fx.product.ID(), Quantity: 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customer")
}

func TestOrderValidator_Validate_EmptyItems(t *testing.T) {
	fx := newValidatorFixture(t)
	validator := services.NewOrderValidator(fx.snapshots)

	_, err := validator.Validate(t.Context(), fx.customer.ID(), fx.restaurant.ID(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestOrderValidator_Validate_ProductNotFound(t *testing.T) {
	fx := newValidatorFixture(t)
	validator := services.NewOrderValidator(fx.snapshots)

	_, err := validator.Validate(t.Context(), fx.customer.ID(), fx.restaurant.ID(),
		[]services.ItemRequest{{ProductID: kernel.NewUUID(), Quantity: 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestOrderValidator_Validate_UnavailableProduct(t *testing.T) {
	fx := newValidatorFixture(t)
	fx.product.MarkUnavailable()
	validator := services.NewOrderValidator(fx.snapshots)

	_, err := validator.Validate(t.Context(), fx.customer.ID(), fx.restaurant.ID(),
		[]services.ItemRequest{{ProductID: fx.product.ID(), Quantity: 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
}

func TestOrderValidator_Validate_ProductFromAnotherRestaurant(t *testing.T) {
	fx := newValidatorFixture(t)

	foreign, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Sushi Combo",
		decimal.RequireFromString("80.00"))
	require.NoError(t, err)
	fx.snapshots.products[foreign.ID()] = foreign

	validator := services.NewOrderValidator(fx.snapshots)
	_, err = validator.Validate(t.Context(), fx.customer.ID(), fx.restaurant.ID(),
		[]services.ItemRequest{{ProductID: foreign.ID(), Quantity: 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Contains(t, err.Error(), "different restaurant")
}

func TestOrderValidator_Validate_QuantityBelowOne(t *testing.T) {
	fx := newValidatorFixture(t)
	validator := services.NewOrderValidator(fx.snapshots)

	_, err := validator.Validate(t.Context(), fx.customer.ID(), fx.restaurant.ID(),
		[]services.ItemRequest{{ProductID: fx.product.ID(), Quantity: 0}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOrderValidator_Validate_CollaboratorFailure(t *testing.T) {
	fx := newValidatorFixture(t)
	fx.snapshots.failure = errors.New("connection refused")
	validator := services.NewOrderValidator(fx.snapshots)

	_, err := validator.Validate(t.Context(), fx.customer.ID(), fx.restaurant.ID(),
		[]services.ItemRequest{{ProductID: fx.product.ID(), Quantity: 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDependencyUnavailable)
}

func TestOrderValidator_ValidateItems_SkipsOwnershipCheck(t *testing.T) {
	fx := newValidatorFixture(t)

	foreign, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Sushi Combo",
		decimal.RequireFromString("80.00"))
	require.NoError(t, err)
	fx.snapshots.products[foreign.ID()] = foreign

	validator := services.NewOrderValidator(fx.snapshots)
	resolved, err := validator.ValidateItems(t.Context(), []services.ItemRequest{
		{ProductID: fx.product.ID(), Quantity: 1},
		{ProductID: foreign.ID(), Quantity: 2},
	})
	require.NoError(t, err)
	assert.Len(t, resolved, 2)
}

func TestOrderValidator_ValidateItems_StillChecksAvailability(t *testing.T) {
	fx := newValidatorFixture(t)
	fx.product.MarkUnavailable()
	validator := services.NewOrderValidator(fx.snapshots)

	_, err := validator.ValidateItems(t.Context(),
		[]services.ItemRequest{{ProductID: fx.product.ID(), Quantity: 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
}
