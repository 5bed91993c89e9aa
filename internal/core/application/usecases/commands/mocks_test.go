package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllStalePending(ctx context.Context, olderThan time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, olderThan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

// Stub entity repositories back the validator's snapshot reads during
// create-order tests. Lookups match on ID; everything else is not found.

type stubCustomerRepository struct{ customer *customer.Customer }

func (s stubCustomerRepository) Get(_ context.Context, id kernel.UUID) (*customer.Customer, error) {
	if s.customer != nil && s.customer.ID().IsEqual(id) {
		return s.customer, nil
	}
	return nil, errs.NewObjectNotFoundError("customer", id.String())
}

type stubRestaurantRepository struct{ restaurant *restaurant.Restaurant }

func (s stubRestaurantRepository) Get(_ context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if s.restaurant != nil && s.restaurant.ID().IsEqual(id) {
		return s.restaurant, nil
	}
	return nil, errs.NewObjectNotFoundError("restaurant", id.String())
}

type stubProductRepository struct{ products map[kernel.UUID]*product.Product }

func (s stubProductRepository) Get(_ context.Context, id kernel.UUID) (*product.Product, error) {
	if prod, ok := s.products[id]; ok {
		return prod, nil
	}
	return nil, errs.NewObjectNotFoundError("product", id.String())
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// MockUoW extends MockOrderUoW with the entity repositories the create
// path reads through.
type MockUoW struct {
	MockOrderUoW
	customers   stubCustomerRepository
	restaurants stubRestaurantRepository
	products    stubProductRepository
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	return m.customers
}

func (m *MockUoW) RestaurantRepository() ports.RestaurantRepository {
	return m.restaurants
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.products
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishOrderChanged(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func buildTestOrder(t *testing.T) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), 2, decimal.RequireFromString("50.00"))
	require.NoError(t, err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Rua B, 200", "", []order.Item{item}, decimal.RequireFromString("10.00"))
	require.NoError(t, err)
	return aggregate
}
