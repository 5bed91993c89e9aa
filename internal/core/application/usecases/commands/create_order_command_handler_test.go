package commands_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type createOrderFixture struct {
	customer   *customer.Customer
	restaurant *restaurant.Restaurant
	product    *product.Product
	uow        *MockUoW
}

func newCreateOrderFixture(t *testing.T) createOrderFixture {
	t.Helper()

	cust, err := customer.NewCustomer(kernel.NewUUID(), "Joana Prado", "joana@example.com")
	require.NoError(t, err)

	rest, err := restaurant.NewRestaurant(kernel.NewUUID(), "Cantina da Praca",
		decimal.RequireFromString("10.00"))
	require.NoError(t, err)

	prod, err := product.NewProduct(kernel.NewUUID(), rest.ID(), "Pizza Margherita",
		decimal.RequireFromString("50.00"))
	require.NoError(t, err)

	uow := &MockUoW{
		customers:   stubCustomerRepository{customer: cust},
		restaurants: stubRestaurantRepository{restaurant: rest},
		products:    stubProductRepository{products: map[kernel.UUID]*product.Product{prod.ID(): prod}},
	}

	return createOrderFixture{customer: cust, restaurant: rest, product: prod, uow: uow}
}

func (fx createOrderFixture) command(t *testing.T, address string, quantity int) commands.CreateOrderCommand {
	t.Helper()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), fx.customer.ID(), fx.restaurant.ID(),
		address, "", []services.ItemRequest{{ProductID: fx.product.ID(), Quantity: quantity}})
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	fx := newCreateOrderFixture(t)
	cmd := fx.command(t, "Rua B, 200", 2)

	repo := new(MockOrderRepository)
	mock.InOrder(
		fx.uow.On("Begin", ctx).Return(nil).Once(),
		fx.uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		fx.uow.On("Commit", ctx).Return(nil).Once(),
		fx.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(fx.uow).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("PublishOrderChanged", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(factory, publisher, discardLogger())
	aggregate, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.Pending, aggregate.Status())
	assert.True(t, aggregate.Subtotal().Equal(decimal.RequireFromString("100.00")))
	assert.True(t, aggregate.DeliveryFee().Equal(decimal.RequireFromString("10.00")))
	assert.True(t, aggregate.Total().Equal(decimal.RequireFromString("110.00")))

	repo.AssertExpectations(t)
	fx.uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_FreeDeliveryStreet(t *testing.T) {
	ctx := t.Context()
	fx := newCreateOrderFixture(t)
	cmd := fx.command(t, "Rua A, 123", 2)

	repo := new(MockOrderRepository)
	mock.InOrder(
		fx.uow.On("Begin", ctx).Return(nil).Once(),
		fx.uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		fx.uow.On("Commit", ctx).Return(nil).Once(),
		fx.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(fx.uow).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("PublishOrderChanged", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(factory, publisher, discardLogger())
	aggregate, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, aggregate.DeliveryFee().IsZero())
	assert.True(t, aggregate.Total().Equal(decimal.RequireFromString("100.00")))
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	publisher := new(MockOrderEventPublisher)

	h := commands.NewCreateOrderCommandHandler(factory, publisher, discardLogger())
	_, err := h.Handle(t.Context(), cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_InactiveCustomerAbortsBeforePersistence(t *testing.T) {
	ctx := t.Context()
	fx := newCreateOrderFixture(t)
	fx.customer.Deactivate()
	cmd := fx.command(t, "Rua B, 200", 2)

	mock.InOrder(
		fx.uow.On("Begin", ctx).Return(nil).Once(),
		fx.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(fx.uow).Once()

	publisher := new(MockOrderEventPublisher)

	h := commands.NewCreateOrderCommandHandler(factory, publisher, discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)

	fx.uow.AssertNotCalled(t, "OrderRepository")
	publisher.AssertNotCalled(t, "PublishOrderChanged")
}

func TestCreateOrderCommandHandler_Handle_AddErrorSurfacesAsDependencyUnavailable(t *testing.T) {
	ctx := t.Context()
	fx := newCreateOrderFixture(t)
	cmd := fx.command(t, "Rua B, 200", 1)

	repo := new(MockOrderRepository)
	mock.InOrder(
		fx.uow.On("Begin", ctx).Return(nil).Once(),
		fx.uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errors.New("driver: bad connection")).Once(),
		fx.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(fx.uow).Once()

	publisher := new(MockOrderEventPublisher)

	h := commands.NewCreateOrderCommandHandler(factory, publisher, discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDependencyUnavailable)
	publisher.AssertNotCalled(t, "PublishOrderChanged")
}

func TestCreateOrderCommandHandler_Handle_CommitErrorSurfacesAsDependencyUnavailable(t *testing.T) {
	ctx := t.Context()
	fx := newCreateOrderFixture(t)
	cmd := fx.command(t, "Rua B, 200", 1)

	repo := new(MockOrderRepository)
	mock.InOrder(
		fx.uow.On("Begin", ctx).Return(nil).Once(),
		fx.uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		fx.uow.On("Commit", ctx).Return(errors.New("connection reset by peer")).Once(),
		fx.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(fx.uow).Once()

	publisher := new(MockOrderEventPublisher)

	h := commands.NewCreateOrderCommandHandler(factory, publisher, discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDependencyUnavailable)
	publisher.AssertNotCalled(t, "PublishOrderChanged")
}

func TestCreateOrderCommandHandler_Handle_UnknownCustomerWinsOverEmptyItems(t *testing.T) {
	ctx := t.Context()
	fx := newCreateOrderFixture(t)

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), fx.restaurant.ID(),
		"Rua B, 200", "", nil)
	require.NoError(t, err)

	mock.InOrder(
		fx.uow.On("Begin", ctx).Return(nil).Once(),
		fx.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(fx.uow).Once()

	publisher := new(MockOrderEventPublisher)

	h := commands.NewCreateOrderCommandHandler(factory, publisher, discardLogger())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.NotErrorIs(t, err, errs.ErrValueIsRequired)

	fx.uow.AssertNotCalled(t, "OrderRepository")
	publisher.AssertNotCalled(t, "PublishOrderChanged")
}

func TestCreateOrderCommandHandler_Handle_EmptyItemsReportedAfterEntityChecks(t *testing.T) {
	ctx := t.Context()
	fx := newCreateOrderFixture(t)

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), fx.customer.ID(), fx.restaurant.ID(),
		"Rua B, 200", "", nil)
	require.NoError(t, err)

	mock.InOrder(
		fx.uow.On("Begin", ctx).Return(nil).Once(),
		fx.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(fx.uow).Once()

	publisher := new(MockOrderEventPublisher)

	h := commands.NewCreateOrderCommandHandler(factory, publisher, discardLogger())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	fx.uow.AssertNotCalled(t, "OrderRepository")
	publisher.AssertNotCalled(t, "PublishOrderChanged")
}

func TestCreateOrderCommandHandler_Handle_ZeroQuantityRejectedByValidator(t *testing.T) {
	ctx := t.Context()
	fx := newCreateOrderFixture(t)
	cmd := fx.command(t, "Rua B, 200", 0)

	mock.InOrder(
		fx.uow.On("Begin", ctx).Return(nil).Once(),
		fx.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(fx.uow).Once()

	publisher := new(MockOrderEventPublisher)

	h := commands.NewCreateOrderCommandHandler(factory, publisher, discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	fx.uow.AssertNotCalled(t, "OrderRepository")
}

func TestCreateOrderCommandHandler_Handle_PublishFailureDoesNotFailOperation(t *testing.T) {
	ctx := t.Context()
	fx := newCreateOrderFixture(t)
	cmd := fx.command(t, "Rua B, 200", 1)

	repo := new(MockOrderRepository)
	mock.InOrder(
		fx.uow.On("Begin", ctx).Return(nil).Once(),
		fx.uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		fx.uow.On("Commit", ctx).Return(nil).Once(),
		fx.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(fx.uow).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("PublishOrderChanged", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(errors.New("broker down")).Once()

	h := commands.NewCreateOrderCommandHandler(factory, publisher, discardLogger())
	aggregate, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Pending, aggregate.Status())
	publisher.AssertExpectations(t)
}
