package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// CreateOrderCommandHandler orchestrates order creation: validator, pricing
// engine, aggregate construction, and a single atomic persistence call.
// Any validator or pricing failure aborts before persistence is touched, so
// there are never partial writes.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	pricing    services.PricingEngine
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// The publisher is notified after a successful commit; its failures are
// logged, never surfaced.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    services.NewPricingEngine(),
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the order creation command and returns the persisted
// Pending order.
//
// Flow: validate preconditions against current entity state, price the
// candidate order (delivery fee from the restaurant, waived for the
// free-delivery street), snapshot items with captured unit prices, persist
// order and items as one transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, errs.ClassifyCollaboratorError("order storage", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	validator := services.NewOrderValidator(uowSnapshots{uow: uow})
	validated, err := validator.Validate(ctx, cmd.CustomerID(), cmd.RestaurantID(), cmd.Items())
	if err != nil {
		return nil, err
	}

	quote, err := h.pricing.Price(validated.Restaurant, cmd.DeliveryAddress(), validated.Items)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(validated.Items))
	for _, resolved := range validated.Items {
		item, itemErr := order.NewItem(resolved.Product.ID(), resolved.Quantity, resolved.Product.Price())
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.RestaurantID(),
		cmd.DeliveryAddress(),
		cmd.Notes(),
		items,
		quote.DeliveryFee,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, errs.ClassifyCollaboratorError("order storage", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, errs.ClassifyCollaboratorError("order storage", err)
	}

	h.publishChanged(ctx, aggregate)
	return aggregate, nil
}

func (h *CreateOrderCommandHandler) publishChanged(ctx context.Context, aggregate *order.Order) {
	if err := h.publisher.PublishOrderChanged(ctx, aggregate); err != nil {
		h.logger.ErrorContext(ctx, "failed to publish order change",
			"order_id", aggregate.ID().String(), "error", err)
	}
}
