package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies a requested status transition to a
// stored order: fetch current state, consult the state machine, persist the
// new status. Prices are never recomputed; a disallowed transition leaves
// the order unchanged.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the status update and returns the order in its new
// status. The fetch-validate-write sequence runs inside one transaction and
// the write carries the optimistic version guard, so two concurrent
// transitions cannot both pass validation against a stale status.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, errs.ClassifyCollaboratorError("order storage", err)
	}

	if err = aggregate.TransitionTo(cmd.Status()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, errs.ClassifyCollaboratorError("order storage", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, errs.ClassifyCollaboratorError("order storage", err)
	}

	if err = h.publisher.PublishOrderChanged(ctx, aggregate); err != nil {
		h.logger.ErrorContext(ctx, "failed to publish order change",
			"order_id", aggregate.ID().String(), "error", err)
	}

	return aggregate, nil
}
