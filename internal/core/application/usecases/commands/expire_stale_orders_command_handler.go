package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// ExpireStaleOrdersCommandHandler cancels Pending orders left unconfirmed
// past the configured time-to-live. Stale orders are Pending by definition,
// so cancellation is always legal for them.
type ExpireStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewExpireStaleOrdersCommandHandler creates a handler for stale-order expiry.
func NewExpireStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) ExpireStaleOrdersCommandHandler {
	return ExpireStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle cancels every stale Pending order in one transaction and returns
// how many were cancelled.
func (h *ExpireStaleOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, errs.ClassifyCollaboratorError("order storage", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	staleOrders, err := orderRepo.GetAllStalePending(ctx, cmd.OlderThan())
	if err != nil {
		return 0, errs.ClassifyCollaboratorError("order storage", err)
	}

	for _, aggregate := range staleOrders {
		if err = aggregate.Cancel(); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, errs.ClassifyCollaboratorError("order storage", err)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, errs.ClassifyCollaboratorError("order storage", err)
	}

	for _, aggregate := range staleOrders {
		if err = h.publisher.PublishOrderChanged(ctx, aggregate); err != nil {
			h.logger.ErrorContext(ctx, "failed to publish order change",
				"order_id", aggregate.ID().String(), "error", err)
		}
	}

	return len(staleOrders), nil
}
