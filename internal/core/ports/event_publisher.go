package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// OrderEventPublisher announces order lifecycle changes to interested
// consumers. Publishing happens after the transaction commits and is
// best-effort: a failed publish is logged by the caller, never rolled into
// the operation's outcome, so persistence remains the single state-bearing
// side effect.
type OrderEventPublisher interface {
	// PublishOrderChanged emits an event for the order's current state
	// (after creation or any status change).
	PublishOrderChanged(ctx context.Context, aggregate *order.Order) error
}
