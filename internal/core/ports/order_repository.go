// Package ports defines the contracts between the order engine and its
// infrastructure collaborators: repositories, the unit of work, and the
// event publisher. The interfaces enable dependency inversion and keep the
// core testable without a database or a broker.
package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository is the persistence contract for order aggregates. The
// order and its items are stored and loaded as one unit; implementations
// must treat the two writes of Add as a single atomic operation.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status change of an existing order. Only status,
	// delivered-at, and the version counter are written; monetary figures
	// and items are immutable. Implementations guard the write with the
	// aggregate's version and report a version conflict when the stored
	// row has moved on (lost-update protection).
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its items by identifier.
	// Returns an error unwrapping to errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllStalePending retrieves Pending orders created before the given
	// cutoff. Used by the expiry job to cancel abandoned orders.
	GetAllStalePending(ctx context.Context, olderThan time.Time) ([]*order.Order, error)
}
