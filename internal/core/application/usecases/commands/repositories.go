// Package commands contains the write operations of the order engine:
// create, status update, cancellation, and stale-order expiry. Each command
// is a validated value object paired with a handler that orchestrates
// validator, pricing engine, state machine, and persistence. Every handler
// issues at most one state-bearing write, wrapped in a unit of work.
package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers depend on the narrowest composition they need.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// EntityRepoFactory provides the read-only entity repositories within a
	// transaction. They feed the validator's snapshot view.
	EntityRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
		RestaurantRepository() ports.RestaurantRepository
		ProductRepository() ports.ProductRepository
	}

	// OrderUoW manages transactions for operations touching only the order
	// aggregate (status updates, cancellation, expiry).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates order-only unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions for order creation, which additionally reads
	// customers, restaurants, and products for validation and pricing.
	UoW interface {
		TxManager
		OrderRepoFactory
		EntityRepoFactory
	}

	// UoWFactory creates full unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
