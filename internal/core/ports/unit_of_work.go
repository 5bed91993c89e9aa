package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request, isolating
// concurrent operations from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the business transaction boundary. The order engine issues
// at most one state-bearing write per operation; the unit of work makes the
// order+items pair of the create path atomic and gives status updates
// read-committed isolation.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an order repository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// CustomerRepository returns a customer repository bound to the current
	// transaction.
	CustomerRepository() CustomerRepository

	// RestaurantRepository returns a restaurant repository bound to the
	// current transaction.
	RestaurantRepository() RestaurantRepository

	// ProductRepository returns a product repository bound to the current
	// transaction.
	ProductRepository() ProductRepository
}
