// Package queries contains the read operations of the order engine: single
// order retrieval, actor-scoped listing, and standalone price quotes. Read
// handlers bypass the unit of work and query the database directly; the
// quote handler prices against current product state without persisting
// anything.
package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)

	// ErrOrderAccessDenied signals that the order exists but the requesting
	// actor may not see it. Kept distinct from not-found so transports can
	// answer 403 rather than 404.
	ErrOrderAccessDenied = errors.New("actor is not allowed to access this order")
)

// GetOrderQuery retrieves one order on behalf of an actor. The handler
// enforces the access rules, so a customer cannot read another customer's
// order even with a guessed identifier.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   services.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order and actor.
func NewGetOrderQuery(orderID kernel.UUID, actor services.Actor) (GetOrderQuery, error) {
	getQuery := GetOrderQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		getQuery.setOrderID(orderID),
		actor.ID.Validate(),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return getQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns the requesting actor.
func (q GetOrderQuery) Actor() services.Actor {
	return q.actor
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}
