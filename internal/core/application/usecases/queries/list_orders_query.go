package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves the orders visible to an actor. The scope
// follows the access rules: admins see every order, customers their own,
// restaurant staff the orders of their restaurant.
type ListOrdersQuery struct {
	actor services.Actor

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a listing query for the given actor.
func NewListOrdersQuery(actor services.Actor) (ListOrdersQuery, error) {
	if err := actor.ID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Actor returns the requesting actor.
func (q ListOrdersQuery) Actor() services.Actor {
	return q.actor
}
