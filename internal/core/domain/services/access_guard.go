package services

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// Role is the actor role carried by the identity subsystem.
type Role string

const (
	// RoleAdmin may access any order.
	RoleAdmin Role = "ADMIN"

	// RoleCustomer may access only the actor's own orders.
	RoleCustomer Role = "CUSTOMER"

	// RoleRestaurant may access only orders of the restaurant the actor is
	// bound to.
	RoleRestaurant Role = "RESTAURANT"
)

// Actor is the identity the external auth subsystem resolved for a request:
// who is acting, in what role, and (for restaurant staff) which restaurant
// they are bound to. Passing it explicitly keeps authorization decisions out
// of ambient global state.
type Actor struct {
	ID           kernel.UUID
	Role         Role
	RestaurantID *kernel.UUID
}

// AccessGuard decides read/write authorization for orders. It owns no state;
// the decision is a pure function of the actor and the order's references.
type AccessGuard struct{}

// NewAccessGuard creates an AccessGuard instance.
func NewAccessGuard() AccessGuard {
	return AccessGuard{}
}

// CanAccess reports whether the actor may access the order.
//
// Rules:
//   - admins access any order
//   - customer actors access orders whose customer reference matches their
//     own identity
//   - restaurant actors access orders of their bound restaurant
//   - a missing order, a missing actor identity, or any other role is denied
func (AccessGuard) CanAccess(actor Actor, o *order.Order) bool {
	if o == nil || o.Validate() != nil {
		return false
	}
	if actor.ID.Validate() != nil {
		return false
	}

	switch actor.Role {
	case RoleAdmin:
		return true
	case RoleCustomer:
		return o.CustomerID().IsEqual(actor.ID)
	case RoleRestaurant:
		return actor.RestaurantID != nil && o.RestaurantID().IsEqual(*actor.RestaurantID)
	default:
		return false
	}
}
