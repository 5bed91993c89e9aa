package services_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGuardOrder(t *testing.T, customerID, restaurantID kernel.UUID) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), 1, decimal.RequireFromString("25.00"))
	require.NoError(t, err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), customerID, restaurantID,
		"Rua B, 200", "", []order.Item{item}, decimal.Zero)
	require.NoError(t, err)
	return aggregate
}

func TestAccessGuard_AdminAccessesAnyOrder(t *testing.T) {
	guard := services.NewAccessGuard()
	aggregate := buildGuardOrder(t, kernel.NewUUID(), kernel.NewUUID())

	admin := services.Actor{ID: kernel.NewUUID(), Role: services.RoleAdmin}
	assert.True(t, guard.CanAccess(admin, aggregate))
}

func TestAccessGuard_CustomerAccessesOwnOrderOnly(t *testing.T) {
	guard := services.NewAccessGuard()
	customerID := kernel.NewUUID()
	aggregate := buildGuardOrder(t, customerID, kernel.NewUUID())

	owner := services.Actor{ID: customerID, Role: services.RoleCustomer}
	assert.True(t, guard.CanAccess(owner, aggregate))

	stranger := services.Actor{ID: kernel.NewUUID(), Role: services.RoleCustomer}
	assert.False(t, guard.CanAccess(stranger, aggregate))
}

func TestAccessGuard_RestaurantAccessesBoundRestaurantOrders(t *testing.T) {
	guard := services.NewAccessGuard()
	restaurantID := kernel.NewUUID()
	aggregate := buildGuardOrder(t, kernel.NewUUID(), restaurantID)

	staff := services.Actor{ID: kernel.NewUUID(), Role: services.RoleRestaurant, RestaurantID: &restaurantID}
	assert.True(t, guard.CanAccess(staff, aggregate))

	otherID := kernel.NewUUID()
	otherStaff := services.Actor{ID: kernel.NewUUID(), Role: services.RoleRestaurant, RestaurantID: &otherID}
	assert.False(t, guard.CanAccess(otherStaff, aggregate))
}

func TestAccessGuard_RestaurantWithoutBindingDenied(t *testing.T) {
	guard := services.NewAccessGuard()
	aggregate := buildGuardOrder(t, kernel.NewUUID(), kernel.NewUUID())

	unbound := services.Actor{ID: kernel.NewUUID(), Role: services.RoleRestaurant}
	assert.False(t, guard.CanAccess(unbound, aggregate))
}

func TestAccessGuard_UnknownRoleDenied(t *testing.T) {
	guard := services.NewAccessGuard()
	aggregate := buildGuardOrder(t, kernel.NewUUID(), kernel.NewUUID())

	unknown := services.Actor{ID: kernel.NewUUID(), Role: services.Role("COURIER")}
	assert.False(t, guard.CanAccess(unknown, aggregate))
}

func TestAccessGuard_MissingActorIdentityDenied(t *testing.T) {
	guard := services.NewAccessGuard()
	aggregate := buildGuardOrder(t, kernel.NewUUID(), kernel.NewUUID())

	anonymous := services.Actor{Role: services.RoleAdmin}
	assert.False(t, guard.CanAccess(anonymous, aggregate))
}

func TestAccessGuard_MissingOrderDenied(t *testing.T) {
	guard := services.NewAccessGuard()

	admin := services.Actor{ID: kernel.NewUUID(), Role: services.RoleAdmin}
	assert.False(t, guard.CanAccess(admin, nil))
}
