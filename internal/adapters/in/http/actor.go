package http

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the upstream auth layer. The engine trusts them;
// authenticating the caller is out of its hands.
const (
	HeaderActorID           = "X-Actor-Id"
	HeaderActorRole         = "X-Actor-Role"
	HeaderActorRestaurantID = "X-Actor-Restaurant-Id"
)

var errMissingActor = errors.New("actor identity headers are missing or malformed")

// actorFromRequest builds the acting identity from the request headers.
// Restaurant actors must also carry their restaurant binding.
func actorFromRequest(ctx echo.Context) (services.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderActorID))
	if err != nil {
		return services.Actor{}, errMissingActor
	}

	role := services.Role(ctx.Request().Header.Get(HeaderActorRole))
	switch role {
	case services.RoleAdmin, services.RoleCustomer, services.RoleRestaurant:
	default:
		return services.Actor{}, errMissingActor
	}

	actor := services.Actor{ID: id, Role: role}
	if role == services.RoleRestaurant {
		restaurantID, restErr := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderActorRestaurantID))
		if restErr != nil {
			return services.Actor{}, errMissingActor
		}
		actor.RestaurantID = &restaurantID
	}

	return actor, nil
}
