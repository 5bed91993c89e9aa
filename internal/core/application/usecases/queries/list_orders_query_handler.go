package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderSummaryResponse is one row of an order listing. It carries the header
// fields only; line items are served by the single-order query.
type OrderSummaryResponse struct {
	ID           kernel.UUID
	OrderNumber  string
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	Status       string
	Total        decimal.Decimal
	CreatedAt    time.Time
}

// ListOrdersQueryHandler retrieves order summaries scoped to the actor.
// Scoping happens in the WHERE clause, so an actor's result set never has
// to be filtered after the fact.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for actor-scoped listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns the orders visible to the actor, newest first. An actor
// with an unknown role, or restaurant staff without a restaurant binding,
// is denied rather than given an empty list.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.queryRows(ctx, query.Actor())
	if errors.Is(err, ErrOrderAccessDenied) {
		return nil, err
	}
	if err != nil {
		return nil, errs.ClassifyCollaboratorError("order storage", err)
	}
	defer rows.Close()

	summaries := make([]OrderSummaryResponse, 0)
	for rows.Next() {
		var (
			id, customerID, restaurantID uuid.UUID
			orderNumber                  string
			status                       int
			total                        decimal.Decimal
			createdAt                    time.Time
		)

		err = rows.Scan(&id, &orderNumber, &customerID, &restaurantID, &status, &total, &createdAt)
		if err != nil {
			return nil, errs.ClassifyCollaboratorError("order storage", err)
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		customerKernelID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		restaurantKernelID, idErr := kernel.UUIDFromBytes(restaurantID[:])
		if idErr != nil {
			return nil, idErr
		}

		summaries = append(summaries, OrderSummaryResponse{
			ID:           orderID,
			OrderNumber:  orderNumber,
			CustomerID:   customerKernelID,
			RestaurantID: restaurantKernelID,
			Status:       order.Status(status).String(),
			Total:        total,
			CreatedAt:    createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, errs.ClassifyCollaboratorError("order storage", err)
	}

	return summaries, nil
}

const listOrdersSelect = `
	SELECT
		id,
		order_number,
		customer_id,
		restaurant_id,
		status,
		total,
		created_at
	FROM orders
`

func (h ListOrdersQueryHandler) queryRows(ctx context.Context, actor services.Actor) (*sql.Rows, error) {
	db := h.db.WithContext(ctx)

	switch actor.Role {
	case services.RoleAdmin:
		return db.Raw(listOrdersSelect + ` ORDER BY created_at DESC, id`).Rows()
	case services.RoleCustomer:
		return db.Raw(listOrdersSelect+` WHERE customer_id = ? ORDER BY created_at DESC, id`,
			actor.ID.Bytes()).Rows()
	case services.RoleRestaurant:
		if actor.RestaurantID == nil {
			return nil, ErrOrderAccessDenied
		}
		return db.Raw(listOrdersSelect+` WHERE restaurant_id = ? ORDER BY created_at DESC, id`,
			actor.RestaurantID.Bytes()).Rows()
	default:
		return nil, ErrOrderAccessDenied
	}
}
