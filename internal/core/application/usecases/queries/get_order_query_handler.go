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

// GetOrderQueryHandler retrieves a single order with its items and checks
// the actor's access before returning it.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	access services.AccessGuard
}

// NewGetOrderQueryHandler creates a handler for single order retrieval.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		db:     db,
		access: services.NewAccessGuard(),
	}
}

// Handle loads the order, denies it when the actor may not see it, and maps
// it to the read model. A missing order unwraps to errs.ErrObjectNotFound;
// a denied one to ErrOrderAccessDenied; an unexpected database failure to
// errs.ErrDependencyUnavailable.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	aggregate, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	if !h.access.CanAccess(query.Actor(), aggregate) {
		return OrderResponse{}, ErrOrderAccessDenied
	}

	return newOrderResponse(aggregate), nil
}

func (h GetOrderQueryHandler) loadOrder(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_id,
			restaurant_id,
			status,
			subtotal,
			delivery_fee,
			total,
			delivery_address,
			notes,
			created_at,
			delivered_at,
			version
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	var (
		id, customerID, restaurantID uuid.UUID
		orderNumber                  string
		status                       int
		subtotal, deliveryFee, total decimal.Decimal
		deliveryAddress, notes       string
		createdAt                    time.Time
		deliveredAt                  sql.NullTime
		version                      int
	)

	err := row.Scan(
		&id,
		&orderNumber,
		&customerID,
		&restaurantID,
		&status,
		&subtotal,
		&deliveryFee,
		&total,
		&deliveryAddress,
		&notes,
		&createdAt,
		&deliveredAt,
		&version,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("orderID", orderID)
	}
	if err != nil {
		return nil, errs.ClassifyCollaboratorError("order storage", err)
	}

	items, err := h.loadItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	orderKernelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	customerKernelID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return nil, err
	}
	restaurantKernelID, err := kernel.UUIDFromBytes(restaurantID[:])
	if err != nil {
		return nil, err
	}

	var delivered *time.Time
	if deliveredAt.Valid {
		delivered = &deliveredAt.Time
	}

	return order.RestoreOrder(
		orderKernelID,
		orderNumber,
		customerKernelID,
		restaurantKernelID,
		deliveryAddress,
		notes,
		items,
		order.Status(status),
		subtotal,
		deliveryFee,
		total,
		createdAt,
		delivered,
		version,
	)
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]order.Item, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price,
			subtotal
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, errs.ClassifyCollaboratorError("order storage", err)
	}
	defer rows.Close()

	items := make([]order.Item, 0)
	for rows.Next() {
		var (
			productID           uuid.UUID
			quantity            int
			unitPrice, subtotal decimal.Decimal
		)

		if err = rows.Scan(&productID, &quantity, &unitPrice, &subtotal); err != nil {
			return nil, errs.ClassifyCollaboratorError("order storage", err)
		}

		productKernelID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		item, itemErr := order.RestoreItem(productKernelID, quantity, unitPrice, subtotal)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.ClassifyCollaboratorError("order storage", err)
	}

	return items, nil
}
