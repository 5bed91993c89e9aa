package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrQuoteTotalQueryIsNotConstructed = errors.New(
		"QuoteTotalQuery must be created via NewQuoteTotalQuery constructor",
	)
)

// QuoteTotalQuery prices a hypothetical basket without creating an order.
// No restaurant or address is supplied, so the result carries no delivery
// fee and no free-delivery decision.
type QuoteTotalQuery struct { //nolint:recvcheck //using for validation
	items []services.ItemRequest

	guard guard.ConstructorGuard
}

// NewQuoteTotalQuery creates a quote query for the given basket.
func NewQuoteTotalQuery(items []services.ItemRequest) (QuoteTotalQuery, error) {
	quoteQuery := QuoteTotalQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := quoteQuery.setItems(items); err != nil {
		return QuoteTotalQuery{}, err
	}

	return quoteQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q QuoteTotalQuery) Validate() error {
	return q.guard.Validate(ErrQuoteTotalQueryIsNotConstructed)
}

// Items returns the basket to price.
func (q QuoteTotalQuery) Items() []services.ItemRequest {
	items := make([]services.ItemRequest, len(q.items))
	copy(items, q.items)
	return items
}

func (q *QuoteTotalQuery) setItems(items []services.ItemRequest) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause("quantity",
				errors.New("quantity must be at least 1"))
		}
	}
	q.items = make([]services.ItemRequest, len(items))
	copy(q.items, items)
	return nil
}

// QuoteTotalQueryResponse is the priced outcome of a quote. Total equals
// Subtotal because the quote path never resolves a delivery fee;
// IncludesDeliveryFee makes that explicit to callers.
type QuoteTotalQueryResponse struct {
	Subtotal            decimal.Decimal
	Total               decimal.Decimal
	IncludesDeliveryFee bool
}
