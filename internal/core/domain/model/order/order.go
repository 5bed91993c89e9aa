package order

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the order-processing engine. It represents a
// customer's request to purchase a set of line items from one restaurant,
// carrying status and monetary totals.
//
// Order follows these invariants:
//   - Must reference a valid customer and restaurant and own at least one item
//   - Subtotal equals the sum of the item subtotals
//   - Total equals subtotal plus delivery fee
//   - The item list and captured prices are immutable after creation; only
//     the status (and the derived delivered-at timestamp) may change, and
//     status changes follow the transition table in status.go
//
// The Order exclusively owns its items. It holds non-owning identifiers for
// the customer and the restaurant; resolving those is the job of the lookup
// collaborators, which keeps the object graph one-directional.
type Order struct {
	id              kernel.UUID
	orderNumber     string
	customerID      kernel.UUID
	restaurantID    kernel.UUID
	items           []Item
	status          Status
	subtotal        decimal.Decimal
	deliveryFee     decimal.Decimal
	total           decimal.Decimal
	deliveryAddress string
	notes           string
	createdAt       time.Time
	deliveredAt     *time.Time

	// version supports optimistic concurrency in the persistence layer.
	// It counts successful status writes; the repository refuses an update
	// whose stored version differs.
	version int

	isConstructed bool
}

// NewOrder creates a Pending order from validated inputs. The caller (the
// order processing service) is responsible for having run the validator and
// the pricing engine; this constructor re-derives subtotal and total from
// the items and the fee so a priced order can never disagree with its lines.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress string,
	notes string,
	items []Item,
	deliveryFee decimal.Decimal,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		notes:         notes,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setDeliveryAddress(deliveryAddress),
		order.setItems(items),
		order.setDeliveryFee(deliveryFee),
	); err != nil {
		return nil, err
	}

	order.orderNumber = "ORD-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
	order.subtotal = sumItemSubtotals(order.items)
	order.total = order.subtotal.Add(order.deliveryFee)

	return order, nil
}

// RestoreOrder rebuilds an order from persisted state without re-running the
// creation-time business rules. The stored monetary figures are kept as-is;
// the aggregate invariant between them is still asserted.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress string,
	notes string,
	items []Item,
	status Status,
	subtotal decimal.Decimal,
	deliveryFee decimal.Decimal,
	total decimal.Decimal,
	createdAt time.Time,
	deliveredAt *time.Time,
	version int,
) (*Order, error) {
	if err := errors.Join(id.Validate(), customerID.Validate(), restaurantID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if !total.Equal(subtotal.Add(deliveryFee)) {
		return nil, errs.NewValueIsInvalidErrorWithCause("total",
			errors.New("total does not equal subtotal plus delivery fee"))
	}

	return &Order{
		id:              id,
		orderNumber:     orderNumber,
		customerID:      customerID,
		restaurantID:    restaurantID,
		items:           items,
		status:          status,
		subtotal:        subtotal,
		deliveryFee:     deliveryFee,
		total:           total,
		deliveryAddress: deliveryAddress,
		notes:           notes,
		createdAt:       createdAt,
		deliveredAt:     deliveredAt,
		version:         version,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order was created through a constructor. Call it when
// reconstructing orders from persistence to guarantee data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the external display code, e.g. "ORD-550E8400".
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the identifier of the receiving restaurant.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Items returns a copy of the order's lines. Copying keeps the aggregate's
// internal slice out of reach of callers.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Subtotal returns the sum of the item subtotals.
func (o *Order) Subtotal() decimal.Decimal {
	return o.subtotal
}

// DeliveryFee returns the fee fixed at creation time. It is never
// recomputed on later status changes.
func (o *Order) DeliveryFee() decimal.Decimal {
	return o.deliveryFee
}

// Total returns subtotal plus delivery fee.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// DeliveryAddress returns the free-form delivery address text.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Notes returns the customer's free-form notes.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns the creation timestamp (UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveredAt returns the delivery timestamp, or nil while undelivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Version returns the optimistic-concurrency version counter.
func (o *Order) Version() int {
	return o.version
}

// TransitionTo moves the order to the requested status when the state
// machine allows it, leaving the order untouched otherwise. Reaching
// Delivered stamps the delivery timestamp. Monetary figures never change.
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == Delivered {
		now := time.Now().UTC()
		o.deliveredAt = &now
	}
	return nil
}

// Cancel cancels the order. Only Pending and Confirmed orders can be
// cancelled; anything further along fails with a business-rule violation,
// which also makes a second cancellation of the same order fail.
func (o *Order) Cancel() error {
	if !o.status.IsCancellable() {
		return errs.NewBusinessRuleViolationError(
			"order in status " + o.status.String() + " cannot be cancelled")
	}

	o.status = Cancelled
	return nil
}

// BumpVersion is called by the persistence adapter after a successful
// status write so the in-memory aggregate matches the stored version.
func (o *Order) BumpVersion() {
	o.version++
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantID", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDeliveryFee(fee decimal.Decimal) error {
	if fee.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("deliveryFee",
			errors.New(fee.String()+" is negative"))
	}
	o.deliveryFee = fee
	return nil
}

func sumItemSubtotals(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Subtotal())
	}
	return sum
}
