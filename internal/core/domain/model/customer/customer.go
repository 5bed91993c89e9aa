// Package customer provides the Customer entity of the food-delivery domain.
// Customers are read-only from the order engine's perspective: the engine
// consults their active flag before accepting an order but never mutates them.
package customer

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

// Customer represents a registered customer. Invariants:
//   - Must have a valid unique identifier
//   - Name and email must be non-empty
//   - The active flag gates order creation: inactive customers cannot order
type Customer struct {
	id            kernel.UUID
	name          string
	email         string
	active        bool
	isConstructed bool
}

// NewCustomer creates an active Customer with validation.
func NewCustomer(id kernel.UUID, name, email string) (*Customer, error) {
	customer := &Customer{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setEmail(email),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// RestoreCustomer rebuilds a Customer from persisted state, including its
// administrative active flag.
func RestoreCustomer(id kernel.UUID, name, email string, active bool) (*Customer, error) {
	customer, err := NewCustomer(id, name, email)
	if err != nil {
		return nil, err
	}

	customer.active = active
	return customer, nil
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's contact email.
func (c *Customer) Email() string {
	return c.email
}

// IsActive reports whether the customer may place new orders.
func (c *Customer) IsActive() bool {
	return c.active
}

// Deactivate marks the customer as inactive. Existing orders are untouched;
// only new order creation is blocked.
func (c *Customer) Deactivate() {
	c.active = false
}

// Activate re-enables order creation for the customer.
func (c *Customer) Activate() {
	c.active = true
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}
