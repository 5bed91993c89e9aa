// Package order provides the Order aggregate of the food-delivery domain:
// the aggregate root itself, the Item value object it owns, and the Status
// state machine that governs its lifecycle.
//
// Key business rules:
//   - Orders reference one customer and one restaurant and own at least
//     one item; items capture the product price at creation time
//   - subtotal == sum of item subtotals; total == subtotal + delivery fee
//   - Status follows Pending -> Confirmed -> Preparing -> OutForDelivery ->
//     Delivered, with Cancelled reachable only from Pending or Confirmed;
//     Delivered and Cancelled are terminal
//   - After creation only the status (and delivered-at) can change
//
// The package follows Domain-Driven Design conventions used throughout this
// codebase: private fields, validating constructors, Restore* functions for
// rehydration from persistence.
package order
