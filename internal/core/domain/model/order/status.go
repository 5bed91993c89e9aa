package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with a fixed transition table; the machine holds no data beyond
// that table.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> OutForDelivery ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal; any transition request out of them
// fails.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status of a newly created order.
	Pending

	// Confirmed indicates the restaurant accepted the order.
	Confirmed

	// Preparing indicates the kitchen started working on the order.
	Preparing

	// OutForDelivery indicates the order left the restaurant.
	OutForDelivery

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before preparation
	// started. Terminal, reachable only from Pending or Confirmed.
	Cancelled
)

// transitions is the complete table of allowed status changes. Absence of a
// (from, to) pair means the transition is illegal; terminal statuses have no
// entries at all.
var transitions = map[Status][]Status{
	Pending:        {Confirmed, Cancelled},
	Confirmed:      {Preparing, Cancelled},
	Preparing:      {OutForDelivery},
	OutForDelivery: {Delivered},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "UNKNOWN",
		Pending:        "PENDING",
		Confirmed:      "CONFIRMED",
		Preparing:      "PREPARING",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// ParseStatus converts the wire/persistence name of a status back into a
// Status value. Unrecognized names yield a ValueIsInvalidError.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
// StatusUnknown and out-of-range values are invalid.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name used by the API and the original system
// ("PENDING", "OUT_FOR_DELIVERY", ...). Implements fmt.Stringer and is safe
// on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// CanTransitionTo reports whether the transition table allows moving from
// this status to target. Pure function; no side effects.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target when the transition is legal and an
// InvalidTransitionError carrying both status names otherwise.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// IsCancellable reports whether an order in this status may still be
// cancelled. Only Pending and Confirmed orders qualify; once preparation
// starts the order runs to completion.
func (s Status) IsCancellable() bool {
	return s.CanTransitionTo(Cancelled)
}
