// Package services contains the stateless domain services of the order
// engine: the PricingEngine (monetary totals and the free-delivery rule),
// the OrderValidator (creation preconditions over current entity state),
// and the AccessGuard (actor-based order authorization).
//
// All three are pure with respect to domain state: they read through
// interfaces and mutate nothing.
package services
