// Package errs provides standardized error types for the food-delivery application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers two groups of conditions:
//   - Input and lookup failures: ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError, ObjectNotFoundError, VersionIsInvalidError
//   - Domain failures of the order engine: BusinessRuleViolationError,
//     InvalidTransitionError, DependencyUnavailableError
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// All errors in this package are local, recoverable-by-caller conditions.
// The API layer translates them into transport responses; nothing here
// represents corrupted internal state.
package errs
