// Package guard implements the constructor-guard pattern for value objects
// and entities. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable, so domain objects can only be used after passing
// through their designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// constructor. The zero value fails validation, which is the whole point:
// a struct literal bypassing the constructor is distinguishable from a
// properly built instance.
//
// Example:
//
//	type Item struct {
//	    productID kernel.UUID
//	    guard     guard.ConstructorGuard
//	}
//
//	func NewItem(productID kernel.UUID) (Item, error) {
//	    return Item{productID: productID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (i Item) Validate() error {
//	    return i.guard.Validate(ErrItemIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
