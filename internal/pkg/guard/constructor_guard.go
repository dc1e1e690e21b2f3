// Package guard implements a defensive construction pattern for domain objects.
// Embedding a ConstructorGuard in a value object makes zero-value instances
// detectable, so operations can refuse objects that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by Validate
// when a nil error is passed as the validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. The guard holds an internal flag that
// is only set when the object is created through the constructor; a zero-value
// struct fails validation.
//
// Example:
//
//	var ErrCartNotConstructed = errors.New("Cart must be created via NewCart")
//
//	type Cart struct {
//	    entries []Entry
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewCart() *Cart {
//	    return &Cart{guard: guard.NewConstructorGuard()}
//	}
//
//	func (c *Cart) Validate() error {
//	    return c.guard.Validate(ErrCartNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of every guarded domain object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
