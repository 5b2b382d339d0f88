// Package guard provides a defensive construction marker for value objects.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is supplied, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and commands are only created
// through their designated constructor functions. A zero-value struct fails
// validation because the internal flag is only set by NewConstructorGuard.
//
// Example usage:
//
//	type CreateOrderCommand struct {
//	    orderID string
//	    guard   ConstructorGuard
//	}
//
//	func NewCreateOrderCommand(orderID string) (CreateOrderCommand, error) {
//	    if orderID == "" {
//	        return CreateOrderCommand{}, errors.New("orderID is required")
//	    }
//	    return CreateOrderCommand{orderID: orderID, guard: NewConstructorGuard()}, nil
//	}
//
//	func (c CreateOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed. Call it in
// the constructor of every guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its
// constructor, otherwise the supplied validation error
// (or ErrDefaultConstructorGuard when that is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
