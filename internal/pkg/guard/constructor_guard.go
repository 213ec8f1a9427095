// Package guard implements the constructor-guard pattern used by domain objects,
// commands, and queries to reject zero-value instances that bypassed their
// designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects built through their constructor from
// zero values. Embed it in a struct and set it via NewConstructorGuard inside
// the constructor; Validate then fails for any instance created another way.
//
// Example:
//
//	type PlaceOrderCommand struct {
//	    sku   string
//	    guard ConstructorGuard
//	}
//
//	func NewPlaceOrderCommand(sku string) (PlaceOrderCommand, error) {
//	    if sku == "" {
//	        return PlaceOrderCommand{}, errors.New("sku is required")
//	    }
//	    return PlaceOrderCommand{sku: sku, guard: NewConstructorGuard()}, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object went through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
