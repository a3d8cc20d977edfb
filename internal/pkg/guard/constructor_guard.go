// Package guard detects value objects and aggregates that were created as
// zero values instead of through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types whose zero value is not a valid instance.
// Only NewConstructorGuard produces a guard that passes Validate.
//
// Example:
//
//	type Position struct {
//	    value int
//	    guard guard.ConstructorGuard
//	}
//
//	func (p Position) Validate() error {
//	    return p.guard.Validate(ErrPositionIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

// IsConstructed reports whether the guard came from NewConstructorGuard.
func (g ConstructorGuard) IsConstructed() bool {
	return g.isConstructed
}
