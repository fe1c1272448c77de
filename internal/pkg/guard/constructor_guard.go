// Package guard implements the constructor-guard pattern used by domain
// value objects and commands. Embedding a ConstructorGuard in a struct makes
// zero-value instances detectable: only objects built through their
// designated constructor carry a constructed guard and pass validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its enclosing object was created through a
// constructor function. The zero value is "not constructed".
//
// Example usage:
//
//	type Fare struct {
//	    total float64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewFare(total float64) Fare {
//	    return Fare{total: total, guard: guard.NewConstructorGuard()}
//	}
//
//	func (f Fare) Validate() error {
//	    return f.guard.Validate(ErrFareIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it from every constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was built through its constructor,
// otherwise the provided validationError (or ErrDefaultConstructorGuard when
// validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
