package factory

import "errors"

var (
	// ErrNoProducts a product sequence or the universe is empty
	ErrNoProducts = errors.New("factory: empty product sequence")

	// ErrNotInterface a base product is not an interface type
	ErrNotInterface = errors.New("factory: base product is not an interface")

	// ErrDuplicateType a type is registered more than once
	ErrDuplicateType = errors.New("factory: type registered more than once")

	// ErrUnmatchedOverride an override specialises none of the remaining base products
	ErrUnmatchedOverride = errors.New("factory: override matches no remaining base product")

	// ErrAmbiguousProduct an override specialises several base products
	ErrAmbiguousProduct = errors.New("factory: override specialises several base products")

	// ErrNotAssignable a pointer to the concrete type does not implement its product
	ErrNotAssignable = errors.New("factory: concrete type not assignable to product")

	// ErrIncomplete a base product has no creator along a specialisation chain
	ErrIncomplete = errors.New("factory: base product has no creator")

	// ErrZeroSize the concrete type occupies no memory, so its instances could share an address
	ErrZeroSize = errors.New("factory: zero-size concrete type")

	// ErrUnknownProduct the requested product is not a registered base product
	ErrUnknownProduct = errors.New("factory: unknown product")

	// ErrAbstractProduct the requested product has no concrete override
	ErrAbstractProduct = errors.New("factory: abstract product")

	// ErrNotRegistered the anchor type is not part of the universe
	ErrNotRegistered = errors.New("factory: anchor not registered")

	// ErrAbstractAnchor the anchor belongs to the base product sequence
	ErrAbstractAnchor = errors.New("factory: anchor is an abstract product")
)
