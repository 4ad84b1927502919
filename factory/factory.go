// Package factory generates abstract factories and layered concrete factories from sequences of
// product types.
//
// A universe is described by a base product sequence (abstract products, as interfaces) and any
// number of override sequences (concrete structs, one per product they specialise). Struct
// embedding expresses specialisation: an override sequence whose entries embed the entries of
// another override sequence is layered on top of it. For any registered anchor type the universe
// yields a Concrete factory that builds the most specific registered override of every product,
// falling back along the anchor's specialisation chain when an exact combination is missing.
//
//	u, err := factory.New([]typelist.TypeList{base, steel, wooden, japaneseSteel})
//	f, err := factory.ConcreteFactoryOf[JapaneseSteelChair](u)
//	table, err := factory.Create[Table](ctx, f) // *SteelTable when no JapaneseSteelTable exists
package factory

import (
	"context"
	"fmt"
	"reflect"

	"github.com/go-leo/typefactory/typelist"
)

// Factory creates a T from a P.
type Factory[T any, P any] interface {
	Create(ctx context.Context, param P) (T, error)
}

// ProductFactory creates products selected by their abstract product type.
type ProductFactory interface {
	Factory[any, reflect.Type]

	// Products returns the abstract products the factory has a slot for.
	Products() typelist.TypeList

	// Lookup returns the concrete type built for product. It reports false when the product is
	// unknown or its slot is still abstract.
	Lookup(product reflect.Type) (reflect.Type, bool)
}

// Create asks f for a new P. Each call returns a freshly allocated object owned by the caller.
func Create[P any](ctx context.Context, f ProductFactory) (P, error) {
	var zero P
	product := typelist.TypeOf[P]()
	v, err := f.Create(ctx, product)
	if err != nil {
		return zero, err
	}
	p, ok := v.(P)
	if !ok {
		return zero, fmt.Errorf("%w: %T to %v", ErrNotAssignable, v, product)
	}
	return p, nil
}

// Of adapts f to a Factory producing P values and ignoring its parameter.
func Of[P any](f ProductFactory) Factory[P, struct{}] {
	return typed[P]{f: f}
}

type typed[P any] struct {
	f ProductFactory
}

func (t typed[P]) Create(ctx context.Context, _ struct{}) (P, error) {
	return Create[P](ctx, t.f)
}
