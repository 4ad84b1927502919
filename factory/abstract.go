package factory

import (
	"context"
	"fmt"
	"reflect"

	"github.com/go-leo/typefactory/typelist"
)

var _ ProductFactory = (*Abstract)(nil)

// Abstract is the root of every factory hierarchy: one creation slot per base product, none of
// them implemented.
type Abstract struct {
	products typelist.TypeList
}

// NewAbstract returns the abstract factory for products. Products must be distinct interface
// types.
func NewAbstract(products typelist.TypeList) (*Abstract, error) {
	if products.IsEmpty() {
		return nil, ErrNoProducts
	}
	seen := make(map[reflect.Type]struct{}, products.Len())
	for _, product := range products.Types() {
		if product.Kind() != reflect.Interface {
			return nil, fmt.Errorf("%w: %v", ErrNotInterface, product)
		}
		if _, ok := seen[product]; ok {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateType, product)
		}
		seen[product] = struct{}{}
	}
	return &Abstract{products: products}, nil
}

func (f *Abstract) Products() typelist.TypeList {
	return f.products
}

func (f *Abstract) Lookup(reflect.Type) (reflect.Type, bool) {
	return nil, false
}

// Create always fails: with ErrUnknownProduct for products outside the sequence, with
// ErrAbstractProduct otherwise.
func (f *Abstract) Create(_ context.Context, product reflect.Type) (any, error) {
	if !f.products.Contains(product) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownProduct, product)
	}
	return nil, fmt.Errorf("%w: %v", ErrAbstractProduct, product)
}
