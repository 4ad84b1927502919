package factory

import (
	"context"
	"fmt"
	"reflect"

	"github.com/go-leo/typefactory/hierarchy"
	"github.com/go-leo/typefactory/typelist"
)

var _ ProductFactory = (*Concrete)(nil)

// Layer is one unit of a concrete factory: the slot of Product builds a Concrete.
type Layer struct {
	Product  reflect.Type
	Concrete reflect.Type
}

// Concrete is a factory built from a parent factory and one override sequence. Slots the
// sequence does not override are inherited from the parent.
type Concrete struct {
	parent   ProductFactory
	products typelist.TypeList
	layers   []Layer
	slots    map[reflect.Type]reflect.Type
	invoker  Invoker
}

// NewConcrete layers concretes on top of parent. Every concrete type must specialise exactly one
// of parent's products, and the concretes must follow the order of those products; products
// may be skipped. Zero-size concrete types are rejected with ErrZeroSize.
func NewConcrete(parent ProductFactory, concretes typelist.TypeList, opts ...Option) (*Concrete, error) {
	return newConcrete(parent, concretes, newOptions(opts...))
}

func newConcrete(parent ProductFactory, concretes typelist.TypeList, o *options) (*Concrete, error) {
	if concretes.IsEmpty() {
		return nil, ErrNoProducts
	}
	products := parent.Products()
	slots := make(map[reflect.Type]reflect.Type, products.Len())
	for _, product := range products.Types() {
		if concrete, ok := parent.Lookup(product); ok {
			slots[product] = concrete
		}
	}

	layers := make([]Layer, 0, concretes.Len())
	remaining := products
	for _, concrete := range concretes.Types() {
		if matches := products.Filter(hierarchy.BaseOf(concrete)); matches.Len() > 1 {
			return nil, fmt.Errorf("%w: %v is-a %s", ErrAmbiguousProduct, concrete, matches)
		}
		product, rest, ok := skip(remaining, concrete)
		if !ok {
			return nil, fmt.Errorf("%w: %v in %s", ErrUnmatchedOverride, concrete, concretes)
		}
		if !reflect.PointerTo(concrete).Implements(product) {
			return nil, fmt.Errorf("%w: *%v to %v", ErrNotAssignable, concrete, product)
		}
		if concrete.Size() == 0 {
			return nil, fmt.Errorf("%w: %v", ErrZeroSize, concrete)
		}
		layers = append(layers, Layer{Product: product, Concrete: concrete})
		slots[product] = concrete
		remaining = rest
	}

	f := &Concrete{
		parent:   parent,
		products: products,
		layers:   layers,
		slots:    slots,
	}
	f.invoker = f.create
	if mdw := Chain(o.Middlewares...); mdw != nil {
		f.invoker = func(ctx context.Context, product reflect.Type) (any, error) {
			return mdw(ctx, product, f.create)
		}
	}
	return f, nil
}

// skip drops the leading products concrete does not specialise and returns the first one it
// does, together with the products after it.
func skip(products typelist.TypeList, concrete reflect.Type) (reflect.Type, typelist.TypeList, bool) {
	for rest := products; !rest.IsEmpty(); rest = rest.Tail() {
		if hierarchy.IsA(concrete, rest.Head()) {
			return rest.Head(), rest.Tail(), true
		}
	}
	return nil, typelist.Empty, false
}

// Create returns a new instance of the concrete type registered for product, as a pointer. No two
// calls return the same pointer.
func (f *Concrete) Create(ctx context.Context, product reflect.Type) (any, error) {
	return f.invoker(ctx, product)
}

func (f *Concrete) create(_ context.Context, product reflect.Type) (any, error) {
	concrete, ok := f.slots[product]
	if ok {
		return reflect.New(concrete).Interface(), nil
	}
	if f.products.Contains(product) {
		return nil, fmt.Errorf("%w: %v", ErrAbstractProduct, product)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownProduct, product)
}

func (f *Concrete) Products() typelist.TypeList {
	return f.products
}

func (f *Concrete) Lookup(product reflect.Type) (reflect.Type, bool) {
	concrete, ok := f.slots[product]
	return concrete, ok
}

// Parent returns the factory f was layered on.
func (f *Concrete) Parent() ProductFactory {
	return f.parent
}

// Layers returns the slots overridden by f itself, in sequence order.
func (f *Concrete) Layers() []Layer {
	layers := make([]Layer, len(f.layers))
	copy(layers, f.layers)
	return layers
}
