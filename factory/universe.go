package factory

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-leo/typefactory/hierarchy"
	"github.com/go-leo/typefactory/typelist"
)

// Universe holds a base product sequence together with all its override sequences and the
// factory generated for each of them. It is immutable and safe for concurrent use.
type Universe struct {
	root      typelist.TypeList
	lists     []typelist.TypeList
	abstract  *Abstract
	factories map[string]*Concrete
	options   *options
}

// New builds the universe of lists. The root, the sequence every other sequence specialises, is
// found with hierarchy.LeastDerivedList; the order of lists only matters for anchors registered
// twice, which is rejected. Every factory is generated and validated eagerly.
func New(lists []typelist.TypeList, opts ...Option) (*Universe, error) {
	if len(lists) == 0 {
		return nil, ErrNoProducts
	}
	seen := make(map[reflect.Type]struct{})
	for i, l := range lists {
		if l.IsEmpty() {
			return nil, fmt.Errorf("%w: sequence %d", ErrNoProducts, i)
		}
		for _, t := range l.Types() {
			if _, ok := seen[t]; ok {
				return nil, fmt.Errorf("%w: %v", ErrDuplicateType, t)
			}
			seen[t] = struct{}{}
		}
	}

	root, err := hierarchy.LeastDerivedList(lists)
	if err != nil {
		return nil, fmt.Errorf("factory: resolve base products: %w", err)
	}
	abstract, err := NewAbstract(root)
	if err != nil {
		return nil, err
	}

	u := &Universe{
		root:      root,
		lists:     append([]typelist.TypeList(nil), lists...),
		abstract:  abstract,
		factories: make(map[string]*Concrete, len(lists)-1),
		options:   newOptions(opts...),
	}
	var errs []error
	for _, l := range u.lists {
		if l.Equal(root) {
			continue
		}
		f, err := u.generate(l, u.lists)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := u.checkComplete(f, l); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	u.options.Logger.Infof("factory universe ready: %d products, %d override sequences", root.Len(), len(u.factories))
	return u, nil
}

// MustNew is like New but panics if the universe is ill-formed.
func MustNew(lists []typelist.TypeList, opts ...Option) *Universe {
	u, err := New(lists, opts...)
	if err != nil {
		panic(err)
	}
	return u
}

// generate returns the factory of list, layering it on the closest sequence it specialises
// among universe. Recursion ends at the root.
func (u *Universe) generate(list typelist.TypeList, universe []typelist.TypeList) (ProductFactory, error) {
	if list.Equal(u.root) {
		return u.abstract, nil
	}
	if f, ok := u.factories[list.Key()]; ok {
		return f, nil
	}
	rest := removeList(universe, list)
	parentList, err := hierarchy.MostDerivedList(rest, list)
	if err != nil {
		return nil, fmt.Errorf("factory: parent of %s: %w", list, err)
	}
	parent, err := u.generate(parentList, rest)
	if err != nil {
		return nil, err
	}
	f, err := newConcrete(parent, list, u.options)
	if err != nil {
		return nil, err
	}
	u.factories[list.Key()] = f
	u.options.Logger.Debugw("factory generated", map[string]any{
		"sequence": list.String(),
		"parent":   parentList.String(),
	})
	return f, nil
}

func (u *Universe) checkComplete(f ProductFactory, list typelist.TypeList) error {
	for _, product := range u.root.Types() {
		if _, ok := f.Lookup(product); !ok {
			return fmt.Errorf("%w: %v along %s", ErrIncomplete, product, list)
		}
	}
	return nil
}

func removeList(lists []typelist.TypeList, list typelist.TypeList) []typelist.TypeList {
	rest := make([]typelist.TypeList, 0, len(lists))
	removed := false
	for _, l := range lists {
		if !removed && l.Equal(list) {
			removed = true
			continue
		}
		rest = append(rest, l)
	}
	return rest
}

// ConcreteFactory returns the factory of the sequence anchor was registered in.
func (u *Universe) ConcreteFactory(anchor reflect.Type) (*Concrete, error) {
	list, err := hierarchy.GetSequenceContaining(anchor, u.lists...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotRegistered, err)
	}
	if list.Equal(u.root) {
		return nil, fmt.Errorf("%w: %v", ErrAbstractAnchor, anchor)
	}
	return u.factories[list.Key()], nil
}

// ConcreteFactoryOf is ConcreteFactory for the anchor type T.
func ConcreteFactoryOf[T any](u *Universe) (*Concrete, error) {
	return u.ConcreteFactory(typelist.TypeOf[T]())
}

// Resolve returns the concrete type the factory of anchor builds for product, without building
// it.
func (u *Universe) Resolve(anchor, product reflect.Type) (reflect.Type, error) {
	f, err := u.ConcreteFactory(anchor)
	if err != nil {
		return nil, err
	}
	concrete, ok := f.Lookup(product)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownProduct, product)
	}
	return concrete, nil
}

// Root returns the base product sequence.
func (u *Universe) Root() typelist.TypeList {
	return u.root
}

// Abstract returns the abstract factory of the base product sequence.
func (u *Universe) Abstract() *Abstract {
	return u.abstract
}

// Lists returns every registered sequence, in registration order.
func (u *Universe) Lists() []typelist.TypeList {
	return append([]typelist.TypeList(nil), u.lists...)
}

// Anchors returns every type a concrete factory can be requested for, in registration order.
func (u *Universe) Anchors() typelist.TypeList {
	anchors := typelist.Empty
	for _, l := range u.lists {
		if l.Equal(u.root) {
			continue
		}
		for _, t := range l.Types() {
			anchors = anchors.Append(t)
		}
	}
	return anchors
}
