// Package typelist provides an immutable, ordered sequence of Go types.
//
// Every operation returns a new TypeList and leaves its receiver untouched, so a TypeList can be
// shared freely between goroutines once built.
package typelist

import (
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-leo/gox/slicex"
	"golang.org/x/exp/slices"
)

// Empty is the TypeList without elements.
var Empty = TypeList{}

// TypeList is an ordered sequence of types. The zero value is an empty list.
type TypeList struct {
	types []reflect.Type
}

// New returns a TypeList holding types in the given order. It panics on a nil type.
func New(types ...reflect.Type) TypeList {
	for i, t := range types {
		if t == nil {
			panic("typelist: nil type at index " + strconv.Itoa(i))
		}
	}
	return TypeList{types: slices.Clone(types)}
}

// TypeOf returns the reflect.Type of T. Unlike reflect.TypeOf it works for interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// With returns l with T appended.
func With[T any](l TypeList) TypeList {
	return l.Append(TypeOf[T]())
}

// Len returns the number of types in l.
func (l TypeList) Len() int {
	return len(l.types)
}

// IsEmpty reports whether l has no types.
func (l TypeList) IsEmpty() bool {
	return len(l.types) == 0
}

// Head returns the first type, or nil when l is empty.
func (l TypeList) Head() reflect.Type {
	if l.IsEmpty() {
		return nil
	}
	return l.types[0]
}

// Tail returns l without its first type.
func (l TypeList) Tail() TypeList {
	if l.IsEmpty() {
		return Empty
	}
	return TypeList{types: slices.Clone(l.types[1:])}
}

// Types returns a copy of the underlying types.
func (l TypeList) Types() []reflect.Type {
	return slices.Clone(l.types)
}

// Append returns a new list with t at the end.
func (l TypeList) Append(t reflect.Type) TypeList {
	return New(append(slices.Clone(l.types), t)...)
}

// Prepend returns a new list with t at the front.
func (l TypeList) Prepend(t reflect.Type) TypeList {
	return New(slices.Insert(slices.Clone(l.types), 0, t)...)
}

// Reverse returns a new list with the types in reverse order.
func (l TypeList) Reverse() TypeList {
	return TypeList{types: slicex.Reverse(slices.Clone(l.types))}
}

// Remove returns a new list without the first occurrence of t. It is a no-op if t is absent.
func (l TypeList) Remove(t reflect.Type) TypeList {
	i := l.Index(t)
	if i < 0 {
		return l
	}
	return TypeList{types: slices.Delete(slices.Clone(l.types), i, i+1)}
}

// Contains reports whether t is in l. Identity only, subtypes do not count.
func (l TypeList) Contains(t reflect.Type) bool {
	return slices.Contains(l.types, t)
}

// Index returns the position of the first occurrence of t, or -1.
func (l TypeList) Index(t reflect.Type) int {
	return slices.Index(l.types, t)
}

// Get returns the type at index i. Like slice indexing it panics when i is out of range.
func (l TypeList) Get(i int) reflect.Type {
	return l.types[i]
}

// Replace returns a new list with the first occurrence of old substituted by with.
func (l TypeList) Replace(old, with reflect.Type) TypeList {
	i := l.Index(old)
	if i < 0 {
		return l
	}
	return New(slices.Replace(slices.Clone(l.types), i, i+1, with)...)
}

// Equal reports whether l and other hold identical types in identical order.
func (l TypeList) Equal(other TypeList) bool {
	return slices.Equal(l.types, other.types)
}

// Any reports whether some type of l satisfies pred.
func (l TypeList) Any(pred func(reflect.Type) bool) bool {
	return slices.IndexFunc(l.types, pred) >= 0
}

// Filter returns the types of l satisfying pred, in order.
func (l TypeList) Filter(pred func(reflect.Type) bool) TypeList {
	return TypeList{types: slicex.Filter(l.types, func(_ int, t reflect.Type) bool { return pred(t) })}
}

// Split partitions l into the types satisfying pred and the others, both in order.
func (l TypeList) Split(pred func(reflect.Type) bool) (accepted TypeList, rejected TypeList) {
	accepted = l.Filter(pred)
	rejected = l.Filter(func(t reflect.Type) bool { return !pred(t) })
	return accepted, rejected
}

// Key returns a string identifying l within the running process, suitable as a map key. Equal
// lists share a key, distinct types never do, even when they print the same.
func (l TypeList) Key() string {
	keys := make([]string, 0, len(l.types))
	for _, t := range l.types {
		keys = append(keys, typeID(t))
	}
	return strings.Join(keys, ",")
}

var ids = struct {
	sync.Mutex
	m map[reflect.Type]string
}{m: make(map[reflect.Type]string)}

// typeID interns t. Names are not unique: function-local types and unnamed types may collide.
func typeID(t reflect.Type) string {
	ids.Lock()
	defer ids.Unlock()
	id, ok := ids.m[t]
	if !ok {
		id = strconv.Itoa(len(ids.m))
		ids.m[t] = id
	}
	return id
}

// String renders l as TypeList<a.A, b.B>.
func (l TypeList) String() string {
	names := make([]string, 0, len(l.types))
	for _, t := range l.types {
		names = append(names, t.String())
	}
	return "TypeList<" + strings.Join(names, ", ") + ">"
}

// Name returns the fully qualified name of t, using the import path for named types.
func Name(t reflect.Type) string {
	if t.Name() != "" && t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}
