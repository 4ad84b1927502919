// Package hierarchy answers subtype questions about Go types and about sequences of them.
//
// Go has no class inheritance, so the "is-a" relation is read off the type system:
//
//   - every type is-a itself;
//   - a type is-a interface I if the type, or a pointer to it, implements I;
//   - a struct is-a T if one of its embedded fields (value or pointer) is-a T.
//
// Struct embedding therefore plays the role of derivation: given
//
//	type SteelChair struct{}
//	type JapaneseSteelChair struct{ SteelChair }
//
// JapaneseSteelChair is-a SteelChair, and both are-a Chair if SteelChair implements Chair.
//
// Queries that pick "the closest" or "the most general" entry report ErrAmbiguous or ErrNoRoot
// instead of choosing arbitrarily between unrelated candidates.
package hierarchy

import (
	"reflect"
)

// IsA reports whether sub is-a super.
func IsA(sub, super reflect.Type) bool {
	if sub == nil || super == nil {
		return false
	}
	return isA(sub, super, make(map[reflect.Type]struct{}))
}

func isA(sub, super reflect.Type, seen map[reflect.Type]struct{}) bool {
	if sub == super {
		return true
	}
	if super.Kind() == reflect.Interface {
		if sub.Implements(super) {
			return true
		}
		return sub.Kind() != reflect.Interface && sub.Kind() != reflect.Pointer &&
			reflect.PointerTo(sub).Implements(super)
	}
	if sub.Kind() == reflect.Pointer {
		sub = sub.Elem()
		if sub == super {
			return true
		}
	}
	if sub.Kind() != reflect.Struct {
		return false
	}
	// pointer embedding may form cycles, e.g. type node struct{ *node }
	if _, ok := seen[sub]; ok {
		return false
	}
	seen[sub] = struct{}{}
	for i := 0; i < sub.NumField(); i++ {
		field := sub.Field(i)
		if field.Anonymous && isA(field.Type, super, seen) {
			return true
		}
	}
	return false
}
