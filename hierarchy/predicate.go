package hierarchy

import "reflect"

// Predicate is a composable test over types.
type Predicate func(t reflect.Type) bool

// IsSatisfiedBy reports whether t satisfies p.
func (p Predicate) IsSatisfiedBy(t reflect.Type) bool {
	return p(t)
}

// And returns a Predicate satisfied when both p and another are.
func (p Predicate) And(another Predicate) Predicate {
	return Conjunction(p, another)
}

// Or returns a Predicate satisfied when p or another is.
func (p Predicate) Or(another Predicate) Predicate {
	return Disjunction(p, another)
}

// Not returns the inverse of p.
func (p Predicate) Not() Predicate {
	return func(t reflect.Type) bool {
		return !p(t)
	}
}

// Conjunction is satisfied when every predicate is. An empty conjunction is always satisfied.
func Conjunction(predicates ...Predicate) Predicate {
	return func(t reflect.Type) bool {
		for _, predicate := range predicates {
			if !predicate(t) {
				return false
			}
		}
		return true
	}
}

// Disjunction is satisfied when any predicate is. An empty disjunction is never satisfied.
func Disjunction(predicates ...Predicate) Predicate {
	return func(t reflect.Type) bool {
		for _, predicate := range predicates {
			if predicate(t) {
				return true
			}
		}
		return false
	}
}

// DerivedFrom matches the types that are-a base.
func DerivedFrom(base reflect.Type) Predicate {
	return func(t reflect.Type) bool {
		return IsA(t, base)
	}
}

// BaseOf matches the types derived is-a.
func BaseOf(derived reflect.Type) Predicate {
	return func(t reflect.Type) bool {
		return IsA(derived, t)
	}
}
