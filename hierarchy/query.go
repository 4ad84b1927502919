package hierarchy

import (
	"fmt"
	"reflect"

	"github.com/go-leo/typefactory/typelist"
)

// ContainsDerived reports whether some element of seq is-a t.
func ContainsDerived(seq typelist.TypeList, t reflect.Type) bool {
	return seq.Any(DerivedFrom(t))
}

// ContainsBase reports whether t is-a some element of seq.
func ContainsBase(seq typelist.TypeList, t reflect.Type) bool {
	return seq.Any(BaseOf(t))
}

// IsBaseOf reports whether some member of lhs is a base of some member of rhs. Applied to two
// override sequences it tells whether lhs sits on rhs's specialization chain.
func IsBaseOf(lhs, rhs typelist.TypeList) bool {
	return lhs.Any(func(base reflect.Type) bool {
		return ContainsDerived(rhs, base)
	})
}

// MostDerived returns the entry of seq that is the closest ancestor of t: among the entries t
// is-a, the one no other such entry is a base of.
func MostDerived(seq typelist.TypeList, t reflect.Type) (reflect.Type, error) {
	candidates := seq.Types()
	i, err := mostDerived(candidates, t, IsA)
	if err != nil {
		return nil, fmt.Errorf("%w: %s in %s", err, t, seq)
	}
	return candidates[i], nil
}

// MostDerivedList is MostDerived lifted to sequences: it returns the list among lists that is
// the closest base of target according to IsBaseOf.
func MostDerivedList(lists []typelist.TypeList, target typelist.TypeList) (typelist.TypeList, error) {
	i, err := mostDerived(lists, target, func(derived, base typelist.TypeList) bool {
		return IsBaseOf(base, derived)
	})
	if err != nil {
		return typelist.Empty, fmt.Errorf("%w: %s", err, target)
	}
	return lists[i], nil
}

// LeastDerived returns the entry of seq every other entry is-a.
func LeastDerived(seq typelist.TypeList) (reflect.Type, error) {
	candidates := seq.Types()
	i, err := leastDerived(candidates, IsA)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, seq)
	}
	return candidates[i], nil
}

// LeastDerivedList returns the list that IsBaseOf every other list.
func LeastDerivedList(lists []typelist.TypeList) (typelist.TypeList, error) {
	i, err := leastDerived(lists, func(derived, base typelist.TypeList) bool {
		return IsBaseOf(base, derived)
	})
	if err != nil {
		return typelist.Empty, fmt.Errorf("%w: among %d sequences", err, len(lists))
	}
	return lists[i], nil
}

// GetSequenceContaining returns the first of lists that contains t.
func GetSequenceContaining(t reflect.Type, lists ...typelist.TypeList) (typelist.TypeList, error) {
	for _, l := range lists {
		if l.Contains(t) {
			return l, nil
		}
	}
	return typelist.Empty, fmt.Errorf("%w: %v", ErrNotFound, t)
}

// mostDerived returns the index of the closest ancestor of target among candidates.
// isA(x, y) reports whether x is-a y.
func mostDerived[E any](candidates []E, target E, isA func(sub, super E) bool) (int, error) {
	var ancestors []int
	for i, candidate := range candidates {
		if isA(target, candidate) {
			ancestors = append(ancestors, i)
		}
	}
	if len(ancestors) == 0 {
		return -1, ErrNoAncestor
	}
	closest := -1
	for _, i := range ancestors {
		dominated := false
		for _, j := range ancestors {
			if i != j && isA(candidates[j], candidates[i]) {
				dominated = true
				break
			}
		}
		if dominated {
			continue
		}
		if closest >= 0 {
			return -1, ErrAmbiguous
		}
		closest = i
	}
	if closest < 0 {
		return -1, ErrAmbiguous
	}
	return closest, nil
}

// leastDerived returns the index of the candidate every other candidate is-a.
func leastDerived[E any](candidates []E, isA func(sub, super E) bool) (int, error) {
	root := -1
	for i := range candidates {
		isRoot := true
		for j := range candidates {
			if i != j && !isA(candidates[j], candidates[i]) {
				isRoot = false
				break
			}
		}
		if !isRoot {
			continue
		}
		if root >= 0 {
			return -1, ErrNoRoot
		}
		root = i
	}
	if root < 0 {
		return -1, ErrNoRoot
	}
	return root, nil
}
