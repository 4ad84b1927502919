package hierarchy

import "errors"

var (
	// ErrNoAncestor no candidate is a base of the requested type
	ErrNoAncestor = errors.New("hierarchy: no ancestor")

	// ErrAmbiguous two unrelated candidates are equally specific
	ErrAmbiguous = errors.New("hierarchy: ambiguous specialization")

	// ErrNoRoot no single candidate is a base of every other
	ErrNoRoot = errors.New("hierarchy: no common root")

	// ErrNotFound no sequence contains the type
	ErrNotFound = errors.New("hierarchy: type not found")
)
