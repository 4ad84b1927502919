// Package furniture is a catalog of products for the factory hierarchy: three abstract products
// (Chair, Table, Sofa), two materials (Wooden, Steel) and three producers (Japanese, Spanish,
// Australian) layered on top of each material.
//
// A producer variant embeds its material variant, e.g. JapaneseSteelChair embeds SteelChair, which
// is how the factory learns that it specialises SteelChair.
package furniture

// Furniture is what every product offers.
type Furniture interface {
	Material() string
	// Uses returns how many times the piece has been used.
	Uses() int
}

// Chair is an abstract product.
type Chair interface {
	Furniture
	SitOn() string
}

// Table is an abstract product.
type Table interface {
	Furniture
	ServeOn() string
}

// Sofa is an abstract product.
type Sofa interface {
	Furniture
	LieOn() string
}

// Producer is implemented by products made by a specific producer.
type Producer interface {
	Origin() string
}

type japanese struct{}

func (japanese) Origin() string { return "Japan" }

type spanish struct{}

func (spanish) Origin() string { return "Spain" }

type australian struct{}

func (australian) Origin() string { return "Australia" }

type wood struct{ uses int }

func (*wood) Material() string { return "wood" }

func (w *wood) Uses() int { return w.uses }

type steel struct{ uses int }

func (*steel) Material() string { return "steel" }

func (s *steel) Uses() int { return s.uses }
