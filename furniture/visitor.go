package furniture

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotFurniture the value is neither a Chair, a Table nor a Sofa
var ErrNotFurniture = errors.New("furniture: not a furniture product")

// Visitor visits every abstract product.
type Visitor interface {
	VisitChair(chair Chair)
	VisitTable(table Table)
	VisitSofa(sofa Sofa)
}

// Accept dispatches product to the Visitor method of its abstract product. The visitor receives
// the product itself, not the embedded material variant its methods were promoted from.
func Accept(product any, visitor Visitor) error {
	switch product := product.(type) {
	case Chair:
		visitor.VisitChair(product)
	case Table:
		visitor.VisitTable(product)
	case Sofa:
		visitor.VisitSofa(product)
	default:
		return fmt.Errorf("%w: %T", ErrNotFurniture, product)
	}
	return nil
}

// Description is a Visitor rendering one line per visited product.
type Description struct {
	Lines []string
}

func (d *Description) VisitChair(chair Chair) {
	d.add(chair, chair.Material(), chair.SitOn())
}

func (d *Description) VisitTable(table Table) {
	d.add(table, table.Material(), table.ServeOn())
}

func (d *Description) VisitSofa(sofa Sofa) {
	d.add(sofa, sofa.Material(), sofa.LieOn())
}

func (d *Description) add(product any, material string, usage string) {
	line := fmt.Sprintf("%s (%s", Name(product), material)
	if producer, ok := product.(Producer); ok {
		line += ", made in " + producer.Origin()
	}
	d.Lines = append(d.Lines, line+"): "+usage)
}

// Describe returns the description of a single product.
func Describe(product any) (string, error) {
	var d Description
	if err := Accept(product, &d); err != nil {
		return "", err
	}
	return d.Lines[0], nil
}

// Name returns the catalog name of product's dynamic type.
func Name(product any) string {
	t := reflect.TypeOf(product)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "<nil>"
	}
	return t.Name()
}
