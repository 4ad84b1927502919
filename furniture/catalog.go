package furniture

import (
	"errors"
	"fmt"
	"reflect"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/go-leo/typefactory/factory"
	"github.com/go-leo/typefactory/typelist"
)

// ErrUnknownName the name is not in the catalog
var ErrUnknownName = errors.New("furniture: unknown type name")

var catalog = map[string]reflect.Type{
	"Chair":                 typelist.TypeOf[Chair](),
	"Table":                 typelist.TypeOf[Table](),
	"Sofa":                  typelist.TypeOf[Sofa](),
	"WoodenChair":           typelist.TypeOf[WoodenChair](),
	"WoodenTable":           typelist.TypeOf[WoodenTable](),
	"WoodenSofa":            typelist.TypeOf[WoodenSofa](),
	"SteelChair":            typelist.TypeOf[SteelChair](),
	"SteelTable":            typelist.TypeOf[SteelTable](),
	"SteelSofa":             typelist.TypeOf[SteelSofa](),
	"JapaneseWoodenChair":   typelist.TypeOf[JapaneseWoodenChair](),
	"JapaneseWoodenTable":   typelist.TypeOf[JapaneseWoodenTable](),
	"JapaneseWoodenSofa":    typelist.TypeOf[JapaneseWoodenSofa](),
	"JapaneseSteelChair":    typelist.TypeOf[JapaneseSteelChair](),
	"JapaneseSteelTable":    typelist.TypeOf[JapaneseSteelTable](),
	"JapaneseSteelSofa":     typelist.TypeOf[JapaneseSteelSofa](),
	"SpanishWoodenChair":    typelist.TypeOf[SpanishWoodenChair](),
	"SpanishWoodenTable":    typelist.TypeOf[SpanishWoodenTable](),
	"SpanishWoodenSofa":     typelist.TypeOf[SpanishWoodenSofa](),
	"SpanishSteelChair":     typelist.TypeOf[SpanishSteelChair](),
	"SpanishSteelTable":     typelist.TypeOf[SpanishSteelTable](),
	"SpanishSteelSofa":      typelist.TypeOf[SpanishSteelSofa](),
	"AustralianWoodenChair": typelist.TypeOf[AustralianWoodenChair](),
	"AustralianWoodenTable": typelist.TypeOf[AustralianWoodenTable](),
	"AustralianWoodenSofa":  typelist.TypeOf[AustralianWoodenSofa](),
	"AustralianSteelChair":  typelist.TypeOf[AustralianSteelChair](),
	"AustralianSteelTable":  typelist.TypeOf[AustralianSteelTable](),
	"AustralianSteelSofa":   typelist.TypeOf[AustralianSteelSofa](),
}

// Reference is the reference data set. Some producer variants are deliberately missing, e.g.
// there is no JapaneseSteelTable, so a JapaneseSteel factory falls back to SteelTable.
var Reference = [][]string{
	{"Chair", "Table", "Sofa"},

	{"SteelChair", "SteelTable", "SteelSofa"},
	{"WoodenChair", "WoodenTable", "WoodenSofa"},

	{"SpanishSteelChair", "SpanishSteelTable", "SpanishSteelSofa"},
	{"AustralianSteelChair", "AustralianSteelTable", "AustralianSteelSofa"},
	{"JapaneseWoodenTable", "JapaneseWoodenSofa"},
	{"SpanishWoodenTable", "SpanishWoodenSofa"},
	{"JapaneseSteelChair", "JapaneseSteelSofa"},
	{"AustralianWoodenTable", "AustralianWoodenSofa"},
}

// Lookup returns the catalog type called name.
func Lookup(name string) (reflect.Type, error) {
	t, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return t, nil
}

// Names returns every catalog name, sorted.
func Names() []string {
	names := maps.Keys(catalog)
	slices.Sort(names)
	return names
}

// Sequences resolves each row of names to a TypeList.
func Sequences(names [][]string) ([]typelist.TypeList, error) {
	lists := make([]typelist.TypeList, 0, len(names))
	for _, row := range names {
		types := make([]reflect.Type, 0, len(row))
		for _, name := range row {
			t, err := Lookup(name)
			if err != nil {
				return nil, err
			}
			types = append(types, t)
		}
		lists = append(lists, typelist.New(types...))
	}
	return lists, nil
}

// NewUniverse builds the factory universe described by names.
func NewUniverse(names [][]string, opts ...factory.Option) (*factory.Universe, error) {
	lists, err := Sequences(names)
	if err != nil {
		return nil, err
	}
	return factory.New(lists, opts...)
}
