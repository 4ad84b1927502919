package furniture

// WoodenTable is a table made of wood.
type WoodenTable struct{ wood }

func (t *WoodenTable) ServeOn() string {
	t.uses++
	return "dinner served on a wooden table"
}

// SteelTable is a table made of steel.
type SteelTable struct{ steel }

func (t *SteelTable) ServeOn() string {
	t.uses++
	return "dinner served on a steel table"
}

type JapaneseWoodenTable struct {
	WoodenTable
	japanese
}

type SpanishWoodenTable struct {
	WoodenTable
	spanish
}

type AustralianWoodenTable struct {
	WoodenTable
	australian
}

type JapaneseSteelTable struct {
	SteelTable
	japanese
}

type SpanishSteelTable struct {
	SteelTable
	spanish
}

type AustralianSteelTable struct {
	SteelTable
	australian
}
