package furniture

// WoodenSofa is a sofa made of wood.
type WoodenSofa struct{ wood }

func (s *WoodenSofa) LieOn() string {
	s.uses++
	return "lying on a wooden sofa"
}

// SteelSofa is a sofa made of steel.
type SteelSofa struct{ steel }

func (s *SteelSofa) LieOn() string {
	s.uses++
	return "lying on a steel sofa"
}

type JapaneseWoodenSofa struct {
	WoodenSofa
	japanese
}

type SpanishWoodenSofa struct {
	WoodenSofa
	spanish
}

type AustralianWoodenSofa struct {
	WoodenSofa
	australian
}

type JapaneseSteelSofa struct {
	SteelSofa
	japanese
}

type SpanishSteelSofa struct {
	SteelSofa
	spanish
}

type AustralianSteelSofa struct {
	SteelSofa
	australian
}
