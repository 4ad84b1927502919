package furniture

// WoodenChair is a chair made of wood.
type WoodenChair struct{ wood }

func (c *WoodenChair) SitOn() string {
	c.uses++
	return "sitting on a wooden chair"
}

// SteelChair is a chair made of steel.
type SteelChair struct{ steel }

func (c *SteelChair) SitOn() string {
	c.uses++
	return "sitting on a steel chair"
}

type JapaneseWoodenChair struct {
	WoodenChair
	japanese
}

type SpanishWoodenChair struct {
	WoodenChair
	spanish
}

type AustralianWoodenChair struct {
	WoodenChair
	australian
}

type JapaneseSteelChair struct {
	SteelChair
	japanese
}

type SpanishSteelChair struct {
	SteelChair
	spanish
}

type AustralianSteelChair struct {
	SteelChair
	australian
}
