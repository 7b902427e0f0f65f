package colour

// Palette is the cutting colour catalogue in declared order (spec §6:
// "colour cut order"). Index position is cut-order priority: lower
// index cuts first.
type Palette []Colour

// Index returns the position of c in p, or (-1, false) if c is not a
// member.
func (p Palette) Index(c Colour) (int, bool) {
	for i, pc := range p {
		if pc.Equal(c) {
			return i, true
		}
	}
	return -1, false
}

// Contains reports whether c is in the palette.
func (p Palette) Contains(c Colour) bool {
	_, ok := p.Index(c)
	return ok
}

// DefaultPalette is a small, common set of cutting colours used when no
// catalogue file is supplied. The UI's catalogue (spec §6 "Persisted
// catalogue") normally overrides this.
var DefaultPalette = Palette{
	{R: 0, G: 0, B: 0},       // black
	{R: 255, G: 0, B: 0},     // red
	{R: 0, G: 0, B: 255},     // blue
	{R: 0, G: 255, B: 0},     // green
	{R: 255, G: 165, B: 0},   // orange
	{R: 255, G: 0, B: 255},   // magenta
}
