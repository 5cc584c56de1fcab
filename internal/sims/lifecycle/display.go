package lifecycle

import "image/color"

// Presentation lookups, kept apart from the simulation state.
var (
	stateColors = [len(States)]color.RGBA{
		Off:   {R: 0x44, G: 0x44, B: 0x44, A: 0xff},
		Young: {R: 0xfa, G: 0xcc, B: 0x15, A: 0xff},
		Adult: {R: 0x22, G: 0xc5, B: 0x5e, A: 0xff},
		Elder: {R: 0x3b, G: 0x82, B: 0xf6, A: 0xff},
	}
	stateGlyphs = [len(States)]byte{
		Off:   '.',
		Young: 'y',
		Adult: 'A',
		Elder: 'E',
	}
)

// Color returns the display colour of s. Unknown states use Off's colour.
func Color(s State) color.RGBA {
	if !s.Valid() {
		return stateColors[Off]
	}
	return stateColors[s]
}

// Palette returns the state colours indexed by State.
func Palette() []color.RGBA {
	return append([]color.RGBA(nil), stateColors[:]...)
}

// Glyphs returns the text glyphs indexed by State.
func Glyphs() []byte {
	return append([]byte(nil), stateGlyphs[:]...)
}
