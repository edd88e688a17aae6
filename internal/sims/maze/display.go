package maze

import (
	"image/color"
	"slices"

	gen "mazegen/pkg/maze"
)

// headCode marks the carver head in the display buffer; the other values
// are the cell state codes.
const headCode = 5

var mazePalette = []color.RGBA{
	gen.Wall:      {R: 24, G: 24, B: 32, A: 255},
	gen.Unvisited: {R: 70, G: 70, B: 84, A: 255},
	gen.Open:      {R: 225, G: 222, B: 210, A: 255},
	gen.Room:      {R: 86, G: 150, B: 214, A: 255},
	gen.RoomAlt:   {R: 214, G: 132, B: 70, A: 255},
	headCode:      {R: 230, G: 60, B: 60, A: 255},
}

// Palette exposes the colors used for each display value.
func (w *World) Palette() []color.RGBA {
	return mazePalette
}

// StatePalette returns a copy of the colors indexed by cell state code,
// with the carver head color last.
func StatePalette() []color.RGBA {
	return slices.Clone(mazePalette)
}

func (w *World) refreshDisplay() {
	cells := gen.EncodeInto(w.display.Cells(), w.grid)
	if head, ok := w.Head(); ok {
		cells[w.display.Index(2*head.X+1, 2*head.Y+1)] = headCode
	}
}
