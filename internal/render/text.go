package render

import (
	"strings"

	"mazegen/pkg/maze"
)

// Text draws the doubled array with one glyph per position. When spaced is
// set every glyph is followed by a blank so the maze looks square in a
// terminal.
func Text(g *maze.Grid, spaced bool) string {
	var b strings.Builder
	per := 1
	if spaced {
		per = 2
	}
	b.Grow((g.Cols()*per + 1) * g.Rows())
	for iy := 0; iy < g.Rows(); iy++ {
		for ix := 0; ix < g.Cols(); ix++ {
			b.WriteRune(g.At(ix, iy).Rune())
			if spaced {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
