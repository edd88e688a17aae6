package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"

	"mazegen/pkg/maze"
)

// Image draws every array position as a cellW×cellH block: wall for walls,
// floor for everything else.
func Image(g *maze.Grid, cellW, cellH int, wall, floor color.Color) *image.RGBA {
	src := image.NewRGBA(image.Rect(0, 0, g.Cols(), g.Rows()))
	fillTwoToneRGBA(src.Pix, maze.Encode(g), wall, floor)
	return scale(src, cellW, cellH)
}

// PaletteImage draws every array position as a cellW×cellH block colored by
// its state code.
func PaletteImage(g *maze.Grid, cellW, cellH int, palette []color.RGBA) *image.RGBA {
	src := image.NewRGBA(image.Rect(0, 0, g.Cols(), g.Rows()))
	fillPaletteRGBA(src.Pix, maze.Encode(g), palette)
	return scale(src, cellW, cellH)
}

func scale(src *image.RGBA, cellW, cellH int) *image.RGBA {
	cellW, cellH = max(cellW, 1), max(cellH, 1)
	if cellW == 1 && cellH == 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*cellW, b.Dy()*cellH))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
