package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazegen/pkg/maze"
)

func corridor(t *testing.T) *maze.Grid {
	t.Helper()
	var g maze.Grid
	require.NoError(t, g.UnmarshalText([]byte("#####\n# +-#\n#####\n")))
	return &g
}

func TestText(t *testing.T) {
	g := corridor(t)
	assert.Equal(t, "#####\n# +-#\n#####\n", Text(g, false))
	assert.Equal(t, "# # # # # \n#   + - # \n# # # # # \n", Text(g, true))
}

func TestImageTwoTone(t *testing.T) {
	g := corridor(t)
	wall := color.RGBA{A: 255}
	floor := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	img := Image(g, 4, 3, wall, floor)
	require.Equal(t, 20, img.Bounds().Dx())
	require.Equal(t, 9, img.Bounds().Dy())

	assert.Equal(t, wall, img.RGBAAt(0, 0))
	assert.Equal(t, floor, img.RGBAAt(4, 3), "open corridor")
	assert.Equal(t, floor, img.RGBAAt(11, 5), "rooms count as floor")
	assert.Equal(t, wall, img.RGBAAt(19, 8))
}

func TestPaletteImage(t *testing.T) {
	g := corridor(t)
	palette := []color.RGBA{{R: 1, A: 255}, {R: 2, A: 255}, {R: 3, A: 255}, {R: 4, A: 255}}

	img := PaletteImage(g, 1, 1, palette)
	assert.Equal(t, palette[0], img.RGBAAt(0, 0))
	assert.Equal(t, palette[2], img.RGBAAt(1, 1))
	assert.Equal(t, palette[3], img.RGBAAt(2, 1))
	assert.Equal(t, palette[3], img.RGBAAt(3, 1), "codes past the palette use the last color")
}

func TestFillPaletteEmptyClears(t *testing.T) {
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	fillPaletteRGBA(buf, []uint8{1, 2}, nil)
	assert.Equal(t, make([]byte, 8), buf)
}

func TestWritePNG(t *testing.T) {
	g := corridor(t)
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, Image(g, 2, 2, color.Black, color.White)))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())
}
