package render

import "image/color"

// fillTwoToneRGBA writes wall for code 0 and floor for every other code.
func fillTwoToneRGBA(buf []byte, cells []uint8, wall, floor color.Color) {
	rw, gw, bw, aw := wall.RGBA()
	rf, gf, bf, af := floor.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rf >> 8)
			buf[base+1] = uint8(gf >> 8)
			buf[base+2] = uint8(bf >> 8)
			buf[base+3] = uint8(af >> 8)
			continue
		}
		buf[base+0] = uint8(rw >> 8)
		buf[base+1] = uint8(gw >> 8)
		buf[base+2] = uint8(bw >> 8)
		buf[base+3] = uint8(aw >> 8)
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette use its last color; an empty palette
// clears the buffer to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
