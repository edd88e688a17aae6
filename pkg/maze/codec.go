package maze

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrCorrupt is returned when encoded grid data cannot describe a valid grid.
var ErrCorrupt = errors.New("maze: corrupt grid data")

// Encode returns the doubled array as row-major state codes, Cols() values
// per row. Codes are the CellState values: 0 wall, 1 unvisited, 2 open,
// 3 room, 4 room alt.
func Encode(g *Grid) []uint8 {
	out := make([]uint8, len(g.data))
	for i, s := range g.data {
		out[i] = uint8(s)
	}
	return out
}

// EncodeInto writes the state codes into dst, which must hold at least
// Cols()*Rows() values, and returns the written prefix.
func EncodeInto(dst []uint8, g *Grid) []uint8 {
	dst = dst[:len(g.data)]
	for i, s := range g.data {
		dst[i] = uint8(s)
	}
	return dst
}

// Decode rebuilds a grid from row-major state codes of a cols×rows doubled
// array. Both dimensions must be odd and at least 3, and cell positions may
// not hold walls.
func Decode(cols, rows int, data []uint8) (*Grid, error) {
	if cols < 3 || rows < 3 {
		return nil, fmt.Errorf("%w: array %dx%d", ErrInvalidSize, cols, rows)
	}
	if cols%2 == 0 || rows%2 == 0 {
		return nil, fmt.Errorf("%w: array %dx%d must have odd dimensions", ErrCorrupt, cols, rows)
	}
	if len(data) != cols*rows {
		return nil, fmt.Errorf("%w: got %d values for a %dx%d array", ErrCorrupt, len(data), cols, rows)
	}
	g, err := New((cols-1)/2, (rows-1)/2)
	if err != nil {
		return nil, err
	}
	for i, v := range data {
		s := CellState(v)
		if int(v) >= numStates {
			return nil, fmt.Errorf("%w: unknown code %d at index %d", ErrCorrupt, v, i)
		}
		if ix, iy := i%cols, i/cols; ix%2 == 1 && iy%2 == 1 && s == Wall {
			return nil, fmt.Errorf("%w: wall stored at cell position (%d, %d)", ErrCorrupt, ix, iy)
		}
		g.data[i] = s
	}
	return g, nil
}

// MarshalText renders the doubled array one row per line using the glyphs
// '#' wall, '.' unvisited, ' ' open, '+' room and '-' room alt.
func (g *Grid) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow((g.cols + 1) * g.rows)
	for iy := 0; iy < g.rows; iy++ {
		for ix := 0; ix < g.cols; ix++ {
			buf.WriteRune(g.data[iy*g.cols+ix].Rune())
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// UnmarshalText parses the format produced by MarshalText. Trailing blank
// lines are ignored; every row must have the same width.
func (g *Grid) UnmarshalText(text []byte) error {
	lines := bytes.Split(bytes.TrimRight(text, "\r\n"), []byte{'\n'})
	for i := range lines {
		lines[i] = bytes.TrimSuffix(lines[i], []byte{'\r'})
	}
	rows := len(lines)
	if len(lines[0]) == 0 {
		return fmt.Errorf("%w: empty text", ErrCorrupt)
	}
	cols := len(lines[0])
	data := make([]uint8, 0, cols*rows)
	for y, line := range lines {
		if len(line) != cols {
			return fmt.Errorf("%w: row %d has width %d, want %d", ErrCorrupt, y, len(line), cols)
		}
		for x, ch := range line {
			s, ok := stateFromRune(rune(ch))
			if !ok {
				return fmt.Errorf("%w: unknown glyph %q at (%d, %d)", ErrCorrupt, ch, x, y)
			}
			data = append(data, uint8(s))
		}
	}
	decoded, err := Decode(cols, rows, data)
	if err != nil {
		return err
	}
	*g = *decoded
	return nil
}

// String returns the text form of the grid.
func (g *Grid) String() string {
	b, _ := g.MarshalText()
	return string(b)
}
