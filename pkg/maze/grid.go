package maze

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when a grid is requested with a non-positive dimension.
var ErrInvalidSize = errors.New("maze: width and height must be positive")

// Point is a logical cell coordinate.
type Point struct {
	X, Y int
}

// Direction is one of the four cardinal directions.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the cardinal directions in draw order.
var Directions = [4]Direction{North, East, South, West}

// Delta returns the logical offset for one step in direction d.
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

// Step returns the neighbour of p in direction d.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{p.X + dx, p.Y + dy}
}

// Grid is the doubled-resolution cell and wall array of a W×H maze.
type Grid struct {
	w, h       int
	cols, rows int
	data       []CellState
}

// New allocates a blank walled grid of width×height logical cells. Cell
// positions start Unvisited, every other position is Wall.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	g := &Grid{
		w:    width,
		h:    height,
		cols: 2*width + 1,
		rows: 2*height + 1,
	}
	g.data = make([]CellState, g.cols*g.rows)
	for iy := 1; iy < g.rows; iy += 2 {
		for ix := 1; ix < g.cols; ix += 2 {
			g.data[iy*g.cols+ix] = Unvisited
		}
	}
	return g, nil
}

// Width returns the logical width in cells.
func (g *Grid) Width() int { return g.w }

// Height returns the logical height in cells.
func (g *Grid) Height() int { return g.h }

// Cols returns the doubled array width, 2*Width()+1.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the doubled array height, 2*Height()+1.
func (g *Grid) Rows() int { return g.rows }

// InBounds reports whether logical cell (x, y) exists.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// CellAt returns the state of logical cell (x, y), or Boundary when the
// coordinates fall outside the grid.
func (g *Grid) CellAt(x, y int) CellState {
	if !g.InBounds(x, y) {
		return Boundary
	}
	return g.data[(2*y+1)*g.cols+2*x+1]
}

// SetCell stores state at logical cell (x, y). Out-of-range writes panic.
func (g *Grid) SetCell(x, y int, state CellState) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("maze: SetCell(%d, %d) outside %dx%d grid", x, y, g.w, g.h))
	}
	g.data[(2*y+1)*g.cols+2*x+1] = state
}

// wallIndex maps the wall between two 4-adjacent logical cells to array
// coordinates.
func (g *Grid) wallIndex(a, b Point) (int, int) {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx*dx+dy*dy != 1 {
		panic(fmt.Sprintf("maze: cells %v and %v are not adjacent", a, b))
	}
	if !g.InBounds(a.X, a.Y) || !g.InBounds(b.X, b.Y) {
		panic(fmt.Sprintf("maze: wall between %v and %v outside %dx%d grid", a, b, g.w, g.h))
	}
	return (2*a.X + 1 + 2*b.X + 1) / 2, (2*a.Y + 1 + 2*b.Y + 1) / 2
}

// WallBetween returns the state of the wall slot separating a and b.
func (g *Grid) WallBetween(a, b Point) CellState {
	ix, iy := g.wallIndex(a, b)
	return g.data[iy*g.cols+ix]
}

// SetWallBetween stores state in the wall slot separating a and b. The cells
// must be 4-adjacent and inside the grid; anything else is a programming
// error and panics.
func (g *Grid) SetWallBetween(a, b Point, state CellState) {
	ix, iy := g.wallIndex(a, b)
	g.data[iy*g.cols+ix] = state
}

// At returns the state at raw array position (ix, iy). It panics when the
// position lies outside the doubled array.
func (g *Grid) At(ix, iy int) CellState {
	return g.data[g.index(ix, iy)]
}

// Set stores state at raw array position (ix, iy). It panics when the
// position lies outside the doubled array.
func (g *Grid) Set(ix, iy int, state CellState) {
	g.data[g.index(ix, iy)] = state
}

func (g *Grid) index(ix, iy int) int {
	if ix < 0 || ix >= g.cols || iy < 0 || iy >= g.rows {
		panic(fmt.Sprintf("maze: index (%d, %d) outside %dx%d array", ix, iy, g.cols, g.rows))
	}
	return iy*g.cols + ix
}

// Contains reports whether any position holds state.
func (g *Grid) Contains(state CellState) bool {
	for _, s := range g.data {
		if s == state {
			return true
		}
	}
	return false
}

// Count returns how many positions hold state.
func (g *Grid) Count(state CellState) int {
	n := 0
	for _, s := range g.data {
		if s == state {
			n++
		}
	}
	return n
}

// Fill stores state at every cell, wall and corner inside r, including the
// walls between cells of r but not its outer boundary.
func (g *Grid) Fill(r Rect, state CellState) {
	for iy := 2*r.Y + 1; iy <= 2*(r.Y+r.H-1)+1; iy++ {
		for ix := 2*r.X + 1; ix <= 2*(r.X+r.W-1)+1; ix++ {
			g.Set(ix, iy, state)
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := *g
	c.data = append([]CellState(nil), g.data...)
	return &c
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.cols != o.cols || g.rows != o.rows {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// unvisitedCells lists every logical cell still Unvisited in row-major order.
func (g *Grid) unvisitedCells() []Point {
	var pts []Point
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.CellAt(x, y) == Unvisited {
				pts = append(pts, Point{x, y})
			}
		}
	}
	return pts
}
