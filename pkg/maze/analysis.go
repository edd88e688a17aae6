package maze

import "github.com/zyedidia/generic/mapset"

// Region is a set of array positions (not logical cells) that are
// 4-connected through passable states.
type Region = mapset.Set[Point]

// Passable reports whether a state can be walked through.
type Passable func(CellState) bool

// OpenOnly treats only carved corridors as walkable.
func OpenOnly(s CellState) bool { return s == Open }

// Floor treats everything except walls as walkable.
func Floor(s CellState) bool { return s != Wall && s != Boundary }

// Reachable returns every array position reachable from start through
// positions accepted by passable. The result is empty when start itself is
// not passable or lies outside the array.
func Reachable(g *Grid, start Point, passable Passable) Region {
	visited := mapset.New[Point]()
	if !g.inArray(start) || !passable(g.At(start.X, start.Y)) {
		return visited
	}
	queue := []Point{start}
	visited.Put(start)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			n := cur.Step(d)
			if !g.inArray(n) || visited.Has(n) || !passable(g.At(n.X, n.Y)) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}
	return visited
}

// Regions partitions all passable array positions into connected regions,
// ordered by their first position in row-major order.
func Regions(g *Grid, passable Passable) []Region {
	seen := mapset.New[Point]()
	var regions []Region
	for iy := 0; iy < g.rows; iy++ {
		for ix := 0; ix < g.cols; ix++ {
			p := Point{ix, iy}
			if seen.Has(p) || !passable(g.At(ix, iy)) {
				continue
			}
			r := Reachable(g, p, passable)
			r.Each(func(q Point) { seen.Put(q) })
			regions = append(regions, r)
		}
	}
	return regions
}

// DeadEnds counts logical cells with exactly one opened wall.
func DeadEnds(g *Grid) int {
	n := 0
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			exits := 0
			ix, iy := 2*x+1, 2*y+1
			for _, d := range Directions {
				dx, dy := d.Delta()
				if g.At(ix+dx, iy+dy) != Wall {
					exits++
				}
			}
			if exits == 1 {
				n++
			}
		}
	}
	return n
}

func (g *Grid) inArray(p Point) bool {
	return p.X >= 0 && p.X < g.cols && p.Y >= 0 && p.Y < g.rows
}
