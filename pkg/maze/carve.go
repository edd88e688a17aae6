package maze

// DefaultMaxDepth is the classic stack cap of the recursive backtracker. The
// explicit stack does not need it, so CarveOptions leaves it opt-in.
const DefaultMaxDepth = 256

// CarveOptions tunes the recursive-backtracker traversal.
type CarveOptions struct {
	// MaxDepth caps the backtracking stack. When a walk reaches it the pass
	// ends and the next pass starts from a fresh random seed. 0 means no cap.
	MaxDepth int
}

// Carver runs the recursive backtracker one cell transition at a time over a
// single grid. It keeps the walk on an explicit stack, so depth never touches
// the goroutine stack. A Carver is not safe for concurrent use.
type Carver struct {
	g        *Grid
	rng      Rand
	maxDepth int

	stack  []Point
	passes int
	capped int
	done   bool
}

// NewCarver prepares a carver for g. Rooms already in g are treated as
// terminal and are never carved through.
func NewCarver(g *Grid, rng Rand, opts CarveOptions) *Carver {
	return &Carver{g: g, rng: rng, maxDepth: opts.MaxDepth}
}

// Carve fills every Unvisited cell of g with corridors and returns the
// number of passes it took.
func Carve(g *Grid, rng Rand, opts CarveOptions) int {
	c := NewCarver(g, rng, opts)
	for c.Step() {
	}
	return c.Passes()
}

// Done reports whether no Unvisited cell remains.
func (c *Carver) Done() bool { return c.done }

// Passes returns how many passes have been started.
func (c *Carver) Passes() int { return c.passes }

// CappedPasses returns how many passes were cut short by MaxDepth.
func (c *Carver) CappedPasses() int { return c.capped }

// Head returns the cell the current walk is extending from.
func (c *Carver) Head() (Point, bool) {
	if len(c.stack) == 0 {
		return Point{}, false
	}
	return c.stack[len(c.stack)-1], true
}

// Step performs one transition: seeding a pass, stepping into an Unvisited
// neighbour, or backtracking from a surrounded cell. It returns false once
// the grid is fully covered.
func (c *Carver) Step() bool {
	if c.done {
		return false
	}
	if len(c.stack) == 0 {
		return c.seed()
	}

	cur := c.stack[len(c.stack)-1]
	if c.surrounded(cur) {
		c.stack = c.stack[:len(c.stack)-1]
		return true
	}

	// Redraw until an Unvisited neighbour comes up; one exists because cur
	// is not surrounded.
	var next Point
	for {
		next = cur.Step(Directions[c.rng.IntN(len(Directions))])
		if c.g.CellAt(next.X, next.Y) == Unvisited {
			break
		}
	}

	if c.maxDepth > 0 && len(c.stack) >= c.maxDepth {
		c.stack = c.stack[:0]
		c.capped++
		return true
	}

	c.g.SetWallBetween(cur, next, Open)
	c.g.SetCell(next.X, next.Y, Open)
	c.stack = append(c.stack, next)
	return true
}

func (c *Carver) seed() bool {
	cells := c.g.unvisitedCells()
	if len(cells) == 0 {
		c.done = true
		return false
	}
	p := cells[c.rng.IntN(len(cells))]
	c.g.SetCell(p.X, p.Y, Open)
	c.stack = append(c.stack, p)
	c.passes++
	return true
}

// surrounded reports whether every neighbour of p is terminal. Cell
// positions only ever hold Unvisited or a terminal state, so checking for
// Unvisited is enough and never spins on a malformed grid.
func (c *Carver) surrounded(p Point) bool {
	for _, d := range Directions {
		n := p.Step(d)
		if c.g.CellAt(n.X, n.Y) == Unvisited {
			return false
		}
	}
	return true
}
