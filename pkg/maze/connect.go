package maze

import "slices"

// ConnectRooms splices both room classes into the corridor network: Room
// against Open, then RoomAlt against Open. The two room classes are never
// joined to each other directly, but once one class has become corridor the
// other may connect through it, so both passes repeat until no room tile
// changes. It returns the number of doors opened.
func ConnectRooms(g *Grid) int {
	doors := 0
	left := -1
	for {
		doors += Connect(g, Open, Room) + Connect(g, Open, RoomAlt)
		n := g.Count(Room) + g.Count(RoomAlt)
		if n == left {
			return doors
		}
		left = n
	}
}

// Connect merges every region of tile b that touches tile a into the a
// network. A connector is any position with both an a and a b neighbour.
// For each b region found through a connector, one door is opened towards
// every distinct a region it touches, then the whole region is relabelled
// as a. Regions of b with no a neighbour are left alone.
//
// Scanning repeats until no connector remains, so a second call is a no-op.
// It returns the number of positions turned into doors.
func Connect(g *Grid, a, b CellState) int {
	if a == b {
		return 0
	}
	c := newConnector(g, a, b)
	doors := 0
	for {
		found := false
		for iy := 0; iy < g.rows; iy++ {
			for ix := 0; ix < g.cols; ix++ {
				if c.isConnector(ix, iy) {
					doors += c.merge(ix, iy)
					found = true
				}
			}
		}
		if !found {
			return doors
		}
	}
}

type connector struct {
	g    *Grid
	a, b CellState

	// label holds the a-region id of every a position, -1 elsewhere.
	label []int
	sets  disjointSet
	mark  []bool
}

func newConnector(g *Grid, a, b CellState) *connector {
	c := &connector{
		g:     g,
		a:     a,
		b:     b,
		label: make([]int, len(g.data)),
		mark:  make([]bool, len(g.data)),
	}
	for i := range c.label {
		c.label[i] = -1
	}
	for i, s := range g.data {
		if s != a || c.label[i] >= 0 {
			continue
		}
		id := c.sets.add()
		c.flood(i, func(j int) bool { return g.data[j] == a && c.label[j] < 0 }, func(j int) {
			c.label[j] = id
		})
	}
	return c
}

// neighbours appends the in-bounds 4-neighbours of array index i.
func (c *connector) neighbours(dst []int, i int) []int {
	cols := c.g.cols
	ix, iy := i%cols, i/cols
	if ix > 0 {
		dst = append(dst, i-1)
	}
	if ix < cols-1 {
		dst = append(dst, i+1)
	}
	if iy > 0 {
		dst = append(dst, i-cols)
	}
	if iy < c.g.rows-1 {
		dst = append(dst, i+cols)
	}
	return dst
}

func (c *connector) isConnector(ix, iy int) bool {
	var hasA, hasB bool
	var buf [4]int
	for _, j := range c.neighbours(buf[:0], c.g.index(ix, iy)) {
		switch c.g.data[j] {
		case c.a:
			hasA = true
		case c.b:
			hasB = true
		}
	}
	return hasA && hasB
}

// flood visits every index reachable from start through positions accepted
// by match, calling visit once per position. It uses an explicit stack and
// never leaves the array.
func (c *connector) flood(start int, match func(int) bool, visit func(int)) {
	if !match(start) {
		return
	}
	var buf [4]int
	stack := []int{start}
	visit(start)
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, j := range c.neighbours(buf[:0], i) {
			if match(j) {
				visit(j)
				stack = append(stack, j)
			}
		}
	}
}

// merge joins the b region next to connector (ix, iy) into the a network and
// returns the number of doors opened.
func (c *connector) merge(ix, iy int) int {
	g := c.g
	p := g.index(ix, iy)

	var region []int
	collect := func(j int) {
		c.mark[j] = true
		region = append(region, j)
	}
	isFreeB := func(j int) bool { return g.data[j] == c.b && !c.mark[j] }
	var buf [4]int
	c.flood(p, isFreeB, collect)
	for _, j := range c.neighbours(buf[:0], p) {
		c.flood(j, isFreeB, collect)
	}

	// Door candidates: positions bordering the region that are a themselves
	// or touch a. The triggering connector goes first, existing passages
	// next, then the rest in scan order.
	var candidates []int
	seen := map[int]bool{}
	for _, r := range region {
		for _, q := range c.neighbours(buf[:0], r) {
			if c.mark[q] || seen[q] || q == p {
				continue
			}
			seen[q] = true
			if len(c.rootsAt(q)) > 0 {
				candidates = append(candidates, q)
			}
		}
	}
	slices.SortFunc(candidates, func(x, y int) int {
		xa, ya := g.data[x] == c.a, g.data[y] == c.a
		switch {
		case xa && !ya:
			return -1
		case ya && !xa:
			return 1
		}
		return x - y
	})
	if !c.mark[p] {
		candidates = append([]int{p}, candidates...)
	}

	doors := 0
	joined := -1
	for _, q := range candidates {
		roots := c.rootsAt(q)
		fresh := false
		for _, r := range roots {
			if joined < 0 || c.sets.find(r) != c.sets.find(joined) {
				fresh = true
			}
		}
		if !fresh {
			continue
		}
		for _, r := range roots {
			if joined < 0 {
				joined = r
			}
			c.sets.union(joined, r)
		}
		if g.data[q] != c.a {
			g.data[q] = c.a
			c.label[q] = joined
			doors++
		}
	}

	for _, r := range region {
		g.data[r] = c.a
		c.label[r] = joined
		c.mark[r] = false
	}
	return doors
}

// rootsAt returns the a-region roots at or next to index q.
func (c *connector) rootsAt(q int) []int {
	var roots []int
	add := func(j int) {
		if c.g.data[j] != c.a || c.label[j] < 0 {
			return
		}
		r := c.sets.find(c.label[j])
		if !slices.Contains(roots, r) {
			roots = append(roots, r)
		}
	}
	add(q)
	var buf [4]int
	for _, j := range c.neighbours(buf[:0], q) {
		add(j)
	}
	return roots
}

// disjointSet is a union-find over dense integer ids.
type disjointSet struct {
	parent []int
	rank   []int
}

func (s *disjointSet) add() int {
	id := len(s.parent)
	s.parent = append(s.parent, id)
	s.rank = append(s.rank, 0)
	return id
}

func (s *disjointSet) find(x int) int {
	for s.parent[x] != x {
		s.parent[x] = s.parent[s.parent[x]]
		x = s.parent[x]
	}
	return x
}

func (s *disjointSet) union(x, y int) {
	x, y = s.find(x), s.find(y)
	if x == y {
		return
	}
	if s.rank[x] < s.rank[y] {
		x, y = y, x
	}
	s.parent[y] = x
	if s.rank[x] == s.rank[y] {
		s.rank[x]++
	}
}
