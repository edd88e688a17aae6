package render

import (
	"strings"

	"mazegen/pkg/maze"
)

// Rect is a room rectangle in logical cells.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Summary describes a generated maze for JSON output.
type Summary struct {
	Seed     int64    `json:"seed"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Passes   int      `json:"passes"`
	Doors    int      `json:"doors"`
	Rooms    []Rect   `json:"rooms"`
	Regions  int      `json:"regions"`
	DeadEnds int      `json:"dead_ends"`
	Rows     []string `json:"rows"`
}

// NewSummary collects the statistics and text rows of res.
func NewSummary(res *maze.Result, seed int64) Summary {
	g := res.Grid
	rooms := make([]Rect, len(res.Rooms))
	for i, r := range res.Rooms {
		rooms[i] = Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
	}
	return Summary{
		Seed:     seed,
		Width:    g.Width(),
		Height:   g.Height(),
		Passes:   res.Passes,
		Doors:    res.Doors,
		Rooms:    rooms,
		Regions:  len(maze.Regions(g, maze.Floor)),
		DeadEnds: maze.DeadEnds(g),
		Rows:     strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n"),
	}
}

// Codes is the raw state array for JSON output.
type Codes struct {
	Cols int   `json:"cols"`
	Rows int   `json:"rows"`
	Data []int `json:"data"`
}

// NewCodes spells the state codes out as numbers; a []uint8 would encode
// as base64.
func NewCodes(g *maze.Grid) Codes {
	raw := maze.Encode(g)
	data := make([]int, len(raw))
	for i, v := range raw {
		data[i] = int(v)
	}
	return Codes{Cols: g.Cols(), Rows: g.Rows(), Data: data}
}
