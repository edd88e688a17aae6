package maze

import (
	"fmt"
	"io"
	"log/slog"
)

// Options describes one generation run.
type Options struct {
	Width, Height int

	// Rooms are placed in order before carving. Each batch avoids the
	// rectangles of every earlier batch.
	Rooms []RoomOptions

	// MaxDepth caps the carving stack; see CarveOptions.
	MaxDepth int

	// Connect splices rooms into the corridor network after carving.
	Connect bool

	// Logger receives debug records; nil discards them.
	Logger *slog.Logger
}

// Result is the outcome of Generate.
type Result struct {
	Grid   *Grid
	Rooms  []Rect
	Passes int
	Doors  int
}

// Generate builds a blank grid, places rooms, carves corridors through every
// remaining cell and optionally connects the rooms. All randomness comes
// from rng, so a seeded source gives a reproducible maze.
func Generate(opts Options, rng Rand) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	for i, ro := range opts.Rooms {
		if err := ro.validate(); err != nil {
			return nil, fmt.Errorf("room batch %d: %w", i, err)
		}
	}

	g, err := New(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}

	var rects []Rect
	for i, ro := range opts.Rooms {
		before := len(rects)
		rects, err = PlaceRooms(g, rng, ro, rects)
		if err != nil {
			return nil, fmt.Errorf("room batch %d: %w", i, err)
		}
		placed := len(rects) - before
		log.Debug("placed rooms", "batch", i, "tile", ro.tile().String(), "placed", placed, "skipped", ro.Iterations-placed)
	}

	c := NewCarver(g, rng, CarveOptions{MaxDepth: opts.MaxDepth})
	for c.Step() {
	}
	log.Debug("carved corridors", "passes", c.Passes(), "capped", c.CappedPasses())

	res := &Result{Grid: g, Rooms: rects, Passes: c.Passes()}
	if opts.Connect {
		res.Doors = ConnectRooms(g)
		log.Debug("connected rooms", "doors", res.Doors)
	}
	return res, nil
}
