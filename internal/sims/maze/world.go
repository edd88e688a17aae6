package maze

import (
	"log/slog"

	"mazegen/internal/core"
	pkgcore "mazegen/pkg/core"
	gen "mazegen/pkg/maze"
)

// World animates maze generation: Reset places the rooms, each Step
// advances the carver, and the rooms are connected once carving ends.
type World struct {
	cfg Config
	log *slog.Logger

	grid    *gen.Grid
	carver  *gen.Carver
	rooms   []gen.Rect
	display *core.ByteGrid

	seed      int64
	doors     int
	connected bool
}

// New returns a maze sim with the provided logical dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a maze sim configured from the provided options.
// Non-positive dimensions are raised to one cell.
func NewWithConfig(cfg Config) *World {
	cfg.Width = max(cfg.Width, 1)
	cfg.Height = max(cfg.Height, 1)
	cfg.Params.StepsPerTick = max(cfg.Params.StepsPerTick, 1)
	w := &World{
		cfg:     cfg,
		log:     slog.Default(),
		display: core.NewByteGrid(2*cfg.Width+1, 2*cfg.Height+1),
	}
	w.Reset(0)
	return w
}

// SetLogger replaces the logger that receives generation records.
func (w *World) SetLogger(log *slog.Logger) {
	if log != nil {
		w.log = log
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "maze" }

// Size reports the doubled array dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.display.W, H: w.display.H} }

// Cells exposes the current display buffer.
func (w *World) Cells() []uint8 { return w.display.Cells() }

// Grid exposes the maze being generated.
func (w *World) Grid() *gen.Grid { return w.grid }

// Rooms returns the placed room rectangles.
func (w *World) Rooms() []gen.Rect { return w.rooms }

// Seed reports the seed used by the last Reset.
func (w *World) Seed() int64 { return w.seed }

// Head returns the cell the carver is extending, if a pass is active.
func (w *World) Head() (gen.Point, bool) {
	if w.carver == nil {
		return gen.Point{}, false
	}
	return w.carver.Head()
}

// Done reports whether carving and connecting have both finished.
func (w *World) Done() bool {
	return w.carver.Done() && (!w.cfg.Params.Connect || w.connected)
}

// Reset starts a new maze. A zero seed falls back to the configured seed.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.seed = seed
	rng := pkgcore.NewRNG(seed)

	opts := w.cfg.Options()
	g, err := gen.New(opts.Width, opts.Height)
	if err != nil {
		// Dimensions are clamped in NewWithConfig and SetIntParameter.
		panic(err)
	}
	w.grid = g
	w.rooms = nil
	for i, ro := range opts.Rooms {
		rooms, err := gen.PlaceRooms(g, rng, ro, w.rooms)
		if err != nil {
			w.log.Warn("skipping room batch", "batch", i, "err", err)
			continue
		}
		w.rooms = rooms
	}
	w.carver = gen.NewCarver(g, rng, gen.CarveOptions{MaxDepth: opts.MaxDepth})
	w.doors = 0
	w.connected = false

	w.display.Resize(g.Cols(), g.Rows())
	w.refreshDisplay()
	w.log.Debug("maze reset", "seed", seed, "w", g.Width(), "h", g.Height(), "rooms", len(w.rooms))
}

// Step advances the carver by StepsPerTick transitions. On the tick after
// carving completes the rooms are connected.
func (w *World) Step() {
	if w.Done() {
		return
	}
	if !w.carver.Done() {
		for i := 0; i < w.cfg.Params.StepsPerTick && w.carver.Step(); i++ {
		}
	} else if w.cfg.Params.Connect && !w.connected {
		w.doors = gen.ConnectRooms(w.grid)
		w.connected = true
		w.log.Debug("maze connected", "doors", w.doors, "passes", w.carver.Passes())
	}
	w.refreshDisplay()
}

// Finish runs the remaining generation in one go.
func (w *World) Finish() {
	for !w.Done() {
		w.Step()
	}
}

func init() {
	core.Register("maze", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
