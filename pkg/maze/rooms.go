package maze

import (
	"errors"
	"fmt"
)

// ErrInvalidOptions is returned for negative counts or a non-room tile.
var ErrInvalidOptions = errors.New("maze: invalid options")

// DefaultMaxAttempts bounds how many candidates are drawn per room before
// the room is skipped.
const DefaultMaxAttempts = 1000

// Rand is the source of uniform randomness used by every generation step.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Rect is an axis-aligned block of logical cells covering
// [X, X+W) × [Y, Y+H).
type Rect struct {
	X, Y, W, H int
}

// Intersects reports whether r and o share at least one cell.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Expand grows r by n cells on every side.
func (r Rect) Expand(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, W: r.W + 2*n, H: r.H + 2*n}
}

// Contains reports whether logical cell p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// RoomOptions configures one batch of rooms.
type RoomOptions struct {
	// Iterations is the number of rooms to place.
	Iterations int
	// MaxDim bounds the span of a room on each axis.
	MaxDim int
	// AllowIntersection lets rooms overlap earlier rooms.
	AllowIntersection bool
	// Tile is Room or RoomAlt. The zero value selects Room.
	Tile CellState
	// MaxAttempts bounds candidate draws per room; 0 means DefaultMaxAttempts.
	MaxAttempts int
}

func (o RoomOptions) tile() CellState {
	if o.Tile == Wall {
		return Room
	}
	return o.Tile
}

func (o RoomOptions) validate() error {
	if o.Iterations < 0 || o.MaxDim < 0 || o.MaxAttempts < 0 {
		return fmt.Errorf("%w: iterations=%d max_dim=%d max_attempts=%d",
			ErrInvalidOptions, o.Iterations, o.MaxDim, o.MaxAttempts)
	}
	if !IsRoom(o.tile()) {
		return fmt.Errorf("%w: room tile %s", ErrInvalidOptions, o.Tile)
	}
	return nil
}

// PlaceRooms carves opts.Iterations rectangular rooms into g and returns
// existing plus every newly accepted rectangle. Passing the result of an
// earlier call as existing keeps a second room class clear of the first.
//
// Each room spans a random source cell and a target within ±MaxDim/2 of it,
// clamped to the grid. Unless intersections are allowed, a candidate grown by
// one cell of margin must not touch any accepted rectangle; a room that finds
// no free spot within MaxAttempts draws is skipped.
func PlaceRooms(g *Grid, rng Rand, opts RoomOptions, existing []Rect) ([]Rect, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	attempts := opts.MaxAttempts
	if attempts == 0 {
		attempts = DefaultMaxAttempts
	}
	tile := opts.tile()

	rects := make([]Rect, 0, len(existing)+min(opts.Iterations, g.w*g.h))
	rects = append(rects, existing...)
	for i := 0; i < opts.Iterations; i++ {
		for try := 0; try < attempts; try++ {
			r := randomRoom(g, rng, opts.MaxDim)
			if !opts.AllowIntersection && intersectsAny(r.Expand(1), rects) {
				continue
			}
			rects = append(rects, r)
			g.Fill(r, tile)
			break
		}
	}
	return rects, nil
}

func randomRoom(g *Grid, rng Rand, maxDim int) Rect {
	sx := rng.IntN(g.w)
	sy := rng.IntN(g.h)
	tx := clamp(sx+offset(rng, maxDim), 0, g.w-1)
	ty := clamp(sy+offset(rng, maxDim), 0, g.h-1)
	return Rect{
		X: min(sx, tx),
		Y: min(sy, ty),
		W: abs(tx-sx) + 1,
		H: abs(ty-sy) + 1,
	}
}

func offset(rng Rand, maxDim int) int {
	if maxDim <= 0 {
		return 0
	}
	return rng.IntN(maxDim) - maxDim/2
}

func intersectsAny(r Rect, rects []Rect) bool {
	for _, o := range rects {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
