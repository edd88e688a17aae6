package maze

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazegen/internal/core"
	pkgcore "mazegen/pkg/core"
	gen "mazegen/pkg/maze"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 12
	cfg.Height = 9
	cfg.Params.Rooms = 3
	cfg.Params.RoomMaxDim = 4
	cfg.Params.StepsPerTick = 7
	return cfg
}

func TestWorldAnimatesToConnectedMaze(t *testing.T) {
	w := NewWithConfig(smallConfig())
	assert.Equal(t, core.Size{W: 25, H: 19}, w.Size())
	require.Len(t, w.Cells(), 25*19)
	assert.True(t, w.Grid().Contains(gen.Unvisited))

	ticks := 0
	for !w.Done() {
		w.Step()
		ticks++
		require.Less(t, ticks, 10000)
	}
	assert.Greater(t, ticks, 1)

	g := w.Grid()
	assert.False(t, g.Contains(gen.Unvisited))
	assert.False(t, g.Contains(gen.Room))
	assert.Len(t, gen.Regions(g, gen.OpenOnly), 1)
	assert.Equal(t, gen.Encode(g), w.Cells(), "display mirrors the grid once the head is gone")

	snap := w.Parameters()
	doors, ok := snap.Lookup("doors")
	require.True(t, ok)
	assert.NotEqual(t, "0", doors.Value)
}

func TestWorldMatchesOneShotGeneration(t *testing.T) {
	cfg := smallConfig()
	w := NewWithConfig(cfg)
	w.Finish()

	res, err := gen.Generate(cfg.Options(), newRNG(cfg.Seed))
	require.NoError(t, err)
	assert.True(t, res.Grid.Equal(w.Grid()), "stepping and one-shot generation must agree for a seed")
}

func TestWorldResetIsDeterministic(t *testing.T) {
	w := NewWithConfig(smallConfig())
	w.Reset(77)
	w.Finish()
	first := gen.Encode(w.Grid())

	w.Reset(78)
	w.Finish()
	w.Reset(77)
	w.Finish()
	assert.Equal(t, first, gen.Encode(w.Grid()))
	assert.Equal(t, int64(77), w.Seed())
}

func TestWorldMarksCarverHead(t *testing.T) {
	w := NewWithConfig(smallConfig())
	w.Step()

	head, ok := w.Head()
	require.True(t, ok)
	assert.Equal(t, uint8(headCode), w.Cells()[w.display.Index(2*head.X+1, 2*head.Y+1)])
	assert.Len(t, w.Palette(), headCode+1)
}

func TestSetIntParameter(t *testing.T) {
	w := NewWithConfig(smallConfig())

	require.True(t, w.SetIntParameter("w", 500))
	assert.Equal(t, 200, w.cfg.Width, "width is clamped to its control bound")
	assert.Equal(t, 401, w.Size().W)

	require.True(t, w.SetIntParameter("rooms", -2))
	assert.Zero(t, w.cfg.Params.Rooms)
	assert.Empty(t, w.Rooms())

	for key, want := range map[string]int{
		"rooms":        maxRooms,
		"alt_rooms":    maxRooms,
		"room_max_dim": maxRoomDim,
		"alt_max_dim":  maxRoomDim,
		"max_depth":    4 * gen.DefaultMaxDepth,
	} {
		require.True(t, w.SetIntParameter(key, 1_000_000), key)
		got, ok := w.Parameters().Lookup(key)
		require.True(t, ok, key)
		assert.Equal(t, strconv.Itoa(want), got.Value, "%s is clamped to its control bound", key)
	}
	assert.LessOrEqual(t, len(w.Rooms()), 2*maxRooms)

	require.True(t, w.SetIntParameter("steps", 0))
	assert.Equal(t, 1, w.cfg.Params.StepsPerTick)

	assert.False(t, w.SetIntParameter("passes", 3), "progress values are read only")
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                  "30",
		"h":                  "-4",
		"seed":               "9",
		"rooms":              "5",
		"alt_rooms":          "2",
		"alt_max_dim":        "3",
		"allow_intersection": "true",
		"connect":            "false",
		"max_depth":          "oops",
	})
	def := DefaultConfig()
	assert.Equal(t, 30, cfg.Width)
	assert.Equal(t, def.Height, cfg.Height)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, 5, cfg.Params.Rooms)
	assert.True(t, cfg.Params.AllowIntersection)
	assert.False(t, cfg.Params.Connect)
	assert.Equal(t, def.Params.MaxDepth, cfg.Params.MaxDepth)

	assert.Equal(t, cfg, FromMap(cfg.ToMap()))

	opts := cfg.Options()
	require.Len(t, opts.Rooms, 2)
	assert.Equal(t, gen.RoomAlt, opts.Rooms[1].Tile)
}

func TestRegisteredAsMaze(t *testing.T) {
	sim, err := core.New("maze", map[string]string{"w": "5", "h": "4"})
	require.NoError(t, err)
	assert.Equal(t, "maze", sim.Name())
	assert.Equal(t, core.Size{W: 11, H: 9}, sim.Size())
	_, ok := sim.(core.Finisher)
	assert.True(t, ok)
}

func newRNG(seed int64) gen.Rand {
	return pkgcore.NewRNG(seed)
}
