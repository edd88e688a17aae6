package config

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgcore "mazegen/pkg/core"
	"mazegen/pkg/maze"
)

const sample = `
maze {
  width     = var.width
  height    = 12
  seed      = 99
  max_depth = 16

  room "halls" {
    iterations = 4
    max_dim    = 5
  }

  room "vaults" {
    iterations         = 2
    max_dim            = 3
    tile               = "room_alt"
    allow_intersection = true
    max_attempts       = 50
  }
}

render {
  cell_width = 4
  wall       = "#102030"
  floor      = "#fff"
  palette    = "states"
}
`

func TestLoadPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	p, err := Load(context.Background(), path, map[string]string{"width": "30"})
	require.NoError(t, err)

	assert.Equal(t, 30, p.Maze.Width)
	assert.Equal(t, int64(99), p.Maze.Seed)
	assert.True(t, p.Maze.ConnectRooms())

	opts := p.Options()
	assert.Equal(t, 12, opts.Height)
	assert.Equal(t, 16, opts.MaxDepth)
	require.Len(t, opts.Rooms, 2)
	assert.Equal(t, maze.Room, opts.Rooms[0].Tile)
	assert.Equal(t, maze.RoomAlt, opts.Rooms[1].Tile)
	assert.Equal(t, 50, opts.Rooms[1].MaxAttempts)

	assert.Equal(t, 4, p.Render.CellWidth)
	assert.Equal(t, 8, p.Render.CellHeight, "unset values keep defaults")
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, p.Render.Wall)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, p.Render.Floor)
	assert.Equal(t, "states", p.Render.Palette)

	sim := p.SimConfig()
	assert.Equal(t, "30", sim["w"])
	assert.Equal(t, "4", sim["rooms"])
	assert.Equal(t, "2", sim["alt_rooms"])
	assert.Equal(t, "true", sim["allow_intersection"])
}

func TestPresetGeneratesMaze(t *testing.T) {
	p, err := Parse([]byte(sample), "inline.hcl", map[string]string{"width": "20"})
	require.NoError(t, err)

	res, err := maze.Generate(p.Options(), newRand(p.Maze.Seed))
	require.NoError(t, err)
	assert.Equal(t, 20, res.Grid.Width())
	assert.False(t, res.Grid.Contains(maze.Unvisited))
}

func TestPresetErrors(t *testing.T) {
	cases := map[string]string{
		"missing maze":  `render { cell_width = 2 }`,
		"unknown var":   "maze {\n width = var.nope\n height = 3\n}",
		"syntax":        `maze { width = `,
		"bad tile":      "maze {\n width = 3\n height = 3\n room \"x\" {\n iterations = 1\n tile = \"open\"\n }\n}",
		"bad color":     "maze {\n width = 3\n height = 3\n}\nrender {\n wall = \"red\"\n}",
		"bad palette":   "maze {\n width = 3\n height = 3\n}\nrender {\n palette = \"neon\"\n}",
		"missing width": "maze {\n height = 3\n}",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src), name+".hcl", nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), name+".hcl")
		})
	}

	_, err := Parse([]byte("maze {\n width = var.nope\n height = 3\n}"), "diag.hcl", nil)
	var diags hcl.Diagnostics
	require.ErrorAs(t, err, &diags)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "none.hcl"), nil)
	require.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#0a0B0c")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 10, G: 11, B: 12, A: 255}, c)

	for _, bad := range []string{"0a0b0c", "#12345", "#ggg"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func newRand(seed int64) *pkgcore.RNG { return pkgcore.NewRNG(seed) }

func TestShippedPresetsLoad(t *testing.T) {
	paths, err := filepath.Glob("../../presets/*.hcl")
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			p, err := Load(context.Background(), path, nil)
			require.NoError(t, err)
			_, err = maze.Generate(p.Options(), newRand(p.Maze.Seed))
			require.NoError(t, err)
		})
	}
}
