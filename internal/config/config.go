// Package config loads maze presets from HCL files.
//
// A preset holds one maze block with any number of room blocks, and an
// optional render block:
//
//	maze {
//	  width  = var.width
//	  height = 20
//	  room "halls" {
//	    iterations = 6
//	    max_dim    = 5
//	  }
//	}
//	render {
//	  cell_width = 8
//	  wall       = "#202020"
//	}
//
// Values passed with -var key=value are visible as var.key.
package config

import (
	"context"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"mazegen/internal/ctxlog"
	"mazegen/pkg/maze"
)

// Preset is a decoded preset file.
type Preset struct {
	Maze   MazeBlock
	Render Render
}

// MazeBlock describes one generation run.
type MazeBlock struct {
	Width    int         `hcl:"width"`
	Height   int         `hcl:"height"`
	Seed     int64       `hcl:"seed,optional"`
	MaxDepth int         `hcl:"max_depth,optional"`
	Connect  *bool       `hcl:"connect,optional"`
	Rooms    []RoomBlock `hcl:"room,block"`
}

// RoomBlock is one batch of rooms.
type RoomBlock struct {
	Name              string `hcl:"name,label"`
	Iterations        int    `hcl:"iterations"`
	MaxDim            int    `hcl:"max_dim,optional"`
	AllowIntersection bool   `hcl:"allow_intersection,optional"`
	Tile              string `hcl:"tile,optional"`
	MaxAttempts       int    `hcl:"max_attempts,optional"`
}

type renderBlock struct {
	CellWidth  int    `hcl:"cell_width,optional"`
	CellHeight int    `hcl:"cell_height,optional"`
	Wall       string `hcl:"wall,optional"`
	Floor      string `hcl:"floor,optional"`
	Palette    string `hcl:"palette,optional"`
	Spaced     bool   `hcl:"spaced,optional"`
}

type presetFile struct {
	Maze   *MazeBlock   `hcl:"maze,block"`
	Render *renderBlock `hcl:"render,block"`
}

// Render holds output settings for text and image renderers.
type Render struct {
	CellWidth  int
	CellHeight int
	Wall       color.RGBA
	Floor      color.RGBA
	// Palette is "mono" (wall and floor only) or "states".
	Palette string
	Spaced  bool
}

// DefaultRender returns the render settings used when a preset has no
// render block.
func DefaultRender() Render {
	return Render{
		CellWidth:  8,
		CellHeight: 8,
		Wall:       color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff},
		Floor:      color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff},
		Palette:    "mono",
	}
}

// Load parses the preset at path. vars become var.<key> string values.
func Load(ctx context.Context, path string, vars map[string]string) (*Preset, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("loading preset", "path", path, "vars", len(vars))

	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse preset %s: %w", path, diags)
	}
	return decode(file.Body, path, vars)
}

// Parse decodes preset source held in memory; filename is used in
// diagnostics only.
func Parse(src []byte, filename string, vars map[string]string) (*Preset, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse preset %s: %w", filename, diags)
	}
	return decode(file.Body, filename, vars)
}

func decode(body hcl.Body, filename string, vars map[string]string) (*Preset, error) {
	var raw presetFile
	diags := gohcl.DecodeBody(body, evalContext(vars), &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode preset %s: %w", filename, diags)
	}
	if raw.Maze == nil {
		return nil, fmt.Errorf("preset %s: missing maze block", filename)
	}

	p := &Preset{Maze: *raw.Maze, Render: DefaultRender()}
	for _, r := range p.Maze.Rooms {
		if _, err := roomTile(r.Tile); err != nil {
			return nil, fmt.Errorf("preset %s: room %q: %w", filename, r.Name, err)
		}
	}
	if rb := raw.Render; rb != nil {
		if err := p.Render.apply(rb); err != nil {
			return nil, fmt.Errorf("preset %s: render: %w", filename, err)
		}
	}
	return p, nil
}

func evalContext(vars map[string]string) *hcl.EvalContext {
	values := make(map[string]cty.Value, len(vars))
	for k, v := range vars {
		values[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"var": cty.ObjectVal(values)},
	}
}

func (r *Render) apply(rb *renderBlock) error {
	if rb.CellWidth > 0 {
		r.CellWidth = rb.CellWidth
	}
	if rb.CellHeight > 0 {
		r.CellHeight = rb.CellHeight
	}
	if rb.Wall != "" {
		c, err := ParseColor(rb.Wall)
		if err != nil {
			return err
		}
		r.Wall = c
	}
	if rb.Floor != "" {
		c, err := ParseColor(rb.Floor)
		if err != nil {
			return err
		}
		r.Floor = c
	}
	switch rb.Palette {
	case "":
	case "mono", "states":
		r.Palette = rb.Palette
	default:
		return fmt.Errorf("unknown palette %q", rb.Palette)
	}
	r.Spaced = rb.Spaced
	return nil
}

func roomTile(name string) (maze.CellState, error) {
	if name == "" {
		return maze.Room, nil
	}
	s, err := maze.ParseCellState(name)
	if err != nil {
		return 0, err
	}
	if !maze.IsRoom(s) {
		return 0, fmt.Errorf("%w: tile %q is not a room tile", maze.ErrInvalidOptions, name)
	}
	return s, nil
}

// ConnectRooms reports whether rooms are spliced in; it defaults to true.
func (m MazeBlock) ConnectRooms() bool {
	return m.Connect == nil || *m.Connect
}

// Options converts the maze block into generation options.
func (p *Preset) Options() maze.Options {
	opts := maze.Options{
		Width:    p.Maze.Width,
		Height:   p.Maze.Height,
		MaxDepth: p.Maze.MaxDepth,
		Connect:  p.Maze.ConnectRooms(),
	}
	for _, r := range p.Maze.Rooms {
		tile, _ := roomTile(r.Tile)
		opts.Rooms = append(opts.Rooms, maze.RoomOptions{
			Iterations:        r.Iterations,
			MaxDim:            r.MaxDim,
			AllowIntersection: r.AllowIntersection,
			Tile:              tile,
			MaxAttempts:       r.MaxAttempts,
		})
	}
	return opts
}

// SimConfig flattens the preset into the key/value form of the maze sim.
// The sim knows one batch per room class, so batches of the same class are
// merged: iterations add up and the largest max_dim wins.
func (p *Preset) SimConfig() map[string]string {
	var rooms, roomDim, alt, altDim int
	overlap := false
	for _, r := range p.Options().Rooms {
		overlap = overlap || r.AllowIntersection
		if r.Tile == maze.RoomAlt {
			alt += r.Iterations
			altDim = max(altDim, r.MaxDim)
			continue
		}
		rooms += r.Iterations
		roomDim = max(roomDim, r.MaxDim)
	}
	return map[string]string{
		"w":                  strconv.Itoa(p.Maze.Width),
		"h":                  strconv.Itoa(p.Maze.Height),
		"seed":               strconv.FormatInt(p.Maze.Seed, 10),
		"rooms":              strconv.Itoa(rooms),
		"room_max_dim":       strconv.Itoa(roomDim),
		"alt_rooms":          strconv.Itoa(alt),
		"alt_max_dim":        strconv.Itoa(altDim),
		"allow_intersection": strconv.FormatBool(overlap),
		"max_depth":          strconv.Itoa(p.Maze.MaxDepth),
		"connect":            strconv.FormatBool(p.Maze.ConnectRooms()),
	}
}

// ParseColor reads "#rgb" or "#rrggbb".
func ParseColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 3 && len(hex) != 6) {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #rgb or #rrggbb", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
