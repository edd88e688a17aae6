package maze

import (
	"strconv"

	gen "mazegen/pkg/maze"
)

// Params holds the generation knobs of the maze sim.
type Params struct {
	Rooms             int
	RoomMaxDim        int
	AltRooms          int
	AltMaxDim         int
	AllowIntersection bool
	MaxDepth          int
	Connect           bool

	// StepsPerTick is how many carver transitions one Step performs.
	StepsPerTick int
}

// Config controls the maze sim dimensions, seed and params. Width and
// Height count logical cells.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  40,
		Height: 30,
		Seed:   1337,
		Params: Params{
			Rooms:        8,
			RoomMaxDim:   6,
			Connect:      true,
			StepsPerTick: 4,
		},
	}
}

// Options converts the config into generation options.
func (c Config) Options() gen.Options {
	var rooms []gen.RoomOptions
	if c.Params.Rooms > 0 {
		rooms = append(rooms, gen.RoomOptions{
			Iterations:        c.Params.Rooms,
			MaxDim:            c.Params.RoomMaxDim,
			AllowIntersection: c.Params.AllowIntersection,
			Tile:              gen.Room,
		})
	}
	if c.Params.AltRooms > 0 {
		rooms = append(rooms, gen.RoomOptions{
			Iterations:        c.Params.AltRooms,
			MaxDim:            c.Params.AltMaxDim,
			AllowIntersection: c.Params.AllowIntersection,
			Tile:              gen.RoomAlt,
		})
	}
	return gen.Options{
		Width:    c.Width,
		Height:   c.Height,
		Rooms:    rooms,
		MaxDepth: c.Params.MaxDepth,
		Connect:  c.Params.Connect,
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unparseable or out-of-range values keep the default.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	positive := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	nonNegative := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				*dst = parsed
			}
		}
	}
	boolean := func(key string, dst *bool) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseBool(v); err == nil {
				*dst = parsed
			}
		}
	}

	positive("w", &c.Width)
	positive("h", &c.Height)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	nonNegative("rooms", &c.Params.Rooms)
	nonNegative("room_max_dim", &c.Params.RoomMaxDim)
	nonNegative("alt_rooms", &c.Params.AltRooms)
	nonNegative("alt_max_dim", &c.Params.AltMaxDim)
	boolean("allow_intersection", &c.Params.AllowIntersection)
	nonNegative("max_depth", &c.Params.MaxDepth)
	boolean("connect", &c.Params.Connect)
	positive("steps", &c.Params.StepsPerTick)
	return c
}

// ToMap is the inverse of FromMap.
func (c Config) ToMap() map[string]string {
	return map[string]string{
		"w":                  strconv.Itoa(c.Width),
		"h":                  strconv.Itoa(c.Height),
		"seed":               strconv.FormatInt(c.Seed, 10),
		"rooms":              strconv.Itoa(c.Params.Rooms),
		"room_max_dim":       strconv.Itoa(c.Params.RoomMaxDim),
		"alt_rooms":          strconv.Itoa(c.Params.AltRooms),
		"alt_max_dim":        strconv.Itoa(c.Params.AltMaxDim),
		"allow_intersection": strconv.FormatBool(c.Params.AllowIntersection),
		"max_depth":          strconv.Itoa(c.Params.MaxDepth),
		"connect":            strconv.FormatBool(c.Params.Connect),
		"steps":              strconv.Itoa(c.Params.StepsPerTick),
	}
}
