package maze

import (
	"mazegen/internal/core"
	gen "mazegen/pkg/maze"
)

// Parameters reports the current settings and generation progress.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	passes, capped := 0, 0
	if w.carver != nil {
		passes, capped = w.carver.Passes(), w.carver.CappedPasses()
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", w.cfg.Width),
				core.IntParam("h", "Height", w.cfg.Height),
				core.Int64Param("seed", "Seed", w.seed),
			},
		},
		{
			Name: "Rooms",
			Params: []core.Parameter{
				core.IntParam("rooms", "Rooms", p.Rooms),
				core.IntParam("room_max_dim", "Room max dim", p.RoomMaxDim),
				core.IntParam("alt_rooms", "Alt rooms", p.AltRooms),
				core.IntParam("alt_max_dim", "Alt max dim", p.AltMaxDim),
				core.BoolParam("allow_intersection", "Allow overlap", p.AllowIntersection),
			},
		},
		{
			Name: "Carving",
			Params: []core.Parameter{
				core.IntParam("max_depth", "Max depth", p.MaxDepth),
				core.IntParam("steps", "Steps per tick", p.StepsPerTick),
				core.BoolParam("connect", "Connect rooms", p.Connect),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				core.IntParam("placed", "Rooms placed", len(w.rooms)),
				core.IntParam("passes", "Passes", passes),
				core.IntParam("capped", "Capped passes", capped),
				core.IntParam("doors", "Doors", w.doors),
			},
		},
	}}
}

// HUD bounds for the room knobs.
const (
	maxRooms   = 64
	maxRoomDim = 32
)

var controls = []core.ParameterControl{
	{Key: "w", Label: "Width", Step: 1, Min: 1, HasMin: true, Max: 200, HasMax: true},
	{Key: "h", Label: "Height", Step: 1, Min: 1, HasMin: true, Max: 200, HasMax: true},
	{Key: "rooms", Label: "Rooms", Step: 1, Min: 0, HasMin: true, Max: maxRooms, HasMax: true},
	{Key: "room_max_dim", Label: "Room max dim", Step: 1, Min: 0, HasMin: true, Max: maxRoomDim, HasMax: true},
	{Key: "alt_rooms", Label: "Alt rooms", Step: 1, Min: 0, HasMin: true, Max: maxRooms, HasMax: true},
	{Key: "alt_max_dim", Label: "Alt max dim", Step: 1, Min: 0, HasMin: true, Max: maxRoomDim, HasMax: true},
	{Key: "max_depth", Label: "Max depth", Step: 4, Min: 0, HasMin: true, Max: 4 * gen.DefaultMaxDepth, HasMax: true},
	{Key: "steps", Label: "Steps per tick", Step: 1, Min: 1, HasMin: true, Max: 512, HasMax: true},
}

// ParameterControls lists the values a viewer may adjust.
func (w *World) ParameterControls() []core.ParameterControl {
	return controls
}

// SetIntParameter updates a control value, clamped to its bounds. Steps per
// tick apply at once; everything else restarts generation with the current
// seed.
func (w *World) SetIntParameter(key string, value int) bool {
	var ctrl core.ParameterControl
	found := false
	for _, c := range controls {
		if c.Key == key {
			ctrl, found = c, true
			break
		}
	}
	if !found {
		return false
	}
	value = ctrl.Clamp(value)

	p := &w.cfg.Params
	switch key {
	case "w":
		w.cfg.Width = value
	case "h":
		w.cfg.Height = value
	case "rooms":
		p.Rooms = value
	case "room_max_dim":
		p.RoomMaxDim = value
	case "alt_rooms":
		p.AltRooms = value
	case "alt_max_dim":
		p.AltMaxDim = value
	case "max_depth":
		p.MaxDepth = value
	case "steps":
		p.StepsPerTick = value
		return true
	}
	w.Reset(w.seed)
	return true
}
