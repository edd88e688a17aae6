package ui

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazegen/internal/core"
	"mazegen/pkg/maze"
)

func TestControlLayoutAndHit(t *testing.T) {
	states := newControlStates([]core.ParameterControl{
		{Key: "rooms", Label: "Rooms", Step: 1, HasMin: true},
		{Key: "steps", Label: "Steps", Step: 2, Min: 1, Max: 5, HasMin: true, HasMax: true},
	}, 200)
	require.Len(t, states, 2)

	plus := states[1].plusRect
	assert.Equal(t, 200-panelPadding, plus.Max.X)
	assert.Less(t, states[1].minusRect.Max.X, plus.Min.X)
	assert.Equal(t, controlsTop+lineHeight, states[1].top)

	idx, dir, ok := hit(states, plus.Min.X+1, plus.Min.Y+1)
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 1, dir)

	m := states[0].minusRect
	idx, dir, ok = hit(states, m.Min.X, m.Min.Y)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, -1, dir)

	_, _, ok = hit(states, 0, 0)
	assert.False(t, ok)
}

func TestControlTargets(t *testing.T) {
	states := newControlStates([]core.ParameterControl{
		{Key: "steps", Step: 2, Min: 1, Max: 5, HasMin: true, HasMax: true},
		{Key: "missing", Step: 1},
	}, 100)
	refresh(states, core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Params: []core.Parameter{core.IntParam("steps", "Steps", 4)},
	}}})

	require.True(t, states[0].hasValue)
	assert.False(t, states[1].hasValue)

	v, ok := states[0].target(1)
	assert.True(t, ok)
	assert.Equal(t, 5, v, "clamped to max")

	states[0].value = 5
	_, ok = states[0].target(1)
	assert.False(t, ok, "already at max")

	v, ok = states[0].target(-1)
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = states[1].target(1)
	assert.False(t, ok, "no value to adjust")
}

func TestProgressLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Grid", Params: []core.Parameter{core.IntParam("w", "Width", 3)}},
		{Name: "Progress", Params: []core.Parameter{core.IntParam("doors", "Doors", 2)}},
	}}
	assert.Equal(t, []string{"Doors: 2"}, progressLines(snap))
}

func TestRoomBounds(t *testing.T) {
	b := roomBounds(maze.Rect{X: 1, Y: 0, W: 2, H: 1}, 3)
	assert.Equal(t, image.Rect(9, 3, 18, 6), b)
}
