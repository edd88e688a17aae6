package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReachableFromWallIsEmpty(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)

	assert.Zero(t, Reachable(g, Point{0, 0}, Floor).Size())
	assert.Zero(t, Reachable(g, Point{-1, 4}, Floor).Size())
}

func TestReachableFollowsOpenSlots(t *testing.T) {
	g, err := New(3, 1)
	require.NoError(t, err)
	g.SetCell(0, 0, Open)
	g.SetCell(1, 0, Open)
	g.SetCell(2, 0, Open)
	g.SetWallBetween(Point{0, 0}, Point{1, 0}, Open)

	r := Reachable(g, Point{1, 1}, OpenOnly)
	assert.Equal(t, 3, r.Size())
	assert.True(t, r.Has(Point{3, 1}))
	assert.False(t, r.Has(Point{5, 1}))
	assert.Len(t, Regions(g, OpenOnly), 2)
}

func TestDeadEnds(t *testing.T) {
	// A straight corridor of three cells has two dead ends.
	var g Grid
	require.NoError(t, g.UnmarshalText([]byte("#######\n#     #\n#######\n")))
	assert.Equal(t, 2, DeadEnds(&g))

	// A 2x2 loop has none.
	require.NoError(t, g.UnmarshalText([]byte("#####\n#   #\n# # #\n#   #\n#####\n")))
	assert.Zero(t, DeadEnds(&g))
}

func TestRegionsOrderedByFirstPosition(t *testing.T) {
	var g Grid
	require.NoError(t, g.UnmarshalText([]byte("#######\n# #+# #\n#######\n")))

	regions := Regions(&g, OpenOnly)
	require.Len(t, regions, 2)
	assert.True(t, regions[0].Has(Point{1, 1}))
	assert.True(t, regions[1].Has(Point{5, 1}))
	assert.Len(t, Regions(&g, Floor), 3)
}
