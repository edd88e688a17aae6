package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSim struct{ cells []uint8 }

func (s *stubSim) Name() string   { return "stub" }
func (s *stubSim) Size() Size     { return Size{W: 2, H: 1} }
func (s *stubSim) Reset(int64)    {}
func (s *stubSim) Step()          {}
func (s *stubSim) Cells() []uint8 { return s.cells }

func TestRegistry(t *testing.T) {
	Register("stub-registry", func(map[string]string) Sim { return &stubSim{} })

	sim, err := New("stub-registry", nil)
	require.NoError(t, err)
	assert.Equal(t, "stub", sim.Name())
	assert.Contains(t, Names(), "stub-registry")

	_, err = New("missing", nil)
	require.ErrorIs(t, err, ErrUnknownSim)

	assert.Panics(t, func() {
		Register("stub-registry", func(map[string]string) Sim { return &stubSim{} })
	})
}

func TestByteGrid(t *testing.T) {
	g := NewByteGrid(0, 3)
	assert.Equal(t, 1, g.W)
	assert.Len(t, g.Cells(), 3)

	g.Resize(4, 2)
	g.Set(3, 1, 7)
	g.Set(4, 1, 9)
	assert.Equal(t, uint8(7), g.At(3, 1))
	assert.Equal(t, uint8(7), g.Cells()[g.Index(3, 1)])
	assert.Zero(t, g.At(-1, 0))

	g.Clear()
	assert.Zero(t, g.At(3, 1))
}

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	assert.Equal(t, 100*time.Millisecond, fs.Interval())
	assert.True(t, fs.ShouldStep(), "first poll steps")
	assert.False(t, fs.ShouldStep())

	clock = clock.Add(50 * time.Millisecond)
	assert.False(t, fs.ShouldStep())
	clock = clock.Add(60 * time.Millisecond)
	assert.True(t, fs.ShouldStep())

	clock = clock.Add(time.Second)
	assert.Equal(t, 4, fs.Pending(4))
}

func TestFixedStepDefaultsRate(t *testing.T) {
	fs := NewFixedStep(0)
	assert.Equal(t, time.Second/60, fs.Interval())
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Grid", Params: []Parameter{IntParam("w", "Width", 12), Int64Param("seed", "Seed", -3)}},
		{Name: "Flags", Params: []Parameter{BoolParam("connect", "Connect", true)}},
	}}

	p, ok := snap.Lookup("seed")
	require.True(t, ok)
	assert.Equal(t, "-3", p.Value)

	p, ok = snap.Lookup("connect")
	require.True(t, ok)
	assert.Equal(t, ParamTypeBool, p.Type)
	assert.Equal(t, "true", p.Value)

	_, ok = snap.Lookup("nope")
	assert.False(t, ok)
}

func TestParameterControlClamp(t *testing.T) {
	c := ParameterControl{Min: 1, Max: 5, HasMin: true, HasMax: true}
	assert.Equal(t, 1, c.Clamp(-4))
	assert.Equal(t, 5, c.Clamp(9))
	assert.Equal(t, 3, c.Clamp(3))
	assert.Equal(t, 100, ParameterControl{}.Clamp(100))
}
