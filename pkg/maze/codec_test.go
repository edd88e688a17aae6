package maze

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalTextBlank(t *testing.T) {
	g, err := New(1, 1)
	require.NoError(t, err)

	b, err := g.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "###\n#.#\n###\n", string(b))
	assert.Equal(t, string(b), g.String())
}

func TestTextRoundTrip(t *testing.T) {
	res, err := Generate(Options{
		Width:  9,
		Height: 6,
		Rooms:  []RoomOptions{{Iterations: 2, MaxDim: 3}, {Iterations: 2, MaxDim: 2, Tile: RoomAlt}},
	}, newRand(17))
	require.NoError(t, err)

	text, err := res.Grid.MarshalText()
	require.NoError(t, err)

	var back Grid
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, 9, back.Width())
	assert.Equal(t, 6, back.Height())
	if diff := cmp.Diff(Encode(res.Grid), Encode(&back)); diff != "" {
		t.Fatalf("text round trip changed the grid (-want +got):\n%s", diff)
	}
}

func TestUnmarshalTextAcceptsCRLF(t *testing.T) {
	var g Grid
	require.NoError(t, g.UnmarshalText([]byte("#####\r\n# +.#\r\n#####\r\n\r\n")))

	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 1, g.Height())
	assert.Equal(t, Open, g.CellAt(0, 0))
	assert.Equal(t, Room, g.At(2, 1))
	assert.Equal(t, Unvisited, g.CellAt(1, 0))
}

func TestUnmarshalTextRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"empty":         "",
		"ragged rows":   "###\n#.#\n##\n",
		"unknown glyph": "###\n#x#\n###\n",
		"even width":    "####\n#..#\n####\n",
		"wall in cell":  "###\n###\n###\n",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			var g Grid
			require.ErrorIs(t, g.UnmarshalText([]byte(text)), ErrCorrupt)
		})
	}
}

func TestDecodeValidates(t *testing.T) {
	_, err := Decode(1, 3, []uint8{0, 1, 0})
	require.ErrorIs(t, err, ErrInvalidSize)

	_, err = Decode(3, 3, []uint8{0, 0, 0})
	require.ErrorIs(t, err, ErrCorrupt)

	bad := []uint8{0, 0, 0, 0, 9, 0, 0, 0, 0}
	_, err = Decode(3, 3, bad)
	require.ErrorIs(t, err, ErrCorrupt)

	g, err := Decode(3, 3, []uint8{0, 0, 0, 0, 3, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, Room, g.CellAt(0, 0))
}

func TestEncodeIntoReusesBuffer(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)
	g.SetCell(1, 1, Open)

	buf := make([]uint8, 64)
	out := EncodeInto(buf, g)
	require.Len(t, out, g.Cols()*g.Rows())
	assert.Equal(t, &buf[0], &out[0])
	assert.Equal(t, Encode(g), out)
}
