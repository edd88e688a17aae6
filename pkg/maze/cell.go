// Package maze generates perfect mazes on a doubled-resolution grid, with
// optional rectangular rooms spliced into the corridor network.
//
// A logical W×H maze is stored as a (2W+1)×(2H+1) array. Positions whose
// coordinates are both odd hold cells; every other position is a wall slot
// that is opened only when the two cells it separates are linked.
package maze

import "fmt"

// CellState is the value stored at every position of a Grid.
type CellState uint8

// The numeric values are stable and form the wire codes used by Encode.
const (
	Wall CellState = iota
	Unvisited
	Open
	Room
	RoomAlt

	// Boundary is returned for coordinates outside the grid. It is never stored.
	Boundary CellState = 0xFF
)

// numStates is the number of storable states.
const numStates = int(RoomAlt) + 1

// String returns the lower-case state name.
func (s CellState) String() string {
	switch s {
	case Wall:
		return "wall"
	case Unvisited:
		return "unvisited"
	case Open:
		return "open"
	case Room:
		return "room"
	case RoomAlt:
		return "room_alt"
	case Boundary:
		return "boundary"
	}
	return fmt.Sprintf("CellState(%d)", uint8(s))
}

// Rune returns the glyph used by the text codec.
func (s CellState) Rune() rune {
	switch s {
	case Wall:
		return '#'
	case Unvisited:
		return '.'
	case Open:
		return ' '
	case Room:
		return '+'
	case RoomAlt:
		return '-'
	}
	return '?'
}

// ParseCellState maps a state name back to its value.
func ParseCellState(name string) (CellState, error) {
	for s := Wall; int(s) < numStates; s++ {
		if s.String() == name {
			return s, nil
		}
	}
	return Wall, fmt.Errorf("maze: unknown cell state %q", name)
}

// IsTerminal reports whether carving stops at a cell in state s: carved
// corridors, rooms and the map edge all count as already satisfied.
func IsTerminal(s CellState) bool {
	switch s {
	case Open, Room, RoomAlt, Boundary:
		return true
	}
	return false
}

// IsRoom reports whether s is one of the room classes.
func IsRoom(s CellState) bool {
	return s == Room || s == RoomAlt
}

func stateFromRune(r rune) (CellState, bool) {
	switch r {
	case '#':
		return Wall, true
	case '.':
		return Unvisited, true
	case ' ':
		return Open, true
	case '+':
		return Room, true
	case '-':
		return RoomAlt, true
	}
	return Wall, false
}
