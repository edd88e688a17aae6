package ui

import (
	"image"
	"strconv"

	"mazegen/internal/core"
	"mazegen/pkg/maze"
)

const (
	panelPadding   = 12
	lineHeight     = 30
	buttonSize     = 20
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	infoSpacing    = 18
	controlsTop    = panelPadding + headerBaseline + 14
)

type controlState struct {
	control core.ParameterControl

	value    int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// newControlStates lays the controls out as rows of label, value and
// -/+ buttons anchored to the right edge of a panel of the given width.
func newControlStates(controls []core.ParameterControl, width int) []controlState {
	states := make([]controlState, len(controls))
	for i, ctrl := range controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		states[i] = controlState{control: ctrl, top: top, minusRect: minus, plusRect: plus}
	}
	return states
}

// refresh copies current values out of the snapshot.
func refresh(states []controlState, snap core.ParameterSnapshot) {
	for i := range states {
		s := &states[i]
		s.hasValue = false
		p, ok := snap.Lookup(s.control.Key)
		if !ok || p.Type != core.ParamTypeInt {
			continue
		}
		v, err := strconv.Atoi(p.Value)
		if err != nil {
			continue
		}
		s.value, s.hasValue = v, true
	}
}

// target returns the value one step in direction dir and whether it
// differs from the current one once clamped.
func (s *controlState) target(dir int) (int, bool) {
	if !s.hasValue || dir == 0 {
		return s.value, false
	}
	step := max(s.control.Step, 1)
	v := s.control.Clamp(s.value + dir*step)
	return v, v != s.value
}

// hit finds the control button under (x, y) in panel coordinates.
func hit(states []controlState, x, y int) (idx, dir int, ok bool) {
	pt := image.Pt(x, y)
	for i := range states {
		switch {
		case pt.In(states[i].minusRect):
			return i, -1, true
		case pt.In(states[i].plusRect):
			return i, 1, true
		}
	}
	return 0, 0, false
}

// progressLines formats the read-only Progress group.
func progressLines(snap core.ParameterSnapshot) []string {
	var lines []string
	for _, g := range snap.Groups {
		if g.Name != "Progress" {
			continue
		}
		for _, p := range g.Params {
			lines = append(lines, p.Label+": "+p.Value)
		}
	}
	return lines
}

// roomBounds maps a room to the pixels its cells and inner walls cover on
// a display drawn at scale pixels per array position.
func roomBounds(r maze.Rect, scale int) image.Rectangle {
	x0, y0 := 2*r.X+1, 2*r.Y+1
	x1, y1 := 2*(r.X+r.W-1)+2, 2*(r.Y+r.H-1)+2
	return image.Rect(x0*scale, y0*scale, x1*scale, y1*scale)
}
