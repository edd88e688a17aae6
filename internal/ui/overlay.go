//go:build ebiten

package ui

import (
	"image/color"

	"mazegen/internal/core"
	"mazegen/pkg/maze"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type roomProvider interface {
	Rooms() []maze.Rect
}

type headProvider interface {
	Head() (maze.Point, bool)
}

// Overlay draws optional debugging visuals on top of the sim view: key 1
// outlines the placed rooms, key 2 rings the carver head.
type Overlay struct {
	sim       core.Sim
	scale     int
	showRooms bool
	showHead  bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: max(scale, 1), showHead: true}
}

// Update toggles layers from keyboard input.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showRooms = !o.showRooms
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showHead = !o.showHead
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if p, ok := o.sim.(roomProvider); ok && o.showRooms {
		outline := color.RGBA{R: 255, G: 230, B: 80, A: 255}
		for _, r := range p.Rooms() {
			b := roomBounds(r, o.scale)
			vector.StrokeRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), 1, outline, false)
		}
	}
	if p, ok := o.sim.(headProvider); ok && o.showHead {
		if head, active := p.Head(); active {
			s := float32(o.scale)
			cx := (float32(2*head.X+1) + 0.5) * s
			cy := (float32(2*head.Y+1) + 0.5) * s
			vector.StrokeCircle(screen, cx, cy, 1.5*s, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255}, true)
		}
	}
}
