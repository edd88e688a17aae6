//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"mazegen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOff   = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// HUD renders the parameter panel to the right of the sim view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls []controlState
	setter   core.IntParameterSetter
	offsetX  int
	title    string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided sim and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0), title: fmt.Sprintf("%s controls", sim.Name())}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if p, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = newControlStates(p.ParameterControls(), h.width)
	}
	if s, ok := sim.(core.IntParameterSetter); ok {
		h.setter = s
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the snapshot and applies button clicks. offsetX is the
// screen x of the panel's left edge.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	p, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	h.snapshot = p.Parameters()
	refresh(h.controls, h.snapshot)

	if h.setter == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	idx, dir, ok := hit(h.controls, mx-h.offsetX, my)
	if !ok {
		return
	}
	s := &h.controls[idx]
	if v, changed := s.target(dir); changed && h.setter.SetIntParameter(s.control.Key, v) {
		s.value = v
	}
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	for i := range h.controls {
		s := &h.controls[i]
		labelY := s.top + labelBaseline
		text.Draw(h.panel, s.control.Label, face, panelPadding, labelY, labelColor)
		value, col := "--", mutedColor
		if s.hasValue {
			value, col = strconv.Itoa(s.value), labelColor
		}
		w := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, s.minusRect.Min.X-buttonGap-w, labelY, col)
		_, minus := s.target(-1)
		_, plus := s.target(1)
		h.drawButton(s.minusRect, "-", minus && h.setter != nil)
		h.drawButton(s.plusRect, "+", plus && h.setter != nil)
	}

	y = controlsTop + len(h.controls)*lineHeight + infoSpacing
	for _, line := range progressLines(h.snapshot) {
		text.Draw(h.panel, line, face, panelPadding, y, mutedColor)
		y += infoSpacing
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, labelColor
	if !enabled {
		bg, fg = buttonOff, mutedColor
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
