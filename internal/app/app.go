//go:build ebiten

package app

import (
	"image/color"
	"time"

	"mazegen/internal/core"
	"mazegen/internal/render"
	"mazegen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletted interface {
	Palette() []color.RGBA
}

// Game adapts a core sim to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	palette []color.RGBA

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided sim. hudWidth 0 hides the panel.
func New(sim core.Sim, scale, hudWidth int, seed int64) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, hudWidth),
		overlay: ui.NewOverlay(sim, scale),
		palette: []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}},
		scale:   max(scale, 1),
		seed:    seed,
	}
	if p, ok := sim.(paletted); ok {
		g.palette = p.Palette()
	}
	return g
}

// Reset reinitializes the sim with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the sim.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		if f, ok := g.sim.(interface{ Finish() }); ok {
			f.Finish()
		}
	}

	size := g.sim.Size()
	g.hud.Update(size.W * g.scale)
	g.overlay.Update()

	// Parameter changes may resize the display.
	if w, h := g.painter.Size(); w != size.W || h != size.H {
		g.painter = render.NewGridPainter(size.W, size.H)
	}

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current sim state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
