// Package term animates a core.Sim in a terminal through tcell.
package term

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"mazegen/internal/core"
)

const (
	frameInterval = 16 * time.Millisecond
	maxCatchUp    = 8
)

type paletted interface {
	Palette() []color.RGBA
}

// Options tune a Viewer.
type Options struct {
	// TPS is the sim tick rate; the screen redraws at roughly 60 fps.
	TPS int
	// ExitWhenDone makes Run return once a Finisher sim is done.
	ExitWhenDone bool
	Logger       *slog.Logger
}

// Viewer draws every display value as two terminal columns colored by the
// sim palette, with one status line below.
type Viewer struct {
	screen tcell.Screen
	sim    core.Sim
	styles []tcell.Style
	pace   *core.FixedStep
	opts   Options
	log    *slog.Logger

	paused   bool
	tickOnce bool
	seed     int64
}

// New binds a viewer to an initialised screen.
func New(screen tcell.Screen, sim core.Sim, seed int64, opts Options) *Viewer {
	v := &Viewer{
		screen: screen,
		sim:    sim,
		pace:   core.NewFixedStep(opts.TPS),
		opts:   opts,
		log:    opts.Logger,
		seed:   seed,
	}
	if v.log == nil {
		v.log = slog.Default()
	}
	if p, ok := sim.(paletted); ok {
		for _, c := range p.Palette() {
			bg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
			v.styles = append(v.styles, tcell.StyleDefault.Background(bg))
		}
	}
	return v
}

func (v *Viewer) style(code uint8) tcell.Style {
	if len(v.styles) == 0 {
		if code == 0 {
			return tcell.StyleDefault.Reverse(true)
		}
		return tcell.StyleDefault
	}
	return v.styles[min(int(code), len(v.styles)-1)]
}

// Draw paints the current display buffer and status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	size := v.sim.Size()
	cells := v.sim.Cells()
	sw, sh := v.screen.Size()
	for y := 0; y < size.H && y < sh-1; y++ {
		for x := 0; x < size.W && 2*x+1 < sw; x++ {
			st := v.style(cells[y*size.W+x])
			v.screen.SetContent(2*x, y, ' ', nil, st)
			v.screen.SetContent(2*x+1, y, ' ', nil, st)
		}
	}
	v.drawText(0, min(size.H, sh-1), v.Status())
	v.screen.Show()
}

func (v *Viewer) drawText(x, y int, s string) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

// Status summarises the sim state for the bottom line.
func (v *Viewer) Status() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s seed=%d", v.sim.Name(), v.seed)
	if p, ok := v.sim.(core.ParameterProvider); ok {
		for _, g := range p.Parameters().Groups {
			if g.Name != "Progress" {
				continue
			}
			for _, param := range g.Params {
				fmt.Fprintf(&b, " %s=%s", param.Key, param.Value)
			}
		}
	}
	switch {
	case v.done():
		b.WriteString(" [done]")
	case v.paused:
		b.WriteString(" [paused]")
	}
	return b.String()
}

func (v *Viewer) done() bool {
	f, ok := v.sim.(core.Finisher)
	return ok && f.Done()
}

// HandleEvent applies one input event and reports whether the viewer
// should quit. Keys: q/Esc/Ctrl-C quit, space pause, n single step,
// r restart with the same seed, s restart with a fresh seed.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case ' ':
				v.paused = !v.paused
			case 'n':
				v.tickOnce = true
			case 'r':
				v.reset(v.seed)
			case 's':
				v.reset(time.Now().UnixNano())
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return false
}

func (v *Viewer) reset(seed int64) {
	v.seed = seed
	v.sim.Reset(seed)
	v.tickOnce = false
	v.log.Debug("sim reset", "sim", v.sim.Name(), "seed", seed)
}

// Tick advances the sim by the number of steps that are due.
func (v *Viewer) Tick() {
	n := v.pace.Pending(maxCatchUp)
	if v.paused {
		n = 0
	}
	if v.tickOnce {
		n = max(n, 1)
		v.tickOnce = false
	}
	for i := 0; i < n && !v.done(); i++ {
		v.sim.Step()
	}
}

// Run polls input and redraws until the user quits, ctx ends or, with
// ExitWhenDone, the sim finishes. The caller owns the screen lifecycle.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-stop:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		case <-ticker.C:
			v.Tick()
			v.Draw()
			if v.opts.ExitWhenDone && v.done() {
				return nil
			}
		}
	}
}
