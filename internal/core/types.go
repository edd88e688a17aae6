package core

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownSim is returned by New for names nothing registered.
var ErrUnknownSim = errors.New("unknown sim")

// Size describes the dimensions of a display buffer.
type Size struct {
	W int
	H int
}

// Sim is a grid process that a viewer can reset and advance one tick at a
// time. Cells returns a W*H row-major buffer of palette indices.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Finisher is implemented by sims that reach a final state.
type Finisher interface {
	Done() bool
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name. Registering
// the same name twice panics.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	if _, dup := sims[name]; dup {
		panic(fmt.Sprintf("core: sim %q registered twice", name))
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered sims in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the sim registered under name.
func New(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownSim, name, Names())
	}
	return f(cfg), nil
}
