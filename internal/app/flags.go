package app

import (
	"context"
	"flag"

	"mazegen/internal/cli"
	"mazegen/internal/config"
)

// Config represents the command-line parameters of the viewers.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int
	Preset   string
	Vars     cli.Vars
	Log      cli.LogFlags
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "maze", Scale: 8, TPS: 60, HUDWidth: 240, Vars: cli.Vars{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for sim reset; 0 picks one from the clock")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels; 0 hides it")
	fs.StringVar(&c.Preset, "preset", c.Preset, "HCL preset file")
	fs.Var(c.Vars, "var", "preset variable as key=value (repeatable)")
	c.Log.Bind(fs)
}

// SimConfig returns the key/value map for the sim factory: the preset's
// settings when one is given, nil otherwise.
func (c *Config) SimConfig(ctx context.Context) (map[string]string, error) {
	if c.Preset == "" {
		return nil, nil
	}
	p, err := config.Load(ctx, c.Preset, c.Vars)
	if err != nil {
		return nil, err
	}
	return p.SimConfig(), nil
}
