// Command mazegen generates one maze and writes it as text, PNG or JSON, or
// animates the generation in the terminal with -tui.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"mazegen/internal/cli"
	"mazegen/internal/config"
	"mazegen/internal/ctxlog"
	"mazegen/internal/render"
	mazesim "mazegen/internal/sims/maze"
	"mazegen/internal/term"
	pkgcore "mazegen/pkg/core"
	"mazegen/pkg/maze"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exit *cli.ExitError
		if errors.As(err, &exit) {
			fmt.Fprintln(os.Stderr, exit.Message)
			os.Exit(exit.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type flags struct {
	sim     mazesim.Config
	preset  string
	vars    cli.Vars
	format  string
	output  string
	spaced  bool
	cell    int
	palette string
	tui     bool
	tps     int
	log     cli.LogFlags
}

func (f *flags) bind(fs *flag.FlagSet) {
	p := &f.sim.Params
	fs.IntVar(&f.sim.Width, "w", f.sim.Width, "maze width in cells")
	fs.IntVar(&f.sim.Height, "h", f.sim.Height, "maze height in cells")
	fs.Int64Var(&f.sim.Seed, "seed", 0, "RNG seed; 0 picks one from the clock")
	fs.IntVar(&p.Rooms, "rooms", p.Rooms, "room placement attempts")
	fs.IntVar(&p.RoomMaxDim, "room-max-dim", p.RoomMaxDim, "largest room side")
	fs.IntVar(&p.AltRooms, "alt-rooms", p.AltRooms, "placement attempts for the second room class")
	fs.IntVar(&p.AltMaxDim, "alt-max-dim", p.AltMaxDim, "largest side of second-class rooms")
	fs.BoolVar(&p.AllowIntersection, "overlap", p.AllowIntersection, "let rooms overlap")
	fs.IntVar(&p.MaxDepth, "max-depth", p.MaxDepth, fmt.Sprintf("carving stack cap; 0 is unlimited, %d is the classic cap", maze.DefaultMaxDepth))
	fs.BoolVar(&p.Connect, "connect", p.Connect, "splice rooms into the corridors")
	fs.IntVar(&p.StepsPerTick, "steps", p.StepsPerTick, "carver steps per tick with -tui")
	fs.StringVar(&f.preset, "preset", "", "HCL preset file; -w, -h, -seed, -max-depth and -connect override it")
	fs.Var(f.vars, "var", "preset variable as key=value (repeatable)")
	fs.StringVar(&f.format, "format", "text", "output format: text, png, json or codes")
	fs.StringVar(&f.output, "o", "", "output file; stdout when empty")
	fs.BoolVar(&f.spaced, "spaced", false, "pad text glyphs to look square")
	fs.IntVar(&f.cell, "cell", 0, "PNG pixels per array position; 0 uses the preset or 8")
	fs.StringVar(&f.palette, "palette", "", "PNG colors: mono or states")
	fs.BoolVar(&f.tui, "tui", false, "animate the generation in the terminal")
	fs.IntVar(&f.tps, "tps", 30, "ticks per second with -tui")
	f.log.Bind(fs)
}

func run(out, errOut io.Writer, args []string) error {
	fs := flag.NewFlagSet("mazegen", flag.ContinueOnError)
	fs.SetOutput(errOut)
	f := &flags{sim: mazesim.DefaultConfig(), vars: cli.Vars{}}
	f.bind(fs)
	help, err := cli.Parse(fs, args)
	if err != nil || help {
		return err
	}
	if fs.NArg() > 0 {
		return cli.Usagef("unexpected arguments: %v", fs.Args())
	}
	switch f.format {
	case "text", "png", "json", "codes":
	default:
		return cli.Usagef("invalid format %q: must be 'text', 'png', 'json' or 'codes'", f.format)
	}
	if f.palette != "" && f.palette != "mono" && f.palette != "states" {
		return cli.Usagef("invalid palette %q: must be 'mono' or 'states'", f.palette)
	}

	log, err := f.log.Logger(errOut)
	if err != nil {
		return err
	}
	ctx := ctxlog.WithLogger(context.Background(), log)

	simCfg := f.sim
	opts := simCfg.Options()
	rnd := config.DefaultRender()
	if f.preset != "" {
		p, err := config.Load(ctx, f.preset, f.vars)
		if err != nil {
			return err
		}
		simCfg = mazesim.FromMap(p.SimConfig())
		simCfg.Params.StepsPerTick = f.sim.Params.StepsPerTick
		opts = p.Options()
		rnd = p.Render
		overridePreset(fs, f, &simCfg, &opts)
	}
	if simCfg.Width <= 0 || simCfg.Height <= 0 {
		return cli.Usagef("invalid size %dx%d", simCfg.Width, simCfg.Height)
	}
	seed := pkgcore.ResolveSeed(simCfg.Seed)
	simCfg.Seed = seed
	log.Info("generating maze", "seed", seed, "width", simCfg.Width, "height", simCfg.Height)

	if f.tui {
		return runTUI(simCfg, f.tps, log)
	}

	opts.Logger = log
	res, err := maze.Generate(opts, pkgcore.NewRNG(seed))
	if err != nil {
		return cli.Usagef("%v", err)
	}

	if f.cell > 0 {
		rnd.CellWidth, rnd.CellHeight = f.cell, f.cell
	}
	if f.palette != "" {
		rnd.Palette = f.palette
	}
	rnd.Spaced = rnd.Spaced || f.spaced

	if f.output == "" {
		return write(out, f.format, res, seed, rnd)
	}
	file, err := os.Create(f.output)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := write(file, f.format, res, seed, rnd); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// overridePreset applies the generation flags that were set explicitly on
// top of a preset.
func overridePreset(fs *flag.FlagSet, f *flags, simCfg *mazesim.Config, opts *maze.Options) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "w":
			simCfg.Width = f.sim.Width
		case "h":
			simCfg.Height = f.sim.Height
		case "seed":
			simCfg.Seed = f.sim.Seed
		case "max-depth":
			simCfg.Params.MaxDepth = f.sim.Params.MaxDepth
		case "connect":
			simCfg.Params.Connect = f.sim.Params.Connect
		}
	})
	opts.Width, opts.Height = simCfg.Width, simCfg.Height
	opts.MaxDepth = simCfg.Params.MaxDepth
	opts.Connect = simCfg.Params.Connect
}

func write(w io.Writer, format string, res *maze.Result, seed int64, rnd config.Render) error {
	switch format {
	case "png":
		img := render.Image(res.Grid, rnd.CellWidth, rnd.CellHeight, rnd.Wall, rnd.Floor)
		if rnd.Palette == "states" {
			img = render.PaletteImage(res.Grid, rnd.CellWidth, rnd.CellHeight, mazesim.StatePalette())
		}
		return render.WritePNG(w, img)
	case "json":
		return encodeJSON(w, render.NewSummary(res, seed))
	case "codes":
		return encodeJSON(w, render.NewCodes(res.Grid))
	}
	_, err := io.WriteString(w, render.Text(res.Grid, rnd.Spaced))
	return err
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func runTUI(cfg mazesim.Config, tps int, log *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	defer screen.Fini()

	sim := mazesim.NewWithConfig(cfg)
	sim.SetLogger(log)
	v := term.New(screen, sim, cfg.Seed, term.Options{TPS: tps, Logger: log})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := v.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
