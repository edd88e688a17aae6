//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	"mazegen/internal/app"
	"mazegen/internal/core"
	"mazegen/internal/ctxlog"
	_ "mazegen/internal/sims/maze"
	pkgcore "mazegen/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := cfg.Log.Logger(os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	ctx := ctxlog.WithLogger(context.Background(), logger)

	simCfg, err := cfg.SimConfig(ctx)
	if err != nil {
		log.Fatal(err)
	}
	sim, err := core.New(cfg.Sim, simCfg)
	if err != nil {
		log.Fatalf("%v (available: %v)", err, core.Names())
	}
	if s, ok := sim.(interface{ SetLogger(*slog.Logger) }); ok {
		s.SetLogger(logger)
	}

	seed := cfg.Seed
	if seed == 0 {
		// a preset may pin the seed
		seed, _ = strconv.ParseInt(simCfg["seed"], 10, 64)
	}
	seed = pkgcore.ResolveSeed(seed)
	sim.Reset(seed)
	logger.Info("starting viewer", "sim", sim.Name(), "seed", seed)

	game := app.New(sim, cfg.Scale, cfg.HUDWidth, seed)
	size := sim.Size()

	ebiten.SetWindowTitle(fmt.Sprintf("mazegen - %s", sim.Name()))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
