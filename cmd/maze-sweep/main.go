// Command maze-sweep generates many mazes across a grid of room and depth
// settings and ranks the parameter sets by how branchy the results are.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"mazegen/internal/cli"
	pkgcore "mazegen/pkg/core"
	"mazegen/pkg/maze"
)

type paramSet struct {
	rooms    int
	maxDim   int
	maxDepth int
}

func (p paramSet) String() string {
	return fmt.Sprintf("rooms=%d max_dim=%d max_depth=%d", p.rooms, p.maxDim, p.maxDepth)
}

type job struct {
	params paramSet
	seed   int64
}

type scenarioResult struct {
	params   paramSet
	seed     int64
	passes   int
	doors    int
	placed   int
	regions  int
	deadEnds int
	err      error
}

// aggregate sums the results of one parameter set over every seed.
type aggregate struct {
	params   paramSet
	runs     int
	passes   int
	doors    int
	placed   int
	deadEnds int
	split    int
}

func (a aggregate) mean(v int) float64 {
	if a.runs == 0 {
		return 0
	}
	return float64(v) / float64(a.runs)
}

type sweepConfig struct {
	width, height int
	seeds         int
	firstSeed     int64
	workers       int
	top           int
	rooms         []int
	maxDims       []int
	depths        []int
}

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

func run(out, errOut io.Writer, args []string) error {
	fs := flag.NewFlagSet("maze-sweep", flag.ContinueOnError)
	fs.SetOutput(errOut)

	cfg := sweepConfig{rooms: []int{0, 4, 8, 16}, maxDims: []int{3, 6}, depths: []int{0, 8, 32}}
	fs.IntVar(&cfg.width, "w", 40, "maze width in cells")
	fs.IntVar(&cfg.height, "h", 30, "maze height in cells")
	fs.IntVar(&cfg.seeds, "seeds", 20, "seeds to generate per parameter set")
	fs.Int64Var(&cfg.firstSeed, "first-seed", 1, "first seed of the range")
	fs.IntVar(&cfg.workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	fs.IntVar(&cfg.top, "top", 5, "parameter sets to print")
	var logFlags cli.LogFlags
	logFlags.Bind(fs)

	help, err := cli.Parse(fs, args)
	if err != nil || help {
		return err
	}
	if cfg.width <= 0 || cfg.height <= 0 {
		return cli.Usagef("invalid size %dx%d", cfg.width, cfg.height)
	}
	if cfg.seeds <= 0 || cfg.workers <= 0 {
		return cli.Usagef("seeds and workers must be positive")
	}
	log, err := logFlags.Logger(errOut)
	if err != nil {
		return err
	}

	sets := paramSets(cfg)
	fmt.Fprintf(out, "Sweeping %d parameter sets x %d seeds (%d workers, %dx%d)\n",
		len(sets), cfg.seeds, cfg.workers, cfg.width, cfg.height)

	start := time.Now()
	aggs, err := sweep(cfg, sets)
	if err != nil {
		return err
	}
	log.Info("sweep finished", "sets", len(sets), "seeds", cfg.seeds, "elapsed", time.Since(start).Round(time.Millisecond))

	sort.SliceStable(aggs, func(i, j int) bool {
		return aggs[i].mean(aggs[i].deadEnds) > aggs[j].mean(aggs[j].deadEnds)
	})
	fmt.Fprintf(out, "\nTop %d by dead ends:\n", min(cfg.top, len(aggs)))
	for i := 0; i < len(aggs) && i < cfg.top; i++ {
		a := aggs[i]
		fmt.Fprintf(out, "%2d) deadEnds=%.1f passes=%.2f doors=%.1f placed=%.1f split=%d %s\n",
			i+1, a.mean(a.deadEnds), a.mean(a.passes), a.mean(a.doors), a.mean(a.placed), a.split, a.params)
	}
	return nil
}

func paramSets(cfg sweepConfig) []paramSet {
	var sets []paramSet
	for _, rooms := range cfg.rooms {
		for _, dim := range cfg.maxDims {
			for _, depth := range cfg.depths {
				sets = append(sets, paramSet{rooms: rooms, maxDim: dim, maxDepth: depth})
			}
		}
	}
	return sets
}

// sweep runs every (set, seed) pair on a pool of workers and folds the
// results per parameter set, keeping the order of sets.
func sweep(cfg sweepConfig, sets []paramSet) ([]aggregate, error) {
	jobs := make(chan job)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < cfg.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- runScenario(cfg, j)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			for s := 0; s < cfg.seeds; s++ {
				jobs <- job{params: params, seed: cfg.firstSeed + int64(s)}
			}
		}
		close(jobs)
	}()

	index := make(map[paramSet]int, len(sets))
	aggs := make([]aggregate, len(sets))
	for i, p := range sets {
		index[p] = i
		aggs[i].params = p
	}
	var errs []error
	for res := range results {
		if res.err != nil {
			errs = append(errs, fmt.Errorf("%s seed=%d: %w", res.params, res.seed, res.err))
			continue
		}
		a := &aggs[index[res.params]]
		a.runs++
		a.passes += res.passes
		a.doors += res.doors
		a.placed += res.placed
		a.deadEnds += res.deadEnds
		if res.regions != 1 {
			a.split++
		}
	}
	return aggs, errors.Join(errs...)
}

func runScenario(cfg sweepConfig, j job) scenarioResult {
	var rooms []maze.RoomOptions
	if j.params.rooms > 0 {
		rooms = []maze.RoomOptions{{Iterations: j.params.rooms, MaxDim: j.params.maxDim}}
	}
	res, err := maze.Generate(maze.Options{
		Width:    cfg.width,
		Height:   cfg.height,
		Rooms:    rooms,
		MaxDepth: j.params.maxDepth,
		Connect:  true,
	}, pkgcore.NewRNG(j.seed))
	if err != nil {
		return scenarioResult{params: j.params, seed: j.seed, err: err}
	}
	return scenarioResult{
		params:   j.params,
		seed:     j.seed,
		passes:   res.Passes,
		doors:    res.Doors,
		placed:   len(res.Rooms),
		regions:  len(maze.Regions(res.Grid, maze.OpenOnly)),
		deadEnds: maze.DeadEnds(res.Grid),
	}
}
