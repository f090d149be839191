// Command tile-sweep times the tiled scheduler across a range of tile sizes
// and checks every run against the sequential scheduler.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"hpp-ca/internal/lga"
	"hpp-ca/internal/sims/hpp"
)

type tileSize struct {
	w, h int
}

func (t tileSize) String() string { return fmt.Sprintf("%dx%d", t.w, t.h) }

type sweepResult struct {
	tile      tileSize
	elapsed   time.Duration
	perStep   time.Duration
	particles int
	match     bool
	err       error
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("tile-sweep: ")

	cfg := hpp.DefaultConfig()
	cfg.Width = 512
	cfg.Height = 512
	steps := flag.Int("steps", 64, "generations per run")
	jobsN := flag.Int("jobs", 1, "runs measured concurrently")
	flag.IntVar(&cfg.Width, "w", cfg.Width, "grid width")
	flag.IntVar(&cfg.Height, "h", cfg.Height, "grid height")
	flag.IntVar(&cfg.Workers, "workers", runtime.NumCPU(), "tile workers per run")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the random example")
	flag.StringVar(&cfg.Boundary, "boundary", cfg.Boundary, "boundary mode")
	flag.StringVar(&cfg.Rule, "rule", cfg.Rule, "collision rule")
	top := flag.Int("top", 5, "results to print")
	flag.Parse()

	if cfg.Width <= 0 || cfg.Height <= 0 {
		log.Fatalf("width and height must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if *jobsN <= 0 {
		*jobsN = 1
	}

	base, err := hpp.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	initial := base.Automaton()

	oracle := initial.Clone()
	start := time.Now()
	for i := 0; i < *steps; i++ {
		oracle.Update()
	}
	seqElapsed := time.Since(start)

	sizes := tileSizes(cfg.Width, cfg.Height)
	fmt.Printf("Sweeping %d tile sizes on %dx%d (%d steps, %d workers, %d concurrent)\n",
		len(sizes), cfg.Width, cfg.Height, *steps, cfg.Workers, *jobsN)
	fmt.Printf("Sequential baseline: %s (%s/step)\n",
		seqElapsed.Round(time.Microsecond), (seqElapsed / time.Duration(max(1, *steps))).Round(time.Microsecond))

	jobs := make(chan tileSize)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < *jobsN; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tile := range jobs {
				results <- runSweep(initial, oracle, tile, cfg.Workers, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, tile := range sizes {
			jobs <- tile
		}
		close(jobs)
	}()

	var all []sweepResult
	failed := 0
	for res := range results {
		switch {
		case res.err != nil:
			failed++
			fmt.Printf("tile %s failed: %v\n", res.tile, res.err)
			continue
		case !res.match:
			failed++
			fmt.Printf("tile %s diverged from the sequential result\n", res.tile)
			continue
		}
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].elapsed < all[j].elapsed })

	fmt.Printf("\nTop %d results:\n", min(*top, len(all)))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		speedup := float64(seqElapsed) / float64(max(res.elapsed, 1))
		fmt.Printf("%2d) tile=%-9s total=%-12s step=%-10s speedup=%.2fx particles=%d\n",
			i+1, res.tile, res.elapsed.Round(time.Microsecond), res.perStep.Round(time.Microsecond), speedup, res.particles)
	}
	if failed > 0 {
		log.Fatalf("%d of %d runs failed verification", failed, len(sizes))
	}
}

// tileSizes returns square and row-strip tiles at powers of two up to the
// grid dimensions, plus the whole grid as a single tile.
func tileSizes(w, h int) []tileSize {
	seen := make(map[tileSize]bool)
	var sizes []tileSize
	add := func(t tileSize) {
		t.w, t.h = min(t.w, w), min(t.h, h)
		if !seen[t] {
			seen[t] = true
			sizes = append(sizes, t)
		}
	}
	for n := 4; n < max(w, h); n *= 2 {
		add(tileSize{n, n})
		add(tileSize{w, n})
	}
	add(tileSize{w, h})
	return sizes
}

func runSweep(initial, oracle *lga.Automaton, tile tileSize, workers, steps int) sweepResult {
	auto := initial.Clone()
	auto.SetExecutor(lga.NewPoolExecutor(workers))

	res := sweepResult{tile: tile}
	start := time.Now()
	for i := 0; i < steps; i++ {
		if err := auto.UpdateParallel(tile.w, tile.h); err != nil {
			res.err = fmt.Errorf("generation %d: %w", auto.Generation(), err)
			return res
		}
	}
	res.elapsed = time.Since(start)
	res.perStep = res.elapsed / time.Duration(max(1, steps))
	res.particles = auto.Particles()
	res.match = auto.Equal(oracle)
	return res
}
