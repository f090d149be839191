// Command hpp runs the lattice gas headlessly and writes every generation to
// stdout.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"hpp-ca/internal/lga"
	"hpp-ca/internal/sims/hpp"
)

type options struct {
	cfg        hpp.Config
	iterations int
	verify     bool
	quiet      bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("hpp: ")

	opts := options{cfg: hpp.DefaultConfig(), iterations: 1000}
	opts.cfg.Width = 1024
	opts.cfg.Height = 1024
	bind(flag.CommandLine, &opts)
	flag.Parse()

	if opts.cfg.Width <= 0 || opts.cfg.Height <= 0 {
		log.Fatalf("width and height must be positive, got %dx%d", opts.cfg.Width, opts.cfg.Height)
	}
	if opts.iterations < 0 {
		log.Fatalf("iterations must not be negative, got %d", opts.iterations)
	}

	sim, err := hpp.New(opts.cfg)
	if err != nil {
		log.Fatal(err)
	}

	out := bufio.NewWriterSize(os.Stdout, 1<<16)
	if err := run(sim, opts, out); err != nil {
		out.Flush()
		log.Fatal(err)
	}
	if err := out.Flush(); err != nil {
		log.Fatal(err)
	}
}

func bind(fs *flag.FlagSet, o *options) {
	fs.IntVar(&o.cfg.Width, "w", o.cfg.Width, "grid width")
	fs.IntVar(&o.cfg.Height, "h", o.cfg.Height, "grid height")
	fs.IntVar(&o.iterations, "iterations", o.iterations, "number of generations to run")
	fs.StringVar(&o.cfg.Example, "example", o.cfg.Example, "initial condition: "+strings.Join(hpp.ExampleNames(), ", "))
	fs.StringVar(&o.cfg.Rule, "rule", o.cfg.Rule, "collision rule: "+strings.Join(lga.RuleNames(), ", ")+" or 16 comma-separated states")
	fs.StringVar(&o.cfg.Boundary, "boundary", o.cfg.Boundary, "boundary mode: periodic, closed or reflecting")
	fs.IntVar(&o.cfg.TileWidth, "tile-w", o.cfg.TileWidth, "tile width for the parallel scheduler (0 = sequential)")
	fs.IntVar(&o.cfg.TileHeight, "tile-h", o.cfg.TileHeight, "tile height for the parallel scheduler (0 = sequential)")
	fs.IntVar(&o.cfg.Workers, "workers", o.cfg.Workers, "tile worker goroutines (0 = GOMAXPROCS)")
	fs.Int64Var(&o.cfg.Seed, "seed", o.cfg.Seed, "seed for the random example")
	fs.Float64Var(&o.cfg.Density, "density", o.cfg.Density, "fraction of cells filled by the random example")
	fs.StringVar(&o.cfg.Format, "format", o.cfg.Format, "frame encoding: hex or glyph")
	fs.BoolVar(&o.verify, "verify", false, "check every parallel step against the sequential scheduler")
	fs.BoolVar(&o.quiet, "quiet", false, "only draw the final generation")
}

// run draws the initial generation and then alternates update and draw.
func run(sim *hpp.Sim, o options, out *bufio.Writer) error {
	if !o.quiet {
		if err := frame(sim, out); err != nil {
			return err
		}
	}
	for i := 0; i < o.iterations; i++ {
		var ref *lga.Automaton
		if o.verify && o.cfg.Parallel() {
			ref = sim.Automaton().Clone()
			ref.Update()
		}
		if err := sim.StepErr(); err != nil {
			return fmt.Errorf("generation %d: %w", sim.Generation(), err)
		}
		if ref != nil && !ref.Equal(sim.Automaton()) {
			return fmt.Errorf("generation %d: tiled result differs from sequential", sim.Generation())
		}
		if !o.quiet || i == o.iterations-1 {
			if err := frame(sim, out); err != nil {
				return err
			}
		}
	}
	return nil
}

func frame(sim *hpp.Sim, out *bufio.Writer) error {
	if err := sim.Draw(out); err != nil {
		return err
	}
	return out.WriteByte('\n')
}
