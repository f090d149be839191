// Package hpp adapts the lattice-gas engine to the simulation registry used
// by the viewers and the command-line driver.
package hpp

import (
	"fmt"
	"io"
	"log"

	"hpp-ca/internal/core"
	"hpp-ca/internal/lga"
)

// Sim runs an HPP lattice gas and mirrors its current generation into a byte
// buffer for rendering.
type Sim struct {
	name string
	cfg  Config

	mode    lga.Boundary
	rules   lga.RuleTable
	format  lga.Format
	example Example
	exec    *lga.PoolExecutor

	auto    *lga.Automaton
	display []uint8
	lastErr error
}

// New validates cfg and builds a Sim seeded with cfg.Seed.
func New(cfg Config) (*Sim, error) {
	return newNamed("hpp", cfg)
}

func newNamed(name string, cfg Config) (*Sim, error) {
	mode, err := lga.ParseBoundary(cfg.Boundary)
	if err != nil {
		return nil, err
	}
	rules, err := lga.ResolveRule(cfg.Rule)
	if err != nil {
		return nil, err
	}
	format, err := lga.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	example, ok := examples[cfg.Example]
	if !ok {
		return nil, fmt.Errorf("hpp: unknown example %q (available: %v)", cfg.Example, ExampleNames())
	}
	s := &Sim{
		name:    name,
		cfg:     cfg,
		mode:    mode,
		rules:   rules,
		format:  format,
		example: example,
		exec:    lga.NewPoolExecutor(cfg.Workers),
	}
	auto, err := s.build(cfg.Seed)
	if err != nil {
		return nil, err
	}
	s.install(auto)
	return s, nil
}

func (s *Sim) build(seed int64) (*lga.Automaton, error) {
	cfg := s.cfg
	cfg.Seed = seed
	return lga.New(cfg.Width, cfg.Height, s.mode, s.rules, s.example(cfg),
		lga.WithExecutor(s.exec),
		lga.WithFormat(s.format),
	)
}

func (s *Sim) install(auto *lga.Automaton) {
	s.auto = auto
	if len(s.display) != auto.Width()*auto.Height() {
		s.display = make([]uint8, auto.Width()*auto.Height())
	}
	s.lastErr = nil
	s.refreshDisplay()
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return s.name }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Cells exposes the current generation, one state value per byte.
func (s *Sim) Cells() []uint8 { return s.display }

// Config returns the active configuration.
func (s *Sim) Config() Config { return s.cfg }

// Automaton exposes the underlying engine.
func (s *Sim) Automaton() *lga.Automaton { return s.auto }

// Generation returns the number of completed steps since the last Reset.
func (s *Sim) Generation() uint64 { return s.auto.Generation() }

// Err returns the error of the most recent failed step, if any.
func (s *Sim) Err() error { return s.lastErr }

// Reset rebuilds the initial generation. A zero seed reuses the configured
// seed.
func (s *Sim) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	auto, err := s.build(seed)
	if err != nil {
		log.Printf("hpp: reset with seed %d: %v", seed, err)
		return
	}
	s.install(auto)
}

// Step advances one generation with the configured scheduler. A failed
// parallel step leaves the grid untouched and is recorded in Err.
func (s *Sim) Step() {
	if err := s.StepErr(); err != nil {
		log.Printf("hpp: generation %d: %v", s.auto.Generation(), err)
	}
}

// StepErr is Step with the error returned instead of logged.
func (s *Sim) StepErr() error {
	if s.cfg.Parallel() {
		if err := s.auto.UpdateParallel(s.cfg.TileWidth, s.cfg.TileHeight); err != nil {
			s.lastErr = err
			return err
		}
	} else {
		s.auto.Update()
	}
	s.lastErr = nil
	s.refreshDisplay()
	return nil
}

// Draw writes the current generation in the configured text format.
func (s *Sim) Draw(w io.Writer) error { return s.auto.Draw(w) }

func (s *Sim) refreshDisplay() {
	for i, st := range s.auto.View() {
		s.display[i] = uint8(st)
	}
}

func init() {
	core.Register("hpp", func(cfg map[string]string) (core.Sim, error) {
		return newNamed("hpp", FromMap(cfg))
	})
	core.Register("hpp-walls", func(cfg map[string]string) (core.Sim, error) {
		return newNamed("hpp-walls", ApplyMap(WallsConfig(), cfg))
	})
}
