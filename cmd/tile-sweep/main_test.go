package main

import (
	"testing"

	"hpp-ca/internal/sims/hpp"
)

func TestTileSizesCoverRange(t *testing.T) {
	sizes := tileSizes(20, 10)
	seen := make(map[tileSize]bool)
	for _, s := range sizes {
		if s.w <= 0 || s.h <= 0 || s.w > 20 || s.h > 10 {
			t.Fatalf("tile %s out of range", s)
		}
		if seen[s] {
			t.Fatalf("tile %s listed twice", s)
		}
		seen[s] = true
	}
	if !seen[tileSize{20, 10}] {
		t.Fatalf("whole-grid tile missing from %v", sizes)
	}
}

func TestRunSweepMatchesOracle(t *testing.T) {
	cfg := hpp.DefaultConfig()
	cfg.Width, cfg.Height = 24, 16
	sim, err := hpp.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	initial := sim.Automaton()
	oracle := initial.Clone()
	for i := 0; i < 6; i++ {
		oracle.Update()
	}
	for _, tile := range tileSizes(cfg.Width, cfg.Height) {
		res := runSweep(initial, oracle, tile, 3, 6)
		if res.err != nil {
			t.Fatalf("tile %s: %v", tile, res.err)
		}
		if !res.match {
			t.Fatalf("tile %s diverged", tile)
		}
		if res.particles != oracle.Particles() {
			t.Fatalf("tile %s: particles %d, want %d", tile, res.particles, oracle.Particles())
		}
	}
}
