package hpp

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"hpp-ca/internal/core"
	"hpp-ca/internal/lga"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 24
	cfg.Height = 16
	cfg.Seed = 99
	cfg.TileWidth = 5
	cfg.TileHeight = 3
	cfg.Workers = 3
	return cfg
}

func TestFromMapOverridesAndIgnoresInvalid(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":        "64",
		"h":        "-3",
		"seed":     "7",
		"boundary": "closed",
		"rule":     "bogus",
		"example":  "walls",
		"density":  "0.25",
		"tile_w":   "8",
		"tile_h":   "x",
		"workers":  "2",
		"format":   "glyph",
	})
	def := DefaultConfig()
	if cfg.Width != 64 || cfg.Height != def.Height {
		t.Fatalf("dimensions %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Seed != 7 || cfg.Boundary != "closed" || cfg.Example != "walls" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Rule != def.Rule {
		t.Fatalf("invalid rule must keep default, got %q", cfg.Rule)
	}
	if cfg.Density != 0.25 || cfg.TileWidth != 8 || cfg.TileHeight != def.TileHeight || cfg.Workers != 2 {
		t.Fatalf("unexpected scheduler config %+v", cfg)
	}
	if cfg.Format != "glyph" {
		t.Fatalf("format = %q", cfg.Format)
	}
	if got := FromMap(nil); got != def {
		t.Fatalf("nil map must return defaults, got %+v", got)
	}
}

func TestNewRejectsUnknownExample(t *testing.T) {
	cfg := smallConfig()
	cfg.Example = "volcano"
	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for unknown example")
	}
}

func TestResetDeterministic(t *testing.T) {
	sim, err := New(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	initial := append([]uint8(nil), sim.Cells()...)
	for i := 0; i < 5; i++ {
		sim.Step()
	}
	if slices.Equal(initial, sim.Cells()) {
		t.Fatal("random gas did not evolve")
	}
	sim.Reset(0)
	if !slices.Equal(initial, sim.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}
	if sim.Generation() != 0 {
		t.Fatalf("generation after reset = %d", sim.Generation())
	}
	sim.Reset(12345)
	if slices.Equal(initial, sim.Cells()) {
		t.Fatal("different seeds should produce different initial states")
	}
}

func TestRandomExampleLeavesHoleEmpty(t *testing.T) {
	cfg := smallConfig()
	sim, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	cx, cy := cfg.Width/4, cfg.Height/4
	if got := sim.Automaton().At(cx, cy); got != lga.Empty {
		t.Fatalf("centre of the hole holds %v", got)
	}
	if sim.Automaton().Particles() == 0 {
		t.Fatal("random example produced an empty grid")
	}
}

func TestParallelStepMatchesSequential(t *testing.T) {
	par, err := New(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	seqCfg := smallConfig()
	seqCfg.TileWidth = 0
	seq, err := New(seqCfg)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 12; i++ {
		par.Step()
		seq.Step()
		if !slices.Equal(par.Cells(), seq.Cells()) {
			t.Fatalf("step %d: tiled and sequential sims diverged", i+1)
		}
	}
	if par.Err() != nil {
		t.Fatalf("unexpected step error %v", par.Err())
	}
}

func TestWallsPresetAbsorbs(t *testing.T) {
	s, err := core.New("hpp-walls", map[string]string{"w": "32", "h": "8"})
	if err != nil {
		t.Fatal(err)
	}
	sim := s.(*Sim)
	if sim.Name() != "hpp-walls" || sim.Automaton().Boundary() != lga.Closed {
		t.Fatalf("unexpected preset %s/%v", sim.Name(), sim.Automaton().Boundary())
	}
	start := sim.Automaton().Particles()
	if start != 2*8 {
		t.Fatalf("walls band holds %d particles, want 16", start)
	}
	for i := 0; i < 32; i++ {
		sim.Step()
	}
	if got := sim.Automaton().Particles(); got != 0 {
		t.Fatalf("front should leave the closed grid, %d particles remain", got)
	}
}

func TestHUDControls(t *testing.T) {
	sim, err := New(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !sim.SetIntParameter("tile_w", 1000) {
		t.Fatal("tile_w must be adjustable")
	}
	if sim.Config().TileWidth != sim.Config().Width {
		t.Fatalf("tile_w not clamped: %d", sim.Config().TileWidth)
	}
	if !sim.SetIntParameter("workers", 2) {
		t.Fatal("workers must be adjustable")
	}
	if sim.SetIntParameter("gravity", 1) {
		t.Fatal("unknown key accepted")
	}
	snap := sim.Parameters()
	if p, ok := snap.Lookup("workers"); !ok || p.Value != "2" {
		t.Fatalf("workers param = %+v, %v", p, ok)
	}
	if p, ok := snap.Lookup("permutation"); !ok || p.Value != "true" {
		t.Fatalf("permutation param = %+v, %v", p, ok)
	}

	sim.SetIntParameter("tile_w", 0)
	before := sim.Generation()
	sim.Step()
	if sim.Generation() != before+1 {
		t.Fatal("sequential fallback did not advance")
	}
}

func TestDrawUsesConfiguredFormat(t *testing.T) {
	cfg := smallConfig()
	cfg.Example = "walls"
	cfg.Format = "glyph"
	sim, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := sim.Draw(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != cfg.Height {
		t.Fatalf("got %d lines, want %d", len(lines), cfg.Height)
	}
	if !strings.HasPrefix(lines[0], ">.") {
		t.Fatalf("unexpected first row %q", lines[0])
	}
}

func TestFieldsAndPalette(t *testing.T) {
	cfg := smallConfig()
	cfg.Example = "walls"
	sim, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	density := sim.DensityField()
	if len(density) != cfg.Width*cfg.Height {
		t.Fatalf("density len %d", len(density))
	}
	for _, d := range density {
		if d < 0 || d > 1 {
			t.Fatalf("density %f out of range", d)
		}
	}
	if vx, vy := sim.MomentumAt(0.5, 4.5); vx <= 0 || vy != 0 {
		t.Fatalf("momentum at wall = (%f,%f), want rightwards", vx, vy)
	}
	if vx, vy := sim.MomentumAt(20.5, 8.5); vx != 0 || vy != 0 {
		t.Fatalf("momentum in empty region = (%f,%f)", vx, vy)
	}
	pal := sim.Palette()
	if len(pal) != lga.NumStates {
		t.Fatalf("palette size %d", len(pal))
	}
	if pal[lga.Right].R <= pal[lga.Left].R {
		t.Fatal("right movers should be redder than left movers")
	}
}
