package hpp

import (
	"strconv"

	"hpp-ca/internal/lga"
)

// Config controls the lattice-gas world and how it is scheduled.
type Config struct {
	Width  int
	Height int
	Seed   int64

	Boundary string
	Rule     string
	Example  string
	Format   string

	// Density is the fraction of cells the random example populates.
	Density float64

	// TileWidth and TileHeight select the tiled scheduler when both are
	// positive; otherwise Step runs the sequential scheduler.
	TileWidth  int
	TileHeight int
	// Workers sizes the tile worker pool; 0 selects GOMAXPROCS.
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      256,
		Height:     256,
		Seed:       1337,
		Boundary:   lga.Periodic.String(),
		Rule:       "hpp",
		Example:    "random",
		Format:     lga.FormatHex.String(),
		Density:    1,
		TileWidth:  16,
		TileHeight: 16,
	}
}

// WallsConfig returns the preset used by the hpp-walls sim.
func WallsConfig() Config {
	c := DefaultConfig()
	c.Boundary = lga.Closed.String()
	c.Example = "walls"
	return c
}

// Parallel reports whether Step should use the tiled scheduler.
func (c Config) Parallel() bool { return c.TileWidth > 0 && c.TileHeight > 0 }

// FromMap populates a Config from a string map, keeping defaults for keys
// that are missing or invalid.
func FromMap(cfg map[string]string) Config {
	return ApplyMap(DefaultConfig(), cfg)
}

// ApplyMap overrides fields of base from a string map.
func ApplyMap(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["boundary"]; ok {
		if b, err := lga.ParseBoundary(v); err == nil {
			c.Boundary = b.String()
		}
	}
	if v, ok := cfg["rule"]; ok {
		if _, err := lga.ResolveRule(v); err == nil {
			c.Rule = v
		}
	}
	if v, ok := cfg["example"]; ok {
		if _, found := examples[v]; found {
			c.Example = v
		}
	}
	if v, ok := cfg["format"]; ok {
		if f, err := lga.ParseFormat(v); err == nil {
			c.Format = f.String()
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["tile_w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.TileWidth = parsed
		}
	}
	if v, ok := cfg["tile_h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.TileHeight = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	return c
}
