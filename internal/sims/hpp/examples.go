package hpp

import (
	"sort"

	"hpp-ca/internal/lga"
	"hpp-ca/pkg/core"
)

// Example builds the initial-state function for a configuration.
type Example func(cfg Config) lga.InitFunc

var examples = map[string]Example{
	"random": Random,
	"walls":  Walls,
	"empty":  EmptyWorld,
}

// Examples exposes the registry of initial conditions.
func Examples() map[string]Example { return examples }

// ExampleNames lists the initial conditions in sorted order.
func ExampleNames() []string {
	names := make([]string, 0, len(examples))
	for name := range examples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Random fills cells with uniformly random states, leaving a disk around the
// upper-left quarter point empty so the gas has a void to flow into.
func Random(cfg Config) lga.InitFunc {
	w, h := cfg.Width, cfg.Height
	cx, cy := w/4, h/4
	avg := (w + h) / 2
	holeSq := avg * avg / 32
	seed, density := cfg.Seed, cfg.Density
	return func(x, y int) lga.State {
		dx, dy := cx-x, cy-y
		if dx*dx+dy*dy < holeSq {
			return lga.Empty
		}
		if !core.CellChance(seed, x, y, density) {
			return lga.Empty
		}
		return lga.State(core.CellValue(seed, x, y, lga.NumStates))
	}
}

// Walls fills a band along the left edge with right-moving particles that
// sweep across an otherwise empty grid.
func Walls(cfg Config) lga.InitFunc {
	band := max(1, cfg.Width/16)
	return func(x, y int) lga.State {
		if x < band {
			return lga.Right
		}
		return lga.Empty
	}
}

// EmptyWorld leaves every cell empty.
func EmptyWorld(Config) lga.InitFunc {
	return func(int, int) lga.State { return lga.Empty }
}
