package core

import "math/rand/v2"

// cellSource returns a PCG stream keyed by seed and cell coordinates, so the
// draw for a cell never depends on the order cells are visited in.
func cellSource(seed int64, x, y int) rand.PCG {
	var p rand.PCG
	p.Seed(uint64(seed), uint64(uint32(y))<<32|uint64(uint32(x)))
	return p
}

// CellValue returns a value in [0, n) that depends only on seed and (x, y).
func CellValue(seed int64, x, y int, n uint8) uint8 {
	if n == 0 {
		return 0
	}
	p := cellSource(seed, x, y)
	return uint8(p.Uint64() % uint64(n))
}

// CellChance reports true for roughly the fraction p of coordinates. Like
// CellValue it is a pure function of its arguments.
func CellChance(seed int64, x, y int, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	src := cellSource(^seed, x, y)
	return float64(src.Uint64()>>11)/(1<<53) < p
}
