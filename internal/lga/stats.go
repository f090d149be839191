package lga

// Particles returns the total number of set direction bits.
func (a *Automaton) Particles() int {
	return CountParticles(a.grid.cur)
}

// CountParticles sums the particle counts of cells.
func CountParticles(cells []State) int {
	total := 0
	for _, s := range cells {
		total += s.Count()
	}
	return total
}

// Momentum returns the net particle flux of the current generation, +x to the
// right and +y downwards.
func (a *Automaton) Momentum() (px, py int) {
	for _, s := range a.grid.cur {
		mx, my := CellMomentum(s)
		px += mx
		py += my
	}
	return px, py
}

// CellMomentum returns the net flux of a single cell.
func CellMomentum(s State) (mx, my int) {
	for _, d := range Directions {
		if s&d != 0 {
			dx, dy := offset(d)
			mx += dx
			my += dy
		}
	}
	return mx, my
}
