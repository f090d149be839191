package hpp

import "hpp-ca/internal/lga"

// coarseRadius is the half-width of the averaging window used by the
// overlay fields.
const coarseRadius = 2

// DensityField returns the particle density of every cell averaged over a
// small window, scaled to [0, 1].
func (s *Sim) DensityField() []float32 {
	w, h := s.cfg.Width, s.cfg.Height
	cells := s.auto.View()
	out := make([]float32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum, n := 0, 0
			s.window(x, y, func(i int) {
				sum += cells[i].Count()
				n++
			})
			if n > 0 {
				out[y*w+x] = float32(sum) / float32(4*n)
			}
		}
	}
	return out
}

// MomentumAt returns the mean particle flux around the cell containing
// (x, y), in particles per cell.
func (s *Sim) MomentumAt(x, y float64) (float64, float64) {
	cx, cy := int(x), int(y)
	cells := s.auto.View()
	sx, sy, n := 0, 0, 0
	s.window(cx, cy, func(i int) {
		mx, my := lga.CellMomentum(cells[i])
		sx += mx
		sy += my
		n++
	})
	if n == 0 {
		return 0, 0
	}
	return float64(sx) / float64(n), float64(sy) / float64(n)
}

// window visits the cells within coarseRadius of (x, y), wrapping on a
// periodic grid and clipping otherwise.
func (s *Sim) window(x, y int, visit func(i int)) {
	w, h := s.cfg.Width, s.cfg.Height
	for dy := -coarseRadius; dy <= coarseRadius; dy++ {
		for dx := -coarseRadius; dx <= coarseRadius; dx++ {
			nx, ny := x+dx, y+dy
			if s.mode == lga.Periodic {
				nx = (nx%w + w) % w
				ny = (ny%h + h) % h
			} else if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			visit(ny*w + nx)
		}
	}
}
