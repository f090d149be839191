package lga

import (
	"fmt"
	"strings"
)

// Boundary selects how streaming treats particles that leave the grid.
type Boundary uint8

const (
	// Periodic wraps coordinates modulo the grid size (toroidal grid).
	Periodic Boundary = iota
	// Closed drops particles that leave the grid.
	Closed
	// Reflecting sends particles that hit an edge back into their source
	// cell travelling the opposite way.
	Reflecting
)

// String returns the configuration name of the boundary mode.
func (b Boundary) String() string {
	switch b {
	case Periodic:
		return "periodic"
	case Closed:
		return "closed"
	case Reflecting:
		return "reflecting"
	}
	return fmt.Sprintf("boundary(%d)", uint8(b))
}

// ParseBoundary converts a configuration name into a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "periodic", "wrap", "torus":
		return Periodic, nil
	case "closed", "absorbing":
		return Closed, nil
	case "reflecting", "reflect":
		return Reflecting, nil
	}
	return Periodic, fmt.Errorf("lga: unknown boundary %q", s)
}

// InitFunc returns the initial state of cell (x, y). It must be a pure
// function of its arguments; grids may call it in any order.
type InitFunc func(x, y int) State

// Grid holds the cell buffers of an automaton in row-major order.
//
// cur is the generation visible to callers. scratch receives post-collision
// states and nxt receives streamed states; both are private to an update.
type Grid struct {
	w, h int
	mode Boundary

	cur     []State
	scratch []State
	nxt     []State
}

// NewGrid allocates a grid and fills it from initFn.
func NewGrid(w, h int, mode Boundary, initFn InitFunc) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	if mode > Reflecting {
		return nil, fmt.Errorf("lga: unknown boundary %d", mode)
	}
	total := w * h
	g := &Grid{
		w:       w,
		h:       h,
		mode:    mode,
		cur:     make([]State, total),
		scratch: make([]State, total),
		nxt:     make([]State, total),
	}
	if initFn == nil {
		return g, nil
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s := initFn(x, y)
			if !s.Valid() {
				return nil, fmt.Errorf("%w: init(%d,%d) = %d", ErrInvalidState, x, y, s)
			}
			g.cur[y*w+x] = s
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Boundary returns the boundary mode.
func (g *Grid) Boundary() Boundary { return g.mode }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Get returns the current state at (x, y), or Empty outside the grid.
func (g *Grid) Get(x, y int) State {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cur[g.Index(x, y)]
}

// Set overwrites the current state at (x, y).
func (g *Grid) Set(x, y int, s State) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	if !s.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidState, s)
	}
	g.cur[g.Index(x, y)] = s
	return nil
}

// Cells exposes the current generation. Callers must not modify it.
func (g *Grid) Cells() []State { return g.cur }

// Neighbor returns the index of the cell one step from (x, y) in direction d.
// Under Periodic the step wraps; otherwise ok is false when the step leaves
// the grid.
func (g *Grid) Neighbor(x, y int, d State) (idx int, ok bool) {
	dx, dy := offset(d)
	nx, ny := x+dx, y+dy
	if g.mode == Periodic {
		nx = (nx%g.w + g.w) % g.w
		ny = (ny%g.h + g.h) % g.h
		return g.Index(nx, ny), true
	}
	if !g.InBounds(nx, ny) {
		return -1, false
	}
	return g.Index(nx, ny), true
}

// swap promotes the next buffer to current.
func (g *Grid) swap() {
	g.cur, g.nxt = g.nxt, g.cur
}

func (g *Grid) clone() *Grid {
	c := &Grid{
		w:       g.w,
		h:       g.h,
		mode:    g.mode,
		cur:     append([]State(nil), g.cur...),
		scratch: make([]State, len(g.cur)),
		nxt:     make([]State, len(g.cur)),
	}
	return c
}
