package lga

import (
	"fmt"
	"io"
)

// Automaton composes a Grid and a RuleTable, both fixed after construction,
// and counts the generations it has produced.
type Automaton struct {
	grid   *Grid
	rules  RuleTable
	gen    uint64
	exec   Executor
	format Format
	tiled  Tiled
}

// Option customises an Automaton.
type Option func(*Automaton)

// WithExecutor sets the backend used by UpdateParallel.
func WithExecutor(e Executor) Option {
	return func(a *Automaton) {
		if e != nil {
			a.exec = e
		}
	}
}

// WithWorkers uses a PoolExecutor of n workers for UpdateParallel.
func WithWorkers(n int) Option {
	return func(a *Automaton) { a.exec = NewPoolExecutor(n) }
}

// WithFormat selects the encoding written by Draw.
func WithFormat(f Format) Option {
	return func(a *Automaton) { a.format = f }
}

// New builds an automaton of w*h cells initialised from initFn.
func New(w, h int, mode Boundary, rules RuleTable, initFn InitFunc, opts ...Option) (*Automaton, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(w, h, mode, initFn)
	if err != nil {
		return nil, err
	}
	a := &Automaton{grid: grid, rules: rules, format: FormatHex}
	for _, opt := range opts {
		opt(a)
	}
	if a.exec == nil {
		a.exec = NewPoolExecutor(0)
	}
	return a, nil
}

// Width returns the number of columns.
func (a *Automaton) Width() int { return a.grid.w }

// Height returns the number of rows.
func (a *Automaton) Height() int { return a.grid.h }

// Boundary returns the boundary mode.
func (a *Automaton) Boundary() Boundary { return a.grid.mode }

// Rules returns a copy of the rule table.
func (a *Automaton) Rules() RuleTable { return a.rules }

// Generation returns the number of completed updates.
func (a *Automaton) Generation() uint64 { return a.gen }

// At returns the current state of cell (x, y), or Empty outside the grid.
func (a *Automaton) At(x, y int) State { return a.grid.Get(x, y) }

// Cells returns a copy of the current generation in row-major order.
func (a *Automaton) Cells() []State {
	return append([]State(nil), a.grid.cur...)
}

// View exposes the current generation without copying. The slice is only
// valid until the next update and must not be modified.
func (a *Automaton) View() []State { return a.grid.cur }

// Update advances one generation with the sequential scheduler.
func (a *Automaton) Update() {
	_ = a.Step(Sequential{})
}

// UpdateParallel advances one generation by splitting the grid into tiles of
// tw*th cells. Invalid tile sizes and executor failures leave the automaton
// unchanged.
func (a *Automaton) UpdateParallel(tw, th int) error {
	if tw <= 0 || th <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidTileSize, tw, th)
	}
	a.tiled.TileWidth = tw
	a.tiled.TileHeight = th
	a.tiled.Exec = a.exec
	return a.Step(&a.tiled)
}

// Step advances one generation with an arbitrary scheduler.
func (a *Automaton) Step(s Scheduler) error {
	if err := s.Step(a.grid, &a.rules); err != nil {
		return err
	}
	a.gen++
	return nil
}

// SetExecutor replaces the backend used by UpdateParallel. It must not be
// called while an update is running.
func (a *Automaton) SetExecutor(e Executor) {
	if e != nil {
		a.exec = e
	}
}

// Clone returns an independent copy with the same generation, rules and
// options.
func (a *Automaton) Clone() *Automaton {
	return &Automaton{
		grid:   a.grid.clone(),
		rules:  a.rules,
		gen:    a.gen,
		exec:   a.exec,
		format: a.format,
	}
}

// Equal reports whether both automata hold identical current generations.
func (a *Automaton) Equal(b *Automaton) bool {
	if a.grid.w != b.grid.w || a.grid.h != b.grid.h {
		return false
	}
	for i, s := range a.grid.cur {
		if b.grid.cur[i] != s {
			return false
		}
	}
	return true
}

// Draw writes the current generation to w using the configured format.
func (a *Automaton) Draw(w io.Writer) error {
	return a.format.Encode(w, a.grid)
}
