package lga

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Scheduler advances a grid by exactly one generation. On error the current
// generation of g must be left untouched.
type Scheduler interface {
	Step(g *Grid, rules *RuleTable) error
}

// Sequential updates the grid cell by cell on the calling goroutine. It is
// the reference every other scheduler is checked against.
type Sequential struct{}

// Step implements Scheduler.
func (Sequential) Step(g *Grid, rules *RuleTable) error {
	all := g.bounds()
	g.collide(rules, all)
	clear(g.nxt)
	g.push(all)
	g.swap()
	return nil
}

// Tiled splits the grid into tiles and runs collision and streaming per tile
// through an Executor, with a full barrier between the two phases.
type Tiled struct {
	TileWidth  int
	TileHeight int
	Exec       Executor

	tiles []Tile
	key   [4]int
}

// Step implements Scheduler.
func (s *Tiled) Step(g *Grid, rules *RuleTable) error {
	tiles, err := s.partition(g)
	if err != nil {
		return err
	}
	exec := s.Exec
	if exec == nil {
		exec = SerialExecutor{}
	}
	err = exec.Run(tiles, func(t Tile) error {
		g.collide(rules, t)
		return nil
	})
	if err != nil {
		return fmt.Errorf("lga: collision phase: %w", err)
	}
	// Run returning is the barrier: every tile's scratch region is final.
	err = exec.Run(tiles, func(t Tile) error {
		g.pull(t)
		return nil
	})
	if err != nil {
		return fmt.Errorf("lga: streaming phase: %w", err)
	}
	g.swap()
	return nil
}

func (s *Tiled) partition(g *Grid) ([]Tile, error) {
	key := [4]int{g.w, g.h, s.TileWidth, s.TileHeight}
	if s.tiles != nil && key == s.key {
		return s.tiles, nil
	}
	tiles, err := Partition(g.w, g.h, s.TileWidth, s.TileHeight)
	if err != nil {
		return nil, err
	}
	s.tiles, s.key = tiles, key
	return tiles, nil
}

// Executor runs fn once for every tile and returns after all calls have
// finished. Calls for different tiles may run concurrently.
type Executor interface {
	Run(tiles []Tile, fn func(Tile) error) error
}

// SerialExecutor runs tiles in order on the calling goroutine.
type SerialExecutor struct{}

// Run implements Executor.
func (SerialExecutor) Run(tiles []Tile, fn func(Tile) error) error {
	for _, t := range tiles {
		if err := runTile(t, fn); err != nil {
			return err
		}
	}
	return nil
}

// PoolExecutor runs tiles on a fixed number of worker goroutines that claim
// tiles from a shared counter.
type PoolExecutor struct {
	workers int
}

// NewPoolExecutor returns a pool of the given size; workers <= 0 selects
// GOMAXPROCS.
func NewPoolExecutor(workers int) *PoolExecutor {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &PoolExecutor{workers: workers}
}

// Workers returns the pool size.
func (p *PoolExecutor) Workers() int { return p.workers }

// Run implements Executor. The first tile error stops each worker from
// claiming further tiles and is returned once all workers have exited.
func (p *PoolExecutor) Run(tiles []Tile, fn func(Tile) error) error {
	workers := min(p.workers, len(tiles))
	if workers <= 1 {
		return SerialExecutor{}.Run(tiles, fn)
	}
	var (
		next   atomic.Int64
		failed atomic.Bool
		eg     errgroup.Group
	)
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			for !failed.Load() {
				i := int(next.Add(1) - 1)
				if i >= len(tiles) {
					return nil
				}
				if err := runTile(tiles[i], fn); err != nil {
					failed.Store(true)
					return err
				}
			}
			return nil
		})
	}
	return eg.Wait()
}

func runTile(t Tile, fn func(Tile) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lga: tile %v: panic: %v", t, r)
		}
	}()
	return fn(t)
}
