package lga

import "fmt"

// Tile is a rectangular block of cells processed as one unit of parallel
// work. Edge tiles may be smaller than the nominal size when the grid is not
// evenly divisible.
type Tile struct {
	X, Y int // top-left cell
	W, H int // size in cells
}

// String formats the tile as "WxH@X,Y".
func (t Tile) String() string {
	return fmt.Sprintf("%dx%d@%d,%d", t.W, t.H, t.X, t.Y)
}

// Cells returns the number of cells covered by the tile.
func (t Tile) Cells() int { return t.W * t.H }

// Partition splits a w*h grid into tiles of at most tw*th cells in row-major
// tile order.
func Partition(w, h, tw, th int) ([]Tile, error) {
	if tw <= 0 || th <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidTileSize, tw, th)
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	cols := (w + tw - 1) / tw
	rows := (h + th - 1) / th
	tiles := make([]Tile, 0, cols*rows)
	for y := 0; y < h; y += th {
		for x := 0; x < w; x += tw {
			tiles = append(tiles, Tile{
				X: x,
				Y: y,
				W: min(tw, w-x),
				H: min(th, h-y),
			})
		}
	}
	return tiles, nil
}
