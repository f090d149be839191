package lga

import (
	"errors"
	"testing"
)

func TestPartitionCoversGridOnce(t *testing.T) {
	cases := [][4]int{
		{7, 5, 3, 2},
		{16, 16, 16, 16},
		{16, 16, 5, 7},
		{4, 1, 1, 1},
		{3, 3, 10, 10},
	}
	for _, tc := range cases {
		w, h, tw, th := tc[0], tc[1], tc[2], tc[3]
		tiles, err := Partition(w, h, tw, th)
		if err != nil {
			t.Fatalf("%v: %v", tc, err)
		}
		hits := make([]int, w*h)
		for _, tile := range tiles {
			if tile.W <= 0 || tile.H <= 0 || tile.W > tw || tile.H > th {
				t.Fatalf("%v: bad tile %v", tc, tile)
			}
			for y := tile.Y; y < tile.Y+tile.H; y++ {
				for x := tile.X; x < tile.X+tile.W; x++ {
					hits[y*w+x]++
				}
			}
		}
		for i, n := range hits {
			if n != 1 {
				t.Fatalf("%v: cell %d covered %d times", tc, i, n)
			}
		}
	}
}

func TestPartitionRemainderTiles(t *testing.T) {
	tiles, err := Partition(5, 3, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(tiles) != 6 {
		t.Fatalf("expected 6 tiles, got %d", len(tiles))
	}
	last := tiles[len(tiles)-1]
	if last != (Tile{X: 4, Y: 2, W: 1, H: 1}) {
		t.Fatalf("unexpected corner tile %v", last)
	}
}

func TestPartitionRejectsBadTileSize(t *testing.T) {
	for _, sz := range [][2]int{{0, 1}, {1, 0}, {-2, 4}} {
		if _, err := Partition(4, 4, sz[0], sz[1]); !errors.Is(err, ErrInvalidTileSize) {
			t.Fatalf("%v: expected ErrInvalidTileSize, got %v", sz, err)
		}
	}
}
