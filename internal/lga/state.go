// Package lga implements a four-direction HPP lattice-gas automaton with a
// sequential reference scheduler and a tiled parallel scheduler that produce
// identical generations.
package lga

import (
	"math/bits"
	"strings"
)

// State is the occupancy bitmask of a single cell.
type State uint8

// Direction bits. A State is any OR combination of them.
const (
	Up State = 1 << iota
	Right
	Down
	Left

	Empty State = 0
	Full        = Up | Right | Down | Left
)

// NumStates is the size of the state space.
const NumStates = 16

// Directions lists the single-bit states in a fixed order.
var Directions = [4]State{Up, Right, Down, Left}

// Has reports whether every bit of d is set in s.
func (s State) Has(d State) bool { return s&d == d }

// Count returns the number of particles in the cell.
func (s State) Count() int { return bits.OnesCount8(uint8(s & Full)) }

// Valid reports whether s fits in four bits.
func (s State) Valid() bool { return s <= Full }

// String lists the set directions, e.g. "Up|Left".
func (s State) String() string {
	if s == Empty {
		return "Empty"
	}
	if !s.Valid() {
		return "Invalid"
	}
	names := make([]string, 0, 4)
	for _, d := range Directions {
		if s.Has(d) {
			names = append(names, directionName(d))
		}
	}
	return strings.Join(names, "|")
}

func directionName(d State) string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	}
	return "?"
}

// Opposite returns the direction bit pointing the other way. Only single
// direction bits are meaningful inputs.
func Opposite(d State) State {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	}
	return Empty
}

// offset returns the unit step for a direction bit. Row 0 is the top row.
func offset(d State) (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	}
	return 0, 0
}
