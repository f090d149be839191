package lga

import "errors"

var (
	// ErrInvalidDimension reports a grid width or height that is not positive.
	ErrInvalidDimension = errors.New("lga: invalid dimension")
	// ErrInvalidRuleTable reports a rule table that is not a total 16-entry mapping.
	ErrInvalidRuleTable = errors.New("lga: invalid rule table")
	// ErrInvalidTileSize reports a non-positive tile width or height.
	ErrInvalidTileSize = errors.New("lga: invalid tile size")
	// ErrInvalidState reports a cell value outside the 4-bit state space.
	ErrInvalidState = errors.New("lga: invalid cell state")
	// ErrOutOfBounds reports coordinates outside the grid.
	ErrOutOfBounds = errors.New("lga: coordinates out of bounds")
)
