package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze parsing.
var (
	// ErrInvalidGlyph indicates an input character with no cell-kind mapping.
	ErrInvalidGlyph = errors.New("maze: invalid character")
	// ErrMissingStart indicates the input text contains no start glyph 'o'.
	ErrMissingStart = errors.New("maze: cannot find the beginning position")
	// ErrMissingGoal indicates the input text contains no goal glyph 'x'.
	ErrMissingGoal = errors.New("maze: cannot find the exit position")
)

// Cell is the semantic kind of a single grid cell.
// The zero value is Open.
type Cell int

const (
	// Open is a passable floor cell, glyph ' '.
	Open Cell = iota
	// Wall is an impassable cell, glyph '*'.
	Wall
	// Start marks the agent's entry cell, glyph 'o'. Passable.
	Start
	// Goal marks the exit cell, glyph 'x'. Passable.
	Goal
)

// Glyph returns the textual representation of c.
func (c Cell) Glyph() rune {
	switch c {
	case Open:
		return ' '
	case Wall:
		return '*'
	case Start:
		return 'o'
	default: // Goal
		return 'x'
	}
}

// CellOf maps a glyph to its cell kind.
// Returns ErrInvalidGlyph (wrapping the offending rune) for any rune
// outside the glyph table.
func CellOf(r rune) (Cell, error) {
	switch r {
	case ' ':
		return Open, nil
	case '*':
		return Wall, nil
	case 'o':
		return Start, nil
	case 'x':
		return Goal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidGlyph, r)
	}
}

// String returns the glyph of c as a string.
func (c Cell) String() string {
	return string(c.Glyph())
}
