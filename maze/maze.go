package maze

import (
	"strings"

	"github.com/f-frhs/Maze-Solver/geom"
)

// Maze is an immutable grid of cell kinds with its start and goal
// coordinates. Construct one with Parse; the grid is never mutated
// afterwards, so Start and Goal stay consistent with the cells for the
// maze's entire lifetime.
type Maze struct {
	cells [][]Cell
	start geom.Point
	goal  geom.Point
}

// Parse builds a Maze from its textual form: one line per row, one glyph
// per cell (' '=Open, '*'=Wall, 'o'=Start, 'x'=Goal). Rows may have
// differing lengths. The text must contain at least one start and one
// goal glyph; the start check runs first. With duplicate markers the
// first occurrence in row-major order wins.
//
// Returns ErrMissingStart, ErrMissingGoal, or ErrInvalidGlyph (wrapping
// the offending rune). Complexity: O(R×C) time and memory.
func Parse(s string) (*Maze, error) {
	if !strings.ContainsRune(s, Start.Glyph()) {
		return nil, ErrMissingStart
	}
	if !strings.ContainsRune(s, Goal.Glyph()) {
		return nil, ErrMissingGoal
	}

	lines := splitLines(s)
	cells := make([][]Cell, len(lines))
	for i, line := range lines {
		row := make([]Cell, 0, len(line))
		for _, r := range line {
			c, err := CellOf(r)
			if err != nil {
				return nil, err
			}
			row = append(row, c)
		}
		cells[i] = row
	}

	m := &Maze{
		cells: cells,
		start: locate(cells, Start),
		goal:  locate(cells, Goal),
	}

	return m, nil
}

// splitLines splits on "\n", tolerating a trailing "\r" per line.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// locate returns the first cell of the given kind in row-major order.
// The caller guarantees at least one such cell exists.
func locate(cells [][]Cell, kind Cell) geom.Point {
	for x, row := range cells {
		for y, c := range row {
			if c == kind {
				return geom.Point{X: x, Y: y}
			}
		}
	}
	return geom.Point{}
}

// Start returns the coordinate of the first start cell.
func (m *Maze) Start() geom.Point { return m.start }

// Goal returns the coordinate of the first goal cell.
func (m *Maze) Goal() geom.Point { return m.goal }

// Rows returns the number of grid rows.
func (m *Maze) Rows() int { return len(m.cells) }

// Width returns the length of the longest row.
// Complexity: O(R).
func (m *Maze) Width() int {
	w := 0
	for _, row := range m.cells {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// InBounds reports whether p lies on a stored cell. With ragged rows a
// coordinate past the end of a short row is out of bounds.
func (m *Maze) InBounds(p geom.Point) bool {
	return p.X >= 0 && p.X < len(m.cells) && p.Y >= 0 && p.Y < len(m.cells[p.X])
}

// Cell returns the kind of the cell at p. Coordinates outside the stored
// grid report Wall, so traversal code cannot walk off a ragged or
// unenclosed grid.
func (m *Maze) Cell(p geom.Point) Cell {
	if !m.InBounds(p) {
		return Wall
	}
	return m.cells[p.X][p.Y]
}

// String renders the maze back to its textual form, rows joined by "\n".
// Parse(m.String()) reproduces an identical grid, start, and goal.
func (m *Maze) String() string {
	var b strings.Builder
	for i, row := range m.cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			b.WriteRune(c.Glyph())
		}
	}
	return b.String()
}
