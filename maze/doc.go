// Package maze models a textual grid maze and its codec: a grid of cell
// kinds (open, wall, start, goal) parsed from and rendered back to a
// one-glyph-per-cell text format.
//
// What:
//
//   - Cell enumerates the four cell kinds with a bidirectional glyph
//     mapping: ' '=Open, '*'=Wall, 'o'=Start, 'x'=Goal.
//   - Maze wraps an immutable [][]Cell grid together with the Start and
//     Goal coordinates located at parse time.
//   - Parse builds a Maze from text; String renders it back, and
//     Parse(m.String()) reproduces the identical grid.
//
// Why:
//
//   - The navigation engine only needs cell-kind lookups; isolating the
//     text format here keeps the engine free of parsing concerns.
//
// Format:
//
//	One line per grid row, rows split on line boundaries ("\n", with a
//	trailing "\r" tolerated). Rows may have differing lengths; no
//	rectangularity is enforced. Any glyph outside the table is an error.
//	The text must contain at least one 'o' and at least one 'x'; with
//	duplicates, the first occurrence in row-major order wins.
//
// Errors:
//
//   - ErrInvalidGlyph: a character has no cell-kind mapping.
//   - ErrMissingStart: the text contains no 'o'.
//   - ErrMissingGoal: the text contains no 'x'.
//
// Complexity: Parse and String are O(R×C) time and memory for an R-row,
// C-column grid; Cell and InBounds are O(1).
package maze
