// Package geom defines grid coordinates, displacements, orientations,
// and poses for maze traversal.
package geom

import "fmt"

// Vector is an integer displacement between grid cells.
// It represents movement, not a location.
type Vector struct {
	X, Y int
}

// Point is an integer grid coordinate: X is the row index, Y the column
// index. Equality is structural, so Point values work as map keys.
type Point struct {
	X, Y int
}

// Add returns the point displaced by v.
// Complexity: O(1).
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// String renders the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Pose pairs a position with a facing. Two poses are equal iff both
// fields are equal; the navigation engine relies on this for its
// visited-state history.
type Pose struct {
	Position    Point
	Orientation Orientation
}
