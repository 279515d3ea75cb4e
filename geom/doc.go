// Package geom provides the small geometric vocabulary shared by the
// maze and wallfollower packages: integer grid coordinates, displacement
// vectors, compass orientations, and agent poses.
//
// What:
//
//   - Point: an immutable (row, column) grid coordinate with vector addition.
//   - Vector: an immutable integer displacement between grid cells.
//   - Orientation: the four compass directions, each bound to a fixed unit
//     Vector along the grid axes, with total rotate-right / rotate-left /
//     reverse transforms.
//   - Pose: a (Point, Orientation) pair, comparable and usable as a map key.
//
// Why:
//
//   - Maze traversal state is fully described by a Pose; making it a plain
//     comparable value lets the navigation engine track visited states in an
//     ordinary Go map with structural equality.
//   - Encoding orientations as unit vectors keeps movement a single addition:
//     next = position.Add(orientation.Delta()).
//
// Coordinate convention:
//
//	North=(-1,0), West=(0,-1), South=(+1,0), East=(0,+1) — compass names
//	label movements along the row/column axes (X is the row index, Y the
//	column index), not geographic direction.
//
// Complexity: every operation in this package is O(1).
package geom
