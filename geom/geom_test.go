package geom_test

import (
	"testing"

	"github.com/f-frhs/Maze-Solver/geom"
)

//----------------------------------------------------------------------------//
// Point and Vector Tests
//----------------------------------------------------------------------------//

// TestPointAdd verifies vector addition on points, including negative deltas.
func TestPointAdd(t *testing.T) {
	cases := []struct {
		name string
		p    geom.Point
		v    geom.Vector
		want geom.Point
	}{
		{"Zero", geom.Point{X: 1, Y: 2}, geom.Vector{}, geom.Point{X: 1, Y: 2}},
		{"Positive", geom.Point{X: 1, Y: 2}, geom.Vector{X: 3, Y: 4}, geom.Point{X: 4, Y: 6}},
		{"Negative", geom.Point{X: 0, Y: 0}, geom.Vector{X: -1, Y: -1}, geom.Point{X: -1, Y: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.Add(tc.v); got != tc.want {
				t.Errorf("%v.Add(%v) = %v; want %v", tc.p, tc.v, got, tc.want)
			}
		})
	}
}

// TestPointString checks the "(x, y)" rendering used in traces.
func TestPointString(t *testing.T) {
	p := geom.Point{X: 3, Y: -2}
	if got, want := p.String(), "(3, -2)"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

//----------------------------------------------------------------------------//
// Orientation Tests
//----------------------------------------------------------------------------//

var allOrientations = []geom.Orientation{geom.North, geom.West, geom.South, geom.East}

// TestOrientationDelta pins each orientation to its unit vector.
func TestOrientationDelta(t *testing.T) {
	want := map[geom.Orientation]geom.Vector{
		geom.North: {X: -1, Y: 0},
		geom.West:  {X: 0, Y: -1},
		geom.South: {X: +1, Y: 0},
		geom.East:  {X: 0, Y: +1},
	}
	for o, v := range want {
		if got := o.Delta(); got != v {
			t.Errorf("%v.Delta() = %v; want %v", o, got, v)
		}
	}
}

// TestOrientationCycles verifies the rotation group laws:
// four right turns are the identity, right and left invert each other,
// and reverse equals two right turns.
func TestOrientationCycles(t *testing.T) {
	for _, o := range allOrientations {
		if got := o.TurnRight().TurnRight().TurnRight().TurnRight(); got != o {
			t.Errorf("%v: four right turns = %v; want identity", o, got)
		}
		if got := o.TurnRight().TurnLeft(); got != o {
			t.Errorf("%v: right then left = %v; want identity", o, got)
		}
		if got := o.TurnLeft().TurnRight(); got != o {
			t.Errorf("%v: left then right = %v; want identity", o, got)
		}
		if got, want := o.Reverse(), o.TurnRight().TurnRight(); got != want {
			t.Errorf("%v.Reverse() = %v; want %v", o, got, want)
		}
		if got := o.Reverse().Reverse(); got != o {
			t.Errorf("%v: double reverse = %v; want identity", o, got)
		}
	}
}

// TestOrientationTurnTable pins every individual transition.
func TestOrientationTurnTable(t *testing.T) {
	cases := []struct {
		o                   geom.Orientation
		right, left, around geom.Orientation
	}{
		{geom.North, geom.East, geom.West, geom.South},
		{geom.West, geom.North, geom.South, geom.East},
		{geom.South, geom.West, geom.East, geom.North},
		{geom.East, geom.South, geom.North, geom.West},
	}
	for _, tc := range cases {
		if got := tc.o.TurnRight(); got != tc.right {
			t.Errorf("%v.TurnRight() = %v; want %v", tc.o, got, tc.right)
		}
		if got := tc.o.TurnLeft(); got != tc.left {
			t.Errorf("%v.TurnLeft() = %v; want %v", tc.o, got, tc.left)
		}
		if got := tc.o.Reverse(); got != tc.around {
			t.Errorf("%v.Reverse() = %v; want %v", tc.o, got, tc.around)
		}
	}
}

// TestOrientationString checks the lower-case names and the Valid guard.
func TestOrientationString(t *testing.T) {
	want := map[geom.Orientation]string{
		geom.North: "north",
		geom.West:  "west",
		geom.South: "south",
		geom.East:  "east",
	}
	for o, s := range want {
		if got := o.String(); got != s {
			t.Errorf("%d.String() = %q; want %q", o, got, s)
		}
		if !o.Valid() {
			t.Errorf("%v.Valid() = false; want true", o)
		}
	}
	if bogus := geom.Orientation(42); bogus.Valid() || bogus.String() != "unknown" {
		t.Errorf("Orientation(42): Valid()=%v String()=%q; want false, %q",
			bogus.Valid(), bogus.String(), "unknown")
	}
}

//----------------------------------------------------------------------------//
// Pose Tests
//----------------------------------------------------------------------------//

// TestPoseAsMapKey verifies structural equality: same position with a
// different orientation is a distinct key.
func TestPoseAsMapKey(t *testing.T) {
	seen := make(map[geom.Pose]struct{})
	p := geom.Point{X: 1, Y: 1}
	seen[geom.Pose{Position: p, Orientation: geom.North}] = struct{}{}

	if _, ok := seen[geom.Pose{Position: p, Orientation: geom.East}]; ok {
		t.Error("pose with different orientation found in set; want absent")
	}
	if _, ok := seen[geom.Pose{Position: p, Orientation: geom.North}]; !ok {
		t.Error("identical pose not found in set; want present")
	}
}
