package geom

// Orientation is one of the four compass directions an agent may face.
// The zero value is North.
type Orientation int

const (
	// North moves one row up: delta (-1, 0).
	North Orientation = iota
	// West moves one column left: delta (0, -1).
	West
	// South moves one row down: delta (+1, 0).
	South
	// East moves one column right: delta (0, +1).
	East
)

// Delta returns the unit displacement of one step along o.
// Complexity: O(1).
func (o Orientation) Delta() Vector {
	switch o {
	case North:
		return Vector{X: -1, Y: 0}
	case West:
		return Vector{X: 0, Y: -1}
	case South:
		return Vector{X: +1, Y: 0}
	case East:
		return Vector{X: 0, Y: +1}
	default:
		return Vector{}
	}
}

// TurnRight returns the orientation after a 90° clockwise rotation.
// Four successive right turns yield the identity.
func (o Orientation) TurnRight() Orientation {
	switch o {
	case North:
		return East
	case West:
		return North
	case South:
		return West
	default: // East
		return South
	}
}

// TurnLeft returns the orientation after a 90° counter-clockwise rotation.
func (o Orientation) TurnLeft() Orientation {
	switch o {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	default: // East
		return North
	}
}

// Reverse returns the opposite orientation (two right turns).
func (o Orientation) Reverse() Orientation {
	switch o {
	case North:
		return South
	case West:
		return East
	case South:
		return North
	default: // East
		return West
	}
}

// Valid reports whether o is one of the four defined orientations.
func (o Orientation) Valid() bool {
	return o >= North && o <= East
}

// String returns the lower-case compass name, e.g. "north".
func (o Orientation) String() string {
	switch o {
	case North:
		return "north"
	case West:
		return "west"
	case South:
		return "south"
	case East:
		return "east"
	default:
		return "unknown"
	}
}
