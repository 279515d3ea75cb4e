package wallfollower

import "github.com/f-frhs/Maze-Solver/geom"

// Player is the mutable agent: a grid position plus a facing. One Player
// is created per run, owned by the caller, and mutated exclusively by
// Solve for the run's duration.
type Player struct {
	Position    geom.Point
	Orientation geom.Orientation
}

// NewPlayer returns a Player at pos facing o.
func NewPlayer(pos geom.Point, o geom.Orientation) *Player {
	return &Player{Position: pos, Orientation: o}
}

// Pose returns the (position, orientation) snapshot used for history
// comparison.
func (p *Player) Pose() geom.Pose {
	return geom.Pose{Position: p.Position, Orientation: p.Orientation}
}

// LocatedAt reports whether the player stands on pt.
func (p *Player) LocatedAt(pt geom.Point) bool {
	return p.Position == pt
}

// TurnRight rotates the facing 90° clockwise.
func (p *Player) TurnRight() {
	p.Orientation = p.Orientation.TurnRight()
}

// TurnLeft rotates the facing 90° counter-clockwise.
func (p *Player) TurnLeft() {
	p.Orientation = p.Orientation.TurnLeft()
}

// TurnAround reverses the facing.
func (p *Player) TurnAround() {
	p.Orientation = p.Orientation.Reverse()
}

// KeepOrientation leaves the facing unchanged. The explicit no-op gives
// all four directional choices a uniform calling convention in the
// engine's decision logic.
func (p *Player) KeepOrientation() {}

// StepForward advances one cell along the current facing.
func (p *Player) StepForward() {
	p.Position = p.Position.Add(p.Orientation.Delta())
}
