// Package wallfollower implements the right-hand wall-follower rule over
// a parsed maze, with visited-pose cycle detection as its termination
// guarantee.
package wallfollower

import (
	"context"

	"github.com/f-frhs/Maze-Solver/geom"
	"github.com/f-frhs/Maze-Solver/maze"
)

// walker encapsulates mutable run state.
type walker struct {
	maze   *maze.Maze
	player *Player
	opts   Options
	ctx    context.Context
	seen   map[geom.Pose]struct{}
	res    *Result
}

// Solve drives the player through m with the wall-follower rule,
// applying any number of functional Options. The maze is only read; the
// player is mutated in place and ends at the run's final position.
// Returns ErrMazeNil or ErrPlayerNil for invalid input, ErrOptionViolation
// for bad options, context errors on cancellation, and ErrStepLimit when a
// WithMaxSteps ceiling fires. On a nil error the Result carries the
// verdict and the full step trace.
func Solve(m *maze.Maze, p *Player, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrMazeNil
	}
	if p == nil {
		return nil, ErrPlayerNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		maze:   m,
		player: p,
		opts:   o,
		ctx:    o.Ctx,
		seen:   make(map[geom.Pose]struct{}),
		res:    &Result{},
	}

	return w.res, w.loop()
}

// loop applies transitions until the goal is reached or a pose repeats.
// The goal check has priority over the cycle check, so a goal cell is
// accepted even when its pose was already recorded.
func (w *walker) loop() error {
	for {
		// cancellation check (once per transition)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if w.player.LocatedAt(w.maze.Goal()) {
			return w.finish(Solved)
		}

		pose := w.player.Pose()
		if _, looping := w.seen[pose]; looping {
			return w.finish(Unsolvable)
		}
		w.seen[pose] = struct{}{}

		if w.opts.MaxSteps > 0 && len(w.res.Path) >= w.opts.MaxSteps {
			return ErrStepLimit
		}
		w.advance()
	}
}

// advance applies one atomic transition: pick the first passable facing
// in strict priority order (right, straight, left, about-face), turn,
// then step. The about-face fallback is unconditional.
func (w *walker) advance() {
	switch {
	case w.passable(w.player.Orientation.TurnRight()):
		w.player.TurnRight()
	case w.passable(w.player.Orientation):
		w.player.KeepOrientation()
	case w.passable(w.player.Orientation.TurnLeft()):
		w.player.TurnLeft()
	default:
		// go backward. no other choice.
		w.player.TurnAround()
	}
	w.player.StepForward()

	step := Step{Position: w.player.Position, Orientation: w.player.Orientation}
	w.res.Path = append(w.res.Path, step)
	w.opts.OnStep(step)
}

// passable reports whether the cell one step along o from the player's
// position can be entered. Open, Start, and Goal cells all qualify.
func (w *walker) passable(o geom.Orientation) bool {
	return w.maze.Cell(w.player.Position.Add(o.Delta())) != maze.Wall
}

// finish records the verdict and fires the terminal hook.
func (w *walker) finish(out Outcome) error {
	w.res.Outcome = out
	w.opts.OnOutcome(out, w.player.Position)
	return nil
}
