// Package wallfollower provides tunable options and error definitions
// for the wall-follower navigation engine.
package wallfollower

import (
	"context"
	"errors"
	"fmt"

	"github.com/f-frhs/Maze-Solver/geom"
)

// Sentinel errors for Solve.
var (
	// ErrMazeNil is returned if a nil maze pointer is passed.
	ErrMazeNil = errors.New("wallfollower: maze is nil")

	// ErrPlayerNil is returned if a nil player pointer is passed.
	ErrPlayerNil = errors.New("wallfollower: player is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("wallfollower: invalid option supplied")

	// ErrStepLimit is returned when the WithMaxSteps ceiling is exceeded
	// before the run terminates.
	ErrStepLimit = errors.New("wallfollower: step limit exceeded")
)

// Outcome is the terminal verdict of a run.
type Outcome int

const (
	// Solved means the player reached the goal cell.
	Solved Outcome = iota
	// Unsolvable means the player's exact pose repeated before reaching
	// the goal: the wall-follower is provably looping.
	Unsolvable
)

// String returns "solved" or "unsolvable".
func (o Outcome) String() string {
	if o == Solved {
		return "solved"
	}
	return "unsolvable"
}

// Step records one applied transition: the position after the step and
// the orientation the player is now facing.
type Step struct {
	Position    geom.Point
	Orientation geom.Orientation
}

// Result holds the outcome of a run:
//   - Outcome: Solved or Unsolvable.
//   - Path: every applied transition in chronological order. For a Solved
//     run the last step's position equals the goal; a run that starts on
//     the goal has an empty path.
type Result struct {
	Outcome Outcome
	Path    []Step
}

// Final returns the player's position at the end of the run: the last
// step's position, or start if no transition was applied.
func (r *Result) Final(start geom.Point) geom.Point {
	if len(r.Path) == 0 {
		return start
	}
	return r.Path[len(r.Path)-1].Position
}

// Option configures Solve behavior via functional arguments.
// If an Option is invalid (e.g. negative step limit), it is recorded
// internally and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnStep is called after every applied transition.
	OnStep func(Step)

	// OnOutcome is called once when the run terminates, with the verdict
	// and the player's final position.
	OnOutcome func(Outcome, geom.Point)

	// MaxSteps, if > 0, aborts the run with ErrStepLimit once that many
	// transitions have been applied. A value of 0 disables the ceiling;
	// the visited-pose history already guarantees termination without it.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no-op hooks (OnStep, OnOutcome)
//   - no step ceiling (MaxSteps == 0)
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnStep:    func(Step) {},
		OnOutcome: func(Outcome, geom.Point) {},
		MaxSteps:  0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers a callback to run after each applied transition.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithOnOutcome registers a callback to run once with the terminal
// verdict and final position.
func WithOnOutcome(fn func(Outcome, geom.Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnOutcome = fn
		}
	}
}

// WithMaxSteps aborts the run after n transitions.
//
//	n > 0:  limit to n transitions
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "no limit"
			o.MaxSteps = 0
		default:
			o.MaxSteps = n
		}
	}
}
