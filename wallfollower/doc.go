// Package wallfollower drives an agent through a parsed maze with the
// right-hand wall-follower rule, reporting either the path to the goal or
// a definitive no-solution verdict.
//
// What
//
//   - Player: the mutable agent, a position plus a facing, with turn and
//     step primitives.
//   - Solve: the single entry point. It advances the player one atomic
//     transition at a time until the goal is reached (Solved) or the
//     player's exact pose repeats (Unsolvable).
//   - Result: the terminal Outcome plus the chronological Path of Steps,
//     each carrying the position after the step and the facing taken.
//   - Hooks via functional options: WithOnStep fires per transition,
//     WithOnOutcome fires once with the terminal verdict.
//
// Decision rule
//
//	At each transition the candidate facings are tried in strict priority
//	order: right turn, straight ahead, left turn, about-face. A candidate
//	is accepted when its destination cell is not a wall; the about-face
//	fallback is applied unconditionally when the first three are blocked.
//	Turning and stepping form one transition — no intermediate pose is
//	ever observed or recorded.
//
// Termination
//
//	The goal check runs before the cycle check, so a run that starts on
//	the goal returns Solved with an empty path. The visited-pose history
//	makes termination unconditional: a maze with R rows and C columns has
//	at most R×C×4 poses, so Solve halts within R×C×4 + 1 transitions.
//	Revisiting a position under a different facing is normal for a
//	wall-follower and does not end the run; only an exact pose repeat does.
//
// Determinism
//
//	The rule consults only the current pose and the immutable maze, so a
//	fixed (maze, starting pose) always yields the identical Outcome and
//	the identical step sequence.
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no step limit.
//   - WithContext(ctx):    cancellation, checked once per transition.
//   - WithOnStep(fn):      callback after every applied transition.
//   - WithOnOutcome(fn):   callback with the terminal outcome and position.
//   - WithMaxSteps(n):     defensive ceiling on transitions (n>0); 0 means
//     no limit; negative is ErrOptionViolation.
//
// Errors
//
//   - ErrMazeNil          if the maze pointer is nil.
//   - ErrPlayerNil        if the player pointer is nil.
//   - ErrOptionViolation  if an invalid Option was supplied.
//   - ErrStepLimit        if WithMaxSteps was exceeded before termination.
//
// Complexity (R = rows, C = longest row)
//
//   - Time:   O(R×C) transitions worst case
//   - Memory: O(R×C) for the visited-pose history and the recorded path
package wallfollower
