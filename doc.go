// Package mazesolver parses textual grid mazes and decides whether a
// simulated agent can walk from the start marker to the exit with the
// right-hand wall-follower rule.
//
// 🚀 What is Maze-Solver?
//
//	A small, deterministic library that brings together:
//		• geom         — grid coordinates, displacement vectors, compass
//		                 orientations with turn algebra, and agent poses
//		• maze         — the four cell kinds, the glyph codec (' ', '*',
//		                 'o', 'x'), and an immutable parsed grid
//		• wallfollower — the mutable Player agent and the Solve engine:
//		                 right-hand rule, visited-pose cycle detection,
//		                 per-step trace hooks
//
// ✨ Why choose it?
//
//   - Deterministic – a fixed maze and starting pose always replay the
//     identical step sequence and verdict
//   - Always halts – the pose space is finite, so every run terminates
//     within rows × columns × 4 + 1 transitions
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – hooks (OnStep, OnOutcome) observe every transition
//
// Quick ASCII example:
//
//	*******
//	*o    *
//	* x****
//	*     *
//	*******
//
//	m, _ := maze.Parse(text)
//	res, _ := wallfollower.Solve(m, wallfollower.NewPlayer(m.Start(), geom.East))
//	// res.Outcome == wallfollower.Solved, final position (2, 2)
//
// Unsolvable mazes are a result, not an error: when the agent's exact
// (position, orientation) pose repeats before the exit is found, Solve
// reports Unsolvable and returns the full trace of the attempt.
package mazesolver
