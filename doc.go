// Package labyrinth is a toolkit for solving 2D grid mazes with a
// bidirectional wavefront algorithm — two distance fronts, one growing
// from the start and one from the finish, advance simultaneously until
// they collide, then the shortest path is read back out of the distance
// field.
//
// 🚀 What is in the box?
//
//	A small, thread-safe library plus a few terminal tools:
//		• grid/      — the maze model: cell vocabulary, validation,
//		               random generation and text parsing
//		• wavefront/ — the solver: synchronous whole-grid propagation,
//		               collision & stall detection, path reconstruction
//		• render/    — ASCII and PNG rendering of mazes and solutions
//		• cmd/labsolve — solve a maze from a file or generate one
//		• cmd/labviz   — step through the propagation frames in your terminal
//
// ✨ Why a bidirectional wavefront?
//
//   - Both fronts expand one layer per step, so the search radius is
//     roughly halved compared to a single-source sweep
//   - Every per-cell update reads only the previous step's snapshot,
//     which makes the inner loop trivially parallelizable
//   - The signed distance field doubles as a free visualization
//
// Quick ASCII example (S = start, F = finish, █ = wall, • = path):
//
//	█S••█
//	█ █•█
//	  █•
//	   •█
//	  █F█
//
// Start with wavefront.FindShortestPath; see grid.Random for quickly
// producing test mazes.
package labyrinth
