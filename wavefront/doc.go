// Package wavefront finds a shortest path through a grid.Grid by
// propagating two distance fronts at once and meeting in the middle.
//
// What:
//
//   - FindShortestPath seeds a signed distance field with +1 at the
//     start cell and -1 at the finish cell, then advances both fronts
//     one layer per step in a single synchronous whole-grid sweep.
//   - A collision (two adjacent cells with opposite signs) ends the
//     propagation; the path is reconstructed by two greedy walks from
//     the meet point, one toward each seed.
//   - A stall (neither front can grow and they have not met) means the
//     maze is disconnected; this is reported as data, not as an error.
//
// Why:
//
//   - Two fronts halve the search depth of a single-source sweep.
//   - Each step reads only the previous step's snapshot, so the
//     per-cell update is order-independent and parallelizes cleanly
//     (see WithWorkers).
//   - The signed field makes step-by-step visualization free
//     (see WithOnStep).
//
// Complexity:
//
//	Time:   O(R×C) per step, at most O(R×C) steps ⇒ O((R×C)²) worst case,
//	        in practice bounded by half the shortest-path length.
//	Memory: O(R×C) for the field, mask, and per-step neighbor views.
//
// Options:
//
//   - WithContext:  cancellation, checked once per step.
//   - WithMaxSteps: hard cap on propagation steps (0 = unlimited).
//   - WithOnStep:   per-step snapshot hook for observers.
//   - WithWorkers:  row-striped parallel propagation.
//
// Errors:
//
//   - ErrGridNil:     a nil grid was passed.
//   - ErrStartCount:  grid does not contain exactly one start cell.
//   - ErrFinishCount: grid does not contain exactly one finish cell.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ErrStepLimit:   the WithMaxSteps cap was exceeded.
//
// A disconnected maze is NOT an error: FindShortestPath returns a
// Result with Found == false and a nil error.
package wavefront
