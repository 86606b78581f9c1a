// Package grid models a rectangular 2D labyrinth as an immutable matrix
// of typed cells, and supplies the thin producers around it: random
// generation and text parsing.
//
// What:
//
//   - Grid wraps a rectangular matrix of CellKind values
//     (Wall, Empty, Start, Finish) with deep-copied, read-only storage.
//   - From2D builds a Grid from the integer wire vocabulary
//     {0=Wall, 1=Empty, 2=Start, 3=Finish}.
//   - Random samples a maze with a configurable wall probability and seed.
//   - Parse / ParseString read the one-rune-per-cell text encoding;
//     (*Grid).String writes it back.
//
// Why:
//
//   - The wavefront solver needs a validated, immutable maze it can
//     derive its wall mask and distance field from.
//   - Generators and loaders are deliberately dumb: shape and vocabulary
//     are enforced here, the exactly-one-start/finish rule belongs to
//     the solver's initializer.
//
// Complexity:
//
//   - From2D / Parse / Random: O(R×C) time and memory.
//   - All accessors: O(1), except Positions which is O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCellValue: a cell is outside the {0,1,2,3} vocabulary.
//   - ErrGridTooSmall: random generation asked for fewer than two cells.
//   - ErrWallProbability: wall probability outside [0, 1).
package grid
