// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/PaperFox56/Labyrinth-Pathfinder.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and generation.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrCellValue indicates a cell outside the {0,1,2,3} vocabulary.
	ErrCellValue = errors.New("grid: cell value must be 0 (wall), 1 (empty), 2 (start) or 3 (finish)")
	// ErrGridTooSmall indicates a requested random grid cannot hold both a start and a finish.
	ErrGridTooSmall = errors.New("grid: random grid needs at least two cells")
	// ErrWallProbability indicates a wall probability outside [0, 1).
	ErrWallProbability = errors.New("grid: wall probability must be in [0, 1)")
)

// CellKind classifies a single maze cell.
// The numeric values match the wire vocabulary used by loaders and
// generators: 0=Wall, 1=Empty, 2=Start, 3=Finish.
type CellKind int8

const (
	// Wall blocks movement; never part of a path.
	Wall CellKind = iota
	// Empty is a traversable cell.
	Empty
	// Start marks the single path origin.
	Start
	// Finish marks the single path destination.
	Finish
)

// String returns a one-rune text encoding of the cell kind.
func (k CellKind) String() string {
	switch k {
	case Wall:
		return "0"
	case Empty:
		return "1"
	case Start:
		return "2"
	case Finish:
		return "3"
	}
	return fmt.Sprintf("CellKind(%d)", int8(k))
}

// validKind reports whether v is inside the cell vocabulary.
func validKind(v int) bool {
	return v >= int(Wall) && v <= int(Finish)
}

// Coord addresses one cell by row and column, zero-based, row-major.
type Coord struct {
	Row, Col int
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// ManhattanDistance returns |Δrow| + |Δcol| between c and other.
func (c Coord) ManhattanDistance(other Coord) int {
	dr := c.Row - other.Row
	if dr < 0 {
		dr = -dr
	}
	dc := c.Col - other.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Grid is an immutable rectangular maze. Cells are stored row-major in
// a flat slice for cache friendliness; all constructors deep-copy their
// input, so a Grid never aliases caller memory.
type Grid struct {
	rows, cols int
	cells      []CellKind // flat backing storage, length == rows*cols
}
