package grid

import "strings"

// From2D constructs a Grid from a non-empty, rectangular 2D slice of
// integers in the wire vocabulary {0=Wall, 1=Empty, 2=Start, 3=Finish}.
// The input is deep-copied to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrCellValue if any cell falls outside the vocabulary.
// Complexity: O(R×C) time and memory.
func From2D(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	cells := make([]CellKind, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := values[r][c]
			if !validKind(v) {
				return nil, ErrCellValue
			}
			cells[r*cols+c] = CellKind(v)
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row,col) lies within the grid boundaries.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the kind of the cell at (row,col).
// Callers must ensure the coordinate is in bounds.
func (g *Grid) At(row, col int) CellKind {
	return g.cells[row*g.cols+col]
}

// IsWall reports whether the cell at (row,col) is a Wall.
func (g *Grid) IsWall(row, col int) bool {
	return g.At(row, col) == Wall
}

// Positions returns the coordinates of every cell of the given kind,
// in row-major order. Complexity: O(R×C).
func (g *Grid) Positions(kind CellKind) []Coord {
	var out []Coord
	for i, k := range g.cells {
		if k == kind {
			out = append(out, Coord{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return out
}

// Clone2D returns a fresh [][]int copy of the grid in the wire
// vocabulary. Mutating the copy does not affect the Grid.
func (g *Grid) Clone2D() [][]int {
	out := make([][]int, g.rows)
	for r := 0; r < g.rows; r++ {
		row := make([]int, g.cols)
		for c := 0; c < g.cols; c++ {
			row[c] = int(g.cells[r*g.cols+c])
		}
		out[r] = row
	}
	return out
}

// String encodes the grid in the text form accepted by Parse:
// one row per line, one rune per cell.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sb.WriteString(g.cells[r*g.cols+c].String())
		}
		if r < g.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
