package wavefront

import (
	"github.com/PaperFox56/Labyrinth-Pathfinder/grid"
)

// field is the mutable state of one solve: a signed distance field and
// the wall mask derived from the input grid, both row-major flat slices.
// A field is owned by exactly one FindShortestPath invocation; nothing
// survives the call, so repeated and concurrent solves share no state.
type field struct {
	rows, cols int
	cells      []int  // signed distances: 0 unvisited/wall, +k start front, -k finish front
	mask       []bool // true for non-wall cells; never changes during a solve
}

// initialize derives (wall mask, seeded distance field, collision lower
// bound) from the grid. It fails with ErrStartCount or ErrFinishCount
// unless the grid holds exactly one start and one finish cell; this is
// fatal and happens before any propagation.
// The lower bound floor((manhattan-1)/2) gates collision checks only —
// the fronts cannot touch before each has advanced that far — and is
// never used to gate propagation itself.
func initialize(g *grid.Grid) (f *field, lowerBound int, err error) {
	starts := g.Positions(grid.Start)
	if len(starts) != 1 {
		return nil, 0, ErrStartCount
	}
	finishes := g.Positions(grid.Finish)
	if len(finishes) != 1 {
		return nil, 0, ErrFinishCount
	}
	start, finish := starts[0], finishes[0]

	rows, cols := g.Rows(), g.Cols()
	f = &field{
		rows:  rows,
		cols:  cols,
		cells: make([]int, rows*cols),
		mask:  make([]bool, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			f.mask[r*cols+c] = !g.IsWall(r, c)
		}
	}
	f.cells[start.Row*cols+start.Col] = 1
	f.cells[finish.Row*cols+finish.Col] = -1

	lowerBound = (start.ManhattanDistance(finish) - 1) / 2

	return f, lowerBound, nil
}

// views holds the four materialized neighbor snapshots of one step.
// views.above[i] is the previous-step value of cell i's upper neighbor,
// and so on; out-of-bounds neighbors read as 0. Because every view is
// copied before any cell is written, the in-place update below still
// satisfies the synchronous whole-grid contract: no cell's new value is
// ever computed from a neighbor updated in the same step.
type views struct {
	above, below, left, right []int
}

// neighborViews materializes the four shifted snapshots of the current field.
func (f *field) neighborViews() views {
	n := len(f.cells)
	v := views{
		above: make([]int, n),
		below: make([]int, n),
		left:  make([]int, n),
		right: make([]int, n),
	}
	// Row shifts: the first row has no upper neighbor, the last row no
	// lower neighbor; both stay zero.
	copy(v.above[f.cols:], f.cells[:n-f.cols])
	copy(v.below[:n-f.cols], f.cells[f.cols:])
	// Column shifts, per row: first column has no left neighbor, last
	// column no right neighbor.
	for r := 0; r < f.rows; r++ {
		lo := r * f.cols
		hi := lo + f.cols
		copy(v.left[lo+1:hi], f.cells[lo:hi-1])
		copy(v.right[lo:hi-1], f.cells[lo+1:hi])
	}
	return v
}

// collisions scans for cells whose value and an up- or right-neighbor's
// value have opposite signs, i.e. where the two fronts touch. Each
// adjacent pair is inspected exactly once (vertical pairs via the upper
// neighbor, horizontal pairs via the right neighbor). Meet points are
// returned in row-major scan order.
func (f *field) collisions(v views) []grid.Coord {
	var meets []grid.Coord
	for i, val := range f.cells {
		if val == 0 {
			continue
		}
		if val*v.above[i] < 0 || val*v.right[i] < 0 {
			meets = append(meets, grid.Coord{Row: i / f.cols, Col: i % f.cols})
		}
	}
	return meets
}

// propagate advances both fronts by one layer over the flat index range
// [lo, hi): every unvisited non-wall cell takes pos+1 where pos is its
// smallest positive neighbor value, else neg-1 where neg is its largest
// negative neighbor value, else stays 0. Wall cells and already-visited
// cells are never modified, so a nonzero entry is final for the solve.
func (f *field) propagate(v views, lo, hi int) {
	for i := lo; i < hi; i++ {
		if f.cells[i] != 0 || !f.mask[i] {
			continue
		}
		var (
			pos, neg         int
			posSeen, negSeen bool
		)
		for _, nb := range [4]int{v.above[i], v.below[i], v.left[i], v.right[i]} {
			switch {
			case nb > 0:
				if !posSeen || nb < pos {
					pos, posSeen = nb, true
				}
			case nb < 0:
				if !negSeen || nb > neg {
					neg, negSeen = nb, true
				}
			}
		}
		switch {
		case posSeen:
			f.cells[i] = pos + 1
		case negSeen:
			f.cells[i] = neg - 1
		}
	}
}

// extrema returns the current maximum positive and minimum negative
// entries. The seeds guarantee maxPos ≥ +1 and minNeg ≤ -1 throughout.
func (f *field) extrema() (maxPos, minNeg int) {
	for _, val := range f.cells {
		if val > maxPos {
			maxPos = val
		} else if val < minNeg {
			minNeg = val
		}
	}
	return maxPos, minNeg
}

// at returns the field value at c.
func (f *field) at(c grid.Coord) int {
	return f.cells[c.Row*f.cols+c.Col]
}

// snapshot returns an independent [][]int copy of the field for observers.
func (f *field) snapshot() [][]int {
	out := make([][]int, f.rows)
	for r := 0; r < f.rows; r++ {
		row := make([]int, f.cols)
		copy(row, f.cells[r*f.cols:(r+1)*f.cols])
		out[r] = row
	}
	return out
}
