package wavefront

import (
	"github.com/PaperFox56/Labyrinth-Pathfinder/grid"
)

// neighborOffsets is the fixed 4-neighbor visit order (up, left, down,
// right). Greedy ties between equally good neighbors resolve to the
// first offset, which keeps reconstruction deterministic for a given
// finished field.
var neighborOffsets = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// reconstruct builds the full start→finish path from one meet point on
// a finished field: a greedy walk to the +1 seed (recorded backwards,
// then reversed) followed by a greedy walk to the -1 seed. The meet
// point appears exactly once. Each walk step moves to a strictly
// smaller front depth, so neither walk can revisit a cell or run
// longer than its front's depth at the meet point — no visited set is
// needed.
func (f *field) reconstruct(meet grid.Coord) []grid.Coord {
	// Toward the start: follow the smallest positive neighbor value
	// down to +1.
	toStart := []grid.Coord{meet}
	for cur := meet; f.at(cur) != 1; {
		cur = f.closestNeighbor(cur, true)
		toStart = append(toStart, cur)
	}
	for i, j := 0, len(toStart)-1; i < j; i, j = i+1, j-1 {
		toStart[i], toStart[j] = toStart[j], toStart[i]
	}

	// Toward the finish: follow the largest (closest to zero) negative
	// neighbor value down to -1.
	path := toStart
	for cur := meet; f.at(cur) != -1; {
		cur = f.closestNeighbor(cur, false)
		path = append(path, cur)
	}

	return path
}

// closestNeighbor returns the 4-neighbor of c nearest to the front seed
// of the requested sign: the smallest positive value when positive is
// true, otherwise the largest negative value. The caller guarantees a
// qualifying neighbor exists (c lies on a front adjacent to the other,
// or strictly inside its own front).
func (f *field) closestNeighbor(c grid.Coord, positive bool) grid.Coord {
	var (
		best     grid.Coord
		bestVal  int
		bestSeen bool
	)
	for _, d := range neighborOffsets {
		r, col := c.Row+d[0], c.Col+d[1]
		if r < 0 || r >= f.rows || col < 0 || col >= f.cols {
			continue
		}
		val := f.cells[r*f.cols+col]
		if positive {
			if val > 0 && (!bestSeen || val < bestVal) {
				best, bestVal, bestSeen = grid.Coord{Row: r, Col: col}, val, true
			}
		} else {
			if val < 0 && (!bestSeen || val > bestVal) {
				best, bestVal, bestSeen = grid.Coord{Row: r, Col: col}, val, true
			}
		}
	}
	return best
}
