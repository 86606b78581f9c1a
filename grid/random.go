package grid

import (
	"math/rand"
	"time"
)

// defaultWallProbability matches the classic "interesting but usually
// solvable" density for uniformly sampled mazes.
const defaultWallProbability = 0.4

// RandomOption configures Random via functional arguments.
// An invalid option is recorded internally and surfaced as an error
// when Random is invoked.
type RandomOption func(*randomOptions)

type randomOptions struct {
	wallProbability float64
	seed            int64
	err             error
}

// WithWallProbability sets the probability that any given cell is
// sampled as a Wall. Must be in [0, 1); values ≥ 1 would leave no room
// for a path and are rejected with ErrWallProbability.
func WithWallProbability(p float64) RandomOption {
	return func(o *randomOptions) {
		if p < 0 || p >= 1 {
			o.err = ErrWallProbability
			return
		}
		o.wallProbability = p
	}
}

// WithSeed fixes the random source for reproducible mazes.
// A seed of 0 (the default) derives the seed from the current time.
func WithSeed(seed int64) RandomOption {
	return func(o *randomOptions) { o.seed = seed }
}

// Random samples a rows×cols maze: each cell is a Wall with the
// configured probability, then one Start and one Finish are placed at
// two distinct uniformly chosen cells (overwriting whatever was
// sampled there). The result always satisfies the solver's
// exactly-one-start/finish precondition, but is not guaranteed to be
// solvable. Complexity: O(R×C).
func Random(rows, cols int, opts ...RandomOption) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	if rows*cols < 2 {
		return nil, ErrGridTooSmall
	}
	o := randomOptions{wallProbability: defaultWallProbability}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	cells := make([]CellKind, rows*cols)
	for i := range cells {
		if rng.Float64() < o.wallProbability {
			cells[i] = Wall
		} else {
			cells[i] = Empty
		}
	}

	// Start and finish must land on distinct cells.
	start := rng.Intn(len(cells))
	finish := rng.Intn(len(cells))
	for finish == start {
		finish = rng.Intn(len(cells))
	}
	cells[start] = Start
	cells[finish] = Finish

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}
