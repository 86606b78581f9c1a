package wavefront_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PaperFox56/Labyrinth-Pathfinder/grid"
	"github.com/PaperFox56/Labyrinth-Pathfinder/wavefront"
)

// scenarioValues is a 5×5 maze with start (0,1), finish (4,3), and a
// single corridor system whose shortest route takes 6 moves.
var scenarioValues = [][]int{
	{0, 2, 1, 0, 0},
	{0, 1, 0, 1, 0},
	{1, 1, 1, 1, 1},
	{1, 1, 1, 0, 1},
	{1, 1, 1, 3, 1},
}

// mustGrid builds a grid from the wire vocabulary or fails the test.
func mustGrid(t *testing.T, values [][]int) *grid.Grid {
	t.Helper()
	g, err := grid.From2D(values)
	require.NoError(t, err)
	return g
}

// bfsDistance is the independent oracle: a plain single-source BFS over
// 4-adjacent non-wall cells. Returns the move count from start to
// finish, or -1 when unreachable.
func bfsDistance(g *grid.Grid) int {
	starts := g.Positions(grid.Start)
	finishes := g.Positions(grid.Finish)
	if len(starts) != 1 || len(finishes) != 1 {
		return -1
	}
	start, finish := starts[0], finishes[0]

	dist := make(map[grid.Coord]int, g.Rows()*g.Cols())
	dist[start] = 0
	queue := []grid.Coord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == finish {
			return dist[cur]
		}
		for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			next := grid.Coord{Row: cur.Row + d[0], Col: cur.Col + d[1]}
			if !g.InBounds(next.Row, next.Col) || g.IsWall(next.Row, next.Col) {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}
	return -1
}

// assertValidPath checks the structural path guarantees: endpoints on
// the start and finish cells, 4-adjacent consecutive pairs, no walls.
func assertValidPath(t *testing.T, g *grid.Grid, path []grid.Coord) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, grid.Start, g.At(path[0].Row, path[0].Col), "path must begin at the start cell")
	last := path[len(path)-1]
	assert.Equal(t, grid.Finish, g.At(last.Row, last.Col), "path must end at the finish cell")
	for i, c := range path {
		require.True(t, g.InBounds(c.Row, c.Col), "path cell %v out of bounds", c)
		assert.False(t, g.IsWall(c.Row, c.Col), "path crosses a wall at %v", c)
		if i > 0 {
			assert.Equal(t, 1, c.ManhattanDistance(path[i-1]),
				"consecutive path cells %v and %v are not 4-adjacent", path[i-1], c)
		}
	}
}

// TestFindShortestPath_Errors verifies nil grids, invariant violations,
// and bad options are rejected before any propagation.
func TestFindShortestPath_Errors(t *testing.T) {
	_, err := wavefront.FindShortestPath(nil)
	assert.ErrorIs(t, err, wavefront.ErrGridNil, "nil grid")

	twoStarts := mustGrid(t, [][]int{{2, 2}, {1, 3}})
	_, err = wavefront.FindShortestPath(twoStarts)
	assert.ErrorIs(t, err, wavefront.ErrStartCount, "two start cells")

	noStart := mustGrid(t, [][]int{{1, 1}, {1, 3}})
	_, err = wavefront.FindShortestPath(noStart)
	assert.ErrorIs(t, err, wavefront.ErrStartCount, "zero start cells")

	twoFinishes := mustGrid(t, [][]int{{2, 3}, {1, 3}})
	_, err = wavefront.FindShortestPath(twoFinishes)
	assert.ErrorIs(t, err, wavefront.ErrFinishCount, "two finish cells")

	noFinish := mustGrid(t, [][]int{{2, 1}, {1, 1}})
	_, err = wavefront.FindShortestPath(noFinish)
	assert.ErrorIs(t, err, wavefront.ErrFinishCount, "zero finish cells")

	ok := mustGrid(t, [][]int{{2, 3}})
	_, err = wavefront.FindShortestPath(ok, wavefront.WithMaxSteps(-1))
	assert.ErrorIs(t, err, wavefront.ErrOptionViolation, "negative MaxSteps")
	_, err = wavefront.FindShortestPath(ok, wavefront.WithWorkers(-2))
	assert.ErrorIs(t, err, wavefront.ErrOptionViolation, "negative Workers")
}

// TestFindShortestPath_Scenario solves the corridor maze and checks the
// path against the BFS oracle (6 moves, 7 cells).
func TestFindShortestPath_Scenario(t *testing.T) {
	g := mustGrid(t, scenarioValues)
	res, err := wavefront.FindShortestPath(g)
	require.NoError(t, err)
	require.True(t, res.Found)

	assertValidPath(t, g, res.Path)
	assert.Equal(t, bfsDistance(g)+1, res.Length(), "path must be optimal")
	assert.Equal(t, 7, res.Length())
	assert.NotEmpty(t, res.MeetPoints)
	assert.Contains(t, res.Path, res.MeetPoints[0], "the chosen meet point lies on the path")
}

// TestFindShortestPath_AdjacentSeeds covers the zero-propagation edge
// case: start and finish already touch, collision at step 1.
func TestFindShortestPath_AdjacentSeeds(t *testing.T) {
	var snapshots int
	g := mustGrid(t, [][]int{
		{1, 1, 1},
		{1, 2, 3},
		{1, 1, 1},
	})
	res, err := wavefront.FindShortestPath(g,
		wavefront.WithOnStep(func(int, [][]int) { snapshots++ }))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 2, res.Length(), "adjacent seeds give a two-cell path")
	assert.Equal(t, 1, res.Steps, "collision must happen at step 1")
	assert.Equal(t, 1, snapshots, "no propagation step, only the initial seed snapshot")
	assertValidPath(t, g, res.Path)
}

// TestFindShortestPath_NoPath verifies the stall outcome: an enclosed
// start is reported as data, not as an error, with no partial path.
func TestFindShortestPath_NoPath(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 0, 1, 1},
		{0, 0, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 3},
	})
	res, err := wavefront.FindShortestPath(g)
	require.NoError(t, err, "a disconnected maze is not an error")
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Empty(t, res.MeetPoints)
}

// TestFindShortestPath_NoPath_BothBoxed covers a stall where both
// fronts freeze on the same step (the unchanged-extrema signal, since
// the depth gap never exceeds 1).
func TestFindShortestPath_NoPath_BothBoxed(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 0, 3},
	})
	res, err := wavefront.FindShortestPath(g)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
}

// TestFindShortestPath_OpenGrid checks that on a wall-free grid the
// path length is exactly the Manhattan distance plus one.
func TestFindShortestPath_OpenGrid(t *testing.T) {
	const n = 25
	pairs := []struct{ start, finish grid.Coord }{
		{grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: n - 1, Col: n - 1}},
		{grid.Coord{Row: 3, Col: 20}, grid.Coord{Row: 17, Col: 4}},
		{grid.Coord{Row: 12, Col: 12}, grid.Coord{Row: 12, Col: 13}},
		{grid.Coord{Row: 0, Col: 24}, grid.Coord{Row: 24, Col: 0}},
	}
	for _, p := range pairs {
		values := make([][]int, n)
		for r := range values {
			row := make([]int, n)
			for c := range row {
				row[c] = int(grid.Empty)
			}
			values[r] = row
		}
		values[p.start.Row][p.start.Col] = int(grid.Start)
		values[p.finish.Row][p.finish.Col] = int(grid.Finish)

		g := mustGrid(t, values)
		res, err := wavefront.FindShortestPath(g)
		require.NoError(t, err)
		require.True(t, res.Found, "open grid pair %v→%v", p.start, p.finish)
		assert.Equal(t, p.start.ManhattanDistance(p.finish)+1, res.Length(),
			"open grid path %v→%v must be Manhattan-optimal", p.start, p.finish)
		assertValidPath(t, g, res.Path)
	}
}

// TestFindShortestPath_MatchesBFS cross-checks outcome and optimality
// against the oracle on a spread of random mazes.
func TestFindShortestPath_MatchesBFS(t *testing.T) {
	for seed := int64(1); seed <= 60; seed++ {
		g, err := grid.Random(15, 21, grid.WithSeed(seed))
		require.NoError(t, err)

		res, err := wavefront.FindShortestPath(g)
		require.NoError(t, err, "seed %d", seed)

		oracle := bfsDistance(g)
		if oracle < 0 {
			assert.False(t, res.Found, "seed %d: oracle says disconnected", seed)
			assert.Nil(t, res.Path, "seed %d", seed)
			continue
		}
		require.True(t, res.Found, "seed %d: oracle found distance %d", seed, oracle)
		assert.Equal(t, oracle+1, res.Length(), "seed %d: path must be optimal", seed)
		assertValidPath(t, g, res.Path)
	}
}

// TestFindShortestPath_Deterministic re-runs the same maze and expects
// an identical coordinate sequence under the fixed tie-break.
func TestFindShortestPath_Deterministic(t *testing.T) {
	g, err := grid.Random(20, 20, grid.WithSeed(99), grid.WithWallProbability(0.35))
	require.NoError(t, err)

	first, err := wavefront.FindShortestPath(g)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := wavefront.FindShortestPath(g)
		require.NoError(t, err)
		assert.Equal(t, first.Found, again.Found)
		assert.Equal(t, first.Path, again.Path, "run %d diverged", i)
		assert.Equal(t, first.MeetPoints, again.MeetPoints, "run %d diverged", i)
	}
}

// TestFindShortestPath_MonotonicField replays the snapshot stream and
// asserts the visit invariants: a nonzero entry never changes again,
// and wall cells stay zero for the whole run.
func TestFindShortestPath_MonotonicField(t *testing.T) {
	g := mustGrid(t, scenarioValues)
	var frames [][][]int
	_, err := wavefront.FindShortestPath(g,
		wavefront.WithOnStep(func(_ int, field [][]int) { frames = append(frames, field) }))
	require.NoError(t, err)
	require.NotEmpty(t, frames)

	for k := 1; k < len(frames); k++ {
		prev, cur := frames[k-1], frames[k]
		for r := range cur {
			for c := range cur[r] {
				if prev[r][c] != 0 {
					assert.Equal(t, prev[r][c], cur[r][c],
						"cell (%d,%d) changed after first visit at frame %d", r, c, k)
				}
				if g.IsWall(r, c) {
					assert.Zero(t, cur[r][c], "wall cell (%d,%d) acquired a distance", r, c)
				}
			}
		}
	}
}

// TestFindShortestPath_Cancellation verifies a cancelled context halts
// the solve with the context's error.
func TestFindShortestPath_Cancellation(t *testing.T) {
	g := mustGrid(t, scenarioValues)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	_, err := wavefront.FindShortestPath(g, wavefront.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestFindShortestPath_StepLimit verifies the WithMaxSteps guard.
func TestFindShortestPath_StepLimit(t *testing.T) {
	g := mustGrid(t, scenarioValues)

	_, err := wavefront.FindShortestPath(g, wavefront.WithMaxSteps(1))
	assert.ErrorIs(t, err, wavefront.ErrStepLimit, "one step cannot reach a collision here")

	res, err := wavefront.FindShortestPath(g, wavefront.WithMaxSteps(100))
	require.NoError(t, err, "a generous cap must not interfere")
	assert.True(t, res.Found)
}

// TestFindShortestPath_WorkersEquivalence checks that parallel
// propagation reproduces the serial result exactly.
func TestFindShortestPath_WorkersEquivalence(t *testing.T) {
	for seed := int64(1); seed <= 15; seed++ {
		g, err := grid.Random(30, 17, grid.WithSeed(seed))
		require.NoError(t, err)

		serial, err := wavefront.FindShortestPath(g)
		require.NoError(t, err)
		parallel, err := wavefront.FindShortestPath(g, wavefront.WithWorkers(4))
		require.NoError(t, err)

		assert.Equal(t, serial.Found, parallel.Found, "seed %d", seed)
		assert.Equal(t, serial.Path, parallel.Path, "seed %d", seed)
		assert.Equal(t, serial.Steps, parallel.Steps, "seed %d", seed)
	}
}

// TestFindShortestPath_ConcurrentSolves ensures solves on different
// grids share no state.
func TestFindShortestPath_ConcurrentSolves(t *testing.T) {
	const goroutines = 8
	errs := make(chan error, goroutines)
	for i := 0; i < goroutines; i++ {
		seed := int64(i + 1)
		go func() {
			g, err := grid.Random(25, 25, grid.WithSeed(seed))
			if err != nil {
				errs <- err
				return
			}
			res, err := wavefront.FindShortestPath(g)
			if err == nil && res.Found {
				// Validate in-goroutine to catch cross-talk corrupting paths.
				if res.Length() != bfsDistance(g)+1 {
					err = assert.AnError
				}
			}
			errs <- err
		}()
	}
	for i := 0; i < goroutines; i++ {
		assert.NoError(t, <-errs, "concurrent solve #%d", i)
	}
}

// TestFindShortestPath_Timings checks the metrics contract: phase
// durations are populated and reconstruction is only timed on success.
func TestFindShortestPath_Timings(t *testing.T) {
	g := mustGrid(t, scenarioValues)
	res, err := wavefront.FindShortestPath(g)
	require.NoError(t, err)
	assert.Positive(t, res.PropagationTime)
	assert.Positive(t, res.ReconstructionTime)
	assert.Positive(t, res.Steps)

	blocked := mustGrid(t, [][]int{{2, 0, 3}})
	res, err = wavefront.FindShortestPath(blocked)
	require.NoError(t, err)
	assert.Positive(t, res.PropagationTime)
	assert.Zero(t, res.ReconstructionTime, "no reconstruction phase without a path")
}
