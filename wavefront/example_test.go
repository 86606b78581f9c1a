// File: wavefront/example_test.go
package wavefront_test

import (
	"fmt"

	"github.com/PaperFox56/Labyrinth-Pathfinder/grid"
	"github.com/PaperFox56/Labyrinth-Pathfinder/wavefront"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FindShortestPath
////////////////////////////////////////////////////////////////////////////////

// ExampleFindShortestPath demonstrates solving a small maze.
// Scenario:
//
//   - 5×5 maze, start at (0,1), finish at (4,3)
//   - Walls force the route around the blocked third column
//   - Expect an optimal 7-cell path (6 moves)
func ExampleFindShortestPath() {
	g, _ := grid.From2D([][]int{
		{0, 2, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 0, 1},
		{1, 1, 1, 3, 1},
	})

	res, _ := wavefront.FindShortestPath(g)
	fmt.Println("found:", res.Found)
	fmt.Println("cells:", res.Length())
	fmt.Println("from:", res.Path[0], "to:", res.Path[len(res.Path)-1])

	// Output:
	// found: true
	// cells: 7
	// from: (0,1) to: (4,3)
}

////////////////////////////////////////////////////////////////////////////////
// Example: FindShortestPath with a disconnected maze
////////////////////////////////////////////////////////////////////////////////

// ExampleFindShortestPath_noPath shows that a disconnected maze is a
// normal result, not an error.
func ExampleFindShortestPath_noPath() {
	g, _ := grid.ParseString("203")

	res, err := wavefront.FindShortestPath(g)
	fmt.Println("err:", err)
	fmt.Println("found:", res.Found)

	// Output:
	// err: <nil>
	// found: false
}

////////////////////////////////////////////////////////////////////////////////
// Example: observing propagation steps
////////////////////////////////////////////////////////////////////////////////

// ExampleWithOnStep shows the snapshot hook: one frame per propagation
// step, in order, starting with the initial seed.
func ExampleWithOnStep() {
	g, _ := grid.ParseString("211113")

	steps := 0
	res, _ := wavefront.FindShortestPath(g,
		wavefront.WithOnStep(func(step int, field [][]int) {
			steps++
			fmt.Printf("step %d: %v\n", step, field[0])
		}))
	fmt.Println("frames:", steps, "found:", res.Found)

	// Output:
	// step 0: [1 0 0 0 0 -1]
	// step 1: [1 2 0 0 -2 -1]
	// step 2: [1 2 3 -3 -2 -1]
	// frames: 3 found: true
}
