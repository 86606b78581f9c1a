// Command labviz replays the propagation of the bidirectional
// wavefront solver frame by frame in the terminal: the start front is
// drawn in blue, the finish front in red, and the final frame overlays
// the reconstructed path.
//
// Controls: ←/→ step, Home/End jump, q or Esc quit.
//
// Usage:
//
//	labviz -map maze.txt
//	labviz -rows 21 -cols 41 -walls 0.35 -seed 7
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/PaperFox56/Labyrinth-Pathfinder/grid"
	"github.com/PaperFox56/Labyrinth-Pathfinder/wavefront"
)

// viewer holds the recorded frames and the terminal state.
type viewer struct {
	screen  tcell.Screen
	maze    *grid.Grid
	frames  [][][]int
	path    map[grid.Coord]bool // non-nil only on the last frame
	current int
}

func run() int {
	var (
		mapFile string
		rows    int
		cols    int
		walls   float64
		seed    int64
	)
	flag.StringVar(&mapFile, "map", "",
		"Path to a text maze ('0'=wall '1'=empty '2'=start '3'=finish). "+
			"Omit to generate a random maze.")
	flag.IntVar(&rows, "rows", 21, "Rows of the generated maze.")
	flag.IntVar(&cols, "cols", 41, "Columns of the generated maze.")
	flag.Float64Var(&walls, "walls", 0.35, "Wall probability of the generated maze, in [0,1).")
	flag.Int64Var(&seed, "seed", 0, "Random seed for generation (0 = time-based).")
	flag.Parse()

	g, err := loadOrGenerate(mapFile, rows, cols, walls, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "labviz: %s\n", err)
		return 2
	}

	var frames [][][]int
	res, err := wavefront.FindShortestPath(g,
		wavefront.WithOnStep(func(_ int, field [][]int) {
			frames = append(frames, field)
		}))
	if err != nil {
		fmt.Fprintf(os.Stderr, "labviz: %s\n", err)
		return 2
	}

	v := &viewer{maze: g, frames: frames}
	if res.Found {
		v.path = make(map[grid.Coord]bool, len(res.Path))
		for _, c := range res.Path {
			v.path[c] = true
		}
	}

	if err := v.show(); err != nil {
		fmt.Fprintf(os.Stderr, "labviz: %s\n", err)
		return 2
	}
	if !res.Found {
		fmt.Println("no path between start and finish")
		return 1
	}
	fmt.Printf("path length: %d cells over %d propagation steps\n", res.Length(), res.Steps)
	return 0
}

// loadOrGenerate resolves the maze source: a file or the generator.
func loadOrGenerate(mapFile string, rows, cols int, walls float64, seed int64) (*grid.Grid, error) {
	if mapFile == "" {
		return grid.Random(rows, cols,
			grid.WithWallProbability(walls),
			grid.WithSeed(seed),
		)
	}
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return grid.Parse(f)
}

// show runs the tcell event loop until the user quits.
func (v *viewer) show() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	v.screen = screen

	v.draw()
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC,
				ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyLeft:
				v.jump(v.current - 1)
			case ev.Key() == tcell.KeyRight:
				v.jump(v.current + 1)
			case ev.Key() == tcell.KeyHome:
				v.jump(0)
			case ev.Key() == tcell.KeyEnd:
				v.jump(len(v.frames) - 1)
			}
		case *tcell.EventResize:
			screen.Sync()
			v.draw()
		}
	}
}

// jump clamps and switches the displayed frame.
func (v *viewer) jump(frame int) {
	if frame < 0 || frame >= len(v.frames) {
		return
	}
	v.current = frame
	v.draw()
}

// draw renders the current frame plus a status line.
func (v *viewer) draw() {
	v.screen.Clear()
	field := v.frames[v.current]
	lastFrame := v.current == len(v.frames)-1

	for r := range field {
		for c, val := range field[r] {
			ch, style := v.cellGlyph(r, c, val, lastFrame)
			v.screen.SetContent(c, r, ch, nil, style)
		}
	}

	status := fmt.Sprintf("frame %d/%d  ←/→ step  Home/End jump  q quit",
		v.current, len(v.frames)-1)
	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for i, ch := range status {
		v.screen.SetContent(i, len(field)+1, ch, nil, statusStyle)
	}
	v.screen.Show()
}

// cellGlyph picks the rune and style for one cell: walls solid, fronts
// shaded by sign with their depth's last digit, path overlaid in green
// on the final frame.
func (v *viewer) cellGlyph(r, c, val int, lastFrame bool) (rune, tcell.Style) {
	if v.maze.IsWall(r, c) {
		return '█', tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
	if lastFrame && v.path != nil && v.path[grid.Coord{Row: r, Col: c}] {
		return '•', tcell.StyleDefault.Foreground(tcell.ColorGreen)
	}
	switch {
	case val > 0:
		return digit(val), tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case val < 0:
		return digit(-val), tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
	return ' ', tcell.StyleDefault
}

// digit returns the last decimal digit of a positive depth as a rune.
func digit(v int) rune {
	return rune('0' + v%10)
}

func main() {
	os.Exit(run())
}
