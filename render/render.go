package render

import (
	"image"
	"image/color"
	"strings"

	"github.com/yalue/image_utils"

	"github.com/PaperFox56/Labyrinth-Pathfinder/grid"
)

// Cell colors for Image. Start and finish keep their tint even when a
// path runs over them.
var (
	wallColor   = color.RGBA{30, 30, 30, 255}
	emptyColor  = color.RGBA{255, 255, 255, 255}
	pathColor   = color.RGBA{100, 120, 255, 255}
	startColor  = color.RGBA{40, 180, 70, 255}
	finishColor = color.RGBA{200, 60, 60, 255}
	borderColor = color.RGBA{30, 30, 30, 255}
)

// ASCII renders the maze as one line per row. Pass a nil path to draw
// the bare maze.
func ASCII(g *grid.Grid, path []grid.Coord) string {
	onPath := make(map[grid.Coord]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}
	var sb strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			switch {
			case g.At(r, c) == grid.Start:
				sb.WriteRune('S')
			case g.At(r, c) == grid.Finish:
				sb.WriteRune('F')
			case g.IsWall(r, c):
				sb.WriteRune('█')
			case onPath[grid.Coord{Row: r, Col: c}]:
				sb.WriteRune('•')
			default:
				sb.WriteRune(' ')
			}
		}
		if r < g.Rows()-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ImageOptions tunes rasterization.
type ImageOptions struct {
	// CellPixels is the square cell size in pixels; values < 1 fall
	// back to the default.
	CellPixels int
	// Border is the frame width in pixels; 0 disables the frame.
	Border int
}

// DefaultImageOptions returns 9-pixel cells inside a 4-pixel frame.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{CellPixels: 9, Border: 4}
}

// Image rasterizes the maze, one CellPixels×CellPixels square per cell,
// and flattens the framed result to an RGBA image ready for png.Encode.
// Pass a nil path to draw the bare maze.
func Image(g *grid.Grid, path []grid.Coord, opts ImageOptions) *image.RGBA {
	scale := opts.CellPixels
	if scale < 1 {
		scale = DefaultImageOptions().CellPixels
	}
	onPath := make(map[grid.Coord]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	base := image.NewRGBA(image.Rect(0, 0, g.Cols()*scale, g.Rows()*scale))
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			fill := cellColor(g, onPath, r, c)
			for y := r * scale; y < (r+1)*scale; y++ {
				for x := c * scale; x < (c+1)*scale; x++ {
					base.SetRGBA(x, y, fill)
				}
			}
		}
	}
	if opts.Border <= 0 {
		return base
	}

	return image_utils.ToRGBA(image_utils.AddImageBorder(base, borderColor, opts.Border))
}

// cellColor picks the fill for one cell; start/finish tint wins over
// the path overlay.
func cellColor(g *grid.Grid, onPath map[grid.Coord]bool, r, c int) color.RGBA {
	switch {
	case g.At(r, c) == grid.Start:
		return startColor
	case g.At(r, c) == grid.Finish:
		return finishColor
	case g.IsWall(r, c):
		return wallColor
	case onPath[grid.Coord{Row: r, Col: c}]:
		return pathColor
	}
	return emptyColor
}
