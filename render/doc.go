// Package render draws mazes and solved paths, either as text for
// terminals or as an image.RGBA for PNG export.
//
// What:
//
//   - ASCII renders a grid (and optionally a path) with block runes:
//     '█' wall, ' ' empty, 'S' start, 'F' finish, '•' path cell.
//   - Image rasterizes the same view with one colored square per cell,
//     scaled by CellPixels and framed with an optional border.
//
// Rendering is presentation only: it never validates the maze and
// happily draws paths that the solver would reject.
package render
