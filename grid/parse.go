package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads the text maze encoding from r: one row per line, one rune
// per cell ('0'=Wall, '1'=Empty, '2'=Start, '3'=Finish). Blank lines
// and surrounding whitespace are ignored, so trailing newlines and
// indented fixtures are fine.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrCellValue on malformed
// input, or any underlying read error.
func Parse(r io.Reader) (*Grid, error) {
	var values [][]int
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		row := make([]int, 0, len(line))
		for _, ch := range line {
			if ch < '0' || ch > '3' {
				return nil, fmt.Errorf("%w: unexpected rune %q", ErrCellValue, ch)
			}
			row = append(row, int(ch-'0'))
		}
		values = append(values, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("grid: reading maze: %w", err)
	}
	if len(values) == 0 {
		return nil, ErrEmptyGrid
	}

	return From2D(values)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}
