// Package heightmap provides the immutable elevation grid consumed by the
// graph builder:
//
//   - Parsing of 'a'..'z' / 'S' / 'E' text into elevations 0..25
//   - Validation of rectangular shape and unique start/end markers
//   - Row-major cell ids shared by every downstream package
package heightmap

import (
	"fmt"
	"io"
	"strings"
)

// Parse builds a Grid from text with one row per line and one elevation
// symbol per column. A single trailing line break is ignored; "\r\n" line
// endings are accepted. Parse fails with an error matching ErrMalformedInput
// on empty input, ragged rows, unknown symbols, or a missing/duplicated
// start or end marker. It never repairs input.
// Complexity: O(W×H) time and memory.
func Parse(text string) (*Grid, error) {
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	if text == "" {
		return nil, malformed(ErrEmptyGrid, "no rows")
	}
	lines := strings.Split(text, "\n")
	h := len(lines)
	w := len([]rune(strings.TrimSuffix(lines[0], "\r")))
	if w == 0 {
		return nil, malformed(ErrEmptyGrid, "row 0 is empty")
	}

	elevations := make([]int, 0, w*h)
	start, end := -1, -1
	for r, line := range lines {
		row := []rune(strings.TrimSuffix(line, "\r"))
		if len(row) != w {
			return nil, malformed(ErrNonRectangular, "row %d has %d columns, want %d", r, len(row), w)
		}
		for c, sym := range row {
			id := r*w + c
			switch sym {
			case StartMarker:
				if start >= 0 {
					return nil, malformed(ErrDuplicateStart, "at row %d col %d", r, c)
				}
				start = id
			case EndMarker:
				if end >= 0 {
					return nil, malformed(ErrDuplicateEnd, "at row %d col %d", r, c)
				}
				end = id
			}
			e, ok := ElevationOf(sym)
			if !ok {
				return nil, malformed(ErrInvalidSymbol, "%q at row %d col %d", sym, r, c)
			}
			elevations = append(elevations, e)
		}
	}
	if start < 0 {
		return nil, malformed(ErrMissingStart, "no %q in %d×%d grid", StartMarker, w, h)
	}
	if end < 0 {
		return nil, malformed(ErrMissingEnd, "no %q in %d×%d grid", EndMarker, w, h)
	}

	return &Grid{Width: w, Height: h, elevations: elevations, start: start, end: end}, nil
}

// Load reads all of r and parses it with Parse. Read failures are returned
// wrapped and do not match ErrMalformedInput.
func Load(r io.Reader) (*Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("heightmap: read input: %w", err)
	}

	return Parse(string(data))
}

// FromElevations constructs a Grid from a non-empty, rectangular 2D slice of
// elevations indexed [row][col], with explicit start and end points.
// It deep-copies the input to ensure immutability. Start and end may coincide.
// Complexity: O(W×H) time and memory.
func FromElevations(values [][]int, start, end Point) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, malformed(ErrEmptyGrid, "no rows or no columns")
	}
	h, w := len(values), len(values[0])
	elevations := make([]int, 0, w*h)
	for r, row := range values {
		if len(row) != w {
			return nil, malformed(ErrNonRectangular, "row %d has %d columns, want %d", r, len(row), w)
		}
		for c, e := range row {
			if e < MinElevation || e > MaxElevation {
				return nil, malformed(ErrElevationRange, "%d at row %d col %d", e, r, c)
			}
			elevations = append(elevations, e)
		}
	}
	g := &Grid{Width: w, Height: h, elevations: elevations}
	for _, p := range []Point{start, end} {
		if !g.InBounds(p.Row, p.Col) {
			return nil, malformed(ErrOutOfBounds, "(%d,%d) outside %d×%d grid", p.Row, p.Col, w, h)
		}
	}
	g.start = g.Index(start.Row, start.Col)
	g.end = g.Index(end.Row, end.Col)

	return g, nil
}

// ElevationOf maps an input symbol to its elevation: 'a'..'z' → 0..25,
// StartMarker → MinElevation, EndMarker → MaxElevation.
// The boolean is false for any other symbol.
func ElevationOf(sym rune) (int, bool) {
	switch {
	case sym >= 'a' && sym <= 'z':
		return int(sym - 'a'), true
	case sym == StartMarker:
		return MinElevation, true
	case sym == EndMarker:
		return MaxElevation, true
	}

	return 0, false
}

// malformed wraps a specific sentinel with ErrMalformedInput and context.
func malformed(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: "+format, append([]any{ErrMalformedInput, sentinel}, args...)...)
}

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int {
	return len(g.elevations)
}

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// Index maps (row,col) to a row-major cell id: row*Width + col.
// Complexity: O(1).
func (g *Grid) Index(row, col int) int {
	return row*g.Width + col
}

// Coordinate converts a row-major cell id back to (row,col).
// Complexity: O(1).
func (g *Grid) Coordinate(id int) (row, col int) {
	return id / g.Width, id % g.Width
}

// Elevation returns the elevation of cell id.
func (g *Grid) Elevation(id int) int {
	return g.elevations[id]
}

// Cell returns the full Cell value for id.
func (g *Grid) Cell(id int) Cell {
	r, c := g.Coordinate(id)

	return Cell{Row: r, Col: c, Elevation: g.elevations[id]}
}

// Start returns the id of the designated start cell.
func (g *Grid) Start() int { return g.start }

// End returns the id of the designated end (target) cell.
func (g *Grid) End() int { return g.end }

// MinElevation returns the lowest elevation present in the grid.
func (g *Grid) MinElevation() int {
	lowest := MaxElevation
	for _, e := range g.elevations {
		if e < lowest {
			lowest = e
		}
	}

	return lowest
}

// CellsAt returns, in row-major order, the ids of all cells at elevation e.
func (g *Grid) CellsAt(e int) []int {
	var ids []int
	for id, v := range g.elevations {
		if v == e {
			ids = append(ids, id)
		}
	}

	return ids
}

// String renders the grid back into its text form, one row per line.
// The end marker wins when start and end share a cell.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Len() + g.Height)
	for id, e := range g.elevations {
		switch id {
		case g.end:
			sb.WriteRune(EndMarker)
		case g.start:
			sb.WriteRune(StartMarker)
		default:
			sb.WriteRune(rune('a' + e))
		}
		if (id+1)%g.Width == 0 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
