package heightmap

import (
	"errors"
)

// Input symbols and elevation bounds.
const (
	// StartMarker denotes the unique start cell; it sits at MinElevation.
	StartMarker = 'S'
	// EndMarker denotes the unique end cell; it sits at MaxElevation.
	EndMarker = 'E'
	// MinElevation is the lowest elevation, written as 'a'.
	MinElevation = 0
	// MaxElevation is the highest elevation, written as 'z'.
	MaxElevation = int('z' - 'a')
)

// Sentinel errors for grid loading. Every error returned by Parse, Load
// (other than read failures) and FromElevations also matches ErrMalformedInput.
var (
	// ErrMalformedInput is the umbrella for all load-time validation failures.
	ErrMalformedInput = errors.New("heightmap: malformed input")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("heightmap: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("heightmap: all rows must have the same length")
	// ErrInvalidSymbol indicates a symbol that is not 'a'..'z', 'S' or 'E'.
	ErrInvalidSymbol = errors.New("heightmap: invalid elevation symbol")
	// ErrMissingStart indicates no start marker was found.
	ErrMissingStart = errors.New("heightmap: start marker missing")
	// ErrDuplicateStart indicates more than one start marker.
	ErrDuplicateStart = errors.New("heightmap: start marker duplicated")
	// ErrMissingEnd indicates no end marker was found.
	ErrMissingEnd = errors.New("heightmap: end marker missing")
	// ErrDuplicateEnd indicates more than one end marker.
	ErrDuplicateEnd = errors.New("heightmap: end marker duplicated")
	// ErrElevationRange indicates an elevation outside [MinElevation, MaxElevation].
	ErrElevationRange = errors.New("heightmap: elevation out of range")
	// ErrOutOfBounds indicates a start or end point outside the grid.
	ErrOutOfBounds = errors.New("heightmap: point out of bounds")
)

// Point is a row/column coordinate inside a Grid.
type Point struct {
	Row, Col int
}

// Cell represents a single grid cell with its coordinates and elevation.
type Cell struct {
	Row, Col  int // Coordinates within the grid
	Elevation int // 0 (lowest) .. 25 (highest)
}

// Grid is an immutable rectangular height map. Width and Height define the
// dimensions; elevations are stored row-major so that cell id = row*Width + col.
type Grid struct {
	Width, Height int
	elevations    []int
	start, end    int
}
