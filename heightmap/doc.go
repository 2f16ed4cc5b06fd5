// Package heightmap loads a rectangular height map into an immutable grid of
// elevations addressed by flat, row-major cell ids.
//
// What:
//
//   - Parse reads one row per line and one symbol per column:
//     'a'..'z' map to elevations 0..25, 'S' marks the start (elevation 0),
//     'E' marks the end (elevation 25).
//   - FromElevations builds a Grid directly from integer elevations.
//   - Grid exposes row/column ↔ id conversion, bounds checks, the designated
//     start and end cells, and the cells sitting at a given elevation.
//
// Why:
//
//   - A flat arena of cells lets graph and search code use plain index slices
//     instead of pointer-linked nodes, so shared read-only access is safe.
//
// Complexity:
//
//   - Parse, FromElevations: O(W×H) time and memory.
//   - Index, Coordinate, Elevation, InBounds: O(1).
//   - CellsAt, MinElevation: O(W×H).
//
// Errors:
//
//   - ErrMalformedInput: umbrella matched by every load error below.
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidSymbol: a symbol is neither a lowercase letter nor a marker.
//   - ErrMissingStart / ErrDuplicateStart: start marker absent or repeated.
//   - ErrMissingEnd / ErrDuplicateEnd: end marker absent or repeated.
//   - ErrElevationRange: an elevation outside 0..25 passed to FromElevations.
//   - ErrOutOfBounds: a start or end point outside the grid.
package heightmap
