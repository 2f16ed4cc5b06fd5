// Package gridgraph derives the directed climb graph of a height map.
//
// What:
//
//   - Build examines, for every cell, its up/down/left/right neighbors that lie
//     inside the grid and keeps the edge cell→neighbor iff
//     neighbor.Elevation ≤ cell.Elevation + MaxClimb (MaxClimb defaults to 1).
//   - Descents of any size are always allowed; ascents only by MaxClimb.
//     Edges are therefore not symmetric.
//   - Adjacency is stored as compressed index lists (offsets + targets) keyed by
//     the heightmap's row-major cell ids. No diagonals.
//
// Why:
//
//   - Topology is computed once and never mutated, so any number of searches,
//     sequential or concurrent, can share one Graph without copying it.
//
// Complexity:
//
//   - Build:     O(W×H×4) time, O(W×H + E) memory.
//   - Neighbors: O(1); HasEdge: O(4).
//
// Options:
//
//   - WithMaxClimb(n): largest admissible ascent per step (n ≥ 0).
//
// Errors:
//
//   - ErrNilGrid: Build called with a nil grid.
//   - ErrOptionViolation: an invalid Option (e.g. negative MaxClimb).
package gridgraph
