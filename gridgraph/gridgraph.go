// Package gridgraph provides the climb-constrained adjacency relation of a
// height map. It supports:
//
//   - Four-connectivity only (no diagonals)
//   - A configurable maximum ascent per step
//   - Read-only neighbor views shared across concurrent searches
package gridgraph

import (
	"github.com/katalvlaran/hillclimb/heightmap"
)

// Build derives the directed climb graph of hm. For each cell it examines the
// in-bounds neighbors up, down, left and right, and records cell→neighbor iff
// the neighbor's elevation is at most the cell's elevation plus MaxClimb.
// A cell with no admissible out-edge is valid and simply has none.
// Returns ErrNilGrid for a nil grid, ErrOptionViolation for bad options.
// Complexity: O(W×H×4) time, O(W×H + E) memory.
func Build(hm *heightmap.Grid, opts ...Option) (*Graph, error) {
	if hm == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := hm.Len()
	g := &Graph{
		grid:     hm,
		maxClimb: o.MaxClimb,
		offsets:  make([]int, n+1),
		targets:  make([]int, 0, 4*n),
	}
	for id := 0; id < n; id++ {
		r, c := hm.Coordinate(id)
		limit := hm.Elevation(id) + o.MaxClimb
		for _, d := range neighborOffsets {
			nr, nc := r+d[0], c+d[1]
			if !hm.InBounds(nr, nc) {
				continue
			}
			nb := hm.Index(nr, nc)
			if hm.Elevation(nb) <= limit {
				g.targets = append(g.targets, nb)
			}
		}
		g.offsets[id+1] = len(g.targets)
	}

	return g, nil
}

// Grid returns the height map the graph was built from.
func (g *Graph) Grid() *heightmap.Grid { return g.grid }

// MaxClimb returns the ascent limit used to build the graph.
func (g *Graph) MaxClimb() int { return g.maxClimb }

// Order returns the number of vertices (cells).
func (g *Graph) Order() int { return len(g.offsets) - 1 }

// Size returns the number of directed edges.
func (g *Graph) Size() int { return len(g.targets) }

// Neighbors returns the out-neighbors of id in scan order (up, down, left,
// right). The slice is a view into the graph and must not be modified; its
// capacity is clipped so appends never write into shared storage.
// Complexity: O(1).
func (g *Graph) Neighbors(id int) []int {
	lo, hi := g.offsets[id], g.offsets[id+1]
	return g.targets[lo:hi:hi]
}

// OutDegree returns the number of admissible steps out of id.
func (g *Graph) OutDegree(id int) int {
	return g.offsets[id+1] - g.offsets[id]
}

// HasEdge reports whether the step u→v is admissible.
// Complexity: O(4).
func (g *Graph) HasEdge(u, v int) bool {
	for _, w := range g.Neighbors(u) {
		if w == v {
			return true
		}
	}
	return false
}

// Traps returns, in id order, the cells with no out-edges. Such cells can
// still be entered from a higher neighbor.
func (g *Graph) Traps() []int {
	var ids []int
	for id := 0; id < g.Order(); id++ {
		if g.OutDegree(id) == 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

// Edges calls fn for every edge u→v in (u, scan) order until fn returns false.
func (g *Graph) Edges(fn func(u, v int) bool) {
	for u := 0; u < g.Order(); u++ {
		for _, v := range g.Neighbors(u) {
			if !fn(u, v) {
				return
			}
		}
	}
}
