// Package bfs provides unit-weight shortest-path search over an
// index-addressed graph, with state that can be reset and reused.
//
// Cells are finalized in non-decreasing distance order, with an optional
// finalization hook and a choice of FIFO or priority frontier.
package bfs

import (
	"fmt"
	"slices"
)

// Engine runs repeated single-source, single-target searches over one graph.
// Its Search State is private; the graph is shared and only read.
// An Engine is not safe for concurrent use; give each goroutine its own.
type Engine struct {
	graph   Graph
	opts    Options
	dist    []int
	parent  []int
	visited []bool
	front   frontier
	source  int
	dirty   bool
}

// NewEngine allocates Search State sized to g and applies opts.
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for bad options.
// Complexity: O(V) time and memory.
func NewEngine(g Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Order()
	e := &Engine{
		graph:   g,
		opts:    o,
		dist:    make([]int, n),
		parent:  make([]int, n),
		visited: make([]bool, n),
		front:   newFrontier(o.Frontier, n),
		source:  -1,
	}
	e.Reset()

	return e, nil
}

// Reset restores every distance to Unreachable, every visited flag to false
// and every parent link to -1, and empties the frontier. The graph is not
// touched. Complexity: O(V).
func (e *Engine) Reset() {
	for i := range e.dist {
		e.dist[i] = Unreachable
		e.parent[i] = -1
	}
	clear(e.visited)
	e.front.reset()
	e.source = -1
	e.dirty = false
}

// Run computes the minimum number of steps from src to dst on freshly reset
// state. It returns Unreachable (and a nil error) when the frontier empties
// before dst is finalized; src == dst yields 0.
// Returns ErrVertexOutOfRange for invalid ids, ErrNotReset when called twice
// without Reset, or a wrapped OnVisit error.
func (e *Engine) Run(src, dst int) (int, error) {
	n := len(e.dist)
	if src < 0 || src >= n || dst < 0 || dst >= n {
		return Unreachable, fmt.Errorf("%w: src=%d dst=%d order=%d", ErrVertexOutOfRange, src, dst, n)
	}
	if e.dirty {
		return Unreachable, ErrNotReset
	}
	e.dirty = true
	e.source = src

	// Seed frontier with the source (no parent)
	e.dist[src] = 0
	e.front.push(src, 0)
	for {
		u, ok := e.front.pop()
		if !ok {
			return Unreachable, nil
		}
		// stale heap entry
		if e.visited[u] {
			continue
		}
		e.visited[u] = true
		if err := e.opts.OnVisit(u, e.dist[u]); err != nil {
			return Unreachable, fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
		}
		if u == dst {
			return e.dist[u], nil
		}
		e.relax(u)
	}
}

// Search is Reset followed by Run.
func (e *Engine) Search(src, dst int) (int, error) {
	e.Reset()
	return e.Run(src, dst)
}

// relax offers dist[u]+1 to every unfinalized out-neighbor of u.
func (e *Engine) relax(u int) {
	next := e.dist[u] + 1
	for _, v := range e.graph.Neighbors(u) {
		if e.visited[v] || next >= e.dist[v] {
			continue
		}
		e.dist[v] = next
		e.parent[v] = u
		e.front.push(v, next)
	}
}

// Source returns the source of the last run, or -1 after Reset.
func (e *Engine) Source() int { return e.source }

// Distance returns the current distance of id: final if Visited(id),
// tentative otherwise, Unreachable if never reached.
func (e *Engine) Distance(id int) int { return e.dist[id] }

// Visited reports whether id was finalized by the last run.
func (e *Engine) Visited(id int) bool { return e.visited[id] }

// PathTo reconstructs the cells from the last run's source to dst, inclusive.
// Returns ErrNoPath if dst has no distance.
func (e *Engine) PathTo(dst int) ([]int, error) {
	if dst < 0 || dst >= len(e.dist) {
		return nil, fmt.Errorf("%w: dst=%d order=%d", ErrVertexOutOfRange, dst, len(e.dist))
	}
	if e.dist[dst] == Unreachable {
		return nil, fmt.Errorf("%w: to %d", ErrNoPath, dst)
	}
	path := make([]int, 0, e.dist[dst]+1)
	for cur := dst; cur >= 0; cur = e.parent[cur] {
		path = append(path, cur)
	}
	// reverse to get source → dst
	slices.Reverse(path)

	return path, nil
}
