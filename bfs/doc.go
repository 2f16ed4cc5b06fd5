// Package bfs provides a resettable unit-weight shortest-path engine over an
// index-addressed graph, returning the number of steps from one source to
// one target, or Unreachable.
//
// What
//
//   - Engine owns the per-run Search State (distance, visited, parent) sized
//     once to the graph. The graph itself is only read.
//   - Run finalizes cells in non-decreasing distance order, relaxes their
//     out-edges (current+1), and stops as soon as the target is finalized.
//   - Reset restores every distance to Unreachable and every visited flag to
//     false with plain array fills, so many sources can be tried against one
//     graph without rebuilding it.
//   - Two frontier strategies:
//   - FIFO     (default) breadth-first queue; sufficient because every edge costs 1
//   - Priority min-heap keyed by tentative distance with lazy decrease-key
//   - WithOnVisit hooks into finalization; returning an error aborts the run.
//
// Why
//
//   - Multi-source queries repeat the search once per candidate start; keeping
//     topology and state apart makes each repeat cost O(V) to reset instead of
//     O(V + E) to rebuild.
//   - One Engine per goroutine over a shared graph gives lock-free parallelism.
//
// Determinism
//
//	Neighbors are relaxed in the graph's stored order, so with the FIFO frontier
//	the finalization sequence is fully reproducible. Final distances never depend
//	on tie-breaks because all edges cost exactly 1.
//
// Complexity (V = cells, E = edges)
//
//   - Run:   O(V + E) with FIFO, O((V + E) log V) with Priority
//   - Reset: O(V)
//   - Memory: O(V), allocated once in NewEngine
//
// Usage
//
//	eng, err := bfs.NewEngine(g)
//	if err != nil {
//		// ErrGraphNil or ErrOptionViolation
//	}
//	d, err := eng.Search(src, dst) // Reset + Run
//	if d == bfs.Unreachable {
//		// no path under the climb rule; not an error
//	}
//
// Errors
//
//   - ErrGraphNil          if the graph is nil.
//   - ErrOptionViolation   if an invalid Option is supplied.
//   - ErrVertexOutOfRange  if src or dst is not a vertex id.
//   - ErrNotReset          if Run is called on state left by a previous run.
//   - ErrNoPath            from PathTo when the target was not reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
