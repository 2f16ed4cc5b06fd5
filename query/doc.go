// Package query answers "fewest steps to the target" over a set of
// admissible start cells, reusing one climb graph for every search.
//
// What:
//
//   - AdmissibleSources lists every cell at the grid's minimum elevation.
//   - Driver.FromStart searches from the designated start cell only.
//   - Driver.FromLowest minimizes over AdmissibleSources.
//   - Driver.Shortest minimizes over any caller-supplied sources: for each one
//     it resets the engine, runs it, and records the distance.
//   - Solve wires parse → build → query for a grid text and a boolean that
//     selects the fixed start or all lowest cells.
//
// Concurrency:
//
//   - Workers == 1 (default): a single bfs.Engine, sources strictly in order.
//   - Workers  > 1: an errgroup of workers, each owning a private bfs.Engine
//     over the shared, read-only graph. Merging is deterministic: the smallest
//     distance wins, ties go to the lowest source id.
//   - ctx is checked between searches; a single search is never interrupted.
//
// Results:
//
//   - Result.Distance is bfs.Unreachable when no source reaches the target.
//     That is a value, not an error; Result.Err converts it to ErrUnreachable
//     for callers that want to fail hard.
//
// Logging:
//
//   - Per-search debug entries with fields source, distance and worker go to the
//     logrus.FieldLogger given by WithLogger (discarded by default).
package query
