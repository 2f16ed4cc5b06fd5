// Package hillclimb finds the fewest steps up a height map, from one start
// cell or from the best of many, under a one-unit climbing rule.
//
// 🚀 What is hillclimb?
//
//	A small, dependency-light pipeline that brings together:
//		• heightmap: parse 'a'..'z' / 'S' / 'E' text into an immutable grid
//		• gridgraph: derive the directed climb graph (up/down/left/right,
//		  ascend at most one unit, descend freely)
//		• bfs:       resettable unit-weight shortest-path engine
//		• query:     minimum over admissible sources, serial or parallel
//		• cmd/hillclimb: command-line front end
//
// Data flow:
//
//	text ─► heightmap.Parse ─► gridgraph.Build ─► bfs.Engine (Reset ⟲ Run) ─► query.Driver ─► distance
//
// Quick ASCII example:
//
//	Sabqponm
//	abcryxxl     from S:              31 steps
//	accszExk     from best 'a' cell:  29 steps
//	acctuvwj
//	abdefghi
//
// The graph is built once and never mutated; each bfs.Engine owns its own
// distance/visited arrays, so any number of engines may search it at once.
//
//	go install github.com/katalvlaran/hillclimb/cmd/hillclimb@latest
package hillclimb
