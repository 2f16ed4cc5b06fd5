package bfs_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/gridgraph"
	"github.com/katalvlaran/hillclimb/heightmap"
)

const canonical = "Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi\n"

// adjList is a hand-written Graph for topologies a height map cannot express.
type adjList [][]int

func (a adjList) Order() int             { return len(a) }
func (a adjList) Neighbors(id int) []int { return a[id] }

var frontiers = []bfs.Frontier{bfs.FIFO, bfs.Priority}

// build parses text and returns its climb graph.
func build(t testing.TB, text string) (*heightmap.Grid, *gridgraph.Graph) {
	t.Helper()
	hm, err := heightmap.Parse(text)
	require.NoError(t, err)
	g, err := gridgraph.Build(hm)
	require.NoError(t, err)
	return hm, g
}

// TestNewEngine_Errors verifies that invalid inputs and options are rejected.
func TestNewEngine_Errors(t *testing.T) {
	_, err := bfs.NewEngine(nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.NewEngine(adjList{{}}, bfs.WithFrontier(bfs.Frontier(7)))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestRun_Canonical checks the fixed-start distance of the sample map under both frontiers.
func TestRun_Canonical(t *testing.T) {
	hm, g := build(t, canonical)
	for _, f := range frontiers {
		t.Run(f.String(), func(t *testing.T) {
			eng, err := bfs.NewEngine(g, bfs.WithFrontier(f))
			require.NoError(t, err)
			d, err := eng.Run(hm.Start(), hm.End())
			require.NoError(t, err)
			assert.Equal(t, 31, d)
			assert.True(t, eng.Visited(hm.End()))
			assert.Equal(t, hm.Start(), eng.Source())
		})
	}
}

// TestRun_RequiresReset rejects a second Run on dirty state.
func TestRun_RequiresReset(t *testing.T) {
	hm, g := build(t, canonical)
	eng, err := bfs.NewEngine(g)
	require.NoError(t, err)

	_, err = eng.Run(hm.Start(), hm.End())
	require.NoError(t, err)
	d, err := eng.Run(hm.Start(), hm.End())
	require.ErrorIs(t, err, bfs.ErrNotReset)
	assert.Equal(t, bfs.Unreachable, d)

	eng.Reset()
	assert.Equal(t, -1, eng.Source())
	assert.False(t, eng.Visited(hm.Start()))
	assert.Equal(t, bfs.Unreachable, eng.Distance(hm.Start()))
}

// TestSearch_Determinism reruns the same query and different sources on one engine.
func TestSearch_Determinism(t *testing.T) {
	hm, g := build(t, canonical)
	eng, err := bfs.NewEngine(g)
	require.NoError(t, err)

	first, err := eng.Search(hm.Start(), hm.End())
	require.NoError(t, err)
	// (4,0) is the 'a' that gives the best multi-source answer
	best, err := eng.Search(hm.Index(4, 0), hm.End())
	require.NoError(t, err)
	assert.Equal(t, 29, best)
	again, err := eng.Search(hm.Start(), hm.End())
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

// TestRun_OutOfRange rejects ids outside the graph.
func TestRun_OutOfRange(t *testing.T) {
	eng, err := bfs.NewEngine(adjList{{1}, {}})
	require.NoError(t, err)
	for _, ids := range [][2]int{{-1, 0}, {0, 2}, {2, 0}, {0, -5}} {
		_, err := eng.Search(ids[0], ids[1])
		assert.ErrorIs(t, err, bfs.ErrVertexOutOfRange, "ids %v", ids)
	}
}

// TestRun_SourceIsTarget reports zero only when source and target coincide.
func TestRun_SourceIsTarget(t *testing.T) {
	eng, err := bfs.NewEngine(adjList{{1}, {0}})
	require.NoError(t, err)
	d, err := eng.Search(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, d)
	d, err = eng.Search(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, d)
}

// TestRun_Disconnected returns Unreachable, not an error, on a disconnected graph.
func TestRun_Disconnected(t *testing.T) {
	// 0→1, 2→3: two components
	eng, err := bfs.NewEngine(adjList{{1}, {}, {3}, {}})
	require.NoError(t, err)
	d, err := eng.Search(0, 3)
	require.NoError(t, err)
	assert.Equal(t, bfs.Unreachable, d)
	assert.False(t, eng.Visited(2))

	_, err = eng.PathTo(3)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestRun_WalledTarget surrounds the end with cliffs no neighbor can climb.
func TestRun_WalledTarget(t *testing.T) {
	hm, g := build(t, "Saaaa\nazzza\nazEza\nazzza\naaaaa\n")
	for _, f := range frontiers {
		eng, err := bfs.NewEngine(g, bfs.WithFrontier(f))
		require.NoError(t, err)
		d, err := eng.Run(hm.Start(), hm.End())
		require.NoError(t, err, f.String())
		assert.Equal(t, bfs.Unreachable, d, f.String())
	}
}

// TestRun_OneWayDescent shows a target reachable only by stepping down into it.
func TestRun_OneWayDescent(t *testing.T) {
	// S(0) b(1) c(2) a(0): c→a is a descent of 2 and is allowed; a→c is not.
	hm, err := heightmap.FromElevations([][]int{{0, 1, 2, 0}}, heightmap.Point{}, heightmap.Point{Col: 3})
	require.NoError(t, err)
	g, err := gridgraph.Build(hm)
	require.NoError(t, err)
	eng, err := bfs.NewEngine(g)
	require.NoError(t, err)

	d, err := eng.Search(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, d)
	d, err = eng.Search(3, 0)
	require.NoError(t, err)
	assert.Equal(t, bfs.Unreachable, d)
}

// TestRun_FlatGridManhattan checks that every distance on a flat grid equals
// the Manhattan distance.
func TestRun_FlatGridManhattan(t *testing.T) {
	const h, w = 6, 9
	values := make([][]int, h)
	for r := range values {
		values[r] = make([]int, w)
	}
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 25; trial++ {
		s := heightmap.Point{Row: rng.Intn(h), Col: rng.Intn(w)}
		e := heightmap.Point{Row: rng.Intn(h), Col: rng.Intn(w)}
		hm, err := heightmap.FromElevations(values, s, e)
		require.NoError(t, err)
		g, err := gridgraph.Build(hm)
		require.NoError(t, err)
		eng, err := bfs.NewEngine(g)
		require.NoError(t, err)

		d, err := eng.Run(hm.Start(), hm.End())
		require.NoError(t, err)
		assert.Equal(t, abs(s.Row-e.Row)+abs(s.Col-e.Col), d, "from %v to %v", s, e)
	}
}

// TestFrontiers_Agree compares FIFO and Priority on random height maps.
func TestFrontiers_Agree(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 30; trial++ {
		h, w := 2+rng.Intn(10), 2+rng.Intn(10)
		values := make([][]int, h)
		for r := range values {
			values[r] = make([]int, w)
			for c := range values[r] {
				values[r][c] = rng.Intn(4)
			}
		}
		hm, err := heightmap.FromElevations(values, heightmap.Point{}, heightmap.Point{Row: h - 1, Col: w - 1})
		require.NoError(t, err)
		g, err := gridgraph.Build(hm)
		require.NoError(t, err)
		fifo, err := bfs.NewEngine(g)
		require.NoError(t, err)
		prio, err := bfs.NewEngine(g, bfs.WithFrontier(bfs.Priority))
		require.NoError(t, err)

		for src := 0; src < hm.Len(); src++ {
			a, err := fifo.Search(src, hm.End())
			require.NoError(t, err)
			b, err := prio.Search(src, hm.End())
			require.NoError(t, err)
			require.Equal(t, a, b, "trial %d src %d", trial, src)
		}
	}
}

// TestOnVisit checks that finalization order is non-decreasing in distance
// and that a hook error aborts the run.
func TestOnVisit(t *testing.T) {
	hm, g := build(t, canonical)
	last := 0
	var count int
	eng, err := bfs.NewEngine(g, bfs.WithOnVisit(func(id, dist int) error {
		count++
		if dist < last {
			return errors.New("distance decreased")
		}
		last = dist
		return nil
	}))
	require.NoError(t, err)
	d, err := eng.Run(hm.Start(), hm.End())
	require.NoError(t, err)
	assert.Equal(t, 31, last)
	assert.Equal(t, d, last)
	assert.LessOrEqual(t, count, hm.Len())

	stop := errors.New("stop")
	eng, err = bfs.NewEngine(g, bfs.WithOnVisit(func(id, dist int) error {
		if dist == 3 {
			return stop
		}
		return nil
	}))
	require.NoError(t, err)
	d, err = eng.Run(hm.Start(), hm.End())
	require.ErrorIs(t, err, stop)
	assert.Equal(t, bfs.Unreachable, d)
}

// TestPathTo reconstructs a shortest route and validates every step.
func TestPathTo(t *testing.T) {
	hm, g := build(t, canonical)
	eng, err := bfs.NewEngine(g)
	require.NoError(t, err)
	d, err := eng.Run(hm.Start(), hm.End())
	require.NoError(t, err)

	path, err := eng.PathTo(hm.End())
	require.NoError(t, err)
	require.Len(t, path, d+1)
	assert.Equal(t, hm.Start(), path[0])
	assert.Equal(t, hm.End(), path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.True(t, g.HasEdge(path[i-1], path[i]), "step %d→%d", path[i-1], path[i])
	}

	trivial, err := eng.PathTo(hm.Start())
	require.NoError(t, err)
	assert.Equal(t, []int{hm.Start()}, trivial)

	_, err = eng.PathTo(hm.Len())
	assert.ErrorIs(t, err, bfs.ErrVertexOutOfRange)
}

// TestParseFrontier covers both spellings and rejection.
func TestParseFrontier(t *testing.T) {
	for _, f := range frontiers {
		got, err := bfs.ParseFrontier(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := bfs.ParseFrontier("dfs")
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
	assert.Equal(t, "Frontier(9)", bfs.Frontier(9).String())
}

// TestEngines_ConcurrentSafety runs private engines over one shared graph.
func TestEngines_ConcurrentSafety(t *testing.T) {
	hm, g := build(t, canonical)
	results := make(chan int, 4)
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() {
			eng, err := bfs.NewEngine(g)
			if err != nil {
				errs <- err
				return
			}
			d, err := eng.Search(hm.Start(), hm.End())
			errs <- err
			results <- d
		}()
	}
	for i := 0; i < 4; i++ {
		require.NoError(t, <-errs)
		assert.Equal(t, 31, <-results)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
