package query

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/gridgraph"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// Driver runs shortest-path queries toward the grid's end cell.
// A Driver is not safe for concurrent use; parallelism is internal to Shortest.
type Driver struct {
	graph  *gridgraph.Graph
	opts   Options
	engine *bfs.Engine
}

// NewDriver prepares a Driver over g.
// Returns ErrGraphNil, ErrOptionViolation, or an engine construction error.
func NewDriver(g *gridgraph.Graph, opts ...Option) (*Driver, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	eng, err := bfs.NewEngine(g, bfs.WithFrontier(o.Frontier))
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return &Driver{graph: g, opts: o, engine: eng}, nil
}

// AdmissibleSources returns, in id order, every cell at the grid's minimum elevation.
func AdmissibleSources(hm *heightmap.Grid) []int {
	return hm.CellsAt(hm.MinElevation())
}

// FromStart searches from the designated start cell alone.
func (d *Driver) FromStart(ctx context.Context) (Result, error) {
	return d.Shortest(ctx, []int{d.graph.Grid().Start()})
}

// FromLowest minimizes over every cell at the grid's minimum elevation.
func (d *Driver) FromLowest(ctx context.Context) (Result, error) {
	return d.Shortest(ctx, AdmissibleSources(d.graph.Grid()))
}

// Shortest returns the fewest steps from any of sources to the grid's end
// cell. Each source gets its own Reset and Run; unreachable sources are
// counted but do not affect the minimum.
// Returns ErrNoSources for an empty list, ctx.Err() if cancelled between
// searches, or a wrapped engine error (e.g. an out-of-range source id).
func (d *Driver) Shortest(ctx context.Context, sources []int) (Result, error) {
	if len(sources) == 0 {
		return Result{}, ErrNoSources
	}
	var (
		res Result
		err error
	)
	if d.opts.Workers > 1 && len(sources) > 1 {
		res, err = d.parallel(ctx, sources)
	} else {
		res, err = d.serial(ctx, sources)
	}
	if err != nil {
		return Result{}, err
	}
	res.Sources = len(sources)

	d.opts.Logger.WithFields(logrus.Fields{
		"sources":  res.Sources,
		"reached":  res.Reached,
		"distance": FormatDistance(res.Distance),
	}).Debug("query finished")

	return res, nil
}

// serial runs every source on the Driver's own engine, in order.
func (d *Driver) serial(ctx context.Context, sources []int) (Result, error) {
	target := d.graph.Grid().End()
	res := unreached()
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		dist, err := d.engine.Search(src, target)
		if err != nil {
			return Result{}, fmt.Errorf("query: source %d: %w", src, err)
		}
		d.opts.Logger.WithFields(logrus.Fields{
			"source":   src,
			"distance": FormatDistance(dist),
		}).Debug("search finished")
		res.record(src, dist)
	}

	return res, nil
}

// parallel stripes sources over Workers goroutines. Each worker owns a
// private engine; the graph is shared read-only.
func (d *Driver) parallel(ctx context.Context, sources []int) (Result, error) {
	target := d.graph.Grid().End()
	workers := min(d.opts.Workers, len(sources))
	partial := make([]Result, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			eng, err := bfs.NewEngine(d.graph, bfs.WithFrontier(d.opts.Frontier))
			if err != nil {
				return fmt.Errorf("query: worker %d: %w", w, err)
			}
			log := d.opts.Logger.WithField("worker", w)
			part := unreached()
			for i := w; i < len(sources); i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				src := sources[i]
				dist, err := eng.Search(src, target)
				if err != nil {
					return fmt.Errorf("query: source %d: %w", src, err)
				}
				log.WithFields(logrus.Fields{
					"source":   src,
					"distance": FormatDistance(dist),
				}).Debug("search finished")
				part.record(src, dist)
			}
			partial[w] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := unreached()
	for _, p := range partial {
		res.merge(p)
	}

	return res, nil
}

// Solve parses text, builds its climb graph and runs one query: from the
// start cell when multi is false, over all lowest cells when multi is true.
// The graph honours WithMaxClimb. Option violations are reported before parsing;
// load errors match heightmap.ErrMalformedInput and are returned before any search.
func Solve(ctx context.Context, text string, multi bool, opts ...Option) (Result, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return Result{}, err
	}
	hm, err := heightmap.Parse(text)
	if err != nil {
		return Result{}, err
	}
	g, err := gridgraph.Build(hm, gridgraph.WithMaxClimb(o.MaxClimb))
	if err != nil {
		return Result{}, err
	}
	d, err := NewDriver(g, opts...)
	if err != nil {
		return Result{}, err
	}
	if multi {
		return d.FromLowest(ctx)
	}

	return d.FromStart(ctx)
}
