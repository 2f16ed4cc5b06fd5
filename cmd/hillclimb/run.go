package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/gridgraph"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/query"
)

// run loads the grid, builds its graph once and prints the requested answers.
func run(cmd *cobra.Command, opts *cliOptions, args []string) error {
	if opts.mode != modeFixed && opts.mode != modeLowest && opts.mode != modeBoth {
		return fmt.Errorf("--mode: unknown mode %q", opts.mode)
	}
	frontier, err := bfs.ParseFrontier(opts.frontier)
	if err != nil {
		return fmt.Errorf("--frontier: %w", err)
	}

	hm, err := readGrid(cmd, args)
	if err != nil {
		return err
	}
	log := opts.log.WithField("cells", hm.Len())
	g, err := gridgraph.Build(hm, gridgraph.WithMaxClimb(opts.maxClimb))
	if err != nil {
		return fmt.Errorf("--max-climb: %w", err)
	}
	log.WithField("edges", g.Size()).Info("graph built")

	d, err := query.NewDriver(g,
		query.WithLogger(opts.log),
		query.WithWorkers(opts.workers),
		query.WithFrontier(frontier),
	)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()
	if opts.mode != modeLowest {
		res, err := d.FromStart(ctx)
		if err != nil {
			return err
		}
		report(out, log, "fixed", res)
		if opts.showPath && res.Reachable() {
			if err := printPath(out, g, frontier); err != nil {
				return err
			}
		}
	}
	if opts.mode != modeFixed {
		res, err := d.FromLowest(ctx)
		if err != nil {
			return err
		}
		report(out, log, "lowest", res)
	}

	return nil
}

// readGrid loads from the file argument, or from stdin when there is none.
func readGrid(cmd *cobra.Command, args []string) (*heightmap.Grid, error) {
	if len(args) == 0 {
		return heightmap.Load(cmd.InOrStdin())
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return heightmap.Load(f)
}

// report prints one answer and warns when it is unreachable.
func report(out io.Writer, log logrus.FieldLogger, label string, res query.Result) {
	if !res.Reachable() {
		log.WithField("sources", res.Sources).Warn(res.Err())
	}
	fmt.Fprintf(out, "%s: %s\n", label, res)
}

// printPath reruns the fixed-start search and prints its route as row,col steps.
func printPath(out io.Writer, g *gridgraph.Graph, frontier bfs.Frontier) error {
	hm := g.Grid()
	eng, err := bfs.NewEngine(g, bfs.WithFrontier(frontier))
	if err != nil {
		return err
	}
	if _, err := eng.Search(hm.Start(), hm.End()); err != nil {
		return err
	}
	path, err := eng.PathTo(hm.End())
	if err != nil {
		return err
	}
	steps := make([]string, len(path))
	for i, id := range path {
		r, c := hm.Coordinate(id)
		steps[i] = fmt.Sprintf("%d,%d", r, c)
	}
	fmt.Fprintf(out, "path: %s\n", strings.Join(steps, " "))

	return nil
}
