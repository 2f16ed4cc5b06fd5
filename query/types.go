package query

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/gridgraph"
)

// Sentinel errors for query execution.
var (
	// ErrGraphNil is returned if NewDriver receives a nil graph.
	ErrGraphNil = errors.New("query: graph is nil")
	// ErrNoSources is returned when Shortest is given no source cells.
	ErrNoSources = errors.New("query: no source cells")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("query: invalid option supplied")
	// ErrUnreachable is returned by Result.Err when no source reaches the target.
	ErrUnreachable = errors.New("query: target unreachable from every source")
)

// Result is the outcome of a multi-source query.
type Result struct {
	// Distance is the fewest steps from the best source, or bfs.Unreachable.
	Distance int
	// Source is the id of the best source, or -1 if none reached the target.
	Source int
	// Sources is the number of sources searched.
	Sources int
	// Reached is how many of them reached the target.
	Reached int
}

// Reachable reports whether any source reached the target.
func (r Result) Reachable() bool { return r.Distance != bfs.Unreachable }

// Err returns nil for a reachable result and ErrUnreachable otherwise.
func (r Result) Err() error {
	if r.Reachable() {
		return nil
	}
	return fmt.Errorf("%w (%d sources tried)", ErrUnreachable, r.Sources)
}

// String formats the distance, spelling the sentinel as "unreachable".
func (r Result) String() string { return FormatDistance(r.Distance) }

// FormatDistance renders d, or "unreachable" for bfs.Unreachable.
func FormatDistance(d int) string {
	if d == bfs.Unreachable {
		return "unreachable"
	}
	return strconv.Itoa(d)
}

// unreached is the identity for record and merge.
func unreached() Result {
	return Result{Distance: bfs.Unreachable, Source: -1}
}

// record folds one search outcome into r.
func (r *Result) record(src, dist int) {
	if dist == bfs.Unreachable {
		return
	}
	r.Reached++
	if dist < r.Distance || (dist == r.Distance && src < r.Source) {
		r.Distance, r.Source = dist, src
	}
}

// merge folds a worker's partial result into r.
func (r *Result) merge(p Result) {
	reached := r.Reached + p.Reached
	if p.Reachable() {
		r.record(p.Source, p.Distance)
	}
	r.Reached = reached
}

// Option configures a Driver via functional arguments.
type Option func(*Options)

// Options holds parameters for a Driver.
type Options struct {
	// Logger receives per-search debug entries.
	Logger logrus.FieldLogger
	// Workers is the number of concurrent engines used by Shortest.
	Workers int
	// Frontier is passed through to every bfs.Engine.
	Frontier bfs.Frontier
	// MaxClimb is the climb limit Solve builds its graph with.
	// NewDriver receives a built graph and does not read it.
	MaxClimb int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a discarding logger, one worker, the FIFO frontier
// and gridgraph.DefaultMaxClimb.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return Options{
		Logger:   l,
		Workers:  1,
		Frontier: bfs.FIFO,
		MaxClimb: gridgraph.DefaultMaxClimb,
	}
}

// newOptions applies opts over DefaultOptions and returns the first recorded violation.
func newOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// WithLogger sets the logger for per-search entries.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers sets the number of concurrent engines.
//
//	n ≥ 1: run up to n searches at once
//	n < 1: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithFrontier selects the engine frontier strategy.
func WithFrontier(f bfs.Frontier) Option {
	return func(o *Options) {
		o.Frontier = f
	}
}

// WithMaxClimb sets how many units a step may climb when Solve builds the graph.
//
//	n ≥ 0: passed to gridgraph.WithMaxClimb
//	n < 0: invalid option → ErrOptionViolation
func WithMaxClimb(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxClimb must be non-negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxClimb = n
	}
}
