// Package bfs provides tunable options and error definitions
// for the resettable shortest-path engine.
package bfs

import (
	"errors"
	"fmt"
	"math"
)

// Unreachable is the distance reported for cells no path reaches.
// It is never zero or negative, so it cannot be mistaken for a real distance.
const Unreachable = math.MaxInt

// Sentinel errors for engine construction and execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrVertexOutOfRange is returned when a source or target id is not a vertex.
	ErrVertexOutOfRange = errors.New("bfs: vertex id out of range")

	// ErrNotReset is returned when Run is called before Reset after a previous run.
	ErrNotReset = errors.New("bfs: search state not reset")

	// ErrNoPath is returned by PathTo when the target was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Graph is the read-only adjacency the engine walks. Vertex ids are
// 0..Order()-1; Neighbors must not be modified by callers.
type Graph interface {
	Order() int
	Neighbors(id int) []int
}

// Frontier selects how unfinalized cells are ordered.
type Frontier int

const (
	// FIFO expands cells in breadth-first order.
	FIFO Frontier = iota
	// Priority expands the smallest tentative distance first using a min-heap.
	Priority
)

// String returns the flag spelling of f.
func (f Frontier) String() string {
	switch f {
	case FIFO:
		return "fifo"
	case Priority:
		return "priority"
	}
	return fmt.Sprintf("Frontier(%d)", int(f))
}

// ParseFrontier maps "fifo" or "priority" to a Frontier.
func ParseFrontier(s string) (Frontier, error) {
	switch s {
	case "fifo":
		return FIFO, nil
	case "priority":
		return Priority, nil
	}
	return FIFO, fmt.Errorf("%w: unknown frontier %q", ErrOptionViolation, s)
}

// Option configures an Engine via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation by NewEngine.
type Option func(*Options)

// Options holds parameters and callbacks to customize engine execution.
type Options struct {
	// Frontier chooses FIFO (default) or Priority ordering.
	Frontier Frontier

	// OnVisit is called when a cell is finalized, with its final distance.
	// If it returns an error, the run aborts and propagates that error.
	OnVisit func(id, dist int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the FIFO frontier and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Frontier: FIFO,
		OnVisit:  func(int, int) error { return nil },
	}
}

// WithFrontier selects the frontier strategy.
func WithFrontier(f Frontier) Option {
	return func(o *Options) {
		if f != FIFO && f != Priority {
			o.err = fmt.Errorf("%w: unknown frontier %d", ErrOptionViolation, int(f))
			return
		}
		o.Frontier = f
	}
}

// WithOnVisit registers a callback to run on finalization; returning an error
// from this callback stops the run.
func WithOnVisit(fn func(id, dist int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
