// Package gridgraph defines options, sentinel errors and the Graph type
// for the climb graph built over a heightmap.Grid.
package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrNilGrid indicates Build was given a nil grid.
	ErrNilGrid = errors.New("gridgraph: grid is nil")
	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("gridgraph: invalid option supplied")
)

// DefaultMaxClimb is the largest ascent allowed by a single step.
const DefaultMaxClimb = 1

// Options contains tunable parameters for graph construction.
type Options struct {
	// MaxClimb is the largest elevation gain allowed by one step.
	MaxClimb int

	// internal error recorded during option parsing
	err error
}

// Option configures Build via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with MaxClimb=DefaultMaxClimb.
func DefaultOptions() Options {
	return Options{MaxClimb: DefaultMaxClimb}
}

// WithMaxClimb sets the largest admissible ascent per step.
//
//	n ≥ 0: steps may climb at most n units
//	n < 0: invalid option → ErrOptionViolation
func WithMaxClimb(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxClimb cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxClimb = n
	}
}

// Graph is the immutable directed climb graph of a heightmap.Grid.
// Vertex ids are the grid's row-major cell ids. The out-edges of id are
// targets[offsets[id]:offsets[id+1]].
type Graph struct {
	grid     *heightmap.Grid
	maxClimb int
	offsets  []int
	targets  []int
}

// neighborOffsets lists (dRow, dCol) in scan order: up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
