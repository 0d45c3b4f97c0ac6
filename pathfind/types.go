// Package pathfind defines core types, options, and sentinel errors shared
// by the grid searches.
package pathfind

import (
	"errors"
	"math"

	"github.com/NSteczynski/Pathfinding/gridgraph"
)

// Sentinel errors returned by every Algorithm.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Search.
	ErrNilGrid = errors.New("pathfind: grid is nil")

	// ErrOutOfBounds indicates that the start or end coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("pathfind: endpoint out of bounds")

	// ErrBlockedEndpoint indicates that the start or end cell is a wall.
	// Callers are expected to prevent this; the search refuses to guess.
	ErrBlockedEndpoint = errors.New("pathfind: endpoint is a wall")

	// ErrUnknownAlgorithm indicates a registry lookup for a name that is not registered.
	ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm")
)

// Step is one playback entry: a coordinate and the state it should take.
// Trace steps carry gridgraph.Visited, path steps carry gridgraph.Path.
type Step struct {
	Position gridgraph.Vector
	State    gridgraph.CellState
}

// Outcome distinguishes a reached target from an exhausted search.
type Outcome int

const (
	// NoPath means the open list ran dry before the end was settled.
	NoPath Outcome = iota
	// Found means a path to the end was reconstructed.
	Found
)

// String returns "found" or "no-path".
func (o Outcome) String() string {
	if o == Found {
		return "found"
	}
	return "no-path"
}

// Result is the outcome of one search.
//
//   - Trace: settled cells in settlement order, filtered to priority ≤ the
//     end's priority. Start and end are never part of the trace.
//   - Path:  cells from the one after start up to and including end.
//     Empty when Outcome is NoPath or when start == end.
//   - Cost:  weighted length of Path; +Inf when Outcome is NoPath.
//   - Settled: size of the closed list, start and end included.
type Result struct {
	Trace   []Step
	Path    []Step
	Outcome Outcome
	Cost    float64
	Settled int
}

// Found reports whether a path was reconstructed.
func (r Result) Found() bool { return r.Outcome == Found }

// Steps returns the number of playback entries, len(Trace)+len(Path).
func (r Result) Steps() int { return len(r.Trace) + len(r.Path) }

func noPath() Result {
	return Result{Outcome: NoPath, Cost: math.Inf(1)}
}

// Options configures a single search.
//
// Conn        – neighbor connectivity; each algorithm supplies its own default.
// OnSettle    – called once per closed node, in closing order, with the
//
//	node's priority (distance for Dijkstra, distance+heuristic for A*).
type Options struct {
	Conn     gridgraph.Connectivity
	OnSettle func(v gridgraph.Vector, priority float64)
}

// Option configures a search via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with the given connectivity and a no-op hook.
func DefaultOptions(conn gridgraph.Connectivity) Options {
	return Options{
		Conn:     conn,
		OnSettle: func(gridgraph.Vector, float64) {},
	}
}

// WithConnectivity overrides the algorithm's default connectivity.
func WithConnectivity(conn gridgraph.Connectivity) Option {
	return func(o *Options) {
		o.Conn = conn
	}
}

// WithOnSettle registers a callback to run each time a node is closed.
func WithOnSettle(fn func(v gridgraph.Vector, priority float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}
