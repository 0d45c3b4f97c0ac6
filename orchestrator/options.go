package orchestrator

import (
	"io"
	"log"

	"github.com/NSteczynski/Pathfinding/gridgraph"
	"github.com/NSteczynski/Pathfinding/playback"
)

// Options configures an Orchestrator.
//
// Clock  – time source handed to the scheduler.
// Logger – receives one line per lifecycle event; discarded by default.
// Grid   – initial board. Its dimensions override Settings.Rows/Columns.
type Options struct {
	Clock  playback.Clock
	Logger *log.Logger
	Grid   *gridgraph.Grid
}

// Option configures an Orchestrator via functional arguments.
type Option func(*Options)

// DefaultOptions returns the system clock, a silent logger and no grid.
func DefaultOptions() Options {
	return Options{
		Clock:  playback.SystemClock{},
		Logger: log.New(io.Discard, "", 0),
	}
}

// WithClock sets the playback time source.
func WithClock(c playback.Clock) Option {
	return func(o *Options) {
		if c != nil {
			o.Clock = c
		}
	}
}

// WithLogger routes lifecycle events to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithGrid starts from a copy of g instead of an empty board. Visited and
// path marks are dropped; walls are kept.
func WithGrid(g *gridgraph.Grid) Option {
	return func(o *Options) {
		o.Grid = g
	}
}
