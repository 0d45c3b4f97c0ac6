package playback

import (
	"errors"
	"time"
)

// ErrBadInterval is returned by Schedule for an interval ≤ 0.
var ErrBadInterval = errors.New("playback: interval must be positive")

// BaseInterval is the time per step at speed 1.0.
const BaseInterval = 100 * time.Millisecond

// DefaultStaleTolerance is how far past due a step may be on Resume and
// still fire.
const DefaultStaleTolerance = 200 * time.Millisecond

// State is the scheduler lifecycle.
type State int

const (
	// Idle means nothing is scheduled.
	Idle State = iota
	// Playing means records fire as they fall due.
	Playing
	// Paused means elapsed time is frozen.
	Paused
	// Finished means the finished record has fired.
	Finished
)

var stateNames = [...]string{"idle", "playing", "paused", "finished"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "State(?)"
	}
	return stateNames[s]
}

// Options configures a Scheduler.
//
// Clock          – time source; SystemClock by default.
// StaleTolerance – see the package doc; DefaultStaleTolerance by default.
type Options struct {
	Clock          Clock
	StaleTolerance time.Duration
}

// Option configures a Scheduler via functional arguments.
type Option func(*Options)

// DefaultOptions returns the system clock and the default tolerance.
func DefaultOptions() Options {
	return Options{
		Clock:          SystemClock{},
		StaleTolerance: DefaultStaleTolerance,
	}
}

// WithClock sets the time source. A nil clock is ignored.
func WithClock(c Clock) Option {
	return func(o *Options) {
		if c != nil {
			o.Clock = c
		}
	}
}

// WithStaleTolerance sets the stale tolerance. Negative values are clamped to 0.
func WithStaleTolerance(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			d = 0
		}
		o.StaleTolerance = d
	}
}

// Interval returns base/speed, the time per step at the given speed.
// A non-positive speed yields base.
func Interval(base time.Duration, speed float64) time.Duration {
	if speed <= 0 {
		return base
	}
	return time.Duration(float64(base) / speed)
}
