package playback

import (
	"context"
	"time"
)

// Pollable is anything Run can drive: a Scheduler, or a type wrapping one.
type Pollable interface {
	Poll() int
	Next() (time.Duration, bool)
}

// Run drives target on the calling goroutine until ctx is done or commands
// is closed. Each command runs on this goroutine between polls, so callbacks
// and commands never overlap.
//
// Returns ctx.Err() on cancellation and nil when commands is closed.
func Run(ctx context.Context, target Pollable, commands <-chan func()) error {
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		// 1) Deliver whatever is due.
		target.Poll()

		// 2) Arm the timer for the next record, if any.
		var fire <-chan time.Time
		if wait, ok := target.Next(); ok {
			timer.Reset(wait)
			fire = timer.C
		}

		// 3) Wait for the timer, a command, or shutdown.
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd, ok := <-commands:
			if !ok {
				return nil
			}
			if cmd != nil {
				cmd()
			}
		case <-fire:
		}
		timer.Stop()
	}
}
