package playback_test

import (
	"fmt"
	"time"

	"github.com/NSteczynski/Pathfinding/gridgraph"
	"github.com/NSteczynski/Pathfinding/pathfind"
	"github.com/NSteczynski/Pathfinding/playback"
)

// ExampleScheduler replays a two-step trace and a one-step path, pausing
// half way through.
func ExampleScheduler() {
	clock := newManualClock()
	s := playback.NewScheduler(playback.WithClock(clock))

	trace := []pathfind.Step{
		{Position: gridgraph.Vector{X: 1, Y: 0}, State: gridgraph.Visited},
		{Position: gridgraph.Vector{X: 0, Y: 1}, State: gridgraph.Visited},
	}
	path := []pathfind.Step{{Position: gridgraph.Vector{X: 1, Y: 1}, State: gridgraph.Path}}

	_ = s.Schedule(trace, path, playback.Interval(playback.BaseInterval, 2),
		func(st pathfind.Step) { fmt.Printf("%v %s at %v\n", st.Position, st.State, s.Elapsed()) },
		func() { fmt.Println("finished at", s.Elapsed()) })

	s.Poll()
	clock.Advance(60 * time.Millisecond)
	s.Poll()
	s.Pause()
	clock.Advance(time.Second)
	s.Resume()
	for s.State() == playback.Playing {
		wait, _ := s.Next()
		clock.Advance(wait)
		s.Poll()
	}
	// Output:
	// 1,0 visited at 0s
	// 0,1 visited at 60ms
	// 1,1 path at 100ms
	// finished at 150ms
}
