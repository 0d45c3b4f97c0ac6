// Package orchestrator owns the live board and its settings, runs searches
// on demand and replays their results through a playback.Scheduler.
//
// The Orchestrator is the only mutator of the grid and of Settings. A search
// receives a cleared snapshot of the grid; the scheduler's callbacks write
// trace and path states back onto the live grid one step at a time.
//
// Lifecycle:
//
//	Play      clears old marks, searches, schedules; IsPlaying turns on.
//	Pause     freezes playback (IsPaused); Resume continues it.
//	finished  the final callback turns IsPlaying off; the result stays on
//	          the board and IsFinished stays on.
//	Reset     cancels playback and clears the board, walls included.
//
// While a result is on the board, moving an endpoint recomputes the search
// and paints it at once with no animation. Board edits and settings
// changes are refused with ErrPlaying while a playback is in progress,
// paused or not. SetViewport is the exception: it always rebuilds.
//
// Concurrency:
//
//	Not safe for concurrent use. Drive it from one goroutine, typically
//	with playback.Run, and send edits to that goroutine as commands.
//
// Usage:
//
//	o, err := orchestrator.New(orchestrator.DefaultSettings(20, 40))
//	if err != nil {
//		log.Fatal(err)
//	}
//	_, _ = o.ToggleWall(gridgraph.Vector{X: 20, Y: 9})
//	if err := o.Play(); err != nil {
//		log.Fatal(err)
//	}
//	_ = playback.Run(ctx, o, commands)
package orchestrator
