// Package playback turns a search result into timed, ordered callbacks.
//
// What:
//
//   - A Scheduler keeps one flat list of records, each holding a fire
//     offset measured from the start of playback. Trace steps come first,
//     path steps continue the index sequence, and a single "finished"
//     record closes the list at offset (N+M)*interval.
//   - Time is a single elapsed counter. Pause freezes it; Resume restarts
//     it from the frozen value. Nothing fires while paused.
//   - Cancel drops every pending record. It is idempotent, and Pause or
//     Resume after Cancel are no-ops.
//
// Why:
//
//   - Animating a search means replaying its trace and path at a steady
//     pace that the user can pause, resume, speed up, or abandon.
//
// Driving:
//
//	The Scheduler is not safe for concurrent use. It never starts
//	goroutines or timers of its own. The owner calls Poll whenever Next
//	says a record is due; Run does exactly that on one goroutine and
//	serialises external commands onto the same goroutine.
//
// Stale records:
//
//	When a step record is already overdue by more than the stale tolerance
//	at the moment playback resumes, it is treated as delivered and dropped
//	instead of firing in a burst. The finished record is never dropped.
//
// Errors:
//
//	ErrBadInterval - Schedule was given a non-positive interval.
package playback
