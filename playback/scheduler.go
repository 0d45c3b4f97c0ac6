package playback

import (
	"fmt"
	"time"

	"github.com/NSteczynski/Pathfinding/pathfind"
)

// record is one scheduled callback. final marks the finished record.
type record struct {
	offset time.Duration
	step   pathfind.Step
	final  bool
}

// Scheduler fires the records of one playback in offset order.
type Scheduler struct {
	clock     Clock
	tolerance time.Duration

	records []record
	next    int // index of the first record not yet delivered
	skipped int // step records dropped as stale

	elapsed   time.Duration // elapsed time up to resumedAt
	resumedAt time.Time
	state     State
	gen       int // bumped by Cancel so Poll notices a reschedule

	onStep     func(pathfind.Step)
	onFinished func()
}

// NewScheduler returns an idle Scheduler.
func NewScheduler(opts ...Option) *Scheduler {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Scheduler{
		clock:     cfg.Clock,
		tolerance: cfg.StaleTolerance,
	}
}

// Schedule cancels any previous playback and starts a new one.
//
// Step i (trace first, then path) fires at i*interval after the start. The
// finished record fires at (len(trace)+len(path))*interval and calls
// onFinished exactly once. Either callback may be nil.
//
// Returns ErrBadInterval, leaving the scheduler untouched, if interval ≤ 0.
func (s *Scheduler) Schedule(trace, path []pathfind.Step, interval time.Duration,
	onStep func(pathfind.Step), onFinished func()) error {
	if interval <= 0 {
		return fmt.Errorf("%w: got %s", ErrBadInterval, interval)
	}
	s.Cancel()

	// 1) Flatten trace and path into one index sequence.
	n := len(trace) + len(path)
	records := make([]record, 0, n+1)
	for i, st := range trace {
		records = append(records, record{offset: time.Duration(i) * interval, step: st})
	}
	for i, st := range path {
		records = append(records, record{offset: time.Duration(len(trace)+i) * interval, step: st})
	}
	// 2) Close the list with the finished record.
	records = append(records, record{offset: time.Duration(n) * interval, final: true})

	if onStep == nil {
		onStep = func(pathfind.Step) {}
	}
	if onFinished == nil {
		onFinished = func() {}
	}

	s.records = records
	s.onStep = onStep
	s.onFinished = onFinished
	s.elapsed = 0
	s.resumedAt = s.clock.Now()
	s.state = Playing

	return nil
}

// Poll delivers every record that is due, in order, and returns how many
// callbacks ran. A callback may call Pause or Cancel; delivery stops at that
// point.
func (s *Scheduler) Poll() int {
	if s.state != Playing {
		return 0
	}
	now, gen := s.Elapsed(), s.gen

	fired := 0
	for s.gen == gen && s.state == Playing && s.next < len(s.records) && s.records[s.next].offset <= now {
		rec := s.records[s.next]
		s.next++
		fired++
		if rec.final {
			s.elapsed = now
			s.state = Finished
			s.onFinished()
			break
		}
		s.onStep(rec.step)
	}

	return fired
}

// Next reports how long until the next record is due. ok is false when
// nothing can fire: the scheduler is not Playing or nothing is pending.
func (s *Scheduler) Next() (wait time.Duration, ok bool) {
	if s.state != Playing || s.next >= len(s.records) {
		return 0, false
	}
	wait = s.records[s.next].offset - s.Elapsed()
	if wait < 0 {
		wait = 0
	}

	return wait, true
}

// Pause freezes elapsed time. It is a no-op unless Playing.
func (s *Scheduler) Pause() {
	if s.state != Playing {
		return
	}
	s.elapsed += s.clock.Now().Sub(s.resumedAt)
	s.state = Paused
}

// Resume restarts elapsed time from where Pause froze it. Step records
// overdue by more than the stale tolerance are dropped. It is a no-op
// unless Paused.
func (s *Scheduler) Resume() {
	if s.state != Paused {
		return
	}
	for s.next < len(s.records) {
		rec := s.records[s.next]
		if rec.final || rec.offset-s.elapsed >= -s.tolerance {
			break
		}
		s.next++
		s.skipped++
	}
	s.resumedAt = s.clock.Now()
	s.state = Playing
}

// Cancel disarms every pending record and returns to Idle. Idempotent.
func (s *Scheduler) Cancel() {
	s.gen++
	s.records = nil
	s.next = 0
	s.skipped = 0
	s.elapsed = 0
	s.onStep = nil
	s.onFinished = nil
	s.state = Idle
}

// State returns the lifecycle state.
func (s *Scheduler) State() State { return s.state }

// Elapsed returns playback time since Schedule, excluding paused spans.
func (s *Scheduler) Elapsed() time.Duration {
	if s.state == Playing {
		return s.elapsed + s.clock.Now().Sub(s.resumedAt)
	}
	return s.elapsed
}

// Total returns the offset of the finished record, 0 when Idle.
func (s *Scheduler) Total() time.Duration {
	if len(s.records) == 0 {
		return 0
	}
	return s.records[len(s.records)-1].offset
}

// Pending returns the number of records not yet delivered, the finished
// record included.
func (s *Scheduler) Pending() int { return len(s.records) - s.next }

// Skipped returns the number of step records dropped as stale since Schedule.
func (s *Scheduler) Skipped() int { return s.skipped }
