package orchestrator

import (
	"fmt"
	"log"
	"time"

	"github.com/NSteczynski/Pathfinding/gridgraph"
	"github.com/NSteczynski/Pathfinding/pathfind"
	"github.com/NSteczynski/Pathfinding/playback"
)

// Orchestrator binds settings, the live grid, the search registry and one
// playback scheduler.
type Orchestrator struct {
	settings  Settings
	grid      *gridgraph.Grid
	scheduler *playback.Scheduler
	logger    *log.Logger

	result    pathfind.Result
	hasResult bool
}

// New validates settings and returns an idle Orchestrator.
//
// With WithGrid the board dimensions come from the grid and the viewport
// limits grow to fit it. Returns ErrInvalidSettings or ErrEndpointOnWall.
func New(settings Settings, opts ...Option) (*Orchestrator, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var grid *gridgraph.Grid
	if cfg.Grid != nil {
		grid = cfg.Grid.Reset()
		settings.Rows, settings.Columns = grid.Rows, grid.Columns
		settings.MaxRows = max(settings.MaxRows, grid.Rows)
		settings.MaxColumns = max(settings.MaxColumns, grid.Columns)
	}
	settings.IsPlaying, settings.IsPaused, settings.IsFinished = false, false, false
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	alg, _ := pathfind.Lookup(settings.Algorithm)
	settings.Algorithm = alg.Name()

	if grid == nil {
		var err error
		if grid, err = gridgraph.Build(settings.Rows, settings.Columns); err != nil {
			return nil, err
		}
	}
	for _, v := range []gridgraph.Vector{settings.Start, settings.End} {
		if grid.State(v) == gridgraph.Wall {
			return nil, fmt.Errorf("%w: %s", ErrEndpointOnWall, v)
		}
	}

	return &Orchestrator{
		settings:  settings,
		grid:      grid,
		scheduler: playback.NewScheduler(playback.WithClock(cfg.Clock)),
		logger:    cfg.Logger,
	}, nil
}

//---------------------------------------------------------------------------//
// Board edits
//---------------------------------------------------------------------------//

// Resize rebuilds an empty rows × columns board and recenters the endpoints.
// The size must fit the current viewport limits.
func (o *Orchestrator) Resize(rows, columns int) error {
	if o.settings.IsPlaying {
		return ErrPlaying
	}
	next := o.settings
	next.Rows, next.Columns = rows, columns
	next.Start, next.End = StartPosition(rows, columns), EndPosition(rows, columns)
	if err := next.Validate(); err != nil {
		return err
	}
	o.rebuild(next)

	return nil
}

// SetViewport records new viewport limits and rebuilds the board at that
// size. It cancels any playback, since the old board no longer exists.
func (o *Orchestrator) SetViewport(maxRows, maxColumns int) {
	maxRows, maxColumns = clampViewport(maxRows, maxColumns)
	next := o.settings
	next.MaxRows, next.MaxColumns = maxRows, maxColumns
	next.Rows, next.Columns = maxRows, maxColumns
	next.Start, next.End = StartPosition(maxRows, maxColumns), EndPosition(maxRows, maxColumns)
	o.rebuild(next)
}

func (o *Orchestrator) rebuild(next Settings) {
	o.scheduler.Cancel()
	grid, err := gridgraph.Build(next.Rows, next.Columns)
	if err != nil {
		// unreachable: next passed Validate or clampViewport
		panic(err)
	}
	next.IsPlaying, next.IsPaused, next.IsFinished = false, false, false
	o.settings = next
	o.grid = grid
	o.clearResult()
	o.logger.Printf("board %d×%d start=%s end=%s", next.Rows, next.Columns, next.Start, next.End)
}

// ToggleWall flips v between Unvisited and Wall and returns its new state.
// Visited and path cells are left alone. Endpoints cannot be walled.
func (o *Orchestrator) ToggleWall(v gridgraph.Vector) (gridgraph.CellState, error) {
	if o.settings.IsPlaying {
		return 0, ErrPlaying
	}
	if !o.grid.InBounds(v) {
		return 0, fmt.Errorf("%w: %s", ErrOutOfBounds, v)
	}
	if v == o.settings.Start || v == o.settings.End {
		return 0, fmt.Errorf("%w: %s", ErrEndpointCell, v)
	}

	switch o.grid.State(v) {
	case gridgraph.Unvisited:
		o.grid.SetState(v, gridgraph.Wall)
	case gridgraph.Wall:
		o.grid.SetState(v, gridgraph.Unvisited)
	}

	return o.grid.State(v), nil
}

// MoveStart places the start at v. See moveEndpoint.
func (o *Orchestrator) MoveStart(v gridgraph.Vector) error {
	return o.moveEndpoint(&o.settings.Start, o.settings.End, v)
}

// MoveEnd places the end at v. See moveEndpoint.
func (o *Orchestrator) MoveEnd(v gridgraph.Vector) error {
	return o.moveEndpoint(&o.settings.End, o.settings.Start, v)
}

// moveEndpoint refuses walls, the other endpoint and moves during playback.
// With a finished result on the board, the search is redone and painted at
// once.
func (o *Orchestrator) moveEndpoint(endpoint *gridgraph.Vector, other, v gridgraph.Vector) error {
	switch {
	case o.settings.IsPlaying:
		return ErrPlaying
	case !o.grid.InBounds(v):
		return fmt.Errorf("%w: %s", ErrOutOfBounds, v)
	case o.grid.State(v) == gridgraph.Wall:
		return fmt.Errorf("%w: %s", ErrEndpointOnWall, v)
	case v == other:
		return fmt.Errorf("%w: %s", ErrEndpointCell, v)
	}
	*endpoint = v
	if !o.settings.IsFinished {
		return nil
	}

	res, err := o.search()
	if err != nil {
		return err
	}
	for _, st := range res.Trace {
		o.applyStep(st)
	}
	for _, st := range res.Path {
		o.applyStep(st)
	}
	o.logger.Printf("recomputed %s start=%s end=%s outcome=%s", o.settings.Algorithm, o.settings.Start, o.settings.End, res.Outcome)

	return nil
}

//---------------------------------------------------------------------------//
// Settings
//---------------------------------------------------------------------------//

// SetAlgorithm selects a registered algorithm by name.
func (o *Orchestrator) SetAlgorithm(name string) error {
	if o.settings.IsPlaying {
		return ErrPlaying
	}
	alg, err := pathfind.Lookup(name)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	o.settings.Algorithm = alg.Name()

	return nil
}

// SetSpeed sets the playback speed, within [MinSpeed, MaxSpeed].
func (o *Orchestrator) SetSpeed(speed float64) error {
	if o.settings.IsPlaying {
		return ErrPlaying
	}
	if speed < MinSpeed || speed > MaxSpeed {
		return fmt.Errorf("%w: speed %g not in [%g, %g]", ErrInvalidSettings, speed, MinSpeed, MaxSpeed)
	}
	o.settings.Speed = speed

	return nil
}

//---------------------------------------------------------------------------//
// Playback
//---------------------------------------------------------------------------//

// Play clears previous marks, runs the selected search and schedules its
// replay at BaseInterval/Speed per step.
func (o *Orchestrator) Play() error {
	if o.settings.IsPlaying {
		return ErrPlaying
	}
	res, err := o.search()
	if err != nil {
		return err
	}

	interval := playback.Interval(playback.BaseInterval, o.settings.Speed)
	if err := o.scheduler.Schedule(res.Trace, res.Path, interval, o.applyStep, o.finish); err != nil {
		return err
	}
	o.settings.IsPlaying, o.settings.IsPaused = true, false
	o.logger.Printf("play %s start=%s end=%s trace=%d path=%d outcome=%s interval=%s",
		o.settings.Algorithm, o.settings.Start, o.settings.End, len(res.Trace), len(res.Path), res.Outcome, interval)

	return nil
}

// search clears the board's marks and runs the selected algorithm on it.
// The result becomes the current one and IsFinished turns on.
func (o *Orchestrator) search() (pathfind.Result, error) {
	alg, err := pathfind.Lookup(o.settings.Algorithm)
	if err != nil {
		return pathfind.Result{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	o.grid = o.grid.Reset()
	res, err := alg.Search(o.grid, o.settings.Start, o.settings.End)
	if err != nil {
		return pathfind.Result{}, err
	}
	o.result, o.hasResult = res, true
	o.settings.IsFinished = true

	return res, nil
}

// applyStep paints one trace or path step onto the live grid.
func (o *Orchestrator) applyStep(st pathfind.Step) {
	if o.grid.InBounds(st.Position) && o.grid.State(st.Position) != gridgraph.Wall {
		o.grid.SetState(st.Position, st.State)
	}
}

func (o *Orchestrator) finish() {
	o.settings.IsPlaying, o.settings.IsPaused = false, false
	o.logger.Printf("finished after %s", o.scheduler.Elapsed().Round(time.Millisecond))
}

// Pause freezes a running playback. No-op otherwise.
func (o *Orchestrator) Pause() {
	if !o.settings.IsPlaying || o.settings.IsPaused {
		return
	}
	o.scheduler.Pause()
	o.settings.IsPaused = true
	o.logger.Printf("paused at %s", o.scheduler.Elapsed().Round(time.Millisecond))
}

// Resume continues a paused playback. No-op otherwise.
func (o *Orchestrator) Resume() {
	if !o.settings.IsPaused {
		return
	}
	o.scheduler.Resume()
	o.settings.IsPaused = false
	o.logger.Printf("resumed at %s", o.scheduler.Elapsed().Round(time.Millisecond))
}

// ClearPath cancels playback and removes visited and path marks, keeping
// walls and endpoints.
func (o *Orchestrator) ClearPath() {
	o.scheduler.Cancel()
	o.grid = o.grid.Reset()
	o.settings.IsPlaying, o.settings.IsPaused, o.settings.IsFinished = false, false, false
	o.clearResult()
}

// Reset cancels playback and clears the whole board, walls included.
func (o *Orchestrator) Reset() {
	o.rebuild(o.settings)
}

// Close cancels playback on teardown. Safe to call more than once.
func (o *Orchestrator) Close() {
	o.scheduler.Cancel()
	o.settings.IsPlaying, o.settings.IsPaused = false, false
}

func (o *Orchestrator) clearResult() {
	o.result, o.hasResult = pathfind.Result{}, false
}

// Poll delivers due playback steps. It satisfies playback.Pollable.
func (o *Orchestrator) Poll() int { return o.scheduler.Poll() }

// Next reports when the next playback step is due.
func (o *Orchestrator) Next() (time.Duration, bool) { return o.scheduler.Next() }

//---------------------------------------------------------------------------//
// Views
//---------------------------------------------------------------------------//

// Settings returns a copy of the current settings.
func (o *Orchestrator) Settings() Settings { return o.settings }

// Playback returns the scheduler state.
func (o *Orchestrator) Playback() playback.State { return o.scheduler.State() }

// Cell returns the display state of v: Start or End for the endpoints,
// the stored state otherwise. Panics if v is out of bounds.
func (o *Orchestrator) Cell(v gridgraph.Vector) gridgraph.CellState {
	switch v {
	case o.settings.Start:
		return gridgraph.Start
	case o.settings.End:
		return gridgraph.End
	}
	return o.grid.State(v)
}

// Rows renders the board as text, endpoints overlaid.
func (o *Orchestrator) Rows() []string {
	return o.grid.Render(o.settings.Start, o.settings.End)
}

// Grid returns a copy of the live grid.
func (o *Orchestrator) Grid() *gridgraph.Grid { return o.grid.Clone() }

// Reachable reports whether a wall-free route joins the endpoints. Trace
// and path marks are ignored. Diagonals never cut a wall corner, so the
// answer is the same for every algorithm.
func (o *Orchestrator) Reachable() bool {
	return o.grid.Reset().Reachable(o.settings.Start, o.settings.End, gridgraph.Conn4)
}

// Result returns the last search result and whether there is one on the board.
func (o *Orchestrator) Result() (pathfind.Result, bool) { return o.result, o.hasResult }
