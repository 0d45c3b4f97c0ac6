package orchestrator

import (
	"errors"
	"fmt"

	"github.com/NSteczynski/Pathfinding/gridgraph"
	"github.com/NSteczynski/Pathfinding/pathfind"
)

// Board and speed limits.
const (
	MinRows    = 2
	MinColumns = 4
	MinSpeed   = 0.5
	MaxSpeed   = 2.0

	// DefaultCellSize is the on-screen size of one cell used by ViewportLimits.
	DefaultCellSize = 40
)

var (
	// ErrInvalidSettings wraps every Settings validation failure.
	ErrInvalidSettings = errors.New("orchestrator: invalid settings")

	// ErrPlaying indicates an edit attempted while a playback is in progress.
	ErrPlaying = errors.New("orchestrator: playback in progress")

	// ErrOutOfBounds indicates a coordinate outside the board.
	ErrOutOfBounds = errors.New("orchestrator: coordinate out of bounds")

	// ErrEndpointOnWall indicates an endpoint placed on a wall.
	ErrEndpointOnWall = errors.New("orchestrator: endpoint on a wall")

	// ErrEndpointCell indicates an edit of a cell that holds an endpoint:
	// walling it, or moving the other endpoint onto it.
	ErrEndpointCell = errors.New("orchestrator: cell holds an endpoint")
)

// Settings is the user-editable state of one board.
//
// IsPlaying is on from Play until the finished callback, paused or not.
// IsFinished is on while a search result is on the board, animated or not.
type Settings struct {
	Rows       int
	Columns    int
	MaxRows    int
	MaxColumns int

	Start gridgraph.Vector
	End   gridgraph.Vector

	Speed     float64
	Algorithm string

	IsPlaying  bool
	IsPaused   bool
	IsFinished bool
}

// DefaultSettings returns a board filling the given viewport limits with the
// endpoints centered, speed 1.0 and Dijkstra selected. Limits below the
// minimum board size are raised to it.
func DefaultSettings(maxRows, maxColumns int) Settings {
	maxRows, maxColumns = clampViewport(maxRows, maxColumns)
	return Settings{
		Rows:       maxRows,
		Columns:    maxColumns,
		MaxRows:    maxRows,
		MaxColumns: maxColumns,
		Start:      StartPosition(maxRows, maxColumns),
		End:        EndPosition(maxRows, maxColumns),
		Speed:      1.0,
		Algorithm:  pathfind.NameDijkstra,
	}
}

// ViewportLimits converts a viewport in pixels to the largest board that
// fits: floor(height/cellSize) rows and floor(width/cellSize) columns, at
// least MinRows × MinColumns. A non-positive cellSize means DefaultCellSize.
func ViewportLimits(width, height, cellSize int) (maxRows, maxColumns int) {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return clampViewport(height/cellSize, width/cellSize)
}

func clampViewport(rows, columns int) (int, int) {
	if rows < MinRows {
		rows = MinRows
	}
	if columns < MinColumns {
		columns = MinColumns
	}
	return rows, columns
}

// StartPosition is the default start: a quarter across, half way down.
func StartPosition(rows, columns int) gridgraph.Vector {
	return gridgraph.Vector{X: columns / 4, Y: rows / 2}
}

// EndPosition is the default end: three quarters across, half way down.
func EndPosition(rows, columns int) gridgraph.Vector {
	return gridgraph.Vector{X: columns * 3 / 4, Y: rows / 2}
}

// Validate checks board size, speed, algorithm and endpoint placement.
// Every failure wraps ErrInvalidSettings.
func (s Settings) Validate() error {
	switch {
	case s.Rows < MinRows || s.Rows > s.MaxRows:
		return fmt.Errorf("%w: rows %d not in [%d, %d]", ErrInvalidSettings, s.Rows, MinRows, s.MaxRows)
	case s.Columns < MinColumns || s.Columns > s.MaxColumns:
		return fmt.Errorf("%w: columns %d not in [%d, %d]", ErrInvalidSettings, s.Columns, MinColumns, s.MaxColumns)
	case s.Speed < MinSpeed || s.Speed > MaxSpeed:
		return fmt.Errorf("%w: speed %g not in [%g, %g]", ErrInvalidSettings, s.Speed, MinSpeed, MaxSpeed)
	}
	if _, err := pathfind.Lookup(s.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	for _, p := range []struct {
		name string
		v    gridgraph.Vector
	}{{"start", s.Start}, {"end", s.End}} {
		if p.v.X < 0 || p.v.X >= s.Columns || p.v.Y < 0 || p.v.Y >= s.Rows {
			return fmt.Errorf("%w: %s %s outside %d×%d board", ErrInvalidSettings, p.name, p.v, s.Rows, s.Columns)
		}
	}
	if s.Start == s.End {
		return fmt.Errorf("%w: start and end both at %s", ErrInvalidSettings, s.Start)
	}

	return nil
}
