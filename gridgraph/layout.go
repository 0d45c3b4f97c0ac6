package gridgraph

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Layout legend shared by FromLayout and Render.
const (
	RuneUnvisited = '.'
	RuneWall      = '#'
	RuneVisited   = 'o'
	RunePath      = '*'
	RuneStart     = 'S'
	RuneEnd       = 'E'
)

// Layout is a board parsed from text: the grid plus any endpoint markers.
type Layout struct {
	Grid     *Grid
	Start    Vector
	End      Vector
	HasStart bool
	HasEnd   bool
}

// FromLayout parses an ASCII board, one string per row. '#' is a wall,
// '.' is open, 'S' and 'E' mark the endpoints (stored as open cells).
// 'o' and '*' are read back as Visited and Path, so Render output parses.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrBadLayoutRune or
// ErrDuplicateEndpoint for malformed input.
func FromLayout(rows []string) (Layout, error) {
	if len(rows) == 0 || rows[0] == "" {
		return Layout{}, ErrEmptyGrid
	}
	w := utf8.RuneCountInString(rows[0])
	for _, row := range rows {
		if utf8.RuneCountInString(row) != w {
			return Layout{}, ErrNonRectangular
		}
	}

	g, err := Build(len(rows), w)
	if err != nil {
		return Layout{}, err
	}
	out := Layout{Grid: g}
	for y, row := range rows {
		x := 0
		for _, r := range row {
			v := Vector{X: x, Y: y}
			switch r {
			case RuneUnvisited:
			case RuneWall:
				g.SetState(v, Wall)
			case RuneVisited:
				g.SetState(v, Visited)
			case RunePath:
				g.SetState(v, Path)
			case RuneStart:
				if out.HasStart {
					return Layout{}, fmt.Errorf("%w: start at %s", ErrDuplicateEndpoint, v)
				}
				out.Start, out.HasStart = v, true
			case RuneEnd:
				if out.HasEnd {
					return Layout{}, fmt.Errorf("%w: end at %s", ErrDuplicateEndpoint, v)
				}
				out.End, out.HasEnd = v, true
			default:
				return Layout{}, fmt.Errorf("%w: %q at %s", ErrBadLayoutRune, r, v)
			}
			x++
		}
	}

	return out, nil
}

// Render draws g as text rows using the layout legend, overlaying start and
// end markers. Visited cells print as 'o' and path cells as '*'.
func (g *Grid) Render(start, end Vector) []string {
	out := make([]string, 0, g.Rows)
	var b strings.Builder
	for y := 0; y < g.Rows; y++ {
		b.Reset()
		for x := 0; x < g.Columns; x++ {
			v := Vector{X: x, Y: y}
			switch {
			case v == start:
				b.WriteRune(RuneStart)
			case v == end:
				b.WriteRune(RuneEnd)
			default:
				b.WriteRune(stateRune(g.cells[g.Index(v)]))
			}
		}
		out = append(out, b.String())
	}

	return out
}

func stateRune(s CellState) rune {
	switch s {
	case Wall:
		return RuneWall
	case Visited:
		return RuneVisited
	case Path:
		return RunePath
	default:
		return RuneUnvisited
	}
}
