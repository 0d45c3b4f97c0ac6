package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the requested grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadLayoutRune indicates a layout character outside the board legend.
	ErrBadLayoutRune = errors.New("gridgraph: unknown layout character")
	// ErrDuplicateEndpoint indicates a layout with more than one start or end marker.
	ErrDuplicateEndpoint = errors.New("gridgraph: layout declares an endpoint more than once")
)
