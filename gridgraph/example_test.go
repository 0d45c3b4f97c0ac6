// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/NSteczynski/Pathfinding/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Neighbors shows the fixed enumeration order and the
// no-corner-cutting rule.
//
//	. . .
//	. x .
//	# . .
//
// The wall at (0,2) removes the South-West diagonal.
func ExampleGrid_Neighbors() {
	g, _ := gridgraph.Build(3, 3)
	g.SetState(gridgraph.Vector{X: 0, Y: 2}, gridgraph.Wall)

	for _, n := range g.Neighbors(gridgraph.Vector{X: 1, Y: 1}, gridgraph.Conn8) {
		fmt.Printf("(%s) ", n)
	}
	fmt.Println()
	// Output:
	// (0,1) (2,1) (1,2) (1,0) (2,2) (0,0) (2,0)
}

////////////////////////////////////////////////////////////////////////////////
// Example: FromLayout / Render
////////////////////////////////////////////////////////////////////////////////

// ExampleFromLayout parses a board and draws it back.
func ExampleFromLayout() {
	layout, err := gridgraph.FromLayout([]string{
		"S.#.",
		"..#E",
		"....",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(layout.Grid.Rows, layout.Grid.Columns, layout.Start, layout.End)
	for _, row := range layout.Grid.Render(layout.Start, layout.End) {
		fmt.Println(row)
	}
	// Output:
	// 3 4 0,0 3,1
	// S.#.
	// ..#E
	// ....
}
