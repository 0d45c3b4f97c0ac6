package pathfind

import (
	"fmt"
	"strings"

	"github.com/NSteczynski/Pathfinding/gridgraph"
)

// Registered algorithm names.
const (
	NameDijkstra = "dijkstra"
	NameAStar    = "astar"
)

// Algorithm is a single-source single-target grid search.
type Algorithm interface {
	Name() string
	Search(g *gridgraph.Grid, start, end gridgraph.Vector, opts ...Option) (Result, error)
}

var registry = map[string]Algorithm{
	NameDijkstra: Dijkstra{},
	NameAStar:    AStar{},
}

// Lookup returns the algorithm registered under name. Matching ignores case
// and accepts "a*" as an alias for NameAStar.
func Lookup(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "a*" {
		key = NameAStar
	}
	if alg, ok := registry[key]; ok {
		return alg, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Names lists the registered algorithm names in display order.
func Names() []string {
	return []string{NameDijkstra, NameAStar}
}
