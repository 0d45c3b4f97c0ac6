package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NSteczynski/Pathfinding/pathfind"
)

func TestLookup(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"dijkstra", pathfind.NameDijkstra},
		{"Dijkstra", pathfind.NameDijkstra},
		{"astar", pathfind.NameAStar},
		{" A* ", pathfind.NameAStar},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			alg, err := pathfind.Lookup(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, alg.Name())
		})
	}

	_, err := pathfind.Lookup("bellman-ford")
	assert.ErrorIs(t, err, pathfind.ErrUnknownAlgorithm)
}

func TestNames(t *testing.T) {
	for _, name := range pathfind.Names() {
		_, err := pathfind.Lookup(name)
		assert.NoError(t, err, name)
	}
	assert.Equal(t, []string{"dijkstra", "astar"}, pathfind.Names())
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "found", pathfind.Found.String())
	assert.Equal(t, "no-path", pathfind.NoPath.String())
}
