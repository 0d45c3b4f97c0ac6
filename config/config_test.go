package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NSteczynski/Pathfinding/config"
	"github.com/NSteczynski/Pathfinding/gridgraph"
	"github.com/NSteczynski/Pathfinding/orchestrator"
)

type manualClock struct{ now time.Time }

func (c *manualClock) Now() time.Time { return c.now }

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
rows: 6
columns: 9
speed: 1.5
algorithm: astar
viewport:
  width: 400
  height: 400
  cellSize: 20
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Rows)
	assert.Equal(t, 9, cfg.Columns)
	assert.Equal(t, 1.5, cfg.Speed)
	assert.Equal(t, "astar", cfg.Algorithm)
	assert.Equal(t, config.Viewport{Width: 400, Height: 400, CellSize: 20}, cfg.Viewport)
	assert.Empty(t, cfg.Layout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "speed: 1.5\nalgorithm: astar\n")
	t.Setenv("GRIDPATH_SPEED", "0.75")
	t.Setenv("GRIDPATH_VIEWPORT_WIDTH", "320")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.75, cfg.Speed)
	assert.Equal(t, "astar", cfg.Algorithm)
	assert.Equal(t, 320, cfg.Viewport.Width)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, config.ErrLoad)

	path := writeFile(t, "rows: [1, 2\n")
	_, err = config.Load(path)
	assert.ErrorIs(t, err, config.ErrLoad)
}

func TestSettings_Viewport(t *testing.T) {
	cfg := config.Default()
	s, grid, err := cfg.Settings()
	require.NoError(t, err)
	assert.Nil(t, grid)
	assert.Equal(t, 20, s.Rows)
	assert.Equal(t, 40, s.Columns)
	assert.Equal(t, gridgraph.Vector{X: 10, Y: 10}, s.Start)
	assert.Equal(t, gridgraph.Vector{X: 30, Y: 10}, s.End)

	cfg.Rows, cfg.Columns = 5, 8
	s, _, err = cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, 5, s.Rows)
	assert.Equal(t, 8, s.Columns)
	assert.Equal(t, 20, s.MaxRows)
	assert.Equal(t, gridgraph.Vector{X: 2, Y: 2}, s.Start)
	assert.Equal(t, gridgraph.Vector{X: 6, Y: 2}, s.End)

	cfg.Speed = 9
	_, _, err = cfg.Settings()
	assert.ErrorIs(t, err, orchestrator.ErrInvalidSettings)
}

func TestSettings_Layout(t *testing.T) {
	path := writeFile(t, `
algorithm: dijkstra
layout:
  - "S..#...."
  - "...#..E."
  - "........"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	o, err := cfg.Build()
	require.NoError(t, err)
	s := o.Settings()
	assert.Equal(t, 3, s.Rows)
	assert.Equal(t, 8, s.Columns)
	assert.Equal(t, gridgraph.Vector{X: 0, Y: 0}, s.Start)
	assert.Equal(t, gridgraph.Vector{X: 6, Y: 1}, s.End)
	assert.Equal(t, cfg.Layout, o.Rows())

	cfg.Layout = []string{"..#", "..x"}
	_, err = cfg.Build()
	assert.ErrorIs(t, err, gridgraph.ErrBadLayoutRune)
}

func TestSettings_LayoutWithoutMarkers(t *testing.T) {
	cfg := config.Default()
	cfg.Layout = []string{
		"........",
		"........",
		"........",
		"........",
	}
	s, grid, err := cfg.Settings()
	require.NoError(t, err)
	require.NotNil(t, grid)
	assert.Equal(t, gridgraph.Vector{X: 2, Y: 2}, s.Start)
	assert.Equal(t, gridgraph.Vector{X: 6, Y: 2}, s.End)
}

// TestSnapshot_DumpLoad saves a played board and loads it back.
func TestSnapshot_DumpLoad(t *testing.T) {
	cfg := config.Default()
	cfg.Layout = []string{
		"S.#.",
		"..#E",
		"....",
	}
	clock := &manualClock{now: time.Unix(0, 0)}
	o, err := cfg.Build(orchestrator.WithClock(clock))
	require.NoError(t, err)
	require.NoError(t, o.Play())
	for o.Settings().IsPlaying {
		wait, _ := o.Next()
		clock.now = clock.now.Add(wait)
		o.Poll()
	}
	require.Positive(t, o.Grid().Count(gridgraph.Path))

	snap := config.Snapshot(o, cfg.Viewport)
	assert.Equal(t, cfg.Layout, snap.Layout, "trace and path marks are not saved")

	var buf bytes.Buffer
	require.NoError(t, config.Dump(&buf, snap))
	assert.Contains(t, buf.String(), "cellSize: 40")

	loaded, err := config.Load(writeFile(t, buf.String()))
	require.NoError(t, err)
	assert.Equal(t, snap, loaded)
}
