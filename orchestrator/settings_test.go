package orchestrator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NSteczynski/Pathfinding/gridgraph"
	"github.com/NSteczynski/Pathfinding/orchestrator"
)

func TestDefaultSettings(t *testing.T) {
	s := orchestrator.DefaultSettings(10, 20)
	require.NoError(t, s.Validate())

	assert.Equal(t, 10, s.Rows)
	assert.Equal(t, 20, s.Columns)
	assert.Equal(t, gridgraph.Vector{X: 5, Y: 5}, s.Start)
	assert.Equal(t, gridgraph.Vector{X: 15, Y: 5}, s.End)
	assert.Equal(t, 1.0, s.Speed)
	assert.Equal(t, "dijkstra", s.Algorithm)
	assert.False(t, s.IsPlaying || s.IsPaused || s.IsFinished)

	tiny := orchestrator.DefaultSettings(0, 1)
	assert.Equal(t, orchestrator.MinRows, tiny.Rows)
	assert.Equal(t, orchestrator.MinColumns, tiny.Columns)
	assert.Equal(t, gridgraph.Vector{X: 1, Y: 1}, tiny.Start)
	assert.Equal(t, gridgraph.Vector{X: 3, Y: 1}, tiny.End)
	require.NoError(t, tiny.Validate())
}

func TestViewportLimits(t *testing.T) {
	cases := []struct {
		name                  string
		width, height, cell   int
		wantRows, wantColumns int
	}{
		{"Desktop", 1920, 1080, 40, 27, 48},
		{"DefaultCell", 1000, 500, 0, 12, 25},
		{"Tiny", 50, 30, 40, 2, 4},
		{"SmallCell", 100, 100, 10, 10, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, cols := orchestrator.ViewportLimits(tc.width, tc.height, tc.cell)
			assert.Equal(t, tc.wantRows, rows)
			assert.Equal(t, tc.wantColumns, cols)
		})
	}
}

func TestSettings_Validate(t *testing.T) {
	base := orchestrator.DefaultSettings(6, 8)
	cases := []struct {
		name   string
		mutate func(*orchestrator.Settings)
	}{
		{"TooFewRows", func(s *orchestrator.Settings) { s.Rows = 1 }},
		{"RowsAboveMax", func(s *orchestrator.Settings) { s.Rows = 7 }},
		{"TooFewColumns", func(s *orchestrator.Settings) { s.Columns = 3 }},
		{"ColumnsAboveMax", func(s *orchestrator.Settings) { s.Columns = 9 }},
		{"SlowSpeed", func(s *orchestrator.Settings) { s.Speed = 0.25 }},
		{"FastSpeed", func(s *orchestrator.Settings) { s.Speed = 2.5 }},
		{"UnknownAlgorithm", func(s *orchestrator.Settings) { s.Algorithm = "greedy" }},
		{"StartOutside", func(s *orchestrator.Settings) { s.Start = gridgraph.Vector{X: 8, Y: 0} }},
		{"EndOutside", func(s *orchestrator.Settings) { s.End = gridgraph.Vector{X: 0, Y: -1} }},
		{"SameEndpoints", func(s *orchestrator.Settings) { s.End = s.Start }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := base
			tc.mutate(&s)
			assert.ErrorIs(t, s.Validate(), orchestrator.ErrInvalidSettings)
		})
	}

	ok := base
	ok.Speed, ok.Algorithm = 2.0, "A*"
	assert.NoError(t, ok.Validate())
}
