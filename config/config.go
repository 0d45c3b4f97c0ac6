// Package config loads board settings from a YAML file and GRIDPATH_*
// environment variables, and turns them into an Orchestrator.
//
// Keys:
//
//	rows, columns        board size; 0 fills the viewport
//	speed                playback speed, 0.5 to 2.0
//	algorithm            "dijkstra" or "astar"
//	layout               optional board rows ('.', '#', 'S', 'E'); sets the size
//	viewport.width       viewport in pixels
//	viewport.height
//	viewport.cellSize    pixels per cell
//
// Environment variables override the file: GRIDPATH_SPEED,
// GRIDPATH_VIEWPORT_WIDTH and so on.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/NSteczynski/Pathfinding/gridgraph"
	"github.com/NSteczynski/Pathfinding/orchestrator"
	"github.com/NSteczynski/Pathfinding/pathfind"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GRIDPATH"

// ErrLoad wraps file and decoding failures.
var ErrLoad = errors.New("config: load failed")

// Viewport is the drawing area the board must fit into.
type Viewport struct {
	Width    int `mapstructure:"width" yaml:"width"`
	Height   int `mapstructure:"height" yaml:"height"`
	CellSize int `mapstructure:"cellSize" yaml:"cellSize"`
}

// Config is the file form of a board.
type Config struct {
	Rows      int      `mapstructure:"rows" yaml:"rows"`
	Columns   int      `mapstructure:"columns" yaml:"columns"`
	Speed     float64  `mapstructure:"speed" yaml:"speed"`
	Algorithm string   `mapstructure:"algorithm" yaml:"algorithm"`
	Layout    []string `mapstructure:"layout" yaml:"layout,omitempty"`
	Viewport  Viewport `mapstructure:"viewport" yaml:"viewport"`
}

// Default returns an 800×1600 viewport at 40px cells, speed 1 and Dijkstra.
func Default() Config {
	return Config{
		Speed:     1.0,
		Algorithm: pathfind.NameDijkstra,
		Viewport: Viewport{
			Width:    1600,
			Height:   800,
			CellSize: orchestrator.DefaultCellSize,
		},
	}
}

// Load reads path (skipped when empty) over Default, then applies
// environment overrides.
func Load(path string) (Config, error) {
	vp := viper.New()
	def := Default()
	vp.SetDefault("rows", def.Rows)
	vp.SetDefault("columns", def.Columns)
	vp.SetDefault("speed", def.Speed)
	vp.SetDefault("algorithm", def.Algorithm)
	vp.SetDefault("layout", def.Layout)
	vp.SetDefault("viewport.width", def.Viewport.Width)
	vp.SetDefault("viewport.height", def.Viewport.Height)
	vp.SetDefault("viewport.cellSize", def.Viewport.CellSize)

	vp.SetEnvPrefix(EnvPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	if path != "" {
		vp.SetConfigFile(path)
		vp.SetConfigType("yaml")
		if err := vp.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrLoad, err)
		}
	}

	var cfg Config
	if err := vp.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	return cfg, nil
}

// Settings resolves cfg into orchestrator settings and, when a layout is
// given, the board to start from.
//
// Without a layout the board is Rows × Columns, or the full viewport for a
// zero dimension, with the endpoints centered. A layout fixes the size and
// may place the endpoints with 'S' and 'E'.
func (cfg Config) Settings() (orchestrator.Settings, *gridgraph.Grid, error) {
	maxRows, maxColumns := orchestrator.ViewportLimits(cfg.Viewport.Width, cfg.Viewport.Height, cfg.Viewport.CellSize)
	s := orchestrator.DefaultSettings(maxRows, maxColumns)
	s.Speed = cfg.Speed
	s.Algorithm = cfg.Algorithm

	var grid *gridgraph.Grid
	rows, columns := cfg.Rows, cfg.Columns
	if len(cfg.Layout) > 0 {
		layout, err := gridgraph.FromLayout(cfg.Layout)
		if err != nil {
			return orchestrator.Settings{}, nil, err
		}
		grid = layout.Grid
		rows, columns = grid.Rows, grid.Columns
		s.Start, s.End = orchestrator.StartPosition(rows, columns), orchestrator.EndPosition(rows, columns)
		if layout.HasStart {
			s.Start = layout.Start
		}
		if layout.HasEnd {
			s.End = layout.End
		}
	} else {
		if rows <= 0 {
			rows = maxRows
		}
		if columns <= 0 {
			columns = maxColumns
		}
		s.Start, s.End = orchestrator.StartPosition(rows, columns), orchestrator.EndPosition(rows, columns)
	}
	s.Rows, s.Columns = rows, columns
	s.MaxRows, s.MaxColumns = max(s.MaxRows, rows), max(s.MaxColumns, columns)

	return s, grid, s.Validate()
}

// Build resolves cfg and returns a ready Orchestrator. opts are applied
// after the layout grid, if any.
func (cfg Config) Build(opts ...orchestrator.Option) (*orchestrator.Orchestrator, error) {
	s, grid, err := cfg.Settings()
	if err != nil {
		return nil, err
	}
	if grid != nil {
		opts = append([]orchestrator.Option{orchestrator.WithGrid(grid)}, opts...)
	}

	return orchestrator.New(s, opts...)
}

// Snapshot captures the board of o as a Config whose layout reproduces its
// walls and endpoints. Visited and path marks are not kept.
func Snapshot(o *orchestrator.Orchestrator, viewport Viewport) Config {
	s := o.Settings()
	return Config{
		Rows:      s.Rows,
		Columns:   s.Columns,
		Speed:     s.Speed,
		Algorithm: s.Algorithm,
		Layout:    o.Grid().Reset().Render(s.Start, s.End),
		Viewport:  viewport,
	}
}

// Dump writes cfg as YAML.
func Dump(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}

	return enc.Close()
}
