// Command gridpath runs the grid search engine from a terminal.
//
// Commands:
//
//	play     animate a search frame by frame; with --interactive, read edits
//	         from stdin while it plays
//	solve    run a search once and print the final board
//	config   print the effective configuration as YAML
//
// Board settings come from --config (YAML), GRIDPATH_* environment variables
// and the flags below, in increasing priority.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NSteczynski/Pathfinding/config"
	"github.com/NSteczynski/Pathfinding/orchestrator"
	"github.com/NSteczynski/Pathfinding/pathfind"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "gridpath"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdin, os.Stdout).Run(ctx, os.Args); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

// newApp wires the command tree to the given terminal streams.
func newApp(in io.Reader, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "visualise Dijkstra and A* on a grid",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML board file"},
			&cli.IntFlag{Name: "rows", Usage: "board rows (0 fills the viewport)"},
			&cli.IntFlag{Name: "columns", Usage: "board columns (0 fills the viewport)"},
			&cli.FloatFlag{Name: "speed", Usage: "playback speed, 0.5 to 2.0"},
			&cli.StringFlag{Name: "algorithm", Aliases: []string{"a"}, Usage: "one of " + fmt.Sprint(pathfind.Names())},
			&cli.BoolFlag{Name: "debug", Usage: "log lifecycle events to stderr"},
		},
		Commands: []*cli.Command{
			{
				Name:  "play",
				Usage: "animate a search",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "interactive", Aliases: []string{"i"}, Usage: "read edit commands from stdin"},
					&cli.DurationFlag{Name: "frame", Value: defaultFrame, Usage: "redraw interval"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := loadConfig(cmd)
					if err != nil {
						return err
					}
					o, err := cfg.Build(orchestrator.WithLogger(newLogger(cmd)))
					if err != nil {
						return err
					}
					defer o.Close()

					var input io.Reader
					if cmd.Bool("interactive") {
						input = in
					}
					return play(ctx, o, input, out, cmd.Duration("frame"))
				},
			},
			{
				Name:  "solve",
				Usage: "run a search and print the result",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := loadConfig(cmd)
					if err != nil {
						return err
					}
					o, err := cfg.Build(orchestrator.WithLogger(newLogger(cmd)))
					if err != nil {
						return err
					}
					return solve(o, out)
				},
			},
			{
				Name:  "config",
				Usage: "print the effective configuration",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := loadConfig(cmd)
					if err != nil {
						return err
					}
					o, err := cfg.Build()
					if err != nil {
						return err
					}
					return config.Dump(out, config.Snapshot(o, cfg.Viewport))
				},
			},
		},
	}
}

// loadConfig reads --config and applies the flag overrides.
func loadConfig(cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return config.Config{}, err
	}
	if cmd.IsSet("rows") {
		cfg.Rows = int(cmd.Int("rows"))
	}
	if cmd.IsSet("columns") {
		cfg.Columns = int(cmd.Int("columns"))
	}
	if cmd.IsSet("speed") {
		cfg.Speed = cmd.Float("speed")
	}
	if cmd.IsSet("algorithm") {
		cfg.Algorithm = cmd.String("algorithm")
	}

	return cfg, nil
}

func newLogger(cmd *cli.Command) *log.Logger {
	if !cmd.Bool("debug") {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, AppName+": ", log.LstdFlags|log.Lmicroseconds)
}
