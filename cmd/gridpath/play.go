package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	channerics "github.com/niceyeti/channerics/channels"
	"golang.org/x/sync/errgroup"

	"github.com/NSteczynski/Pathfinding/gridgraph"
	"github.com/NSteczynski/Pathfinding/orchestrator"
	"github.com/NSteczynski/Pathfinding/pathfind"
	"github.com/NSteczynski/Pathfinding/playback"
)

const defaultFrame = 100 * time.Millisecond

const helpText = `commands:
  p            pause / resume
  play         search again and replay
  c            clear trace and path
  r            reset the board
  w X Y        toggle a wall
  s X Y        move the start
  e X Y        move the end
  a NAME       select the algorithm
  v SPEED      set the speed
  q            quit`

// play animates o until playback finishes, or with input until the user
// quits or input ends. Only the playback loop touches o; the redraw ticker
// and the input reader hand it closures.
func play(ctx context.Context, o *orchestrator.Orchestrator, input io.Reader, out io.Writer, frame time.Duration) error {
	if frame <= 0 {
		frame = defaultFrame
	}
	if err := o.Play(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	commands := make(chan func())

	// 1) The playback loop.
	g.Go(func() error {
		return playback.Run(gctx, o, commands)
	})

	// 2) Redraw every frame.
	g.Go(func() error {
		ticks := channerics.NewTicker(gctx.Done(), frame)
		last := "" // read and written on the loop goroutine only
		for {
			select {
			case <-gctx.Done():
				return nil
			case _, ok := <-ticks:
				if !ok {
					return nil
				}
			}
			idle := make(chan bool, 1)
			select {
			case commands <- func() {
				if text := render(o); text != last {
					fmt.Fprint(out, text)
					last = text
				}
				idle <- !o.Settings().IsPlaying
			}:
			case <-gctx.Done():
				return nil
			}
			if <-idle && input == nil {
				cancel()
				return nil
			}
		}
	})

	// 3) Edits from input.
	if input != nil {
		lines := readLines(gctx, input)
		g.Go(func() error {
			for line := range channerics.OrDone(gctx.Done(), lines) {
				cmd, quit := parseCommand(o, line, out)
				if quit {
					break
				}
				if cmd == nil {
					continue
				}
				select {
				case commands <- cmd:
				case <-gctx.Done():
					return nil
				}
			}
			cancel()
			return nil
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// readLines scans r on its own goroutine. A blocked read cannot be
// interrupted, so the goroutine is left out of the errgroup and only stops
// sending once ctx is done.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines
}

// parseCommand turns one input line into a closure for the playback loop.
// quit is true for "q". Feedback is written by the closure so that all
// output stays on the loop goroutine.
func parseCommand(o *orchestrator.Orchestrator, line string, out io.Writer) (cmd func(), quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false
	}
	report := func(err error) {
		if err != nil {
			fmt.Fprintln(out, "error:", err)
		}
	}
	vector := func(then func(gridgraph.Vector) error) func() {
		if len(fields) != 3 {
			return func() { fmt.Fprintf(out, "error: %s needs X Y\n", fields[0]) }
		}
		x, errX := strconv.Atoi(fields[1])
		y, errY := strconv.Atoi(fields[2])
		if err := errors.Join(errX, errY); err != nil {
			return func() { report(err) }
		}
		return func() { report(then(gridgraph.Vector{X: x, Y: y})) }
	}
	argument := func(then func(string) error) func() {
		if len(fields) != 2 {
			return func() { fmt.Fprintf(out, "error: %s needs one argument\n", fields[0]) }
		}
		return func() { report(then(fields[1])) }
	}

	switch strings.ToLower(fields[0]) {
	case "q", "quit", "exit":
		return nil, true
	case "p", "pause":
		return func() {
			if o.Settings().IsPaused {
				o.Resume()
			} else {
				o.Pause()
			}
		}, false
	case "play":
		return func() { report(o.Play()) }, false
	case "c", "clear":
		return o.ClearPath, false
	case "r", "reset":
		return o.Reset, false
	case "w", "wall":
		return vector(func(v gridgraph.Vector) error {
			_, err := o.ToggleWall(v)
			return err
		}), false
	case "s", "start":
		return vector(o.MoveStart), false
	case "e", "end":
		return vector(o.MoveEnd), false
	case "a", "algorithm":
		return argument(o.SetAlgorithm), false
	case "v", "speed":
		return argument(func(arg string) error {
			speed, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return err
			}
			return o.SetSpeed(speed)
		}), false
	default:
		return func() { fmt.Fprintln(out, helpText) }, false
	}
}

// render draws the board followed by a status line.
func render(o *orchestrator.Orchestrator) string {
	return strings.Join(o.Rows(), "\n") + "\n" + status(o) + "\n"
}

// status reports the algorithm, playback state and speed, then either the
// result on the board or, with no result, whether the end can be reached.
func status(o *orchestrator.Orchestrator) string {
	s := o.Settings()
	line := fmt.Sprintf("%s  %s  speed %.2f", s.Algorithm, o.Playback(), s.Speed)
	if res, ok := o.Result(); ok {
		return line + summary(res)
	}
	if !o.Reachable() {
		line += "  unreachable"
	}
	return line
}

func summary(res pathfind.Result) string {
	return fmt.Sprintf("  %s  cost %.3f  trace %d  path %d  settled %d",
		res.Outcome, res.Cost, len(res.Trace), len(res.Path), res.Settled)
}

// solve runs the selected search once, with no playback, and prints the
// painted board and a summary.
func solve(o *orchestrator.Orchestrator, out io.Writer) error {
	s := o.Settings()
	alg, err := pathfind.Lookup(s.Algorithm)
	if err != nil {
		return err
	}
	board := o.Grid()
	res, err := alg.Search(board, s.Start, s.End)
	if err != nil {
		return err
	}
	for _, st := range res.Trace {
		board.SetState(st.Position, st.State)
	}
	for _, st := range res.Path {
		board.SetState(st.Position, st.State)
	}

	fmt.Fprintln(out, strings.Join(board.Render(s.Start, s.End), "\n"))
	fmt.Fprintln(out, alg.Name()+summary(res))
	return nil
}
