// Command life-headless runs the Life engine in a terminal. Commands are read
// one per line from stdin and the board is printed after every change.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Hunterosmun/conways-game/internal/app"
	"github.com/Hunterosmun/conways-game/internal/config"
	"github.com/Hunterosmun/conways-game/internal/core"
	"github.com/Hunterosmun/conways-game/internal/logging"
	"github.com/Hunterosmun/conways-game/internal/ui"
	"github.com/Hunterosmun/conways-game/pkg/scheduler"
)

// exitError carries a process exit code out of run.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

type options struct {
	generations uint64
	autostart   bool
	randomize   bool
	ansi        bool
}

func (o *options) bind(fs *flag.FlagSet) {
	fs.Uint64Var(&o.generations, "generations", o.generations, "exit after this many generations (0 runs until quit)")
	fs.BoolVar(&o.autostart, "run", o.autostart, "start the run loop immediately")
	fs.BoolVar(&o.randomize, "random", o.randomize, "randomize the board at startup")
	fs.BoolVar(&o.ansi, "ansi", o.ansi, "clear the terminal before each frame")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Environ(), os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if exitErr, ok := err.(*exitError); ok {
			os.Exit(exitErr.code)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args, environ []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opts options
	cfg, err := config.Load("life-headless", args, environ, stderr, opts.bind)
	if err != nil {
		if config.IsHelp(err) {
			return nil
		}
		return &exitError{code: 2, err: err}
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, stderr)

	frames := scheduler.NewFrameQueue()
	engine, err := scheduler.New(frames, cfg.SchedulerOptions(logger))
	if err != nil {
		return err
	}
	if opts.randomize {
		if err := engine.RandomizeDefault(); err != nil {
			return err
		}
	}
	if opts.autostart {
		engine.Start()
	}

	h := &host{
		engine: engine,
		frames: frames,
		pace:   core.NewFixedStep(cfg.TPS),
		out:    stdout,
		logger: logger,
		limit:  opts.generations,
		ansi:   opts.ansi,
	}
	logger.Info("starting", "rows", cfg.Rows, "cols", cfg.Cols, "topology", cfg.Topology, "tps", cfg.TPS)
	return h.run(ctx, readLines(stdin))
}

// readLines forwards stdin lines to the loop goroutine and closes the channel at EOF.
func readLines(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

// host owns the single goroutine that touches the engine: commands and
// frames are interleaved here, never run concurrently.
type host struct {
	engine *scheduler.Scheduler
	frames *scheduler.FrameQueue
	pace   *core.FixedStep
	out    io.Writer
	logger *slog.Logger
	limit  uint64
	ansi   bool
}

func (h *host) run(ctx context.Context, lines <-chan string) error {
	h.render()
	timer := time.NewTimer(h.pace.Until())
	defer timer.Stop()

	for {
		if h.done() {
			return nil
		}
		select {
		case <-ctx.Done():
			h.logger.Info("interrupted", "generation", h.engine.Generation())
			return nil
		case line, ok := <-lines:
			if !ok {
				lines = nil
				if !h.engine.IsRunning() {
					return nil
				}
				continue
			}
			if quit := h.handle(line); quit {
				return nil
			}
		case <-timer.C:
			if h.pace.ShouldStep() && h.frames.RunFrame() > 0 {
				h.render()
			}
			timer.Reset(h.pace.Until())
		}
	}
}

func (h *host) handle(line string) (quit bool) {
	cmd, err := app.ParseCommand(line)
	if err != nil {
		h.logger.Warn("bad command", "line", line, "err", err)
		return false
	}
	if cmd.Op == app.OpQuit {
		return true
	}
	if err := app.Apply(h.engine, cmd); err != nil {
		h.logger.Warn("command rejected", "command", cmd.String(), "err", err)
		return false
	}
	h.render()
	return false
}

func (h *host) done() bool {
	return h.limit > 0 && h.engine.Generation() >= h.limit
}

func (h *host) render() {
	if h.ansi {
		fmt.Fprint(h.out, "\x1b[H\x1b[2J")
	}
	fmt.Fprint(h.out, h.engine.Snapshot().String())
	fmt.Fprintln(h.out, ui.StatusLine(ui.Status(h.engine)))
}
