//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Hunterosmun/conways-game/internal/app"
	"github.com/Hunterosmun/conways-game/internal/config"
	"github.com/Hunterosmun/conways-game/internal/logging"
	"github.com/Hunterosmun/conways-game/internal/ui"
	"github.com/Hunterosmun/conways-game/pkg/scheduler"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Load("life", os.Args[1:], os.Environ(), os.Stderr)
	if err != nil {
		if config.IsHelp(err) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	slog.SetDefault(logger)

	frames := scheduler.NewFrameQueue()
	engine, err := scheduler.New(frames, cfg.SchedulerOptions(logger))
	if err != nil {
		logger.Error("engine setup failed", "err", err)
		os.Exit(1)
	}

	game := app.New(engine, frames, cfg.Scale, logger)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Cols*cfg.Scale, cfg.Rows*cfg.Scale+ui.HUDHeight)

	logger.Info("starting", "rows", cfg.Rows, "cols", cfg.Cols, "topology", cfg.Topology, "tps", cfg.TPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop failed", "err", err)
		os.Exit(1)
	}
}
