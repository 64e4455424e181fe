//go:build ebiten

package app

import (
	"log/slog"

	"github.com/Hunterosmun/conways-game/internal/core"
	"github.com/Hunterosmun/conways-game/internal/render"
	"github.com/Hunterosmun/conways-game/internal/ui"
	"github.com/Hunterosmun/conways-game/pkg/scheduler"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts an Engine to the ebiten.Game interface. Every Update is one
// host tick: input is applied first, then the frame queue fires, so edits
// made this tick are seen by the step.
type Game struct {
	engine  core.Engine
	frames  *scheduler.FrameQueue
	painter *render.GridPainter
	hud     *ui.HUD
	logger  *slog.Logger

	scale int
}

// New constructs a Game. frames must be the queue the engine was built with.
func New(engine core.Engine, frames *scheduler.FrameQueue, scale int, logger *slog.Logger) *Game {
	if scale <= 0 {
		scale = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Game{
		engine:  engine,
		frames:  frames,
		painter: render.NewGridPainter(),
		hud:     ui.NewHUD(engine),
		logger:  logger,
		scale:   scale,
	}
}

// Update handles per-frame input and fires the pending frame callbacks.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		if cmd, ok := keyCommands[key]; ok {
			g.apply(cmd)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click(ebiten.CursorPosition())
	}

	g.frames.RunFrame()
	g.hud.Update()
	return nil
}

func (g *Game) apply(cmd Command) {
	if err := Apply(g.engine, cmd); err != nil {
		g.logger.Warn("command rejected", "command", cmd.String(), "err", err)
		return
	}
	g.logger.Debug("command applied", "command", cmd.String())
}

func (g *Game) click(px, py int) {
	rows, cols := g.engine.Dimensions()
	x, y, ok := render.CellAt(px, py, g.scale, cols, rows)
	if !ok {
		return
	}
	if err := g.engine.ToggleCell(x, y); err != nil {
		g.logger.Warn("toggle rejected", "x", x, "y", y, "err", err)
	}
}

// Draw renders the board and the status strip.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.engine.Snapshot()
	g.painter.Blit(screen, snap, g.scale)
	g.hud.Draw(screen, snap.Rows()*g.scale, snap.Cols()*g.scale)
}

// Layout returns the logical screen size: the board plus the status strip.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := core.SizeOf(g.engine)
	return s.W * g.scale, s.H*g.scale + ui.HUDHeight
}
