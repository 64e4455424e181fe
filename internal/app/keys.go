//go:build ebiten

package app

import "github.com/hajimehoshi/ebiten/v2"

var keyCommands = map[ebiten.Key]Command{
	ebiten.KeySpace:      {Op: OpRunToggle},
	ebiten.KeyEnter:      {Op: OpStart},
	ebiten.KeyN:          StepBy(1),
	ebiten.KeyDigit1:     StepBy(5),
	ebiten.KeyDigit2:     StepBy(10),
	ebiten.KeyDigit3:     StepBy(20),
	ebiten.KeyR:          {Op: OpRandomize, Default: true},
	ebiten.KeyC:          {Op: OpClear},
	ebiten.KeyT:          {Op: OpFlipTopology},
	ebiten.KeyD:          DefaultBoard(),
	ebiten.KeyArrowUp:    {Op: OpResizeBy, Rows: -1},
	ebiten.KeyArrowDown:  {Op: OpResizeBy, Rows: 1},
	ebiten.KeyArrowLeft:  {Op: OpResizeBy, Cols: -1},
	ebiten.KeyArrowRight: {Op: OpResizeBy, Cols: 1},
}
