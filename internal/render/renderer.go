//go:build ebiten

package render

import (
	"image/color"

	"github.com/Hunterosmun/conways-game/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads grid cells into a single RGBA image, reallocating when
// the board is resized.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	pixel *ebiten.Image

	On, Off, Lines color.Color
}

// NewGridPainter allocates a painter with black live cells on white.
func NewGridPainter() *GridPainter {
	gp := &GridPainter{On: color.Black, Off: color.White, Lines: color.RGBA{R: 40, G: 40, B: 40, A: 255}}
	gp.pixel = ebiten.NewImage(1, 1)
	gp.pixel.Fill(color.White)
	return gp
}

// Blit draws g at scale pixels per cell, with cell borders when scale >= 4.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *grid.Grid, scale int) {
	w, h := g.Cols(), g.Rows()
	if gp.img == nil || gp.w != w || gp.h != h {
		gp.w, gp.h = w, h
		gp.img = ebiten.NewImage(w, h)
		gp.buf = make([]byte, 4*w*h)
	}
	fillBinaryRGBA(gp.buf, g.Cells(), gp.On, gp.Off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)

	if scale >= 4 && gp.Lines != nil {
		for x := 0; x <= w; x++ {
			gp.line(dst, float64(x*scale), 0, 1, float64(h*scale))
		}
		for y := 0; y <= h; y++ {
			gp.line(dst, 0, float64(y*scale), float64(w*scale), 1)
		}
	}
}

func (gp *GridPainter) line(dst *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(gp.Lines)
	dst.DrawImage(gp.pixel, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
