//go:build ebiten

package render

import (
	"image/color"

	"biomegrow/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads grid cells into an ebiten image and draws it scaled.
// The backing image is reallocated whenever the grid size changes, which
// happens after every generation.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter returns an empty painter; the first Blit allocates.
func NewGridPainter() *GridPainter { return &GridPainter{} }

func (gp *GridPainter) ensure(w, h int) {
	if gp.img != nil && gp.w == w && gp.h == h {
		return
	}
	if gp.img != nil {
		gp.img.Dispose()
	}
	gp.w, gp.h = w, h
	gp.img = ebiten.NewImage(w, h)
	gp.buf = make([]byte, 4*w*h)
}

// Blit draws g onto dst, stretched to dstW x dstH pixels.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, pal Palette, dstW, dstH int) error {
	gp.ensure(g.W, g.H)
	if err := fillPaletteRGBA(gp.buf, g.Cells(), pal); err != nil {
		return err
	}
	gp.img.WritePixels(gp.buf)
	gp.draw(dst, dstW, dstH)
	return nil
}

// BlitMask draws the set cells of a w x h mask in on, stretched to dstW x dstH.
func (gp *GridPainter) BlitMask(dst *ebiten.Image, mask []bool, w, h int, on color.RGBA, dstW, dstH int) {
	if len(mask) != w*h || w <= 0 || h <= 0 {
		return
	}
	gp.ensure(w, h)
	fillMaskRGBA(gp.buf, mask, on)
	gp.img.WritePixels(gp.buf)
	gp.draw(dst, dstW, dstH)
}

func (gp *GridPainter) draw(dst *ebiten.Image, dstW, dstH int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dstW)/float64(gp.w), float64(dstH)/float64(gp.h))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
