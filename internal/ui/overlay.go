//go:build ebiten

package ui

import (
	"image/color"

	"biomegrow/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ChangedTint marks cells rewritten by the last smoothing pass.
var ChangedTint = color.RGBA{R: 140, G: 24, B: 24, A: 140}

// Overlay draws optional debugging visuals on top of the map.
type Overlay struct {
	showChanged bool
	painter     *render.GridPainter
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{painter: render.NewGridPainter()}
}

// Update toggles layers from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showChanged = !o.showChanged
	}
}

// ShowChanged reports whether the changed-cells layer is on.
func (o *Overlay) ShowChanged() bool { return o.showChanged }

// Draw renders the w x h changed mask stretched over dstW x dstH. A nil
// mask (no comparable previous step) draws nothing.
func (o *Overlay) Draw(screen *ebiten.Image, changed []bool, w, h, dstW, dstH int) {
	if !o.showChanged || changed == nil {
		return
	}
	o.painter.BlitMask(screen, changed, w, h, ChangedTint, dstW, dstH)
}
