package render

import (
	"fmt"
	"image/color"

	"biomegrow/internal/core"
)

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. Any
// value without a palette entry aborts the fill; buf may then be partially
// written.
func fillPaletteRGBA(buf []byte, cells []int32, palette Palette) error {
	for i, c := range cells {
		if c < 0 || int(c) >= len(palette) {
			return fmt.Errorf("%w: cell %d has value %d, palette size %d", core.ErrIndexOutOfPalette, i, c, len(palette))
		}
		base := i * 4
		col := palette[c]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
	return nil
}

// fillMaskRGBA paints on for set mask entries and leaves the rest transparent.
func fillMaskRGBA(buf []byte, mask []bool, on color.RGBA) {
	for i, set := range mask {
		base := i * 4
		if !set {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		buf[base+0] = on.R
		buf[base+1] = on.G
		buf[base+2] = on.B
		buf[base+3] = on.A
	}
}
